package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Funciones para actualizar métricas por proceso

func obtenerOCrearMetricas(pid int) *MetricasProceso {
	if _, existe := metricasPorProceso[pid]; !existe {
		metricasPorProceso[pid] = &MetricasProceso{}
	}
	return metricasPorProceso[pid]
}

func registrarFalloDePagina(pid int) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	obtenerOCrearMetricas(pid).FallosDePagina++
}

func registrarSubidaMemoria(pid int) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	obtenerOCrearMetricas(pid).SubidasMemoria++
}

func registrarBajadaSwap(pid int) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	obtenerOCrearMetricas(pid).BajadasSwap++
}

func registrarLectura(pid int) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	obtenerOCrearMetricas(pid).LecturasMemoria++
}

func registrarEscritura(pid int) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	obtenerOCrearMetricas(pid).EscriturasMemoria++
}

// obtenerMetricas devuelve una copia de las métricas de un proceso
func obtenerMetricas(pid int) MetricasProceso {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()
	return *obtenerOCrearMetricas(pid)
}

// reportarMetricas emite el resumen de métricas de un proceso
func reportarMetricas(pid int) {
	m := obtenerMetricas(pid)

	// Log obligatorio del enunciado
	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Métricas - Fallos: %d; Subidas a Memoria: %d; Bajadas a SWAP: %d; Lecturas: %d; Escrituras: %d",
		pid, m.FallosDePagina, m.SubidasMemoria, m.BajadasSwap, m.LecturasMemoria, m.EscriturasMemoria))
}

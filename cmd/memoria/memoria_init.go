package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

func inicializarMemoria() {
	utils.InfoLog.Info("Inicializando memoria",
		"tamaño_total", config.MemorySize,
		"tamaño_página", config.PageSize,
		"marcos", cantidadMarcos(),
		"algoritmo_reemplazo", config.ReplacementAlgorithm)

	// Inicializar la memoria física
	memoriaFisica = make([]byte, config.MemorySize)

	// Directorio de espacios de direcciones
	espacios = make(map[int]*EspacioDirecciones)

	// Marcos libres
	inicializarMarcos()

	// La tabla invertida se inicializa de forma perezosa bajo el lock de fallos
	tablaInvertida = nil
	tablaInvertidaCargada = false

	// Métricas
	metricasPorProceso = make(map[int]*MetricasProceso)

	// Directorio para los archivos de swap
	if err := inicializarAreaSwap(); err != nil {
		utils.ErrorLog.Error("Error al inicializar el área de swap", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Memoria completamente inicializada")
}

// inicializarAreaSwap prepara el directorio donde viven los archivos <pid>.swap
func inicializarAreaSwap() error {
	if err := os.MkdirAll(config.SwapPath, 0755); err != nil {
		return fmt.Errorf("error al crear directorio de swap: %v", err)
	}

	utils.InfoLog.Info("Área de SWAP inicializada", "directorio", config.SwapPath)
	return nil
}

package main

import (
	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Tabla invertida: una entrada por marco físico con el dueño actual.
// Todo acceso se hace con el semáforo de fallos tomado; la tabla nunca
// se toca fuera de la sección crítica.
var tablaInvertida []EntradaMarco
var tablaInvertidaCargada bool

// Semáforo global que serializa la resolución de fallos de página, la
// finalización de procesos y los dumps entre todos los procesos
var semaforoFallos = utils.NewSemaforo(1)

// bloquearTablaInvertida toma el lock global de fallos. La primera vez
// también inicializa la tabla, bajo el mismo lock para evitar una doble
// inicialización si dos fallos llegan juntos.
func bloquearTablaInvertida() {
	semaforoFallos.Wait()

	if !tablaInvertidaCargada {
		tablaInvertida = make([]EntradaMarco, cantidadMarcos())
		for i := range tablaInvertida {
			tablaInvertida[i] = EntradaMarco{PID: -1, PaginaVirtual: -1}
		}
		tablaInvertidaCargada = true
		utils.InfoLog.Info("Tabla invertida inicializada", "entradas", len(tablaInvertida))
	}
}

// desbloquearTablaInvertida libera el lock global de fallos
func desbloquearTablaInvertida() {
	semaforoFallos.Signal()
}

// limpiarEntradaMarco deja una entrada de la tabla invertida sin dueño.
// Se llama con el lock tomado.
func limpiarEntradaMarco(marco int) {
	tablaInvertida[marco] = EntradaMarco{Antiguedad: 0, PID: -1, PaginaVirtual: -1}
}

package main

import (
	"math/rand"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Algoritmos de selección de víctima cuando no quedan marcos libres
const (
	AlgoritmoAbort  = "ABORT"  // No desaloja: la falta de marcos es fatal para el proceso
	AlgoritmoAging  = "AGING"  // Marco con más fallos transcurridos desde su carga
	AlgoritmoRandom = "RANDOM" // Marco al azar
)

// buscarVictima selecciona el marco a desalojar según el algoritmo
// configurado, o -1 si no puede seleccionar ninguno. Se llama con el
// lock de fallos tomado.
func buscarVictima() int {
	switch config.ReplacementAlgorithm {
	case AlgoritmoAbort:
		utils.ErrorLog.Error("Reemplazo de páginas deshabilitado, no se selecciona víctima", "algoritmo", config.ReplacementAlgorithm)
		return -1

	case AlgoritmoAging:
		// Antiguedad cuenta fallos del sistema desde la última carga del
		// marco, no accesos: es una aproximación, no un LRU verdadero.
		// El empate lo gana el marco de menor índice; si todas las
		// entradas están en cero la tabla es inconsistente y no hay
		// víctima.
		mayor := 0
		victima := -1
		for i := range tablaInvertida {
			if tablaInvertida[i].Antiguedad > mayor {
				mayor = tablaInvertida[i].Antiguedad
				victima = i
			}
		}
		return victima

	case AlgoritmoRandom:
		return rand.Intn(len(tablaInvertida))

	default:
		utils.ErrorLog.Error("Algoritmo de reemplazo desconocido", "algoritmo", config.ReplacementAlgorithm)
		return -1
	}
}

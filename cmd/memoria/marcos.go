package main

import (
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Bitmap de marcos físicos: true = libre, false = ocupado
var marcosLibres []bool
var marcosMutex sync.Mutex

func inicializarMarcos() {
	marcosLibres = make([]bool, cantidadMarcos())
	for i := range marcosLibres {
		marcosLibres[i] = true
	}
	utils.InfoLog.Info("Bitmap de marcos inicializado", "total_marcos", len(marcosLibres))
}

// buscarMarcoLibre devuelve el primer marco libre y lo marca ocupado,
// o -1 si no queda ninguno
func buscarMarcoLibre() int {
	marcosMutex.Lock()
	defer marcosMutex.Unlock()

	for i, libre := range marcosLibres {
		if libre {
			marcosLibres[i] = false
			return i
		}
	}
	return -1
}

// liberarMarco devuelve un marco al bitmap
func liberarMarco(marco int) {
	marcosMutex.Lock()
	defer marcosMutex.Unlock()

	if marco < 0 || marco >= len(marcosLibres) {
		utils.ErrorLog.Error("Intento de liberar un marco inexistente", "marco", marco)
		return
	}
	marcosLibres[marco] = true
}

// contarMarcosLibres cuenta los marcos disponibles
func contarMarcosLibres() int {
	marcosMutex.Lock()
	defer marcosMutex.Unlock()

	count := 0
	for _, libre := range marcosLibres {
		if libre {
			count++
		}
	}
	return count
}

// imprimirMarcos registra el estado del bitmap, para diagnóstico
func imprimirMarcos() {
	marcosMutex.Lock()
	defer marcosMutex.Unlock()

	ocupados := []int{}
	for i, libre := range marcosLibres {
		if !libre {
			ocupados = append(ocupados, i)
		}
	}
	utils.InfoLog.Info("Estado de marcos", "total", len(marcosLibres), "ocupados", ocupados)
}

package main

import (
	"testing"
)

// prepararTablaInvertida inicializa la tabla y le carga antigüedades
func prepararTablaInvertida(t *testing.T, antiguedades []int) {
	t.Helper()

	bloquearTablaInvertida()
	defer desbloquearTablaInvertida()

	for i, edad := range antiguedades {
		tablaInvertida[i] = EntradaMarco{Antiguedad: edad, PID: 1, PaginaVirtual: i}
	}
}

func TestAgingEligeMayorAntiguedad(t *testing.T) {
	configurarPrueba(t, 4, AlgoritmoAging)
	prepararTablaInvertida(t, []int{3, 7, 2, 5})

	if victima := buscarVictima(); victima != 1 {
		t.Errorf("La víctima debía ser el marco 1, fue %d", victima)
	}
}

func TestAgingEmpateGanaMenorIndice(t *testing.T) {
	configurarPrueba(t, 4, AlgoritmoAging)
	prepararTablaInvertida(t, []int{3, 7, 7, 7})

	if victima := buscarVictima(); victima != 1 {
		t.Errorf("El empate debía ganarlo el marco 1, fue %d", victima)
	}
}

func TestAgingTablaEnCeroNoEligeVictima(t *testing.T) {
	configurarPrueba(t, 4, AlgoritmoAging)
	prepararTablaInvertida(t, []int{0, 0, 0, 0})

	if victima := buscarVictima(); victima != -1 {
		t.Errorf("Con todas las antigüedades en cero no hay víctima, fue %d", victima)
	}
}

func TestAbortNuncaEligeVictima(t *testing.T) {
	configurarPrueba(t, 4, AlgoritmoAbort)
	prepararTablaInvertida(t, []int{3, 7, 2, 5})

	if victima := buscarVictima(); victima != -1 {
		t.Errorf("ABORT no debía elegir víctima, fue %d", victima)
	}
}

func TestAlgoritmoDesconocidoNoEligeVictima(t *testing.T) {
	configurarPrueba(t, 4, "FIFO")
	prepararTablaInvertida(t, []int{3, 7, 2, 5})

	if victima := buscarVictima(); victima != -1 {
		t.Errorf("Un algoritmo desconocido no debía elegir víctima, fue %d", victima)
	}
}

func TestRandomEnRangoYAproximadamenteUniforme(t *testing.T) {
	const marcos = 4
	const intentos = 8000

	configurarPrueba(t, marcos, AlgoritmoRandom)
	prepararTablaInvertida(t, []int{1, 1, 1, 1})

	cuentas := make([]int, marcos)
	for i := 0; i < intentos; i++ {
		victima := buscarVictima()
		if victima < 0 || victima >= marcos {
			t.Fatalf("Víctima fuera de rango: %d", victima)
		}
		cuentas[victima]++
	}

	// Prueba estadística laxa: cada marco cerca de intentos/marcos
	esperado := intentos / marcos
	for marco, cuenta := range cuentas {
		if cuenta < esperado/2 || cuenta > esperado*2 {
			t.Errorf("El marco %d salió %d veces, se esperaba alrededor de %d", marco, cuenta, esperado)
		}
	}
}

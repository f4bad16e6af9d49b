package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// ResolverFalloDePagina atiende un fallo de página de principio a fin:
// obtiene un marco (libre o desalojado), lo rellena desde el SWAP del
// proceso y actualiza la tabla de páginas y la tabla invertida. Toda la
// secuencia corre bajo el lock global de fallos, incluso la E/S de swap,
// para que dos fallos no compitan por el mismo marco víctima.
func ResolverFalloDePagina(dirVirtual int, pid int) error {
	espacio, err := obtenerEspacio(pid)
	if err != nil {
		return err
	}

	bloquearTablaInvertida()
	defer desbloquearTablaInvertida()

	pagina := dirVirtual / config.PageSize
	if pagina < 0 || pagina >= espacio.CantPaginas {
		return fmt.Errorf("dirección %d fuera del espacio de direcciones del PID %d", dirVirtual, pid)
	}

	// Otro hilo pudo resolver el mismo fallo mientras esperábamos el lock
	if espacio.TablaPaginas[pagina].Valida {
		return nil
	}

	utils.InfoLog.Info("Fallo de página", "pid", pid, "dirección", dirVirtual, "pagina", pagina)
	registrarFalloDePagina(pid)

	// Conseguir un marco: primero uno libre, si no hay se desaloja
	marco := buscarMarcoLibre()
	if marco == -1 {
		imprimirMarcos()

		marco = buscarVictima()
		if marco == -1 {
			utils.ErrorLog.Error("No se pudo obtener un marco", "pid", pid, "pagina", pagina)
			return fmt.Errorf("no se pudo obtener un marco para la página %d del PID %d", pagina, pid)
		}

		if err := desalojarMarco(marco); err != nil {
			return err
		}
	}

	// Rellenar el marco desde el SWAP del proceso que falló
	if err := leerPaginaDeSwap(pid, pagina, marcoFisico(marco)); err != nil {
		return err
	}

	// Instalar la traducción
	espacio.TablaPaginas[pagina].Valida = true
	espacio.TablaPaginas[pagina].Marco = marco
	espacio.TablaPaginas[pagina].Sucia = false

	// Tick global de antigüedad: todos envejecen, el recién cargado
	// arranca de cero
	for i := range tablaInvertida {
		tablaInvertida[i].Antiguedad++
	}
	tablaInvertida[marco] = EntradaMarco{Antiguedad: 0, PID: pid, PaginaVirtual: pagina}

	registrarSubidaMemoria(pid)
	utils.InfoLog.Info("Fallo resuelto", "pid", pid, "pagina", pagina, "marco", marco)
	return nil
}

// desalojarMarco escribe el contenido actual del marco en el SWAP de su
// dueño y marca la página del dueño como no válida. Se llama con el lock
// de fallos tomado. Toda página residente se escribe siempre: este camino
// no consulta el bit de sucia.
func desalojarMarco(marco int) error {
	dueno := tablaInvertida[marco]
	if dueno.PID == -1 {
		// El bitmap dijo que no había marcos libres pero la tabla
		// invertida no conoce dueño: las dos estructuras divergieron.
		utils.ErrorLog.Error("Tabla invertida inconsistente: marco ocupado sin dueño", "marco", marco)
		return fmt.Errorf("marco %d ocupado sin dueño en la tabla invertida", marco)
	}

	espacioDueno, err := obtenerEspacio(dueno.PID)
	if err != nil {
		utils.ErrorLog.Error("Tabla invertida inconsistente: dueño sin espacio de direcciones", "marco", marco, "pid", dueno.PID)
		return fmt.Errorf("el dueño del marco %d (PID %d) no tiene espacio de direcciones", marco, dueno.PID)
	}

	utils.InfoLog.Info("Desalojando marco", "marco", marco, "pid_dueño", dueno.PID, "pagina_dueño", dueno.PaginaVirtual)

	if err := escribirPaginaEnSwap(dueno.PID, dueno.PaginaVirtual, marcoFisico(marco)); err != nil {
		return err
	}

	espacioDueno.TablaPaginas[dueno.PaginaVirtual].Valida = false
	espacioDueno.TablaPaginas[dueno.PaginaVirtual].Marco = -1

	registrarBajadaSwap(dueno.PID)
	return nil
}

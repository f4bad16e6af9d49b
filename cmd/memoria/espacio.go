package main

import (
	"fmt"
	"io"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// crearEspacioDirecciones construye el espacio de direcciones de un
// proceso a partir de su ejecutable NOFF: calcula la cantidad de páginas
// y arma la tabla con todas las entradas no válidas. No toca la memoria
// física; la carga se difiere al primer fallo de cada página.
func crearEspacioDirecciones(pid int, ejecutable io.ReaderAt) (*EspacioDirecciones, error) {
	cab, err := leerCabeceraNoff(ejecutable)
	if err != nil {
		utils.ErrorLog.Error("Ejecutable inválido", "pid", pid, "error", err)
		return nil, err
	}

	tamanio := tamanioEspacio(cab)
	cantPaginas := calcularNumeroPaginas(tamanio)

	tabla := make([]EntradaPagina, cantPaginas)
	for i := range tabla {
		tabla[i] = EntradaPagina{
			PaginaVirtual: i,
			Marco:         -1,
			Valida:        false,
			Sucia:         false,
			SoloLectura:   false,
		}
	}

	espacio := &EspacioDirecciones{
		PID:          pid,
		TablaPaginas: tabla,
		CantPaginas:  cantPaginas,
	}

	espaciosMutex.Lock()
	if _, existe := espacios[pid]; existe {
		espaciosMutex.Unlock()
		return nil, fmt.Errorf("ya existe un espacio de direcciones para el PID %d", pid)
	}
	espacios[pid] = espacio
	espaciosMutex.Unlock()

	// Log obligatorio del enunciado
	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Proceso Creado - Tamaño: %d", pid, cantPaginas*config.PageSize))
	utils.InfoLog.Info("Espacio de direcciones creado", "pid", pid, "paginas", cantPaginas,
		"código", cab.Codigo.Tamanio, "datos", cab.DatosInicializados.Tamanio, "bss", cab.DatosSinInicializar.Tamanio)

	return espacio, nil
}

// generarSwap materializa la imagen del proceso en su archivo de
// respaldo: código y datos inicializados en sus offsets virtuales, el
// resto en cero. Debe correr antes de que el proceso pueda ejecutar.
func generarSwap(pid int, ejecutable io.ReaderAt) error {
	cab, err := leerCabeceraNoff(ejecutable)
	if err != nil {
		return err
	}

	cantPaginas := calcularNumeroPaginas(tamanioEspacio(cab))
	imagen := make([]byte, cantPaginas*config.PageSize)

	if cab.Codigo.Tamanio > 0 {
		destino := imagen[cab.Codigo.DirVirtual : cab.Codigo.DirVirtual+cab.Codigo.Tamanio]
		if _, err := ejecutable.ReadAt(destino, int64(cab.Codigo.OffsetArchivo)); err != nil {
			return fmt.Errorf("error al leer el segmento de código del PID %d: %v", pid, err)
		}
	}

	if cab.DatosInicializados.Tamanio > 0 {
		destino := imagen[cab.DatosInicializados.DirVirtual : cab.DatosInicializados.DirVirtual+cab.DatosInicializados.Tamanio]
		if _, err := ejecutable.ReadAt(destino, int64(cab.DatosInicializados.OffsetArchivo)); err != nil {
			return fmt.Errorf("error al leer el segmento de datos del PID %d: %v", pid, err)
		}
	}

	return crearArchivoSwap(pid, imagen)
}

// obtenerEspacio busca un espacio de direcciones en el directorio
func obtenerEspacio(pid int) (*EspacioDirecciones, error) {
	espaciosMutex.RLock()
	defer espaciosMutex.RUnlock()

	espacio, existe := espacios[pid]
	if !existe {
		return nil, fmt.Errorf("no existe espacio de direcciones para el PID %d", pid)
	}
	return espacio, nil
}

// inicializarRegistros deja los registros del simulador listos para
// arrancar el proceso: PC en la entrada, PC siguiente una instrucción
// adelante por el branch delay, y la pila al final del espacio con un
// margen para no pisar el límite.
func inicializarRegistros(espacio *EspacioDirecciones) {
	for i := 0; i < CantRegistros; i++ {
		EscribirRegistro(i, 0)
	}

	EscribirRegistro(RegPC, 0)
	EscribirRegistro(RegPCSiguiente, 4)
	EscribirRegistro(RegPila, int32(espacio.CantPaginas*config.PageSize-16))

	utils.InfoLog.Info("Registros inicializados", "pid", espacio.PID,
		"puntero_pila", espacio.CantPaginas*config.PageSize-16)
}

// guardarEstado no guarda nada: el simulador ya preserva los registros
// del hilo en el cambio de contexto y el espacio no tiene otro estado
// de máquina propio
func guardarEstado(espacio *EspacioDirecciones) {
}

// restaurarEstado instala la tabla de páginas del proceso como contexto
// de traducción activo del simulador
func restaurarEstado(espacio *EspacioDirecciones) {
	tablaActiva = espacio.TablaPaginas
	cantPaginasActiva = espacio.CantPaginas

	utils.InfoLog.Info("Contexto de traducción restaurado", "pid", espacio.PID, "paginas", espacio.CantPaginas)
}

// liberarEspacioDirecciones devuelve al bitmap todos los marcos del
// proceso, limpia sus entradas en la tabla invertida y saca el espacio
// del directorio. El archivo de swap lo borra el camino de finalización
// del proceso, nunca antes de esta liberación.
func liberarEspacioDirecciones(pid int) error {
	espacio, err := obtenerEspacio(pid)
	if err != nil {
		return err
	}

	bloquearTablaInvertida()

	liberados := 0
	for i := range espacio.TablaPaginas {
		entrada := &espacio.TablaPaginas[i]
		if entrada.Valida {
			liberarMarco(entrada.Marco)
			limpiarEntradaMarco(entrada.Marco)
			liberados++
		}
		entrada.Valida = false
		entrada.Sucia = false
		entrada.Marco = -1
	}

	desbloquearTablaInvertida()

	espaciosMutex.Lock()
	delete(espacios, pid)
	espaciosMutex.Unlock()

	utils.InfoLog.Info("Espacio de direcciones liberado", "pid", pid, "marcos_devueltos", liberados)
	imprimirMarcos()
	return nil
}

package main

import (
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Handler para handshake
func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":      "OK",
		"tam_pagina":  config.PageSize,
		"cant_marcos": cantidadMarcos(),
		"algoritmo":   config.ReplacementAlgorithm,
	}, nil
}

// handlerInicializarProceso crea el espacio de direcciones de un proceso
// desde su ejecutable NOFF y materializa su imagen en swap
func handlerInicializarProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}
	ruta, err := utils.ObtenerCadena(msg, "ruta")
	if err != nil {
		return nil, err
	}

	ejecutable, err := os.Open(ruta)
	if err != nil {
		utils.ErrorLog.Error("No se pudo abrir el ejecutable", "pid", pid, "ruta", ruta, "error", err)
		return nil, err
	}
	defer ejecutable.Close()

	espacio, err := crearEspacioDirecciones(pid, ejecutable)
	if err != nil {
		return nil, err
	}

	if err := generarSwap(pid, ejecutable); err != nil {
		// Sin imagen en swap el proceso no puede ejecutar: deshacer
		liberarEspacioDirecciones(pid)
		return nil, err
	}

	inicializarRegistros(espacio)
	restaurarEstado(espacio)

	return map[string]interface{}{
		"status":        "OK",
		"cant_paginas":  espacio.CantPaginas,
		"tamanio_bytes": espacio.CantPaginas * config.PageSize,
	}, nil
}

// handlerFalloPagina resuelve un fallo de página reportado por el simulador
func handlerFalloPagina(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}
	direccion, err := utils.ObtenerEntero(msg, "direccion")
	if err != nil {
		return nil, err
	}

	if err := ResolverFalloDePagina(direccion, pid); err != nil {
		return nil, err
	}

	return map[string]interface{}{"status": "OK"}, nil
}

// handlerLeerMemoria lee del espacio de direcciones de un proceso
func handlerLeerMemoria(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}
	direccion, err := utils.ObtenerEntero(msg, "direccion")
	if err != nil {
		return nil, err
	}
	tamanio, err := utils.ObtenerEntero(msg, "tamanio")
	if err != nil {
		return nil, err
	}

	datos, err := LeerMemoriaVirtual(pid, direccion, tamanio)
	if err != nil {
		return nil, err
	}

	// []byte se serializa como base64 en JSON
	return map[string]interface{}{"status": "OK", "datos": datos}, nil
}

// handlerEscribirMemoria escribe en el espacio de direcciones de un proceso
func handlerEscribirMemoria(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}
	direccion, err := utils.ObtenerEntero(msg, "direccion")
	if err != nil {
		return nil, err
	}
	datos, err := utils.ObtenerCadena(msg, "datos")
	if err != nil {
		return nil, err
	}

	if err := EscribirMemoriaVirtual(pid, direccion, []byte(datos)); err != nil {
		return nil, err
	}

	return map[string]interface{}{"status": "OK", "bytes_escritos": len(datos)}, nil
}

// handlerMemoryDump vuelca la imagen completa de un proceso a archivo
func handlerMemoryDump(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}

	if err := crearMemoryDump(pid); err != nil {
		return nil, err
	}

	return map[string]interface{}{"status": "OK"}, nil
}

// handlerFinalizarProceso libera marcos, tabla invertida y archivo de swap
func handlerFinalizarProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, err := utils.ObtenerEntero(msg, "pid")
	if err != nil {
		return nil, err
	}

	reportarMetricas(pid)

	if err := liberarEspacioDirecciones(pid); err != nil {
		return nil, err
	}

	// El archivo de respaldo se borra recién después de devolver los marcos
	if err := eliminarArchivoSwap(pid); err != nil {
		return nil, err
	}

	utils.InfoLog.Info("Proceso finalizado", "pid", pid)
	return map[string]interface{}{"status": "OK"}, nil
}

// handlerEstadoMarcos informa la ocupación del bitmap de marcos
func handlerEstadoMarcos(msg *utils.Mensaje) (interface{}, error) {
	imprimirMarcos()

	return map[string]interface{}{
		"status":        "OK",
		"total_marcos":  cantidadMarcos(),
		"marcos_libres": contarMarcosLibres(),
	}, nil
}

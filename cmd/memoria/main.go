package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

var modulo *utils.Modulo

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	inicializarModulo()

	utils.InfoLog.Info("Memoria inicializada correctamente")

	// Mantener el programa corriendo
	select {}
}

func inicializarModulo() {
	rutaConfig := os.Args[1]

	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	modulo = utils.NuevoModulo("Memoria", rutaConfig)

	// Cargar configuración
	config = utils.CargarConfiguracion[MemoryConfig](rutaConfig)

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	// Inicializar memoria física, marcos, swap y métricas
	inicializarMemoria()

	// Registrar handlers
	registrarHandlers()

	// Iniciar servidor
	modulo.IniciarServidor(config.IPMemory, config.PortMemory)
	utils.InfoLog.Info("Servidor iniciado", "ip", config.IPMemory, "puerto", config.PortMemory)
}

func registrarHandlers() {
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeHandshake), "default", handlerHandshake)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeInicializarProceso), "default", handlerInicializarProceso)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeFinalizarProceso), "default", handlerFinalizarProceso)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeFalloPagina), "default", handlerFalloPagina)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeLeer), "default", handlerLeerMemoria)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeEscribir), "default", handlerEscribirMemoria)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeMemoryDump), "default", handlerMemoryDump)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeEstadoMarcos), "default", handlerEstadoMarcos)

	utils.InfoLog.Info("Handlers registrados correctamente")
}

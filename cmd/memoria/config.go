package main

// MemoryConfig representa la configuración específica del módulo Memoria
type MemoryConfig struct {
	IPMemory             string `json:"IP_MEMORIA"`
	PortMemory           int    `json:"PUERTO_MEMORIA"`
	LogLevel             string `json:"LOG_LEVEL"`
	MemorySize           int    `json:"TAM_MEMORIA"`         // Tamaño de la memoria física en bytes
	PageSize             int    `json:"TAM_PAGINA"`          // Tamaño de página en bytes
	StackSize            int    `json:"TAM_STACK"`           // Tamaño reservado para la pila de cada proceso
	ReplacementAlgorithm string `json:"ALGORITMO_REEMPLAZO"` // ABORT, AGING o RANDOM
	MemoryDelay          int    `json:"RETARDO_MEMORIA"`     // Retardo de acceso a memoria
	SwapDelay            int    `json:"RETARDO_SWAP"`        // Retardo de acceso a swap
	SwapPath             string `json:"PATH_SWAP"`           // Directorio de los archivos <pid>.swap
	DumpPath             string `json:"DUMP_PATH"`           // Ruta para los archivos de dump
}

var config *MemoryConfig

// cantidadMarcos devuelve la cantidad de marcos físicos que entran en memoria
func cantidadMarcos() int {
	return config.MemorySize / config.PageSize
}

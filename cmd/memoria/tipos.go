package main

import (
	"sync"
)

// EntradaPagina representa una entrada en la tabla de páginas de un proceso
type EntradaPagina struct {
	PaginaVirtual int  // Número de página virtual
	Marco         int  // Número de marco físico asignado
	Valida        bool // false = la página no tiene marco (nunca cargada o desalojada)
	Sucia         bool // Página modificada desde la última carga
	SoloLectura   bool
}

// EspacioDirecciones representa la memoria virtual de un proceso
type EspacioDirecciones struct {
	PID          int
	TablaPaginas []EntradaPagina
	CantPaginas  int
}

// EntradaMarco describe al dueño actual de un marco físico (tabla invertida).
// El dueño se resuelve por PID a través del directorio de espacios, nunca
// por puntero, para no quedar colgando tras la finalización del proceso.
type EntradaMarco struct {
	Antiguedad    int // Fallos transcurridos desde que el marco se cargó
	PID           int // -1 = sin dueño
	PaginaVirtual int // -1 = sin dueño
}

// MetricasProceso almacena estadísticas sobre el uso de memoria de un proceso
type MetricasProceso struct {
	FallosDePagina    int
	SubidasMemoria    int // Páginas traídas desde SWAP
	BajadasSwap       int // Páginas escritas a SWAP por desalojo
	LecturasMemoria   int
	EscriturasMemoria int
}

// Variables globales
var espacios map[int]*EspacioDirecciones // Directorio PID -> espacio de direcciones
var espaciosMutex sync.RWMutex
var metricasPorProceso map[int]*MetricasProceso
var metricasMutex sync.Mutex

package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

const tamPaginaPrueba = 64

// configurarPrueba deja el módulo con una memoria física de la cantidad
// de marcos pedida y directorios temporales para swap y dumps
func configurarPrueba(t *testing.T, marcos int, algoritmo string) {
	t.Helper()

	utils.InicializarLogger("error", "MemoriaTest")

	config = &MemoryConfig{
		MemorySize:           marcos * tamPaginaPrueba,
		PageSize:             tamPaginaPrueba,
		StackSize:            tamPaginaPrueba,
		ReplacementAlgorithm: algoritmo,
		SwapPath:             t.TempDir(),
		DumpPath:             t.TempDir(),
	}

	inicializarMemoria()
}

// ejecutableDePrueba arma un NOFF en memoria con los segmentos de código
// y datos a continuación de la cabecera
func ejecutableDePrueba(t *testing.T, codigo []byte, datos []byte) *bytes.Reader {
	t.Helper()

	cab := CabeceraNoff{
		Magic: NoffMagic,
		Codigo: SegmentoNoff{
			DirVirtual:    0,
			OffsetArchivo: tamanioCabeceraNoff,
			Tamanio:       int32(len(codigo)),
		},
		DatosInicializados: SegmentoNoff{
			DirVirtual:    int32(len(codigo)),
			OffsetArchivo: int32(tamanioCabeceraNoff + len(codigo)),
			Tamanio:       int32(len(datos)),
		},
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, cab); err != nil {
		t.Fatalf("Error armando cabecera de prueba: %v", err)
	}
	buf.Write(codigo)
	buf.Write(datos)

	return bytes.NewReader(buf.Bytes())
}

// crearProcesoPrueba crea un espacio de direcciones con la cantidad de
// páginas exacta pedida y su archivo de swap. El código se rellena con
// bytes reconocibles del PID.
func crearProcesoPrueba(t *testing.T, pid int, paginas int) *EspacioDirecciones {
	t.Helper()

	tamCodigo := paginas*config.PageSize - config.StackSize
	if tamCodigo <= 0 {
		t.Fatalf("Cantidad de páginas demasiado chica para la pila: %d", paginas)
	}

	codigo := make([]byte, tamCodigo)
	for i := range codigo {
		codigo[i] = byte(pid*31 + i)
	}

	ejecutable := ejecutableDePrueba(t, codigo, nil)

	espacio, err := crearEspacioDirecciones(pid, ejecutable)
	if err != nil {
		t.Fatalf("Error creando espacio de direcciones: %v", err)
	}
	if espacio.CantPaginas != paginas {
		t.Fatalf("Se esperaban %d páginas, se obtuvieron %d", paginas, espacio.CantPaginas)
	}

	if err := generarSwap(pid, ejecutable); err != nil {
		t.Fatalf("Error generando swap: %v", err)
	}

	return espacio
}

// verificarSinDobleMapeo falla si dos entradas válidas de cualquier
// proceso apuntan al mismo marco físico
func verificarSinDobleMapeo(t *testing.T) {
	t.Helper()

	duenos := make(map[int]int) // marco -> pid
	espaciosMutex.RLock()
	defer espaciosMutex.RUnlock()

	for pid, espacio := range espacios {
		for _, entrada := range espacio.TablaPaginas {
			if !entrada.Valida {
				continue
			}
			if otro, ocupado := duenos[entrada.Marco]; ocupado {
				t.Fatalf("Marco %d mapeado a la vez por PID %d y PID %d", entrada.Marco, otro, pid)
			}
			duenos[entrada.Marco] = pid
		}
	}
}

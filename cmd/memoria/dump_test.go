package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryDumpCombinaMarcosYSwap(t *testing.T) {
	configurarPrueba(t, 2, AlgoritmoAging)
	espacio := crearProcesoPrueba(t, 1, 3)

	// Página 0 residente y modificada, páginas 1 y 2 sólo en swap
	escrito := bytes.Repeat([]byte{0xEE}, 16)
	if err := EscribirMemoriaVirtual(1, 0, escrito); err != nil {
		t.Fatalf("Error escribiendo: %v", err)
	}

	if err := crearMemoryDump(1); err != nil {
		t.Fatalf("Error creando dump: %v", err)
	}

	entradas, err := os.ReadDir(config.DumpPath)
	if err != nil || len(entradas) != 1 {
		t.Fatalf("Se esperaba un archivo de dump, hay %d (error %v)", len(entradas), err)
	}

	contenido, err := os.ReadFile(filepath.Join(config.DumpPath, entradas[0].Name()))
	if err != nil {
		t.Fatalf("Error leyendo dump: %v", err)
	}

	if len(contenido) != espacio.CantPaginas*config.PageSize {
		t.Fatalf("El dump mide %d bytes, se esperaban %d", len(contenido), espacio.CantPaginas*config.PageSize)
	}

	// Lo escrito en memoria tiene que estar en el dump aunque nunca haya
	// vuelto a swap
	if !bytes.Equal(contenido[:len(escrito)], escrito) {
		t.Error("El dump no refleja la página residente modificada")
	}

	// Las páginas no residentes salen del swap: la página 2 es pila en cero
	ultima := contenido[2*config.PageSize:]
	for i, b := range ultima {
		if b != 0 {
			t.Fatalf("El byte %d de la página de pila debía ser cero: %d", i, b)
		}
	}
}

func TestMemoryDumpProcesoInexistente(t *testing.T) {
	configurarPrueba(t, 2, AlgoritmoAging)

	if err := crearMemoryDump(42); err == nil {
		t.Error("Se esperaba error por proceso inexistente")
	}
}

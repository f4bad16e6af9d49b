package main

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func cabeceraDePrueba() CabeceraNoff {
	return CabeceraNoff{
		Magic:               NoffMagic,
		Codigo:              SegmentoNoff{DirVirtual: 0, OffsetArchivo: 40, Tamanio: 100},
		DatosInicializados:  SegmentoNoff{DirVirtual: 100, OffsetArchivo: 140, Tamanio: 20},
		DatosSinInicializar: SegmentoNoff{DirVirtual: 120, OffsetArchivo: 0, Tamanio: 8},
	}
}

func TestLeerCabeceraNoff(t *testing.T) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, cabeceraDePrueba()); err != nil {
		t.Fatalf("Error armando cabecera: %v", err)
	}

	cab, err := leerCabeceraNoff(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Se esperaba cabecera válida, error: %v", err)
	}
	if cab.Codigo.Tamanio != 100 || cab.DatosInicializados.DirVirtual != 100 || cab.DatosSinInicializar.Tamanio != 8 {
		t.Errorf("Cabecera mal decodificada: %+v", cab)
	}
}

func TestLeerCabeceraNoffOtroEndianness(t *testing.T) {
	// Ejecutable generado en una arquitectura big-endian: el magic sólo
	// coincide después de invertir los bytes
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, cabeceraDePrueba()); err != nil {
		t.Fatalf("Error armando cabecera: %v", err)
	}

	cab, err := leerCabeceraNoff(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("La cabecera byte-swapped debía aceptarse, error: %v", err)
	}
	if cab.Codigo.Tamanio != 100 || cab.DatosInicializados.OffsetArchivo != 140 {
		t.Errorf("Cabecera byte-swapped mal decodificada: %+v", cab)
	}
}

func TestLeerCabeceraNoffMagicInvalido(t *testing.T) {
	cab := cabeceraDePrueba()
	cab.Magic = 0x12345678

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, cab)

	if _, err := leerCabeceraNoff(bytes.NewReader(buf.Bytes())); err == nil {
		t.Error("Se esperaba error por magic inválido")
	}
}

func TestLeerCabeceraNoffTruncada(t *testing.T) {
	if _, err := leerCabeceraNoff(bytes.NewReader([]byte{0xad, 0xdf, 0xba})); err == nil {
		t.Error("Se esperaba error por cabecera truncada")
	}
}

func TestCalcularNumeroPaginas(t *testing.T) {
	configurarPrueba(t, 4, AlgoritmoAging)

	casos := []struct {
		tamanio  int
		esperado int
	}{
		{1, 1},
		{tamPaginaPrueba, 1},
		{tamPaginaPrueba + 1, 2},
		{3*tamPaginaPrueba - 1, 3},
		{3 * tamPaginaPrueba, 3},
	}

	for _, caso := range casos {
		if obtenido := calcularNumeroPaginas(caso.tamanio); obtenido != caso.esperado {
			t.Errorf("calcularNumeroPaginas(%d) = %d, se esperaba %d", caso.tamanio, obtenido, caso.esperado)
		}
	}
}

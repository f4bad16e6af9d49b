package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Formato NOFF: número mágico seguido de los descriptores de los tres
// segmentos del ejecutable (código, datos inicializados, datos sin
// inicializar)
const (
	NoffMagic           = 0xbadfad
	tamanioCabeceraNoff = 40
)

// SegmentoNoff describe un segmento del ejecutable
type SegmentoNoff struct {
	DirVirtual    int32 // Dirección virtual donde se ubica el segmento
	OffsetArchivo int32 // Posición del segmento dentro del archivo
	Tamanio       int32
}

// CabeceraNoff es la cabecera de tamaño fijo del ejecutable
type CabeceraNoff struct {
	Magic               int32
	Codigo              SegmentoNoff
	DatosInicializados  SegmentoNoff
	DatosSinInicializar SegmentoNoff
}

func decodificarCabecera(crudo []byte, orden binary.ByteOrder) (*CabeceraNoff, error) {
	var cab CabeceraNoff
	if err := binary.Read(bytes.NewReader(crudo), orden, &cab); err != nil {
		return nil, fmt.Errorf("error al decodificar la cabecera: %v", err)
	}
	return &cab, nil
}

// leerCabeceraNoff lee y valida la cabecera del ejecutable. Si el número
// mágico coincide sólo con el orden de bytes invertido, la cabecera se
// reinterpreta con ese orden: el ejecutable pudo generarse en una
// arquitectura con otro endianness.
func leerCabeceraNoff(ejecutable io.ReaderAt) (*CabeceraNoff, error) {
	crudo := make([]byte, tamanioCabeceraNoff)
	if _, err := ejecutable.ReadAt(crudo, 0); err != nil {
		return nil, fmt.Errorf("error al leer la cabecera del ejecutable: %v", err)
	}

	cab, err := decodificarCabecera(crudo, binary.LittleEndian)
	if err != nil {
		return nil, err
	}

	if cab.Magic != NoffMagic {
		cab, err = decodificarCabecera(crudo, binary.BigEndian)
		if err != nil {
			return nil, err
		}
	}

	if cab.Magic != NoffMagic {
		return nil, fmt.Errorf("el ejecutable no tiene formato NOFF: magic 0x%x", uint32(cab.Magic))
	}

	return cab, nil
}

// tamanioEspacio calcula el tamaño total del espacio de direcciones que
// requiere un ejecutable, pila incluida
func tamanioEspacio(cab *CabeceraNoff) int {
	return int(cab.Codigo.Tamanio+cab.DatosInicializados.Tamanio+cab.DatosSinInicializar.Tamanio) + config.StackSize
}

// calcularNumeroPaginas redondea un tamaño hacia arriba a páginas enteras
func calcularNumeroPaginas(tamanio int) int {
	return (tamanio + config.PageSize - 1) / config.PageSize
}

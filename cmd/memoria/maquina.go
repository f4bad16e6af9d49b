package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Registros del simulador (subconjunto MIPS: 32 de propósito general más
// los registros especiales que usa el cargador)
const (
	CantRegistros  = 40
	RegPila        = 29 // Puntero de pila
	RegPC          = 34 // Program counter
	RegPCSiguiente = 35 // Siguiente instrucción, por el branch delay
)

// Estado de la máquina simulada
var memoriaFisica []byte
var registros [CantRegistros]int32
var tablaActiva []EntradaPagina // Tabla de páginas del proceso en ejecución
var cantPaginasActiva int

// LeerRegistro devuelve el valor de un registro del simulador
func LeerRegistro(numero int) int32 {
	return registros[numero]
}

// EscribirRegistro escribe un registro del simulador
func EscribirRegistro(numero int, valor int32) {
	registros[numero] = valor
}

// marcoFisico devuelve la porción de memoria física de un marco
func marcoFisico(marco int) []byte {
	inicio := marco * config.PageSize
	return memoriaFisica[inicio : inicio+config.PageSize]
}

// asegurarResidente garantiza que una página del proceso esté en memoria,
// resolviendo el fallo de página si hace falta
func asegurarResidente(espacio *EspacioDirecciones, pagina int) error {
	if espacio.TablaPaginas[pagina].Valida {
		return nil
	}

	if err := ResolverFalloDePagina(pagina*config.PageSize, espacio.PID); err != nil {
		return err
	}

	if !espacio.TablaPaginas[pagina].Valida {
		return fmt.Errorf("la página %d del proceso %d sigue sin marco tras el fallo", pagina, espacio.PID)
	}
	return nil
}

// LeerMemoriaVirtual lee bytes del espacio de direcciones de un proceso,
// trayendo de SWAP las páginas que no estén residentes
func LeerMemoriaVirtual(pid int, dirVirtual int, tamanio int) ([]byte, error) {
	espacio, err := obtenerEspacio(pid)
	if err != nil {
		return nil, err
	}

	if dirVirtual < 0 || dirVirtual+tamanio > espacio.CantPaginas*config.PageSize {
		return nil, fmt.Errorf("lectura fuera del espacio de direcciones del PID %d: dirección %d tamaño %d", pid, dirVirtual, tamanio)
	}

	utils.AplicarRetardo("memoria", config.MemoryDelay)

	resultado := make([]byte, 0, tamanio)
	for restante := tamanio; restante > 0; {
		pagina := dirVirtual / config.PageSize
		desplazamiento := dirVirtual % config.PageSize

		if err := asegurarResidente(espacio, pagina); err != nil {
			return nil, err
		}

		cuanto := config.PageSize - desplazamiento
		if cuanto > restante {
			cuanto = restante
		}

		marco := espacio.TablaPaginas[pagina].Marco
		inicio := marco*config.PageSize + desplazamiento
		resultado = append(resultado, memoriaFisica[inicio:inicio+cuanto]...)

		dirVirtual += cuanto
		restante -= cuanto
	}

	registrarLectura(pid)
	return resultado, nil
}

// EscribirMemoriaVirtual escribe bytes en el espacio de direcciones de un
// proceso, trayendo de SWAP las páginas que no estén residentes
func EscribirMemoriaVirtual(pid int, dirVirtual int, datos []byte) error {
	espacio, err := obtenerEspacio(pid)
	if err != nil {
		return err
	}

	if dirVirtual < 0 || dirVirtual+len(datos) > espacio.CantPaginas*config.PageSize {
		return fmt.Errorf("escritura fuera del espacio de direcciones del PID %d: dirección %d tamaño %d", pid, dirVirtual, len(datos))
	}

	utils.AplicarRetardo("memoria", config.MemoryDelay)

	for len(datos) > 0 {
		pagina := dirVirtual / config.PageSize
		desplazamiento := dirVirtual % config.PageSize

		if err := asegurarResidente(espacio, pagina); err != nil {
			return err
		}

		if espacio.TablaPaginas[pagina].SoloLectura {
			return fmt.Errorf("escritura sobre página de sólo lectura: PID %d página %d", pid, pagina)
		}

		cuanto := config.PageSize - desplazamiento
		if cuanto > len(datos) {
			cuanto = len(datos)
		}

		marco := espacio.TablaPaginas[pagina].Marco
		inicio := marco*config.PageSize + desplazamiento
		copy(memoriaFisica[inicio:inicio+cuanto], datos[:cuanto])
		espacio.TablaPaginas[pagina].Sucia = true

		dirVirtual += cuanto
		datos = datos[cuanto:]
	}

	registrarEscritura(pid)
	return nil
}

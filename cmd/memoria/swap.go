package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// Cada proceso tiene su propio archivo de respaldo <pid>.swap con la
// imagen completa redondeada a páginas. Los archivos se abren por
// operación, sin mantener handles abiertos entre fallos.

func rutaSwap(pid int) string {
	return filepath.Join(config.SwapPath, fmt.Sprintf("%d.swap", pid))
}

// crearArchivoSwap crea el archivo de respaldo de un proceso con su
// imagen completa
func crearArchivoSwap(pid int, imagen []byte) error {
	ruta := rutaSwap(pid)

	if err := os.WriteFile(ruta, imagen, 0644); err != nil {
		utils.ErrorLog.Error("Error creando archivo SWAP", "pid", pid, "archivo", ruta, "error", err)
		return fmt.Errorf("error al crear archivo SWAP del PID %d: %v", pid, err)
	}

	utils.InfoLog.Info("Archivo SWAP creado", "pid", pid, "archivo", ruta, "tamaño", len(imagen))
	return nil
}

// leerPaginaDeSwap lee una página del archivo de respaldo de un proceso
// directamente sobre el destino
func leerPaginaDeSwap(pid int, pagina int, destino []byte) error {
	utils.AplicarRetardo("swap", config.SwapDelay)

	archivo, err := os.Open(rutaSwap(pid))
	if err != nil {
		utils.ErrorLog.Error("Error abriendo archivo SWAP", "pid", pid, "error", err)
		return fmt.Errorf("error al abrir archivo SWAP del PID %d: %v", pid, err)
	}
	defer archivo.Close()

	offset := int64(pagina) * int64(config.PageSize)
	if _, err := archivo.ReadAt(destino, offset); err != nil {
		utils.ErrorLog.Error("Error leyendo página de SWAP", "pid", pid, "pagina", pagina, "offset", offset, "error", err)
		return fmt.Errorf("error al leer página %d del SWAP del PID %d: %v", pagina, pid, err)
	}

	utils.InfoLog.Info("Página leída desde SWAP", "pid", pid, "pagina", pagina, "offset", offset)
	return nil
}

// escribirPaginaEnSwap escribe una página en el archivo de respaldo de un
// proceso, en el offset de su página virtual
func escribirPaginaEnSwap(pid int, pagina int, datos []byte) error {
	utils.AplicarRetardo("swap", config.SwapDelay)

	archivo, err := os.OpenFile(rutaSwap(pid), os.O_WRONLY, 0644)
	if err != nil {
		utils.ErrorLog.Error("Error abriendo archivo SWAP para escritura", "pid", pid, "error", err)
		return fmt.Errorf("error al abrir archivo SWAP del PID %d: %v", pid, err)
	}
	defer archivo.Close()

	offset := int64(pagina) * int64(config.PageSize)
	if _, err := archivo.WriteAt(datos, offset); err != nil {
		utils.ErrorLog.Error("Error escribiendo página en SWAP", "pid", pid, "pagina", pagina, "offset", offset, "error", err)
		return fmt.Errorf("error al escribir página %d en el SWAP del PID %d: %v", pagina, pid, err)
	}

	utils.InfoLog.Info("Página escrita en SWAP", "pid", pid, "pagina", pagina, "offset", offset)
	return nil
}

// eliminarArchivoSwap borra el archivo de respaldo de un proceso finalizado
func eliminarArchivoSwap(pid int) error {
	ruta := rutaSwap(pid)

	if err := os.Remove(ruta); err != nil {
		utils.ErrorLog.Error("Error eliminando archivo SWAP", "pid", pid, "archivo", ruta, "error", err)
		return fmt.Errorf("error al eliminar archivo SWAP del PID %d: %v", pid, err)
	}

	utils.InfoLog.Info("Archivo SWAP eliminado", "pid", pid, "archivo", ruta)
	return nil
}

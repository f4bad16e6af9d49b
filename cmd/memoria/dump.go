package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-NachOS/utils"
)

// crearMemoryDump escribe un archivo con la imagen completa del espacio
// de direcciones de un proceso: las páginas residentes se toman de su
// marco, las demás del archivo de swap. Se toma el lock de fallos para
// que el dump no se cruce con un desalojo a mitad de camino.
func crearMemoryDump(pid int) error {
	espacio, err := obtenerEspacio(pid)
	if err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("%d-%s.dmp", pid, timestamp)
	rutaCompleta := filepath.Join(config.DumpPath, nombreArchivo)

	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio dump", "error", err)
		return fmt.Errorf("error al crear directorio para dumps: %v", err)
	}

	contenido := make([]byte, espacio.CantPaginas*config.PageSize)

	bloquearTablaInvertida()
	for i := range espacio.TablaPaginas {
		destino := contenido[i*config.PageSize : (i+1)*config.PageSize]
		if espacio.TablaPaginas[i].Valida {
			copy(destino, marcoFisico(espacio.TablaPaginas[i].Marco))
		} else if err := leerPaginaDeSwap(pid, i, destino); err != nil {
			desbloquearTablaInvertida()
			return err
		}
	}
	desbloquearTablaInvertida()

	if err := os.WriteFile(rutaCompleta, contenido, 0644); err != nil {
		utils.ErrorLog.Error("Error escribiendo dump", "archivo", rutaCompleta, "error", err)
		return fmt.Errorf("error al escribir archivo de dump: %v", err)
	}

	// Log obligatorio del enunciado
	utils.InfoLog.Info(fmt.Sprintf("## PID: %d Memory Dump solicitado", pid))
	utils.InfoLog.Info("Memory dump completado", "pid", pid, "archivo", nombreArchivo)

	return nil
}

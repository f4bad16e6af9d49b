package utils

import (
	"fmt"
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado de dispositivo y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// ObtenerEntero extrae un campo numérico de los datos de un mensaje.
// Los números JSON llegan como float64 dentro del mapa genérico.
func ObtenerEntero(msg *Mensaje, campo string) (int, error) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("el mensaje no contiene datos")
	}
	valor, ok := datosMap[campo].(float64)
	if !ok {
		return 0, fmt.Errorf("el campo %s no está presente o no es numérico", campo)
	}
	return int(valor), nil
}

// ObtenerCadena extrae un campo de texto de los datos de un mensaje
func ObtenerCadena(msg *Mensaje, campo string) (string, error) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("el mensaje no contiene datos")
	}
	valor, ok := datosMap[campo].(string)
	if !ok {
		return "", fmt.Errorf("el campo %s no está presente o no es texto", campo)
	}
	return valor, nil
}

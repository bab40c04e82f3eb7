package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

// Largura fixa da janela de reserva (1h30).
const slotWidthHours = 1.5

// ComputeSlot converte um horário "HH:MM" no rótulo "HH:MM-HH:MM" do slot
// de 1h30 que o contém.
//
// A hora inicial é truncada para a hora cheia antes de somar o intervalo
// fixo de 1h30 — comportamento herdado, congelado por compatibilidade: o
// rótulo exibido nem sempre coincide com a fronteira real de 1.5h.
//
// Nunca rejeita entrada: componente não numérico vale 0 e valores fora de
// faixa passam pela mesma aritmética.
func ComputeSlot(timeStr string) string {
	var hour, minute int
	parts := strings.SplitN(timeStr, ":", 2)
	hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	slotStart := float64(hour) + float64(minute)/60
	slotIndex := int(slotStart / slotWidthHours)
	startHour := int(float64(slotIndex) * slotWidthHours)

	endHour := startHour + 1
	endMinute := 30

	return fmt.Sprintf("%02d:%02d-%02d:%02d", startHour, 0, endHour, endMinute)
}

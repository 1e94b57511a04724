package schedule

import (
	"errors"
	"fmt"
)

const MinutesPerDay = 24 * 60

var errBadClock = errors.New("invalid clock value")

// ParseClock converte "HH:MM" (24h, zero-padded) para minutos desde 00:00.
func ParseClock(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, errBadClock
	}

	var h, m int
	if _, err := fmt.Sscanf(hm, "%02d:%02d", &h, &m); err != nil {
		return 0, errBadClock
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, errBadClock
	}

	return h*60 + m, nil
}

// FormatClock é o inverso de ParseClock. Aceita até 24:00 para representar
// o fim exato do expediente.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// IsClock valida o formato sem expor os minutos.
func IsClock(hm string) bool {
	_, err := ParseClock(hm)
	return err == nil
}

package validators

import (
	"errors"
	"strings"
)

// PhoneNumber só é construído a partir de uma sequência válida de dígitos —
// a validação acontece na borda, não espalhada em regex pelos handlers.
type PhoneNumber string

var ErrInvalidPhone = errors.New("telefone inválido")

// ParsePhone descarta máscara (espaços, parênteses, traços, +) e exige
// entre 10 e 20 dígitos.
func ParsePhone(raw string) (PhoneNumber, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n := digits.Len()
	if n < 10 || n > 20 {
		return "", ErrInvalidPhone
	}

	return PhoneNumber(digits.String()), nil
}

func (p PhoneNumber) String() string {
	return string(p)
}

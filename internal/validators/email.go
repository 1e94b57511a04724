package validators

import (
	"errors"
	"net"
	"regexp"
	"strings"
)

type Email string

var ErrInvalidEmail = errors.New("email inválido")

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseEmail valida apenas a forma do endereço (local@dominio.tld).
func ParseEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if !emailShape.MatchString(addr) {
		return "", ErrInvalidEmail
	}
	return Email(addr), nil
}

func (e Email) String() string {
	return string(e)
}

// IsEmailDomainValid confere se o domínio resolve (MX ou A). Usado só no
// cadastro de usuários admin; consultas de DNS não entram no fluxo de
// agendamento.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

package httperr

import "errors"

// Kind posiciona o erro de negócio na taxonomia da API.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindOutOfWindow
	KindInvalidSlot
	KindUnavailable
	KindInternal
)

type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensagem"`
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string

	// Preenchido apenas para KindValidation: todos os campos violados,
	// nunca somente o primeiro.
	Fields []FieldError
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(fields []FieldError) error {
	return BusinessError{
		Kind:    KindValidation,
		Code:    "validation_failed",
		Message: "Dados inválidos.",
		Fields:  fields,
	}
}

func ErrNotFound(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func ErrConflict(message string) error {
	return ErrBusiness(KindConflict, "time_conflict", message)
}

func ErrInvalidSlot(message string) error {
	return ErrBusiness(KindInvalidSlot, "invalid_slot", message)
}

func ErrOutOfWindow(message string) error {
	return ErrBusiness(KindOutOfWindow, "out_of_window", message)
}

func ErrInvalidTransition(message string) error {
	return ErrBusiness(KindInvalidTransition, "invalid_transition", message)
}

func ErrUnavailable(message string) error {
	return ErrBusiness(KindUnavailable, "store_unavailable", message)
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

package timezone

import "time"

// Toda a agenda vale no fuso do estúdio, independente de onde o servidor
// roda. Datas e horários persistidos são strings locais, então o relógio
// de referência precisa ser este.
const StudioTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now é o relógio padrão dos use cases; os testes injetam o próprio.
func Now() time.Time {
	return time.Now().In(Location())
}

package booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
)

// Vinte requisições simultâneas disputando o mesmo slot: exatamente uma
// vence, as outras recebem conflito.
func TestCreateBookingConcorrente(t *testing.T) {
	f := newFixture(t)

	const n = 20

	var (
		wg        sync.WaitGroup
		created   atomic.Int32
		conflicts atomic.Int32
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.create.Execute(context.Background(), f.input())
			switch {
			case err == nil:
				created.Add(1)
			case httperr.IsKind(err, httperr.KindConflict):
				conflicts.Add(1)
			default:
				t.Errorf("erro inesperado: %v", err)
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("esperava exatamente 1 criação, veio %d", created.Load())
	}
	if conflicts.Load() != n-1 {
		t.Errorf("esperava %d conflitos, veio %d", n-1, conflicts.Load())
	}
}

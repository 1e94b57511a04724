package calendarcfg

import (
	"context"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

// Resolve devolve a configuração de expediente vigente: cache → banco →
// padrões documentados (08:00–21:00, 30 min, 30 dias).
type Resolve struct {
	repo  domain.Repository
	cache *cache.ConfigCache
}

func NewResolve(repo domain.Repository, cache *cache.ConfigCache) *Resolve {
	return &Resolve{repo: repo, cache: cache}
}

func (uc *Resolve) Execute(ctx context.Context) (*models.CalendarConfig, error) {
	if cfg, ok := uc.cache.Get(ctx); ok {
		return cfg, nil
	}

	cfg, err := uc.repo.GetCalendarConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = domain.DefaultCalendarConfig()
	}

	uc.cache.Set(ctx, cfg)
	return cfg, nil
}

package calendarcfg

import (
	"context"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/audit"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/esthetic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

type UpdateInput struct {
	OpeningTime        string
	ClosingTime        string
	SlotIntervalMin    int
	AdvanceBookingDays int
}

type Update struct {
	repo  domain.Repository
	cache *cache.ConfigCache
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	cache *cache.ConfigCache,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, cache: cache, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	userID string,
	in UpdateInput,
) (*models.CalendarConfig, error) {

	cfg := &models.CalendarConfig{
		OpeningTime:        in.OpeningTime,
		ClosingTime:        in.ClosingTime,
		SlotIntervalMin:    in.SlotIntervalMin,
		AdvanceBookingDays: in.AdvanceBookingDays,
	}

	if fields := domain.ValidateCalendarConfig(cfg); len(fields) > 0 {
		return nil, httperr.ErrValidation(fields)
	}

	if err := uc.repo.SaveCalendarConfig(ctx, cfg); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "config_updated",
		Entity:   "calendar_config",
		Metadata: in,
	})

	return cfg, nil
}

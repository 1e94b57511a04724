package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

const configKey = "esthetic:calendar_config"

// ConfigCache guarda a configuração de expediente no Redis para não bater
// no banco a cada consulta de disponibilidade. Com receiver nil todos os
// métodos viram no-op, então a API funciona sem Redis configurado.
type ConfigCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewConfigCache(rdb *redis.Client, ttl time.Duration) *ConfigCache {
	if rdb == nil {
		return nil
	}
	return &ConfigCache{rdb: rdb, ttl: ttl}
}

func (c *ConfigCache) Get(ctx context.Context) (*models.CalendarConfig, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, configKey).Bytes()
	if err != nil {
		return nil, false
	}

	var cfg models.CalendarConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, false
	}

	return &cfg, true
}

func (c *ConfigCache) Set(ctx context.Context, cfg *models.CalendarConfig) {
	if c == nil || cfg == nil {
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}

	// cache é melhor esforço; erro aqui nunca quebra a requisição
	_ = c.rdb.Set(ctx, configKey, raw, c.ttl).Err()
}

func (c *ConfigCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, configKey).Err()
}

package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	// Pool is the application's own connection pool.
	Pool Pinger
	// Cache is nil when the product cache is disabled.
	Cache Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks(cfg, endpoints)...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func checks(cfg *config.Config, endpoints *Endpoints) []health.Config {
	list := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "database-pool",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check:     pingCheck("database pool", endpoints.Pool),
		},
	}

	if cfg.RedisConnect.Enabled() {
		// The catalog keeps serving from postgres when redis is down.
		list = append(list,
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "product-cache",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check:     pingCheck("product cache", endpoints.Cache),
			},
		)
	}

	return list
}

func pingCheck(name string, target Pinger) health.CheckFunc {
	return func(ctx context.Context) error {
		if target == nil {
			return fmt.Errorf("%s is not initialized", name)
		}

		if err := target.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach %s: %w", name, err)
		}

		return nil
	}
}

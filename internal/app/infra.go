package app

import (
	"fmt"

	"github.com/7PXS/AvouraAuth/internal/config"
	"github.com/7PXS/AvouraAuth/internal/logger"
	"github.com/7PXS/AvouraAuth/internal/redis"
	"github.com/7PXS/AvouraAuth/internal/session"
)

// setupSessionStore picks the session backend. The in-memory table is the
// default; Redis is opt-in for deployments that want sessions to survive a
// process restart.
func setupSessionStore(cfg config.Config) (session.Store, func() error, error) {
	switch cfg.SessionBackend {
	case "", "memory":
		return session.NewMemoryStore(), nil, nil

	case "redis":
		client, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("redis ready", nil)

		return session.NewRedisStore(client.Client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("app: unknown session backend %q", cfg.SessionBackend)
	}
}

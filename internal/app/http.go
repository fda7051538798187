package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/7PXS/AvouraAuth/internal/config"
	"github.com/7PXS/AvouraAuth/internal/credentials"
	"github.com/7PXS/AvouraAuth/internal/httpapi"
	"github.com/7PXS/AvouraAuth/internal/identity"
	"github.com/7PXS/AvouraAuth/internal/logger"
	"github.com/7PXS/AvouraAuth/internal/metrics"
	"github.com/7PXS/AvouraAuth/internal/middleware"
	"github.com/7PXS/AvouraAuth/internal/ratelimit"
	"github.com/7PXS/AvouraAuth/internal/scripts"
	"github.com/7PXS/AvouraAuth/internal/token"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	sessionStore, cleanup, err := setupSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	identityStore := identity.NewStore()
	hasher := credentials.NewHasher(cfg.Profile)
	tokenService := token.NewService(cfg.Profile, cfg.TokenSecret)
	limiter := ratelimit.New(cfg.Profile)
	scriptRepo := scripts.NewRepository(cfg.ScriptsDir)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	authenticator := middleware.NewAuthenticator(
		tokenService,
		sessionStore,
		identityStore,
	)

	apiHandler := httpapi.NewHandler(
		cfg.Profile,
		identityStore,
		sessionStore,
		tokenService,
		hasher,
		limiter,
		scriptRepo,
		authenticator,
		collector,
	)

	if cfg.Profile == config.ProfileLenient {
		logger.Warn("running under the lenient profile; not for deployment", nil)
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(middleware.Recovery())

	apiHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", metrics.Handler(registry))

	return router, cleanup, nil
}

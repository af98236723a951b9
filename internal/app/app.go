package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-hub/external/footballdata"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/infrastructure/catalog"
	"github.com/riskibarqy/football-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-hub/internal/interfaces/render"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// App holds the HTTP server and the session it serves.
type App struct {
	Server *http.Server

	session        *usecase.Session
	preloadCodes   []string
	preloadWorkers int
	logger         *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	competitions, err := catalog.Load(cfg.CompetitionsFile)
	if err != nil {
		return nil, fmt.Errorf("load competitions catalog: %w", err)
	}

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballAPIBaseURL,
		Token:      cfg.FootballAPIKey,
		Timeout:    cfg.FootballAPITimeout,
		MaxRetries: cfg.FootballAPIMaxRetries,
		Logger:     logger.Named("footballdata"),
		CircuitBreaker: resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballAPICircuitEnabled,
			FailureThreshold: cfg.FootballAPICircuitFailureCount,
			OpenTimeout:      cfg.FootballAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballAPICircuitHalfOpenMaxReq,
		}),
	})
	if cfg.FootballAPIKey == "" {
		logger.Warn("FOOTBALL_API_KEY is empty, upstream calls will be rejected")
	}

	session := usecase.NewSession(client, logger.Named("session"))

	renderer, err := render.New(time.UTC)
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	handler := httpapi.NewHandler(client, session, competitions, renderer, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	preloadCodes := cfg.PreloadCompetitions
	if len(preloadCodes) == 0 {
		preloadCodes = competitions.PreloadCodes()
	}

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		session:        session,
		preloadCodes:   preloadCodes,
		preloadWorkers: cfg.PreloadWorkers,
		logger:         logger,
	}, nil
}

// Warmup loads standings for the preload competitions. It never fails the
// process; upstream errors only reduce the loaded count.
func (a *App) Warmup(ctx context.Context) int {
	loaded, err := a.session.Preload(ctx, a.preloadCodes, a.preloadWorkers)
	if err != nil {
		a.logger.WarnContext(ctx, "standings warmup aborted", "error", err)
	}
	return loaded
}

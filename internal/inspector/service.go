package inspector

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/uartframe/internal/observability"
)

// Inspector endpoint configuration.
type ServiceConfig struct {
	ListenAddr      string
	EnableCORS      bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Inspector service defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		ListenAddr:      ":7400",
		EnableCORS:      false,
		AllowedOrigins:  nil,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Service carries the router and request-scoped logging for the
// inspector endpoints.
type Service struct {
	cfg     ServiceConfig
	logger  zerolog.Logger
	router  *gin.Engine
	started time.Time
}

func NewService() *Service {
	return NewServiceWithConfig(DefaultServiceConfig())
}

func NewServiceWithConfig(cfg ServiceConfig) *Service {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = DefaultServiceConfig().ListenAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultServiceConfig().ShutdownTimeout
	}

	svc := &Service{
		cfg:     cfg,
		logger:  log.With().Str("component", "inspector").Logger(),
		started: time.Now(),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(svc.logger))
	router.Use(observability.RequestMetricsMiddleware())
	if cfg.EnableCORS {
		corsCfg := cors.DefaultConfig()
		if len(cfg.AllowedOrigins) > 0 {
			corsCfg.AllowOrigins = cfg.AllowedOrigins
		} else {
			corsCfg.AllowAllOrigins = true
		}
		router.Use(cors.New(corsCfg))
	}
	svc.router = router
	svc.registerRoutes()
	return svc
}

// Router exposes the gin engine for in-process tests.
func (s *Service) Router() *gin.Engine {
	return s.router
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve blocks until ctx is done or the listener fails.
func (s *Service) Serve(ctx context.Context) error {
	observability.RegisterMetrics()

	srv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.ListenAddr).Msg("inspector listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info().Msg("inspector stopped")
	return nil
}

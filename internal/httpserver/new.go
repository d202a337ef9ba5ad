package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"someday-maybe/internal/attachment"
	"someday-maybe/internal/board"
	"someday-maybe/internal/holiday"
	"someday-maybe/internal/middleware"
	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	metrics   *metrics.Metrics
	rateLimit middleware.RateLimitConfig

	// Domains
	boardUC        board.UseCase
	attachmentUC   attachment.UseCase
	holidayUC      holiday.UseCase
	maxUploadBytes int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Metrics   *metrics.Metrics
	RateLimit middleware.RateLimitConfig

	BoardUC        board.UseCase
	AttachmentUC   attachment.UseCase
	HolidayUC      holiday.UseCase
	MaxUploadBytes int64
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		metrics:         cfg.Metrics,
		rateLimit:       cfg.RateLimit,
		boardUC:         cfg.BoardUC,
		attachmentUC:    cfg.AttachmentUC,
		holidayUC:       cfg.HolidayUC,
		maxUploadBytes:  cfg.MaxUploadBytes,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metrics == nil {
		srv.metrics = metrics.New()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.boardUC == nil {
		return errors.New("board usecase is required")
	}
	if srv.attachmentUC == nil {
		return errors.New("attachment usecase is required")
	}
	if srv.holidayUC == nil {
		return errors.New("holiday usecase is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

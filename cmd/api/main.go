package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/spf13/afero"

	"someday-maybe/config"
	_ "someday-maybe/docs" // Swagger docs
	"someday-maybe/internal/attachment"
	attachmentDisk "someday-maybe/internal/attachment/repository/disk"
	attachmentUC "someday-maybe/internal/attachment/usecase"
	boardKV "someday-maybe/internal/board/repository/kvstore"
	boardUC "someday-maybe/internal/board/usecase"
	"someday-maybe/internal/holiday"
	holidayRepo "someday-maybe/internal/holiday/repository"
	calendarificSource "someday-maybe/internal/holiday/repository/calendarific"
	gcalendarSource "someday-maybe/internal/holiday/repository/gcalendar"
	holidayKV "someday-maybe/internal/holiday/repository/kvstore"
	holidayUC "someday-maybe/internal/holiday/usecase"
	"someday-maybe/internal/httpserver"
	"someday-maybe/internal/middleware"
	"someday-maybe/pkg/calendarific"
	"someday-maybe/pkg/datemath"
	"someday-maybe/pkg/gcalendar"
	"someday-maybe/pkg/kvstore"
	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

// @title       someday-maybe API
// @description Personal task board with lists, attachments and a holiday calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting someday-maybe...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Dir)

	// 3. Storage sandbox: one key-value file per blob, attachments below it
	store, err := kvstore.NewOS(cfg.Storage.Dir, cfg.Storage.QuotaBytes)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	sandbox := afero.NewBasePathFs(afero.NewOsFs(), cfg.Storage.Dir)

	// 4. Metrics
	m := metrics.New()

	// 5. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Board.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Board.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Attachment Store
	urls := attachment.NewURLRegistry(cfg.Attachment.BlobURLPrefix)
	attachments := attachmentUC.New(
		logger,
		attachmentDisk.New(sandbox, path.Clean("/"+cfg.Attachment.Root), logger),
		urls,
		m,
		attachmentUC.Options{MaxNameProbes: cfg.Attachment.MaxNameProbes},
	)

	// 7. Board Store; removing a task also removes its attachments
	board := boardUC.New(
		ctx,
		logger,
		boardKV.New(store, cfg.Board.StorageKey, logger),
		attachments,
		dateMathParser,
		m,
		boardUC.Options{DefaultDueToday: cfg.Board.DefaultDueToday},
	)

	// 8. Holiday Cache
	source, err := newHolidaySource(ctx, cfg.Holiday, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize holiday provider: ", err)
		return
	}
	logger.Infof(ctx, "Holiday provider: %s", source.Name())
	holidays := holidayUC.New(
		ctx,
		logger,
		source,
		holidayKV.New(store, cfg.Holiday.StorageKey, logger),
		holiday.DefaultAllowList(),
		m,
		holidayUC.Options{FetchTimeout: cfg.Holiday.FetchTimeout},
	)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Metrics:         m,
		RateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
		BoardUC:        board,
		AttachmentUC:   attachments,
		HolidayUC:      holidays,
		MaxUploadBytes: cfg.Attachment.MaxUploadBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newHolidaySource builds the configured remote holiday provider.
func newHolidaySource(ctx context.Context, cfg config.HolidayConfig, l log.Logger) (holidayRepo.Source, error) {
	allow := holiday.DefaultAllowList()

	switch cfg.Provider {
	case config.ProviderGCalendar:
		var (
			client *gcalendar.Client
			err    error
		)
		switch {
		case cfg.GCalendar.CredentialsPath != "":
			client, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GCalendar.CredentialsPath)
		case cfg.GCalendar.APIKey != "":
			client, err = gcalendar.NewClientWithAPIKey(ctx, cfg.GCalendar.APIKey)
		default:
			return nil, fmt.Errorf("gcalendar provider needs holiday.gcalendar.credentials_path or holiday.gcalendar.api_key")
		}
		if err != nil {
			return nil, err
		}
		return gcalendarSource.New(client, cfg.GCalendar.CalendarID, allow, l), nil

	default:
		client, err := calendarific.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("%w (set HOLIDAY_API_KEY)", err)
		}
		client.WithBaseURL(cfg.APIURL).WithCountry(cfg.Country)
		return calendarificSource.New(client, allow, l), nil
	}
}

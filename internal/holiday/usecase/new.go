package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/holiday/repository"
	"someday-maybe/internal/model"
	pkgLog "someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

const defaultFetchTimeout = 15 * time.Second

// Options tunes the Holiday Cache.
type Options struct {
	// FetchTimeout bounds one remote lookup, independently of the callers
	// waiting for it.
	FetchTimeout time.Duration
}

type implUseCase struct {
	l       pkgLog.Logger
	source  repository.Source
	cache   repository.Cache
	allow   holiday.AllowList
	metrics *metrics.Metrics
	opt     Options

	mu     sync.RWMutex
	years  map[int]model.HolidayYear
	saveMu sync.Mutex
	flight singleflight.Group
}

// New creates the Holiday Cache and loads every persisted year. An unreadable
// cache document is logged and treated as empty.
func New(
	ctx context.Context,
	l pkgLog.Logger,
	source repository.Source,
	cache repository.Cache,
	allow holiday.AllowList,
	m *metrics.Metrics,
	opt Options,
) *implUseCase {
	if opt.FetchTimeout <= 0 {
		opt.FetchTimeout = defaultFetchTimeout
	}
	if allow == nil {
		allow = holiday.DefaultAllowList()
	}

	years, err := cache.Load(ctx)
	if err != nil {
		l.Warnf(ctx, "holiday.usecase.New: starting with an empty cache: %v", err)
	}
	if years == nil {
		years = make(map[int]model.HolidayYear)
	}

	return &implUseCase{
		l:       l,
		source:  source,
		cache:   cache,
		allow:   allow,
		metrics: m,
		opt:     opt,
		years:   years,
	}
}

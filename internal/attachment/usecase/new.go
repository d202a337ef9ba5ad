package usecase

import (
	"someday-maybe/internal/attachment"
	"someday-maybe/internal/attachment/repository"
	pkgLog "someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

const defaultMaxNameProbes = 1000

// Options tunes the Attachment Store.
type Options struct {
	// MaxNameProbes caps how many candidate names Add tries.
	MaxNameProbes int
}

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	urls    *attachment.URLRegistry
	metrics *metrics.Metrics
	opt     Options
}

// New creates the Attachment Store.
func New(l pkgLog.Logger, repo repository.Repository, urls *attachment.URLRegistry, m *metrics.Metrics, opt Options) *implUseCase {
	if opt.MaxNameProbes <= 0 {
		opt.MaxNameProbes = defaultMaxNameProbes
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		urls:    urls,
		metrics: m,
		opt:     opt,
	}
}

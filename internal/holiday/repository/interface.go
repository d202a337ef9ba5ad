package repository

import (
	"context"

	"someday-maybe/internal/model"
)

// Source resolves the holidays of one year from a remote provider. Only
// entries that pass the configured allow-list are returned.
type Source interface {
	// Name labels the provider in logs and metrics.
	Name() string
	FetchYear(ctx context.Context, year int) (model.HolidayYear, error)
}

// Cache persists every resolved year as one document.
type Cache interface {
	Load(ctx context.Context) (map[int]model.HolidayYear, error)
	Save(ctx context.Context, years map[int]model.HolidayYear) error
}

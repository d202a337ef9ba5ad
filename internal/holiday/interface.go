package holiday

import (
	"context"

	"someday-maybe/internal/model"
)

// UseCase is the Holiday Cache. A year is fetched from the remote provider
// at most once; concurrent callers for the same year share one request.
//
//go:generate mockery --name UseCase
type UseCase interface {
	GetYear(ctx context.Context, year int) (model.HolidayYear, error)
	// Get returns the holiday on the given day, or nil when there is none.
	Get(ctx context.Context, year, month, day int) (*model.Holiday, error)
}

package usecase

import (
	"context"
	"strconv"
	"time"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
)

// GetYear returns the holidays of year from memory, or joins or starts the
// single remote lookup for it. A caller whose ctx ends stops waiting; the
// lookup itself carries on for everyone else.
func (uc *implUseCase) GetYear(ctx context.Context, year int) (model.HolidayYear, error) {
	if year < 1 || year > 9999 {
		return nil, holiday.ErrInvalidDate
	}
	if y, ok := uc.cached(year); ok {
		return y.Clone(), nil
	}

	ch := uc.flight.DoChan(strconv.Itoa(year), func() (any, error) {
		return uc.fetch(ctx, year)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared && uc.metrics != nil {
			uc.metrics.HolidayShared.Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(model.HolidayYear).Clone(), nil
	}
}

// Get looks up one day. Entries whose category is not allowed are hidden.
func (uc *implUseCase) Get(ctx context.Context, year, month, day int) (*model.Holiday, error) {
	if !validDay(year, month, day) {
		return nil, holiday.ErrInvalidDate
	}

	y, err := uc.GetYear(ctx, year)
	if err != nil {
		return nil, err
	}

	h, ok := y[datemath.ISODate(year, month, day)]
	if !ok || !uc.allow.Allows(h.Category) {
		return nil, nil
	}
	return &h, nil
}

// fetch runs once per in-flight year. It is detached from the cancellation
// of the caller that started it but keeps its values for logging.
func (uc *implUseCase) fetch(callerCtx context.Context, year int) (model.HolidayYear, error) {
	// A flight that finished between the cache check and DoChan already
	// stored the year.
	if y, ok := uc.cached(year); ok {
		return y, nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(callerCtx), uc.opt.FetchTimeout)
	defer cancel()

	uc.l.Infof(ctx, "holiday.usecase.fetch: querying %s for %d", uc.source.Name(), year)
	y, err := uc.source.FetchYear(ctx, year)
	if err != nil {
		uc.countFetch("error")
		uc.l.Errorf(ctx, "holiday.usecase.fetch: %d: %v", year, err)
		return nil, err
	}
	uc.countFetch("ok")

	uc.mu.Lock()
	uc.years[year] = y
	uc.mu.Unlock()

	uc.persist(ctx)
	return y, nil
}

// persist writes the whole cache. Failures are logged; the year stays cached
// in memory.
func (uc *implUseCase) persist(ctx context.Context) {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	uc.mu.RLock()
	snapshot := make(map[int]model.HolidayYear, len(uc.years))
	for k, v := range uc.years {
		snapshot[k] = v
	}
	uc.mu.RUnlock()

	if err := uc.cache.Save(ctx, snapshot); err != nil {
		uc.l.Warnf(ctx, "holiday.usecase.persist: %v", err)
	}
}

func (uc *implUseCase) cached(year int) (model.HolidayYear, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	y, ok := uc.years[year]
	return y, ok
}

func (uc *implUseCase) countFetch(result string) {
	if uc.metrics != nil {
		uc.metrics.HolidayFetches.WithLabelValues(uc.source.Name(), result).Inc()
	}
}

func validDay(year, month, day int) bool {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

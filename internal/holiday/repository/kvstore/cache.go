package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"someday-maybe/internal/holiday/repository"
	"someday-maybe/internal/model"
)

// Load returns every persisted year. A missing document is an empty cache.
// Keys that are not years are skipped.
func (c *implCache) Load(ctx context.Context) (map[int]model.HolidayYear, error) {
	years := make(map[int]model.HolidayYear)

	raw, found, err := c.store.Get(c.key)
	if err != nil {
		return years, fmt.Errorf("%s: %w", c.dsn("Load"), err)
	}
	if !found {
		return years, nil
	}

	var doc map[string]model.HolidayYear
	if err := json.Unmarshal(raw, &doc); err != nil {
		return years, fmt.Errorf("%w: %v", repository.ErrCorruptCache, err)
	}

	for k, y := range doc {
		year, err := strconv.Atoi(k)
		if err != nil {
			c.l.Warnf(ctx, "%s: skipping key %q", c.dsn("Load"), k)
			continue
		}
		if y == nil {
			y = model.HolidayYear{}
		}
		years[year] = y
	}
	return years, nil
}

// Save writes the whole cache document synchronously.
func (c *implCache) Save(ctx context.Context, years map[int]model.HolidayYear) error {
	doc := make(map[string]model.HolidayYear, len(years))
	for year, y := range years {
		doc[strconv.Itoa(year)] = y
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", c.dsn("Save"), err)
	}
	if err := c.store.Set(c.key, raw); err != nil {
		c.l.Errorf(ctx, "%s: %v", c.dsn("Save"), err)
		return fmt.Errorf("%s: %w", c.dsn("Save"), err)
	}
	return nil
}

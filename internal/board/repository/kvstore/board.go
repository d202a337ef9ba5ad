package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"someday-maybe/internal/board/repository"
	"someday-maybe/internal/model"
)

// Load reads and decodes the board document.
func (r *implRepository) Load(ctx context.Context) (model.Board, bool, error) {
	raw, found, err := r.store.Get(r.key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return model.Board{}, false, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if !found {
		return model.Board{}, false, nil
	}

	var b model.Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return model.Board{}, true, fmt.Errorf("%w: %v", repository.ErrCorruptBoard, err)
	}
	return b, true, nil
}

// Save encodes the board and writes it synchronously. Store errors such as
// kvstore.ErrQuotaExceeded are wrapped, not replaced.
func (r *implRepository) Save(ctx context.Context, b model.Board) error {
	raw, err := json.Marshal(b)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToEncode, err)
	}

	if err := r.store.Set(r.key, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%s: %w", r.dsn("Save"), err)
	}
	return nil
}

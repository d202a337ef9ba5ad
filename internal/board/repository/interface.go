package repository

import (
	"context"

	"someday-maybe/internal/model"
)

// Repository persists the whole board as one document.
type Repository interface {
	// Load returns the stored board. found is false when nothing was ever
	// saved; a stored document that cannot be decoded returns ErrCorruptBoard.
	Load(ctx context.Context) (b model.Board, found bool, err error)
	// Save replaces the stored board.
	Save(ctx context.Context, b model.Board) error
}

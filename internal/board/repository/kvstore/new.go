package kvstore

import (
	"fmt"

	"someday-maybe/internal/board/repository"
	pkgKV "someday-maybe/pkg/kvstore"
	"someday-maybe/pkg/log"
)

type implRepository struct {
	store pkgKV.Store
	key   string
	l     log.Logger
}

// New creates a Repository that keeps the board under a single versioned key.
func New(store pkgKV.Store, key string, l log.Logger) repository.Repository {
	if store == nil {
		panic("board/repository/kvstore: store is required")
	}
	return &implRepository{store: store, key: key, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("board/repository/kvstore.%s", method)
}

package kvstore

import (
	"fmt"

	"someday-maybe/internal/holiday/repository"
	pkgKV "someday-maybe/pkg/kvstore"
	"someday-maybe/pkg/log"
)

type implCache struct {
	store pkgKV.Store
	key   string
	l     log.Logger
}

// New creates a Cache that keeps every resolved year under one key.
func New(store pkgKV.Store, key string, l log.Logger) repository.Cache {
	if store == nil {
		panic("holiday/repository/kvstore: store is required")
	}
	return &implCache{store: store, key: key, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (c *implCache) dsn(method string) string {
	return fmt.Sprintf("holiday/repository/kvstore.%s", method)
}

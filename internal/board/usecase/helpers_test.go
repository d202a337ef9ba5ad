package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	boardKV "someday-maybe/internal/board/repository/kvstore"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
	"someday-maybe/pkg/kvstore"
	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

const testKey = "someday-maybe-state-v4"

var errDiskFull = errors.New("disk full")

// fakeCleaner records every task id whose attachments were removed.
type fakeCleaner struct {
	mu      sync.Mutex
	removed []string
	err     error
}

func (f *fakeCleaner) RemoveTask(ctx context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, taskID)
	return f.err
}

// flakyRepo wraps a real repository and can be told to fail on Load or Save.
type flakyRepo struct {
	inner interface {
		Load(ctx context.Context) (model.Board, bool, error)
		Save(ctx context.Context, b model.Board) error
	}
	failLoad error
	failSave bool
	saves    int
}

func (r *flakyRepo) Load(ctx context.Context) (model.Board, bool, error) {
	if r.failLoad != nil {
		return model.Board{}, false, r.failLoad
	}
	return r.inner.Load(ctx)
}

func (r *flakyRepo) Save(ctx context.Context, b model.Board) error {
	if r.failSave {
		return errDiskFull
	}
	r.saves++
	return r.inner.Save(ctx, b)
}

type fixture struct {
	uc      *implUseCase
	store   *kvstore.FileStore
	repo    *flakyRepo
	cleaner *fakeCleaner
	metrics *metrics.Metrics
}

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.New(afero.NewMemMapFs(), 0)
	repo := &flakyRepo{inner: boardKV.New(store, testKey, log.NewNop())}
	return newFixtureWith(t, store, repo)
}

func newFixtureWith(t *testing.T, store *kvstore.FileStore, repo *flakyRepo) *fixture {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	cleaner := &fakeCleaner{}
	m := metrics.New()
	uc := New(context.Background(), log.NewNop(), repo, cleaner, parser, m, Options{
		DefaultDueToday: true,
		Now:             func() time.Time { return fixedNow },
		NewID:           sequentialIDs(),
	})
	return &fixture{uc: uc, store: store, repo: repo, cleaner: cleaner, metrics: m}
}

// emptyList adds a fresh list and returns its id.
func (f *fixture) emptyList(t *testing.T, title string) string {
	t.Helper()
	l, err := f.uc.AddList(context.Background(), title)
	require.NoError(t, err)
	return l.ID
}

func (f *fixture) taskIDs(t *testing.T, listID string) []string {
	t.Helper()
	b := f.uc.Snapshot(context.Background())
	i := b.IndexOfList(listID)
	require.GreaterOrEqual(t, i, 0)
	ids := make([]string, len(b.Lists[i].Tasks))
	for j, task := range b.Lists[i].Tasks {
		ids[j] = task.ID
	}
	return ids
}

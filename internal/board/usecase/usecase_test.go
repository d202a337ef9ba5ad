package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"someday-maybe/internal/board"
	"someday-maybe/internal/board/repository"
	boardKV "someday-maybe/internal/board/repository/kvstore"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/log"
)

func ptr[T any](v T) *T { return &v }

func TestNewCreatesAndPersistsDefaultBoard(t *testing.T) {
	f := newFixture(t)

	b := f.uc.Snapshot(context.Background())
	require.Len(t, b.Lists, 3)
	assert.Equal(t, "To Do", b.Lists[0].Title)
	assert.Equal(t, "Reminders", b.Lists[1].Title)
	assert.Equal(t, "Done", b.Lists[2].Title)
	for _, l := range b.Lists {
		assert.Equal(t, model.SortModeDate, l.SortMode)
	}
	assert.Equal(t, model.DefaultTheme, b.Theme)

	_, found, err := f.store.Get(testKey)
	require.NoError(t, err)
	assert.True(t, found, "default board must be persisted once")
}

func TestNewFallsBackOnCorruptBlob(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(testKey, []byte("{broken")))

	repo := &flakyRepo{inner: boardKV.New(f.store, testKey, log.NewNop())}
	reloaded := newFixtureWith(t, f.store, repo)
	b := reloaded.uc.Snapshot(context.Background())
	assert.Len(t, b.Lists, 3)
	assert.Equal(t, 1, repo.saves, "corrupt blob is replaced by the default board")
}

func TestNewKeepsStoredBoardWhenLoadFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.emptyList(t, "Precious")

	repo := &flakyRepo{
		inner:    boardKV.New(f.store, testKey, log.NewNop()),
		failLoad: fmt.Errorf("%w: read error", repository.ErrFailedToLoad),
	}
	reloaded := newFixtureWith(t, f.store, repo)

	b := reloaded.uc.Snapshot(ctx)
	require.Len(t, b.Lists, 3)
	assert.Equal(t, "To Do", b.Lists[0].Title)
	assert.Zero(t, repo.saves)

	stored, found, err := boardKV.New(f.store, testKey, log.NewNop()).Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored.Lists, 4)
	assert.Equal(t, "Precious", stored.Lists[3].Title)
}

func TestNewReloadsSavedBoard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "Groceries")
	_, err := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "Eggs"})
	require.NoError(t, err)

	reloaded := newFixtureWith(t, f.store, &flakyRepo{inner: boardKV.New(f.store, testKey, log.NewNop())})
	b := reloaded.uc.Snapshot(ctx)
	require.Len(t, b.Lists, 4)
	assert.Equal(t, "Groceries", b.Lists[3].Title)
	assert.Equal(t, "Eggs", b.Lists[3].Tasks[0].Title)
}

func TestAddTaskDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "Shopping")

	id, err := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "  Buy tenders  "})
	require.NoError(t, err)

	tasks, err := f.uc.ListTasks(ctx, listID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Buy tenders", got.Title)
	assert.Equal(t, "2025-06-15", got.Due)
	assert.Equal(t, "", got.Time)
	assert.Equal(t, "Shopping", got.Tag)
	assert.False(t, got.Done)
	assert.Nil(t, got.Rank)
}

func TestAddTaskValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")

	_, err := f.uc.AddTask(ctx, "missing", board.TaskInput{Title: "x"})
	assert.ErrorIs(t, err, board.ErrListNotFound)

	_, err = f.uc.AddTask(ctx, listID, board.TaskInput{Title: "   "})
	assert.ErrorIs(t, err, board.ErrEmptyTitle)

	_, err = f.uc.AddTask(ctx, listID, board.TaskInput{Title: "x", Due: "someday"})
	assert.ErrorIs(t, err, board.ErrInvalidDue)

	_, err = f.uc.AddTask(ctx, listID, board.TaskInput{Title: "x", Time: "7pm"})
	assert.ErrorIs(t, err, board.ErrInvalidTime)

	id, err := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "x", Due: "tomorrow", Time: "08:15", Tag: "Errands"})
	require.NoError(t, err)
	tasks, _ := f.uc.ListTasks(ctx, listID)
	assert.Equal(t, id, tasks[0].ID)
	assert.Equal(t, "2025-06-16", tasks[0].Due)
	assert.Equal(t, "Errands", tasks[0].Tag)
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")
	id, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "a", Tag: "t"})

	require.NoError(t, f.uc.UpdateTask(ctx, listID, id, board.TaskPatch{Done: ptr(true), Time: ptr("09:00")}))
	tasks, _ := f.uc.ListTasks(ctx, listID)
	assert.True(t, tasks[0].Done)
	assert.Equal(t, "09:00", tasks[0].Time)
	assert.Equal(t, "a", tasks[0].Title, "fields absent from the patch stay untouched")
	assert.Equal(t, "t", tasks[0].Tag)

	// Absent list or task is a silent no-op.
	saves := f.repo.saves
	assert.NoError(t, f.uc.UpdateTask(ctx, "nope", id, board.TaskPatch{Done: ptr(false)}))
	assert.NoError(t, f.uc.UpdateTask(ctx, listID, "nope", board.TaskPatch{Done: ptr(false)}))
	assert.Equal(t, saves, f.repo.saves)

	assert.ErrorIs(t, f.uc.UpdateTask(ctx, listID, id, board.TaskPatch{Time: ptr("25:99")}), board.ErrInvalidTime)
}

func TestRemoveTaskCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")
	keep, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "keep"})
	drop, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "drop"})

	require.NoError(t, f.uc.RemoveTask(ctx, listID, drop))

	assert.Equal(t, []string{keep}, f.taskIDs(t, listID))
	assert.Equal(t, []string{drop}, f.cleaner.removed)
}

func TestRemoveTaskCascadeFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cleaner.err = errors.New("permission denied")
	listID := f.emptyList(t, "L")
	id, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "x"})

	assert.NoError(t, f.uc.RemoveTask(ctx, listID, id))
	assert.Empty(t, f.taskIDs(t, listID))
}

func TestDeleteListRemovesTasksAndAttachments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "Trip")
	a, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "a"})
	b, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "b"})
	c, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "c"})

	require.NoError(t, f.uc.DeleteList(ctx, listID))

	snap := f.uc.Snapshot(ctx)
	assert.Equal(t, -1, snap.IndexOfList(listID))
	for _, l := range snap.Lists {
		for _, task := range l.Tasks {
			assert.NotContains(t, []string{a, b, c}, task.ID)
		}
	}
	removed := append([]string(nil), f.cleaner.removed...)
	sort.Strings(removed)
	assert.Equal(t, []string{a, b, c}, removed)

	assert.NoError(t, f.uc.DeleteList(ctx, "missing"))
}

func TestRenameList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "Old")

	require.NoError(t, f.uc.RenameList(ctx, listID, "  New  "))
	snap := f.uc.Snapshot(ctx)
	assert.Equal(t, "New", snap.Lists[snap.IndexOfList(listID)].Title)

	assert.ErrorIs(t, f.uc.RenameList(ctx, listID, ""), board.ErrEmptyTitle)
	assert.NoError(t, f.uc.RenameList(ctx, "missing", "x"))
}

func TestReorderTaskPreservesMultisetAndRestamps(t *testing.T) {
	ctx := context.Background()

	cases := []struct{ from, to int }{
		{0, 3}, {3, 0}, {1, 2}, {2, 1}, {0, 1}, {4, 2},
	}
	for _, tc := range cases {
		f := newFixture(t)
		listID := f.emptyList(t, "L")
		var ids []string
		for _, title := range []string{"a", "b", "c", "d", "e"} {
			id, _ := f.uc.AddTask(ctx, listID, board.TaskInput{Title: title})
			ids = append(ids, id)
		}

		require.NoError(t, f.uc.ReorderTask(ctx, listID, tc.from, tc.to))

		snap := f.uc.Snapshot(ctx)
		l := snap.Lists[snap.IndexOfList(listID)]
		assert.Equal(t, model.SortModeCustom, l.SortMode)

		got := make([]string, len(l.Tasks))
		for i, task := range l.Tasks {
			got[i] = task.ID
			require.NotNil(t, task.Rank)
			assert.Equal(t, i, *task.Rank)
		}
		assert.ElementsMatch(t, ids, got)
		assert.Equal(t, ids[tc.from], got[tc.to], "moved task lands at the target index")
	}
}

func TestReorderTaskEdgeCases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")
	f.uc.AddTask(ctx, listID, board.TaskInput{Title: "a"})
	f.uc.AddTask(ctx, listID, board.TaskInput{Title: "b"})

	saves := f.repo.saves
	require.NoError(t, f.uc.ReorderTask(ctx, listID, 1, 1))
	assert.Equal(t, saves, f.repo.saves, "same index is a no-op")
	snap := f.uc.Snapshot(ctx)
	assert.Equal(t, model.SortModeDate, snap.Lists[snap.IndexOfList(listID)].SortMode)

	assert.ErrorIs(t, f.uc.ReorderTask(ctx, listID, 0, 2), board.ErrIndexOutOfRange)
	assert.ErrorIs(t, f.uc.ReorderTask(ctx, listID, -1, 0), board.ErrIndexOutOfRange)
	assert.NoError(t, f.uc.ReorderTask(ctx, "missing", 0, 1))
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")
	before, _, _ := f.store.Get(testKey)

	f.repo.failSave = true
	id, err := f.uc.AddTask(ctx, listID, board.TaskInput{Title: "unsaved"})
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotEmpty(t, id)

	assert.Equal(t, []string{id}, f.taskIDs(t, listID), "in-memory mutation is not rolled back")
	after, _, _ := f.store.Get(testKey)
	assert.Equal(t, before, after, "persisted snapshot is unchanged")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BoardPersistFailures))

	f.repo.failSave = false
	require.NoError(t, f.uc.SetTheme(ctx, "purple"))
	after, _, _ = f.store.Get(testKey)
	assert.Contains(t, string(after), "unsaved", "next successful persist closes the gap")
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	listID := f.emptyList(t, "L")
	f.uc.AddTask(ctx, listID, board.TaskInput{Title: "a"})

	snap := f.uc.Snapshot(ctx)
	snap.Lists[snap.IndexOfList(listID)].Tasks[0].Title = "mutated"
	snap.Lists = nil

	tasks, _ := f.uc.ListTasks(ctx, listID)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestThemeAndReplaceBoard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.uc.SetTheme(ctx, "purple"))
	assert.Equal(t, "purple", f.uc.Theme(ctx))

	require.NoError(t, f.uc.ReplaceBoard(ctx, model.Board{
		Lists: []model.List{{ID: "x", Title: "Imported", SortMode: "dueAsc"}},
	}))
	snap := f.uc.Snapshot(ctx)
	assert.Equal(t, "purple", snap.Theme)
	require.Len(t, snap.Lists, 1)
	assert.Equal(t, model.SortModeDate, snap.Lists[0].SortMode)
	assert.NotNil(t, snap.Lists[0].Tasks)
}

func TestReplaceBoardRejectsDuplicateIDs(t *testing.T) {
	task := func(id string) model.Task { return model.Task{ID: id, Title: "t" + id} }

	tests := []struct {
		name  string
		lists []model.List
	}{
		{
			name: "task id shared across lists",
			lists: []model.List{
				{ID: "A", Title: "A", Tasks: []model.Task{task("dup")}},
				{ID: "B", Title: "B", Tasks: []model.Task{task("dup")}},
			},
		},
		{
			name: "task id repeated in one list",
			lists: []model.List{
				{ID: "A", Title: "A", Tasks: []model.Task{task("x"), task("x")}},
			},
		},
		{
			name: "duplicate list id",
			lists: []model.List{
				{ID: "A", Title: "A"},
				{ID: "A", Title: "Again"},
			},
		},
		{
			name:  "empty list id",
			lists: []model.List{{Title: "A"}},
		},
		{
			name: "empty task id",
			lists: []model.List{
				{ID: "A", Title: "A", Tasks: []model.Task{task("")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			before := f.uc.Snapshot(ctx)
			saves := f.repo.saves

			err := f.uc.ReplaceBoard(ctx, model.Board{Lists: tt.lists})
			require.ErrorIs(t, err, board.ErrDuplicateID)
			assert.Equal(t, before, f.uc.Snapshot(ctx))
			assert.Equal(t, saves, f.repo.saves)
		})
	}
}

func TestRemoveTaskAfterReplaceLeavesOtherListsAlone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.uc.ReplaceBoard(ctx, model.Board{Lists: []model.List{
		{ID: "A", Title: "A", Tasks: []model.Task{{ID: "a1", Title: "one"}}},
		{ID: "B", Title: "B", Tasks: []model.Task{{ID: "b1", Title: "two"}}},
	}}))

	require.NoError(t, f.uc.RemoveTask(ctx, "A", "a1"))
	assert.Equal(t, []string{"a1"}, f.cleaner.removed)

	tasks, err := f.uc.ListTasks(ctx, "B")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b1", tasks[0].ID)
}

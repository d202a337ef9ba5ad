package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
)

// seedCustom builds a custom-ordered list holding the given titles and
// returns the list id plus the task ids in order.
func seedCustom(t *testing.T, f *fixture, title string, tasks ...string) (string, []string) {
	t.Helper()
	ctx := context.Background()

	listID := f.emptyList(t, title)
	ids := make([]string, 0, len(tasks))
	for _, name := range tasks {
		id, err := f.uc.AddTask(ctx, listID, board.TaskInput{Title: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	if len(ids) > 1 {
		// Swap twice to flip the list into custom mode while keeping order.
		require.NoError(t, f.uc.ReorderTask(ctx, listID, 0, 1))
		require.NoError(t, f.uc.ReorderTask(ctx, listID, 0, 1))
	}
	return listID, ids
}

func TestMoveAcrossListsTopOfCustomTarget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, aIDs := seedCustom(t, f, "A", "a1", "a2", "a3")
	b, bIDs := seedCustom(t, f, "B", "b1", "b2")
	moving := aIDs[1]

	err := f.uc.MoveAcrossLists(ctx, board.MoveInput{
		FromListID:   a,
		TaskID:       moving,
		ToListID:     b,
		TargetTaskID: bIDs[0],
		Side:         model.SideTop,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{aIDs[0], aIDs[2]}, f.taskIDs(t, a))
	assert.Equal(t, []string{moving, bIDs[0], bIDs[1]}, f.taskIDs(t, b))

	tasks, err := f.uc.ListTasks(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, moving, tasks[0].ID, "id survives the move")
	for i, task := range tasks {
		require.NotNil(t, task.Rank)
		assert.Equal(t, i, *task.Rank)
	}
}

func TestMoveAcrossListsBottomOfTarget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, aIDs := seedCustom(t, f, "A", "a1", "a2")
	b, bIDs := seedCustom(t, f, "B", "b1", "b2", "b3")

	require.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{
		FromListID:   a,
		TaskID:       aIDs[0],
		ToListID:     b,
		TargetTaskID: bIDs[0],
		Side:         model.SideBottom,
	}))
	assert.Equal(t, []string{bIDs[0], aIDs[0], bIDs[1], bIDs[2]}, f.taskIDs(t, b))

	// Dropping below the last task is a plain append.
	require.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{
		FromListID:   a,
		TaskID:       aIDs[1],
		ToListID:     b,
		TargetTaskID: bIDs[2],
	}))
	assert.Equal(t, []string{bIDs[0], aIDs[0], bIDs[1], bIDs[2], aIDs[1]}, f.taskIDs(t, b))
	assert.Empty(t, f.taskIDs(t, a))
}

func TestMoveAcrossListsOntoListAppends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, aIDs := seedCustom(t, f, "A", "a1", "a2")
	b := f.emptyList(t, "B")

	require.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{FromListID: a, TaskID: aIDs[0], ToListID: b}))

	snap := f.uc.Snapshot(ctx)
	dst := snap.Lists[snap.IndexOfList(b)]
	require.Len(t, dst.Tasks, 1)
	assert.Equal(t, aIDs[0], dst.Tasks[0].ID)
	assert.Nil(t, dst.Tasks[0].Rank, "rank is cleared on append")
	assert.Equal(t, model.SortModeDate, dst.SortMode)
}

func TestMoveAcrossListsDateTargetIgnoresPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, aIDs := seedCustom(t, f, "A", "a1")
	b := f.emptyList(t, "B")
	b1, _ := f.uc.AddTask(ctx, b, board.TaskInput{Title: "b1"})

	require.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{
		FromListID: a, TaskID: aIDs[0], ToListID: b, TargetTaskID: b1, Side: model.SideTop,
	}))
	assert.Equal(t, []string{b1, aIDs[0]}, f.taskIDs(t, b))
}

func TestMoveWithinListReorders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, ids := seedCustom(t, f, "A", "x", "y", "z")

	require.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{
		FromListID: a, TaskID: ids[2], ToListID: a, TargetTaskID: ids[0], Side: model.SideTop,
	}))
	assert.Equal(t, []string{ids[2], ids[0], ids[1]}, f.taskIDs(t, a))
}

func TestMoveAcrossListsNoops(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, ids := seedCustom(t, f, "A", "x")
	saves := f.repo.saves

	assert.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{FromListID: "nope", TaskID: ids[0], ToListID: a}))
	assert.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{FromListID: a, TaskID: "nope", ToListID: a}))
	assert.NoError(t, f.uc.MoveAcrossLists(ctx, board.MoveInput{FromListID: a, TaskID: ids[0], ToListID: a}))
	assert.Equal(t, saves, f.repo.saves)

	err := f.uc.MoveAcrossLists(ctx, board.MoveInput{FromListID: a, TaskID: ids[0], ToListID: a, Side: "middle"})
	assert.ErrorIs(t, err, board.ErrInvalidSide)
}

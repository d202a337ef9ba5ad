package usecase

import (
	"context"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
)

// ReorderTask moves the task at from so that it ends up at index to, switches
// the list to custom order and restamps every rank with its index.
func (uc *implUseCase) ReorderTask(ctx context.Context, listID string, from, to int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil || from == to {
		return nil
	}
	if err := reorder(l, from, to); err != nil {
		return err
	}
	return uc.persist(ctx)
}

// MoveAcrossLists handles a drop of one task onto a list or next to another
// task. The task keeps its id, so its attachments follow it.
func (uc *implUseCase) MoveAcrossLists(ctx context.Context, input board.MoveInput) error {
	side := input.Side
	if side == "" {
		side = model.SideBottom
	}
	if !side.Valid() {
		return board.ErrInvalidSide
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	src := uc.findList(input.FromListID)
	dst := uc.findList(input.ToListID)
	if src == nil || dst == nil {
		return nil
	}
	fromIdx := src.IndexOf(input.TaskID)
	if fromIdx < 0 {
		return nil
	}
	sameList := src.ID == dst.ID

	targetIdx := -1
	if input.TargetTaskID != "" {
		targetIdx = dst.IndexOf(input.TargetTaskID)
	}

	// Dropped on a list, on a date-ordered list, or on a task that is gone:
	// plain append and let date ordering place it.
	if targetIdx < 0 || dst.SortMode == model.SortModeDate {
		if sameList {
			return nil
		}
		detachAppend(src, dst, fromIdx)
		return uc.persist(ctx)
	}

	if sameList {
		if fromIdx == targetIdx {
			return nil
		}
		if err := reorder(src, fromIdx, targetIdx); err != nil {
			return err
		}
		return uc.persist(ctx)
	}

	appendedAt := len(dst.Tasks)
	detachAppend(src, dst, fromIdx)

	to := targetIdx
	if side == model.SideBottom {
		to = targetIdx + 1
	}
	if to != appendedAt {
		if err := reorder(dst, appendedAt, to); err != nil {
			return err
		}
	}
	return uc.persist(ctx)
}

// reorder removes the element at from and inserts it before the element that
// currently occupies to.
func reorder(l *model.List, from, to int) error {
	n := len(l.Tasks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return board.ErrIndexOutOfRange
	}

	moving := l.Tasks[from]
	tasks := append(l.Tasks[:from:from], l.Tasks[from+1:]...)
	tasks = append(tasks[:to], append([]model.Task{moving}, tasks[to:]...)...)
	l.Tasks = tasks

	l.SortMode = model.SortModeCustom
	restamp(l)
	return nil
}

// detachAppend moves src.Tasks[i] to the end of dst with its rank cleared.
func detachAppend(src, dst *model.List, i int) {
	t := src.Tasks[i]
	t.Rank = nil
	src.Tasks = append(src.Tasks[:i], src.Tasks[i+1:]...)
	dst.Tasks = append(dst.Tasks, t)
}

package usecase

import (
	"context"
	"strings"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
)

// AddTask fills defaults, appends the task to the list and returns its id.
func (uc *implUseCase) AddTask(ctx context.Context, listID string, input board.TaskInput) (string, error) {
	title, err := trimTitle(input.Title)
	if err != nil {
		return "", err
	}
	due, err := uc.normalizeDue(input.Due)
	if err != nil {
		return "", err
	}
	if err := validateTime(input.Time); err != nil {
		return "", err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil {
		return "", board.ErrListNotFound
	}

	if due == "" && uc.opt.DefaultDueToday {
		due = uc.dateMath.Today(uc.opt.Now())
	}
	tag := strings.TrimSpace(input.Tag)
	if tag == "" {
		tag = l.Title
	}

	t := model.Task{
		ID:    uc.opt.NewID(),
		Title: title,
		Due:   due,
		Time:  input.Time,
		Tag:   tag,
		Done:  input.Done,
	}
	l.Tasks = append(l.Tasks, t)

	return t.ID, uc.persist(ctx)
}

// UpdateTask shallow-merges patch into the task. Unknown lists or tasks are
// ignored.
func (uc *implUseCase) UpdateTask(ctx context.Context, listID, taskID string, patch board.TaskPatch) error {
	if patch.Title != nil {
		title, err := trimTitle(*patch.Title)
		if err != nil {
			return err
		}
		patch.Title = &title
	}
	if patch.Due != nil {
		due, err := uc.normalizeDue(*patch.Due)
		if err != nil {
			return err
		}
		patch.Due = &due
	}
	if patch.Time != nil {
		if err := validateTime(*patch.Time); err != nil {
			return err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil {
		return nil
	}
	i := l.IndexOf(taskID)
	if i < 0 {
		return nil
	}

	t := &l.Tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Due != nil {
		t.Due = *patch.Due
	}
	if patch.Time != nil {
		t.Time = *patch.Time
	}
	if patch.Tag != nil {
		t.Tag = *patch.Tag
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	if patch.Rank != nil {
		rank := *patch.Rank
		t.Rank = &rank
	}

	return uc.persist(ctx)
}

// RemoveTask drops the task, persists, then removes its attachments.
// Unknown lists or tasks are ignored.
func (uc *implUseCase) RemoveTask(ctx context.Context, listID, taskID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil {
		return nil
	}
	i := l.IndexOf(taskID)
	if i < 0 {
		return nil
	}

	l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
	if err := uc.persist(ctx); err != nil {
		return err
	}

	uc.cascade(ctx, taskID)
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
)

// persist writes the current board. Callers hold uc.mu. The in-memory board
// is never rolled back when this fails.
func (uc *implUseCase) persist(ctx context.Context) error {
	if err := uc.repo.Save(ctx, uc.board); err != nil {
		if uc.metrics != nil {
			uc.metrics.BoardPersistFailures.Inc()
		}
		uc.l.Errorf(ctx, "board.usecase.persist: %v", err)
		return err
	}
	return nil
}

// cascade removes the attachments of every given task. Failures are logged
// and do not fail the board mutation.
func (uc *implUseCase) cascade(ctx context.Context, taskIDs ...string) {
	if uc.attachments == nil {
		return
	}
	for _, id := range taskIDs {
		if err := uc.attachments.RemoveTask(ctx, id); err != nil {
			uc.l.Errorf(ctx, "board.usecase.cascade: task %s: %v", id, err)
		}
	}
}

func (uc *implUseCase) findList(listID string) *model.List {
	i := uc.board.IndexOfList(listID)
	if i < 0 {
		return nil
	}
	return &uc.board.Lists[i]
}

func (uc *implUseCase) normalizeDue(due string) (string, error) {
	normalized, err := uc.dateMath.NormalizeDue(due, uc.opt.Now())
	if err != nil {
		return "", board.ErrInvalidDue
	}
	return normalized, nil
}

func validateTime(clock string) error {
	if clock != "" && !datemath.ValidClock(clock) {
		return board.ErrInvalidTime
	}
	return nil
}

// normalizeBoard repairs documents written by older revisions.
func normalizeBoard(b model.Board) model.Board {
	if b.Theme == "" {
		b.Theme = model.DefaultTheme
	}
	if b.Lists == nil {
		b.Lists = []model.List{}
	}
	for i := range b.Lists {
		b.Lists[i].SortMode = b.Lists[i].SortMode.Normalize()
		if b.Lists[i].Tasks == nil {
			b.Lists[i].Tasks = []model.Task{}
		}
	}
	return b
}

// validateIDs checks that list ids are unique and that task ids are unique
// across the whole board. Empty ids are rejected too.
func validateIDs(b model.Board) error {
	lists := make(map[string]struct{}, len(b.Lists))
	tasks := make(map[string]struct{})
	for _, l := range b.Lists {
		if _, dup := lists[l.ID]; dup || l.ID == "" {
			return fmt.Errorf("%w: list %q", board.ErrDuplicateID, l.ID)
		}
		lists[l.ID] = struct{}{}
		for _, t := range l.Tasks {
			if _, dup := tasks[t.ID]; dup || t.ID == "" {
				return fmt.Errorf("%w: task %q", board.ErrDuplicateID, t.ID)
			}
			tasks[t.ID] = struct{}{}
		}
	}
	return nil
}

func restamp(l *model.List) {
	for i := range l.Tasks {
		rank := i
		l.Tasks[i].Rank = &rank
	}
}

func trimTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", board.ErrEmptyTitle
	}
	return title, nil
}

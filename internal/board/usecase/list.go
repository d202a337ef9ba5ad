package usecase

import (
	"context"

	"someday-maybe/internal/model"
)

// AddList appends an empty date-sorted list.
func (uc *implUseCase) AddList(ctx context.Context, title string) (model.List, error) {
	title, err := trimTitle(title)
	if err != nil {
		return model.List{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := model.List{
		ID:       uc.opt.NewID(),
		Title:    title,
		SortMode: model.SortModeDate,
		Tasks:    []model.Task{},
	}
	uc.board.Lists = append(uc.board.Lists, l)

	if err := uc.persist(ctx); err != nil {
		return l.Clone(), err
	}
	return l.Clone(), nil
}

// RenameList changes a list title. Unknown lists are ignored.
func (uc *implUseCase) RenameList(ctx context.Context, listID, title string) error {
	title, err := trimTitle(title)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil {
		return nil
	}
	l.Title = title
	return uc.persist(ctx)
}

// DeleteList removes the attachments of every task in the list, then the
// list itself. Unknown lists are ignored.
func (uc *implUseCase) DeleteList(ctx context.Context, listID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.board.IndexOfList(listID)
	if i < 0 {
		return nil
	}

	ids := make([]string, len(uc.board.Lists[i].Tasks))
	for j, t := range uc.board.Lists[i].Tasks {
		ids[j] = t.ID
	}
	uc.cascade(ctx, ids...)

	uc.board.Lists = append(uc.board.Lists[:i], uc.board.Lists[i+1:]...)
	return uc.persist(ctx)
}

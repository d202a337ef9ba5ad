package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"someday-maybe/internal/board"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
)

// Snapshot returns a deep copy of the board. Changing it has no effect on
// the store.
func (uc *implUseCase) Snapshot(ctx context.Context) model.Board {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.board.Clone()
}

// ReplaceBoard swaps in a whole board, keeping the current theme when the
// incoming one is empty.
func (uc *implUseCase) ReplaceBoard(ctx context.Context, b model.Board) error {
	if err := validateIDs(b); err != nil {
		return err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := b.Clone()
	if next.Theme == "" {
		next.Theme = uc.board.Theme
	}
	uc.board = normalizeBoard(next)
	return uc.persist(ctx)
}

func (uc *implUseCase) Theme(ctx context.Context) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.board.Theme
}

func (uc *implUseCase) SetTheme(ctx context.Context, theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = model.DefaultTheme
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.board.Theme = theme
	return uc.persist(ctx)
}

// ListTasks returns one list in display order.
func (uc *implUseCase) ListTasks(ctx context.Context, listID string) ([]model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := uc.findList(listID)
	if l == nil {
		return nil, board.ErrListNotFound
	}
	return SortTasks(uc.dateMath, *l), nil
}

// TasksDueOn collects every task due on date across all lists.
func (uc *implUseCase) TasksDueOn(ctx context.Context, date string) ([]board.AgendaItem, error) {
	if _, ok := uc.dateMath.DueInstant(date, ""); !ok {
		return nil, board.ErrInvalidDue
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var items []board.AgendaItem
	for _, l := range uc.board.Lists {
		for _, t := range l.Tasks {
			if t.Due == date {
				items = append(items, board.AgendaItem{ListID: l.ID, ListTitle: l.Title, Task: t.Clone()})
			}
		}
	}

	slices.SortStableFunc(items, func(a, b board.AgendaItem) int {
		if c := compareDue(uc.dateMath, a.Task, b.Task); c != 0 {
			return c
		}
		return strings.Compare(a.Task.Title, b.Task.Title)
	})
	return items, nil
}

// Today is TasksDueOn for the current date in the configured timezone.
func (uc *implUseCase) Today(ctx context.Context) []board.AgendaItem {
	items, err := uc.TasksDueOn(ctx, uc.dateMath.Today(uc.opt.Now()))
	if err != nil {
		uc.l.Errorf(ctx, "board.usecase.Today: %v", err)
		return nil
	}
	return items
}

// TasksInMonth buckets the tasks of one month by due date for the calendar.
func (uc *implUseCase) TasksInMonth(ctx context.Context, year, month int) (board.MonthCalendar, error) {
	if month < 1 || month > 12 {
		return board.MonthCalendar{}, board.ErrInvalidMonth
	}
	prefix := fmt.Sprintf("%s-", datemath.ISODate(year, month, 1)[:7])

	uc.mu.Lock()
	defer uc.mu.Unlock()

	days := make(map[string][]model.Task)
	for _, l := range uc.board.Lists {
		for _, t := range l.Tasks {
			if strings.HasPrefix(t.Due, prefix) {
				days[t.Due] = append(days[t.Due], t.Clone())
			}
		}
	}
	for date := range days {
		slices.SortStableFunc(days[date], func(a, b model.Task) int {
			if c := compareDue(uc.dateMath, a, b); c != 0 {
				return c
			}
			return strings.Compare(a.Title, b.Title)
		})
	}

	return board.MonthCalendar{Year: year, Month: month, Days: days}, nil
}

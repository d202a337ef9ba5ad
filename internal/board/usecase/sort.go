package usecase

import (
	"cmp"
	"slices"
	"strings"

	"someday-maybe/internal/model"
	"someday-maybe/pkg/datemath"
)

// SortTasks returns the display order of a list without touching storage
// order. Custom lists follow rank; date lists follow the due instant, then
// rank, then title.
func SortTasks(p *datemath.Parser, l model.List) []model.Task {
	out := make([]model.Task, len(l.Tasks))
	for i, t := range l.Tasks {
		out[i] = t.Clone()
	}

	if l.SortMode.Normalize() == model.SortModeCustom {
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return compareRank(a.Rank, b.Rank)
		})
		return out
	}

	slices.SortStableFunc(out, func(a, b model.Task) int {
		if c := compareDue(p, a, b); c != 0 {
			return c
		}
		if c := compareRank(a.Rank, b.Rank); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	return out
}

// compareDue orders by due instant; undated tasks come last.
func compareDue(p *datemath.Parser, a, b model.Task) int {
	ia, okA := p.DueInstant(a.Due, a.Time)
	ib, okB := p.DueInstant(b.Due, b.Time)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return ia.Compare(ib)
}

// compareRank orders by rank; unranked tasks come last.
func compareRank(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}

package model

// SortMode controls how a list is displayed. It never changes the stored
// order of tasks.
type SortMode string

const (
	SortModeDate   SortMode = "date"
	SortModeCustom SortMode = "custom"
)

// Normalize maps anything that is not SortModeCustom onto SortModeDate. Older
// boards stored "dueAsc" or nothing at all.
func (m SortMode) Normalize() SortMode {
	if m == SortModeCustom {
		return SortModeCustom
	}
	return SortModeDate
}

// Side is where a dragged task lands relative to the target task.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Valid reports whether s is one of the known sides.
func (s Side) Valid() bool {
	return s == SideTop || s == SideBottom
}

// Task is a single card on the board.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due"`  // YYYY-MM-DD or ""
	Time  string `json:"time"` // HH:MM or ""
	Tag   string `json:"tag"`
	Done  bool   `json:"done"`
	Rank  *int   `json:"rank"` // only meaningful under SortModeCustom
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.Rank != nil {
		r := *t.Rank
		t.Rank = &r
	}
	return t
}

// List is an ordered column of tasks.
type List struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	SortMode SortMode `json:"sortMode"`
	Tasks    []Task   `json:"tasks"`
}

// Clone returns a deep copy of l.
func (l List) Clone() List {
	tasks := make([]Task, len(l.Tasks))
	for i, t := range l.Tasks {
		tasks[i] = t.Clone()
	}
	l.Tasks = tasks
	return l
}

// IndexOf returns the position of the task with the given id, or -1.
func (l List) IndexOf(taskID string) int {
	for i, t := range l.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// Board is the whole persisted document.
type Board struct {
	Theme string `json:"theme"`
	Lists []List `json:"lists"`
}

const DefaultTheme = "default"

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	lists := make([]List, len(b.Lists))
	for i, l := range b.Lists {
		lists[i] = l.Clone()
	}
	b.Lists = lists
	return b
}

// IndexOfList returns the position of the list with the given id, or -1.
func (b Board) IndexOfList(listID string) int {
	for i, l := range b.Lists {
		if l.ID == listID {
			return i
		}
	}
	return -1
}

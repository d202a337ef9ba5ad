package board

import "someday-maybe/internal/model"

// --- UseCase Inputs ---

// TaskInput carries the caller-supplied fields of a new task. Zero values
// are filled with defaults by AddTask.
type TaskInput struct {
	Title string
	Due   string // ISO date or a relative phrase such as "tomorrow"
	Time  string
	Tag   string
	Done  bool
}

// TaskPatch is a shallow merge: only non-nil fields are applied.
type TaskPatch struct {
	Title *string
	Due   *string
	Time  *string
	Tag   *string
	Done  *bool
	Rank  *int
}

// MoveInput describes a drag of one task onto a list or onto another task.
type MoveInput struct {
	FromListID   string
	TaskID       string
	ToListID     string
	TargetTaskID string // empty when dropped on the list itself
	Side         model.Side
}

// --- UseCase Outputs ---

// AgendaItem is a task together with the list that owns it.
type AgendaItem struct {
	ListID    string
	ListTitle string
	Task      model.Task
}

// MonthCalendar buckets tasks by their ISO due date.
type MonthCalendar struct {
	Year  int
	Month int
	Days  map[string][]model.Task
}

package board

import (
	"context"

	"someday-maybe/internal/model"
)

// UseCase is the Board Store. Every mutator persists the full board before it
// returns; a failed persist is returned to the caller but the in-memory
// change is kept.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Lists
	AddList(ctx context.Context, title string) (model.List, error)
	RenameList(ctx context.Context, listID, title string) error
	DeleteList(ctx context.Context, listID string) error

	// Tasks
	AddTask(ctx context.Context, listID string, input TaskInput) (string, error)
	UpdateTask(ctx context.Context, listID, taskID string, patch TaskPatch) error
	RemoveTask(ctx context.Context, listID, taskID string) error
	ReorderTask(ctx context.Context, listID string, from, to int) error
	MoveAcrossLists(ctx context.Context, input MoveInput) error

	// Whole board
	Snapshot(ctx context.Context) model.Board
	ReplaceBoard(ctx context.Context, b model.Board) error
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error

	// Read models
	ListTasks(ctx context.Context, listID string) ([]model.Task, error)
	TasksDueOn(ctx context.Context, date string) ([]AgendaItem, error)
	Today(ctx context.Context) []AgendaItem
	TasksInMonth(ctx context.Context, year, month int) (MonthCalendar, error)
}

// AttachmentCleaner removes every attachment owned by a task. The board
// calls it whenever a task leaves the board for good.
type AttachmentCleaner interface {
	RemoveTask(ctx context.Context, taskID string) error
}

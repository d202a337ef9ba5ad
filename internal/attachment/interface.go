package attachment

import (
	"context"
)

// UseCase is the Attachment Store: a directory of files per task.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Open makes sure the directory of taskID exists.
	Open(ctx context.Context, taskID string) error
	// RemoveTask deletes the whole directory of taskID. A missing directory
	// is not an error.
	RemoveTask(ctx context.Context, taskID string) error
	// Clear empties the directory of taskID.
	Clear(ctx context.Context, taskID string) error
	List(ctx context.Context, taskID string) ([]*Attachment, error)
	// Add stores content under fileName or, when that name is taken, under
	// the first free numbered variant (photo.jpg, photo.1.jpg, ...).
	Add(ctx context.Context, taskID, fileName string, content []byte) (*Attachment, error)
	RemoveFile(ctx context.Context, taskID, fileName string) error
	Read(ctx context.Context, taskID, fileName string) (Content, error)

	// Blob URLs
	URL(ctx context.Context, taskID, fileName string) (string, error)
	ReadBlob(ctx context.Context, token string) (Content, error)
	RevokeBlob(ctx context.Context, token string) error
}

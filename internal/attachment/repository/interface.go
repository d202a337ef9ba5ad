package repository

import (
	"context"
	"io"
	"os"
)

// Repository is the file area behind the Attachment Store. Each task owns
// one directory named after its id.
type Repository interface {
	EnsureDir(ctx context.Context, taskID string) error
	RemoveDir(ctx context.Context, taskID string) error
	// List returns the regular files of a task sorted by name. A missing
	// directory yields an empty slice.
	List(ctx context.Context, taskID string) ([]os.FileInfo, error)
	// Create writes a new file. It fails with ErrFileExists instead of
	// overwriting.
	Create(ctx context.Context, taskID, name string, content []byte) (os.FileInfo, error)
	Open(ctx context.Context, taskID, name string) (io.ReadSeekCloser, os.FileInfo, error)
	Remove(ctx context.Context, taskID, name string) error
}

package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"someday-maybe/internal/attachment/repository"
)

func (r *implRepository) EnsureDir(ctx context.Context, taskID string) error {
	if err := r.fs.MkdirAll(r.dir(taskID), 0o755); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureDir"), err)
		return fmt.Errorf("%s: %w", r.dsn("EnsureDir"), err)
	}
	return nil
}

func (r *implRepository) RemoveDir(ctx context.Context, taskID string) error {
	if err := r.fs.RemoveAll(r.dir(taskID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RemoveDir"), err)
		return fmt.Errorf("%s: %w", r.dsn("RemoveDir"), err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, taskID string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(r.fs, r.dir(taskID))
	if errors.Is(err, os.ErrNotExist) {
		return []os.FileInfo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, fmt.Errorf("%s: %w", r.dsn("List"), err)
	}

	files := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.Mode().IsRegular() {
			files = append(files, e)
		}
	}
	return files, nil
}

func (r *implRepository) Create(ctx context.Context, taskID, name string, content []byte) (os.FileInfo, error) {
	p := r.file(taskID, name)

	f, err := r.fs.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil, repository.ErrFileExists
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return nil, fmt.Errorf("%s: %w", r.dsn("Create"), err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		_ = r.fs.Remove(p)
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Create"), err)
		return nil, fmt.Errorf("%s: %w", r.dsn("Create"), err)
	}
	if err := f.Close(); err != nil {
		_ = r.fs.Remove(p)
		return nil, fmt.Errorf("%s: %w", r.dsn("Create"), err)
	}

	info, err := r.fs.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.dsn("Create"), err)
	}
	return info, nil
}

func (r *implRepository) Open(ctx context.Context, taskID, name string) (io.ReadSeekCloser, os.FileInfo, error) {
	p := r.file(taskID, name)

	info, err := r.fs.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, repository.ErrFileNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", r.dsn("Open"), err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, repository.ErrFileNotFound
	}

	f, err := r.fs.Open(p)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Open"), err)
		return nil, nil, fmt.Errorf("%s: %w", r.dsn("Open"), err)
	}
	return f, info, nil
}

func (r *implRepository) Remove(ctx context.Context, taskID, name string) error {
	err := r.fs.Remove(r.file(taskID, name))
	if errors.Is(err, os.ErrNotExist) {
		return repository.ErrFileNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Remove"), err)
		return fmt.Errorf("%s: %w", r.dsn("Remove"), err)
	}
	return nil
}

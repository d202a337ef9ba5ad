package disk

import (
	"fmt"
	"path"

	"github.com/spf13/afero"

	"someday-maybe/internal/attachment/repository"
	"someday-maybe/pkg/log"
)

type implRepository struct {
	fs   afero.Fs
	root string
	l    log.Logger
}

// New creates a Repository that keeps task directories under root inside fs.
// fs is normally an afero.BasePathFs so nothing escapes the sandbox.
func New(fs afero.Fs, root string, l log.Logger) repository.Repository {
	if fs == nil {
		panic("attachment/repository/disk: fs is required")
	}
	return &implRepository{fs: fs, root: root, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("attachment/repository/disk.%s", method)
}

func (r *implRepository) dir(taskID string) string {
	return path.Join(r.root, taskID)
}

func (r *implRepository) file(taskID, name string) string {
	return path.Join(r.root, taskID, name)
}

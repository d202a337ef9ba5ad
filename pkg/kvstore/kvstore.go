// Package kvstore is a small synchronous key-value store that keeps one file
// per key inside an afero filesystem and enforces a total size quota.
package kvstore

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

var (
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
	ErrInvalidKey    = errors.New("kvstore: invalid key")
)

const tmpSuffix = ".tmp"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store is a synchronous key-value store. Set either fully replaces the value
// or leaves the previous one untouched.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStore implements Store on top of an afero.Fs. Every key is a file at the
// root of fs.
type FileStore struct {
	mu    sync.Mutex
	fs    afero.Fs
	quota int64
}

// New creates a FileStore. A quota <= 0 disables the size limit.
func New(fs afero.Fs, quota int64) *FileStore {
	return &FileStore{fs: fs, quota: quota}
}

// NewOS creates a FileStore rooted at dir on the local disk.
func NewOS(dir string, quota int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create %s: %w", dir, err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), quota), nil
}

// Get returns the value for key and whether it exists.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if !keyPattern.MatchString(key) {
		return nil, false, ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores value under key. It fails with ErrQuotaExceeded when the total
// size of all values would pass the quota.
func (s *FileStore) Set(key string, value []byte) error {
	if !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used, err := s.usage(key)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > s.quota {
			return fmt.Errorf("%w: %d of %d bytes used, %d requested", ErrQuotaExceeded, used, s.quota, len(value))
		}
	}

	tmp := key + tmpSuffix
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, key); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("kvstore: commit %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

// usage sums the size of every stored value except the one under skip.
func (s *FileStore) usage(skip string) (int64, error) {
	infos, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		return 0, fmt.Errorf("kvstore: scan: %w", err)
	}

	var total int64
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || name == skip || strings.HasSuffix(name, tmpSuffix) {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

package attachment

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

type blobRef struct {
	taskID   string
	fileName string
}

// URLRegistry hands out opaque tokens that stand for one attachment file.
// A file has at most one live token; tokens live until revoked or until the
// file is removed.
type URLRegistry struct {
	prefix string

	mu      sync.Mutex
	byToken map[string]blobRef
	byRef   map[blobRef]string
}

// NewURLRegistry creates a registry whose URLs start with prefix, for
// example "/api/v1/blobs/".
func NewURLRegistry(prefix string) *URLRegistry {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &URLRegistry{
		prefix:  prefix,
		byToken: make(map[string]blobRef),
		byRef:   make(map[blobRef]string),
	}
}

// Register returns the token of the file, minting one if there is none.
func (r *URLRegistry) Register(taskID, fileName string) string {
	ref := blobRef{taskID: taskID, fileName: fileName}

	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.byRef[ref]; ok {
		return token
	}
	token := uuid.NewString()
	r.byToken[token] = ref
	r.byRef[ref] = token
	return token
}

// URL turns a token into the path clients fetch the blob from.
func (r *URLRegistry) URL(token string) string {
	return r.prefix + token
}

// Resolve returns the file a token points at.
func (r *URLRegistry) Resolve(token string) (taskID, fileName string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.byToken[token]
	return ref.taskID, ref.fileName, ok
}

// Revoke drops a token. It reports whether the token was live.
func (r *URLRegistry) Revoke(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.byToken[token]
	if !ok {
		return false
	}
	delete(r.byToken, token)
	delete(r.byRef, ref)
	return true
}

// RevokeFile drops the token of one file, if any.
func (r *URLRegistry) RevokeFile(taskID, fileName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref := blobRef{taskID: taskID, fileName: fileName}
	if token, ok := r.byRef[ref]; ok {
		delete(r.byToken, token)
		delete(r.byRef, ref)
	}
}

// RevokeTask drops every token that belongs to taskID.
func (r *URLRegistry) RevokeTask(taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ref, token := range r.byRef {
		if ref.taskID == taskID {
			delete(r.byToken, token)
			delete(r.byRef, ref)
		}
	}
}

// Len reports the number of live tokens.
func (r *URLRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byToken)
}

package attachment

import (
	"io"
	"sync"
	"time"
)

// Attachment is one file stored under a task. URL materialises a blob URL
// on first use and keeps it until Revoke.
type Attachment struct {
	TaskID   string
	FileName string
	MimeType string
	Size     int64
	ModTime  time.Time

	urls  *URLRegistry
	mu    sync.Mutex
	token string
}

// NewAttachment builds a record whose URL is served through urls.
func NewAttachment(urls *URLRegistry, taskID, fileName, mimeType string, size int64, modTime time.Time) *Attachment {
	return &Attachment{
		TaskID:   taskID,
		FileName: fileName,
		MimeType: mimeType,
		Size:     size,
		ModTime:  modTime,
		urls:     urls,
	}
}

// URL returns the blob URL of the attachment, registering it if needed.
func (a *Attachment) URL() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token == "" {
		a.token = a.urls.Register(a.TaskID, a.FileName)
	}
	return a.urls.URL(a.token)
}

// Revoke releases the blob URL. It is a no-op when no URL was created.
func (a *Attachment) Revoke() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token == "" {
		return
	}
	a.urls.Revoke(a.token)
	a.token = ""
}

// Content is an open attachment body. The caller closes Body.
type Content struct {
	Attachment *Attachment
	Body       io.ReadSeekCloser
}

package http

import (
	"time"

	"someday-maybe/internal/attachment"
)

type attachmentResp struct {
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

func newAttachmentResp(a *attachment.Attachment) attachmentResp {
	return attachmentResp{
		FileName:   a.FileName,
		MimeType:   a.MimeType,
		Size:       a.Size,
		ModifiedAt: a.ModTime,
	}
}

func (h *handler) newListResp(items []*attachment.Attachment) []attachmentResp {
	out := make([]attachmentResp, len(items))
	for i, a := range items {
		out[i] = newAttachmentResp(a)
	}
	return out
}

type urlResp struct {
	URL string `json:"url"`
}

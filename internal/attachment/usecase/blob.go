package usecase

import (
	"context"

	"someday-maybe/internal/attachment"
)

// URL returns the blob URL of a stored file, creating it on first request.
func (uc *implUseCase) URL(ctx context.Context, taskID, fileName string) (string, error) {
	content, err := uc.Read(ctx, taskID, fileName)
	if err != nil {
		return "", err
	}
	content.Body.Close()
	return content.Attachment.URL(), nil
}

// ReadBlob opens the file a blob token points at. Tokens whose file is gone
// are dropped.
func (uc *implUseCase) ReadBlob(ctx context.Context, token string) (attachment.Content, error) {
	taskID, fileName, ok := uc.urls.Resolve(token)
	if !ok {
		return attachment.Content{}, attachment.ErrBlobNotFound
	}

	content, err := uc.Read(ctx, taskID, fileName)
	if err == attachment.ErrAttachmentNotFound {
		uc.urls.Revoke(token)
		return attachment.Content{}, attachment.ErrBlobNotFound
	}
	return content, err
}

func (uc *implUseCase) RevokeBlob(ctx context.Context, token string) error {
	if !uc.urls.Revoke(token) {
		return attachment.ErrBlobNotFound
	}
	return nil
}

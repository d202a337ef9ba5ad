package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"someday-maybe/internal/attachment"
	"someday-maybe/internal/attachment/repository"
)

func (uc *implUseCase) Open(ctx context.Context, taskID string) error {
	if err := checkTaskID(taskID); err != nil {
		return err
	}
	return uc.repo.EnsureDir(ctx, taskID)
}

func (uc *implUseCase) RemoveTask(ctx context.Context, taskID string) error {
	if err := checkTaskID(taskID); err != nil {
		return err
	}
	if err := uc.repo.RemoveDir(ctx, taskID); err != nil {
		return err
	}
	uc.urls.RevokeTask(taskID)
	return nil
}

func (uc *implUseCase) Clear(ctx context.Context, taskID string) error {
	if err := uc.RemoveTask(ctx, taskID); err != nil {
		return err
	}
	return uc.repo.EnsureDir(ctx, taskID)
}

func (uc *implUseCase) List(ctx context.Context, taskID string) ([]*attachment.Attachment, error) {
	if err := checkTaskID(taskID); err != nil {
		return nil, err
	}

	files, err := uc.repo.List(ctx, taskID)
	if err != nil {
		return nil, err
	}

	out := make([]*attachment.Attachment, 0, len(files))
	for _, info := range files {
		mimeType, err := uc.sniff(ctx, taskID, info.Name())
		if err != nil {
			// Removed between listing and sniffing.
			if errors.Is(err, repository.ErrFileNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, uc.record(taskID, info, mimeType))
	}
	return out, nil
}

// Add probes fileName, then its numbered variants, until a create succeeds.
// Each candidate costs one exclusive create, so concurrent adds never
// overwrite each other. The MIME type is sniffed from content, the same way
// List and Read report it.
func (uc *implUseCase) Add(ctx context.Context, taskID, fileName string, content []byte) (*attachment.Attachment, error) {
	if err := checkTaskID(taskID); err != nil {
		return nil, err
	}
	if err := checkFileName(fileName); err != nil {
		return nil, err
	}
	if err := uc.repo.EnsureDir(ctx, taskID); err != nil {
		uc.countWrite("error")
		return nil, err
	}

	mimeType := mimetype.Detect(content).String()

	name := fileName
	for probe := 0; probe < uc.opt.MaxNameProbes; probe++ {
		info, err := uc.repo.Create(ctx, taskID, name, content)
		if err == nil {
			uc.countWrite("ok")
			return uc.record(taskID, info, mimeType), nil
		}
		if !errors.Is(err, repository.ErrFileExists) {
			uc.countWrite("error")
			return nil, err
		}
		name = nextName(name)
	}

	uc.countWrite("exhausted")
	uc.l.Warnf(ctx, "attachment.usecase.Add: %d names taken for %q in task %s", uc.opt.MaxNameProbes, fileName, taskID)
	return nil, fmt.Errorf("%w: %s", attachment.ErrNameSpaceExhausted, fileName)
}

func (uc *implUseCase) RemoveFile(ctx context.Context, taskID, fileName string) error {
	if err := checkTaskID(taskID); err != nil {
		return err
	}
	if err := checkFileName(fileName); err != nil {
		return err
	}

	if err := uc.repo.Remove(ctx, taskID, fileName); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return attachment.ErrAttachmentNotFound
		}
		return err
	}
	uc.urls.RevokeFile(taskID, fileName)
	return nil
}

func (uc *implUseCase) Read(ctx context.Context, taskID, fileName string) (attachment.Content, error) {
	if err := checkTaskID(taskID); err != nil {
		return attachment.Content{}, err
	}
	if err := checkFileName(fileName); err != nil {
		return attachment.Content{}, err
	}

	body, info, err := uc.repo.Open(ctx, taskID, fileName)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return attachment.Content{}, attachment.ErrAttachmentNotFound
		}
		return attachment.Content{}, err
	}

	mt, err := mimetype.DetectReader(body)
	if err != nil {
		body.Close()
		return attachment.Content{}, fmt.Errorf("attachment.usecase.Read: sniff %s: %w", fileName, err)
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		body.Close()
		return attachment.Content{}, fmt.Errorf("attachment.usecase.Read: rewind %s: %w", fileName, err)
	}

	return attachment.Content{
		Attachment: uc.record(taskID, info, mt.String()),
		Body:       body,
	}, nil
}

// sniff detects the MIME type of a stored file from its first bytes.
func (uc *implUseCase) sniff(ctx context.Context, taskID, fileName string) (string, error) {
	body, _, err := uc.repo.Open(ctx, taskID, fileName)
	if err != nil {
		return "", err
	}
	defer body.Close()

	mt, err := mimetype.DetectReader(body)
	if err != nil {
		return "", fmt.Errorf("attachment.usecase.sniff %s: %w", fileName, err)
	}
	return mt.String(), nil
}

func (uc *implUseCase) record(taskID string, info os.FileInfo, mimeType string) *attachment.Attachment {
	return attachment.NewAttachment(uc.urls, taskID, info.Name(), mimeType, info.Size(), info.ModTime())
}

func (uc *implUseCase) countWrite(result string) {
	if uc.metrics != nil {
		uc.metrics.AttachmentWrites.WithLabelValues(result).Inc()
	}
}

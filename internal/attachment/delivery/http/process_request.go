package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left for boundaries and part headers on top
// of the file limit.
const multipartOverhead = 1 << 20

type uploadReq struct {
	FileName string
	Content  []byte
}

// processUploadReq reads the "file" multipart field into memory. The request
// body is capped before parsing so an oversized upload is never buffered.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	var req uploadReq

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errFileTooLarge
		}
		return req, errMissingFile
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return req, errFileTooLarge
	}

	content, err := readPart(fh)
	if err != nil {
		return req, err
	}

	req.FileName = fh.Filename
	req.Content = content
	return req, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

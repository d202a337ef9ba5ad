package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"someday-maybe/pkg/response"
)

// List godoc
// @Summary     List the attachments of a task
// @Tags        Attachments
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Success     200 {array}  attachmentResp
// @Router      /api/v1/tasks/{task_id}/attachments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.List(ctx, c.Param("task_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(items))
}

// Upload godoc
// @Summary     Attach a file to a task
// @Description Stores the file; a taken name gets a numbered variant (photo.1.jpg).
// @Tags        Attachments
// @Accept      multipart/form-data
// @Produce     json
// @Param       task_id path     string true "Task ID"
// @Param       file    formData file   true "File"
// @Success     201 {object} attachmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No free name left"
// @Router      /api/v1/tasks/{task_id}/attachments [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.Add(ctx, c.Param("task_id"), req.FileName, req.Content)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newAttachmentResp(a))
}

// Clear godoc
// @Summary     Remove every attachment of a task
// @Tags        Attachments
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/{task_id}/attachments [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, c.Param("task_id")); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Remove godoc
// @Summary     Remove one attachment
// @Tags        Attachments
// @Produce     json
// @Param       task_id   path string true "Task ID"
// @Param       file_name path string true "File name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{task_id}/attachments/{file_name} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveFile(ctx, c.Param("task_id"), c.Param("file_name")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateURL godoc
// @Summary     Get a blob URL for an attachment
// @Tags        Attachments
// @Produce     json
// @Param       task_id   path string true "Task ID"
// @Param       file_name path string true "File name"
// @Success     200 {object} urlResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{task_id}/attachments/{file_name}/url [POST]
func (h *handler) CreateURL(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.URL(ctx, c.Param("task_id"), c.Param("file_name"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, urlResp{URL: url})
}

// GetBlob godoc
// @Summary     Download an attachment through its blob URL
// @Tags        Attachments
// @Produce     octet-stream
// @Param       token path string true "Blob token"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/blobs/{token} [GET]
func (h *handler) GetBlob(c *gin.Context) {
	ctx := c.Request.Context()

	content, err := h.uc.ReadBlob(ctx, c.Param("token"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	defer content.Body.Close()

	a := content.Attachment
	c.DataFromReader(http.StatusOK, a.Size, a.MimeType, content.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", a.FileName),
	})
}

// RevokeBlob godoc
// @Summary     Revoke a blob URL
// @Tags        Attachments
// @Produce     json
// @Param       token path string true "Blob token"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/blobs/{token} [DELETE]
func (h *handler) RevokeBlob(c *gin.Context) {
	if err := h.uc.RevokeBlob(c.Request.Context(), c.Param("token")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

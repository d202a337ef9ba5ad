package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	attachmentHTTP "someday-maybe/internal/attachment/delivery/http"
	boardHTTP "someday-maybe/internal/board/delivery/http"
	holidayHTTP "someday-maybe/internal/holiday/delivery/http"
)

// setupBoardDomain registers /api/v1/board, /lists, /agenda and /calendar.
func (srv HTTPServer) setupBoardDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := boardHTTP.New(srv.l, srv.boardUC)
	boardHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Board domain registered")
	return nil
}

// setupAttachmentDomain registers /api/v1/tasks/:task_id/attachments and /blobs.
func (srv HTTPServer) setupAttachmentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := attachmentHTTP.New(srv.l, srv.attachmentUC, srv.maxUploadBytes)
	attachmentHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Attachment domain registered")
	return nil
}

// setupHolidayDomain registers /api/v1/holidays.
func (srv HTTPServer) setupHolidayDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := holidayHTTP.New(srv.l, srv.holidayUC)
	holidayHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Holiday domain registered")
	return nil
}

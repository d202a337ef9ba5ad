package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the attachment and blob endpoints onto rg (normally
// /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	files := rg.Group("/tasks/:task_id/attachments")
	{
		files.GET("", h.List)
		files.POST("", h.Upload)
		files.DELETE("", h.Clear)
		files.DELETE("/:file_name", h.Remove)
		files.POST("/:file_name/url", h.CreateURL)
	}

	blobs := rg.Group("/blobs")
	{
		blobs.GET("/:token", h.GetBlob)
		blobs.DELETE("/:token", h.RevokeBlob)
	}
}

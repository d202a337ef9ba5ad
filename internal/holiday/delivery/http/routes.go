package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the holiday endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	hol := rg.Group("/holidays")
	{
		hol.GET("/:year", h.GetYear)
		hol.GET("/:year/:month/:day", h.GetDay)
	}
}

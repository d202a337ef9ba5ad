package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the board, list, task and agenda endpoints onto rg
// (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	b := rg.Group("/board")
	{
		b.GET("", h.GetBoard)
		b.PUT("", h.ReplaceBoard)
		b.GET("/theme", h.GetTheme)
		b.PUT("/theme", h.SetTheme)
	}

	lists := rg.Group("/lists")
	{
		lists.POST("", h.AddList)
		lists.PATCH("/:list_id", h.RenameList)
		lists.DELETE("/:list_id", h.DeleteList)
		lists.POST("/:list_id/reorder", h.ReorderTask)

		lists.GET("/:list_id/tasks", h.ListTasks)
		lists.POST("/:list_id/tasks", h.AddTask)
		lists.PATCH("/:list_id/tasks/:task_id", h.UpdateTask)
		lists.DELETE("/:list_id/tasks/:task_id", h.RemoveTask)
		lists.POST("/:list_id/tasks/:task_id/move", h.MoveTask)
	}

	rg.GET("/agenda/today", h.Today)
	rg.GET("/agenda/:date", h.Agenda)
	rg.GET("/calendar/:year/:month", h.Calendar)
}

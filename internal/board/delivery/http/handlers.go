package http

import (
	"github.com/gin-gonic/gin"

	"someday-maybe/pkg/response"
)

// GetBoard godoc
// @Summary     Get the whole board
// @Description Returns every list with its tasks in storage order.
// @Tags        Board
// @Produce     json
// @Success     200 {object} boardResp
// @Router      /api/v1/board [GET]
func (h *handler) GetBoard(c *gin.Context) {
	response.OK(c, h.newBoardResp(h.uc.Snapshot(c.Request.Context())))
}

// ReplaceBoard godoc
// @Summary     Import a board
// @Description Replaces the whole board. An empty theme keeps the current one.
// @Tags        Board
// @Accept      json
// @Produce     json
// @Param       body body replaceBoardReq true "Board document"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/board [PUT]
func (h *handler) ReplaceBoard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceBoardReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ReplaceBoard(ctx, req.toBoard()); err != nil {
		h.l.Errorf(ctx, "uc.ReplaceBoard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(h.uc.Snapshot(ctx)))
}

// GetTheme godoc
// @Summary     Get the board theme
// @Tags        Board
// @Produce     json
// @Success     200 {object} themeResp
// @Router      /api/v1/board/theme [GET]
func (h *handler) GetTheme(c *gin.Context) {
	response.OK(c, themeResp{Theme: h.uc.Theme(c.Request.Context())})
}

// SetTheme godoc
// @Summary     Set the board theme
// @Tags        Board
// @Accept      json
// @Produce     json
// @Param       body body themeReq true "Theme"
// @Success     200 {object} themeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/board/theme [PUT]
func (h *handler) SetTheme(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processThemeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetTheme(ctx, req.Theme); err != nil {
		h.l.Errorf(ctx, "uc.SetTheme: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, themeResp{Theme: h.uc.Theme(ctx)})
}

// AddList godoc
// @Summary     Create a list
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body titleReq true "List title"
// @Success     201 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/lists [POST]
func (h *handler) AddList(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	l, err := h.uc.AddList(ctx, req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newListResp(l))
}

// RenameList godoc
// @Summary     Rename a list
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       list_id path string   true "List ID"
// @Param       body    body titleReq true "New title"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/lists/{list_id} [PATCH]
func (h *handler) RenameList(c *gin.Context) {
	ctx := c.Request.Context()

	listID, err := pathParam(c, "list_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processTitleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RenameList(ctx, listID, req.Title); err != nil {
		h.l.Errorf(ctx, "uc.RenameList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteList godoc
// @Summary     Delete a list
// @Description Removes the list, its tasks and all of their attachments.
// @Tags        Lists
// @Produce     json
// @Param       list_id path string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/lists/{list_id} [DELETE]
func (h *handler) DeleteList(c *gin.Context) {
	ctx := c.Request.Context()

	listID, err := pathParam(c, "list_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteList(ctx, listID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListTasks godoc
// @Summary     List tasks in display order
// @Tags        Tasks
// @Produce     json
// @Param       list_id path string true "List ID"
// @Success     200 {array}  taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{list_id}/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	listID, err := pathParam(c, "list_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, listID)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResps(tasks))
}

// AddTask godoc
// @Summary     Create a task
// @Description Due accepts YYYY-MM-DD or phrases such as "tomorrow" or "in 3 days".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       list_id path string        true "List ID"
// @Param       body    body createTaskReq true "Task"
// @Success     201 {object} createTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{list_id}/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	listID, req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.uc.AddTask(ctx, listID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, createTaskResp{ID: id})
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       list_id path string        true "List ID"
// @Param       task_id path string        true "Task ID"
// @Param       body    body updateTaskReq true "Fields to change"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/lists/{list_id}/tasks/{task_id} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	listID, taskID, req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.UpdateTask(ctx, listID, taskID, req.toPatch()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// RemoveTask godoc
// @Summary     Delete a task
// @Description Removes the task and its attachments.
// @Tags        Tasks
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       task_id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/lists/{list_id}/tasks/{task_id} [DELETE]
func (h *handler) RemoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	listID, taskID, err := h.processTaskPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RemoveTask(ctx, listID, taskID); err != nil {
		h.l.Errorf(ctx, "uc.RemoveTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ReorderTask godoc
// @Summary     Reorder a task within its list
// @Description Moves the task at index from to index to and switches the list to custom order.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       list_id path string     true "List ID"
// @Param       body    body reorderReq true "Indices"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/lists/{list_id}/reorder [POST]
func (h *handler) ReorderTask(c *gin.Context) {
	ctx := c.Request.Context()

	listID, req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ReorderTask(ctx, listID, *req.From, *req.To); err != nil {
		h.l.Errorf(ctx, "uc.ReorderTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// MoveTask godoc
// @Summary     Move a task onto a list or next to another task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       list_id path string  true "Source list ID"
// @Param       task_id path string  true "Task ID"
// @Param       body    body moveReq true "Drop target"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/lists/{list_id}/tasks/{task_id}/move [POST]
func (h *handler) MoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	listID, taskID, req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MoveAcrossLists(ctx, req.toInput(listID, taskID)); err != nil {
		h.l.Errorf(ctx, "uc.MoveAcrossLists: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Today godoc
// @Summary     Tasks due today
// @Tags        Agenda
// @Produce     json
// @Success     200 {object} agendaResp
// @Router      /api/v1/agenda/today [GET]
func (h *handler) Today(c *gin.Context) {
	response.OK(c, h.newAgendaResp("", h.uc.Today(c.Request.Context())))
}

// Agenda godoc
// @Summary     Tasks due on a date
// @Tags        Agenda
// @Produce     json
// @Param       date path string true "YYYY-MM-DD"
// @Success     200 {object} agendaResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/agenda/{date} [GET]
func (h *handler) Agenda(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := pathParam(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.TasksDueOn(ctx, date)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAgendaResp(date, items))
}

// Calendar godoc
// @Summary     Tasks of one month bucketed by due date
// @Tags        Agenda
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/{year}/{month} [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cal, err := h.uc.TasksInMonth(ctx, year, month)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(cal))
}

package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathParam returns a required path parameter.
func pathParam(c *gin.Context, name string) (string, error) {
	v := c.Param(name)
	if v == "" {
		return "", errInvalidPath
	}
	return v, nil
}

func (h *handler) processReplaceBoardReq(c *gin.Context) (replaceBoardReq, error) {
	var req replaceBoardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processThemeReq(c *gin.Context) (themeReq, error) {
	var req themeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processTitleReq(c *gin.Context) (titleReq, error) {
	var req titleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateTaskReq(c *gin.Context) (string, createTaskReq, error) {
	var req createTaskReq
	listID, err := pathParam(c, "list_id")
	if err != nil {
		return "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	return listID, req, nil
}

// processTaskPath reads the list_id and task_id path parameters.
func (h *handler) processTaskPath(c *gin.Context) (string, string, error) {
	listID, err := pathParam(c, "list_id")
	if err != nil {
		return "", "", err
	}
	taskID, err := pathParam(c, "task_id")
	if err != nil {
		return "", "", err
	}
	return listID, taskID, nil
}

func (h *handler) processUpdateTaskReq(c *gin.Context) (string, string, updateTaskReq, error) {
	var req updateTaskReq
	listID, taskID, err := h.processTaskPath(c)
	if err != nil {
		return "", "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", req, err
	}
	return listID, taskID, req, nil
}

func (h *handler) processReorderReq(c *gin.Context) (string, reorderReq, error) {
	var req reorderReq
	listID, err := pathParam(c, "list_id")
	if err != nil {
		return "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	return listID, req, nil
}

func (h *handler) processMoveReq(c *gin.Context) (string, string, moveReq, error) {
	var req moveReq
	listID, taskID, err := h.processTaskPath(c)
	if err != nil {
		return "", "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", req, err
	}
	return listID, taskID, req, nil
}

// processCalendarReq parses the :year and :month path parameters.
func (h *handler) processCalendarReq(c *gin.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, errInvalidPath
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, errInvalidPath
	}
	return year, month, nil
}

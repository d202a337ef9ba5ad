package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type dayReq struct {
	Year, Month, Day int
}

func (h *handler) processYearReq(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, errInvalidPath
	}
	return year, nil
}

func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	var err error
	if req.Year, err = strconv.Atoi(c.Param("year")); err != nil {
		return req, errInvalidPath
	}
	if req.Month, err = strconv.Atoi(c.Param("month")); err != nil {
		return req, errInvalidPath
	}
	if req.Day, err = strconv.Atoi(c.Param("day")); err != nil {
		return req, errInvalidPath
	}
	return req, nil
}

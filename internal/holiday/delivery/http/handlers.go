package http

import (
	"github.com/gin-gonic/gin"

	"someday-maybe/pkg/datemath"
	"someday-maybe/pkg/response"
)

// GetYear godoc
// @Summary     List the holidays of a year
// @Description Served from the cache; the first request for a year queries the provider.
// @Tags        Holidays
// @Produce     json
// @Param       year path int true "Year"
// @Success     200 {object} yearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway"
// @Router      /api/v1/holidays/{year} [GET]
func (h *handler) GetYear(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := h.processYearReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	y, err := h.uc.GetYear(ctx, year)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetYear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newYearResp(year, y))
}

// GetDay godoc
// @Summary     Get the holiday on a day
// @Description holiday is null when the day has none.
// @Tags        Holidays
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Param       day   path int true "Day of month"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway"
// @Router      /api/v1/holidays/{year}/{month}/{day} [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	hol, err := h.uc.Get(ctx, req.Year, req.Month, req.Day)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(datemath.ISODate(req.Year, req.Month, req.Day), hol))
}

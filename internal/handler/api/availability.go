package api

import (
	"fmt"
	"net/http"

	reqdto "therapist-management-saas/internal/handler/dto/request"
	resdto "therapist-management-saas/internal/handler/dto/response"
	"therapist-management-saas/internal/handler/httperr"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q      queries.AvailabilityQueries
	export queries.ExportQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, export queries.ExportQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, export: export}
}

// @Summary Day timeline
// @Description Lay out shifts and reservations of one business day on the slot grid
// @Tags availability
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Param therapist_id query string false "Restrict to one therapist"
// @Param slots query bool false "Include slot labels"
// @Success 200 {object} resdto.DayTimelineResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shops/{shopId}/availability [get]
func (h *AvailabilityHandler) DayTimeline(c *gin.Context) {
	params, ok := bindDayTimeline(c)
	if !ok {
		return
	}

	view, err := h.q.GetDayTimeline(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromDayTimelineView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Export day timeline
// @Description Download the day timeline as an XLSX workbook
// @Tags availability
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param shopId path string true "Shop ID"
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Param therapist_id query string false "Restrict to one therapist"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Router /api/shops/{shopId}/availability/export [get]
func (h *AvailabilityHandler) Export(c *gin.Context) {
	params, ok := bindDayTimeline(c)
	if !ok {
		return
	}

	file, err := h.export.ExportDayTimeline(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// @Summary Timeline grid
// @Description Slot layout of the operating window for a granularity
// @Tags availability
// @Produce json
// @Param granularity query int false "Minutes per slot (defaults to the configured grid)"
// @Success 200 {object} resdto.GridResponse
// @Failure 400 {object} httperr.Response
// @Router /api/timeline/grid [get]
func (h *AvailabilityHandler) Grid(c *gin.Context) {
	var query reqdto.GridQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.GetGrid(query.Granularity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromGridView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bindDayTimeline(c *gin.Context) (queries.DayTimelineParams, bool) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return queries.DayTimelineParams{}, false
	}
	var query reqdto.DayTimelineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return queries.DayTimelineParams{}, false
	}
	params, err := query.ToParams(shopID)
	if err != nil {
		abortWithBindError(c, err)
		return queries.DayTimelineParams{}, false
	}
	return params, true
}

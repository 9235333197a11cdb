package api

import (
	"net/http"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"
	"therapist-management-saas/internal/handler/httperr"
	"therapist-management-saas/internal/pkg/errs"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var usecaseErrors = []errorMapping{
	{queries.ErrCourseNotFound, http.StatusNotFound, "Course not found"},
	{queries.ErrOptionNotFound, http.StatusNotFound, "Option not found"},
	{queries.ErrInvalidQuote, http.StatusBadRequest, "Invalid request"},
	{queries.ErrInvalidGranularity, http.StatusBadRequest, "Invalid granularity"},
	{queries.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},
	{reservation.ErrInvalidDesignation, http.StatusBadRequest, "Invalid designation"},
	{reservation.ErrCourseRequired, http.StatusBadRequest, "Invalid request"},
	{timeline.ErrOutOfOperatingWindow, http.StatusBadRequest, "Start time is outside operating hours"},
	{timeline.ErrInvalidTimePoint, http.StatusBadRequest, "Invalid time"},
	{timeline.ErrInvalidInterval, http.StatusBadRequest, "Invalid time range"},
}

// abortWithUsecaseError maps known usecase and domain errors; anything else is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
}

func shopIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return uuid.Nil, false
	}
	return id, true
}

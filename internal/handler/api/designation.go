package api

import (
	"net/http"

	reqdto "therapist-management-saas/internal/handler/dto/request"
	resdto "therapist-management-saas/internal/handler/dto/response"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DesignationHandler struct {
	q queries.DesignationQueries
}

func NewDesignationHandler(q queries.DesignationQueries) *DesignationHandler {
	return &DesignationHandler{q: q}
}

// @Summary Suggest designation
// @Description Suggest free or confirmed nomination from the customer's history with a therapist
// @Tags pricing
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param customer_id query string true "Customer ID"
// @Param therapist_id query string true "Therapist ID"
// @Param exclude_reservation_id query string false "Reservation being edited"
// @Success 200 {object} resdto.DesignationSuggestionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shops/{shopId}/designation [get]
func (h *DesignationHandler) Suggest(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	var query reqdto.DesignationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	params, err := query.ToParams(shopID)
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.Suggest(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDesignationSuggestionView(view))
}

package api

import (
	"net/http"

	reqdto "therapist-management-saas/internal/handler/dto/request"
	resdto "therapist-management-saas/internal/handler/dto/response"
	"therapist-management-saas/internal/handler/httperr"
	"therapist-management-saas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote price
// @Description Compute the price breakdown for a course, options and designation
// @Tags pricing
// @Accept json
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.QuotePriceRequest true "Quote request"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId}/price [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	var req reqdto.QuotePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	params, err := req.ToParams(shopID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPriceQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

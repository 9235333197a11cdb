//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"therapist-management-saas/internal/handler/api"
	reqdto "therapist-management-saas/internal/handler/dto/request"
	resdto "therapist-management-saas/internal/handler/dto/response"
	"therapist-management-saas/internal/usecase/queries"
	"therapist-management-saas/tests/common/httptest"
	queriesmock "therapist-management-saas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DesignationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDesignationQueries
	shopID      uuid.UUID
}

func (s *DesignationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDesignationQueries(s.mockCtrl)
	s.shopID = uuid.New()

	s.router.GET("/shops/:shopId/designation", api.NewDesignationHandler(s.mockQueries).Suggest)
}

func (s *DesignationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDesignationHandlerSuite(t *testing.T) {
	suite.Run(t, new(DesignationHandlerTestSuite))
}

func (s *DesignationHandlerTestSuite) TestSuggest() {
	customerID, therapistID, editing := uuid.New(), uuid.New(), uuid.New()
	base := fmt.Sprintf("/shops/%s/designation", s.shopID)

	s.Run("success: repeat customer gets confirmed", func() {
		want := queries.SuggestParams{
			ShopID:               s.shopID,
			CustomerID:           customerID,
			TherapistID:          therapistID,
			ExcludeReservationID: &editing,
		}
		s.mockQueries.EXPECT().Suggest(gomock.Any(), want).
			Return(&queries.DesignationSuggestionView{Designation: "confirmed", HasPriorReservation: true}, nil).Times(1)

		url := fmt.Sprintf("%s?customer_id=%s&therapist_id=%s&exclude_reservation_id=%s", base, customerID, therapistID, editing)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.DesignationSuggestionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Designation)
		s.True(body.HasPriorReservation)
	})

	s.Run("error: 400 Bad Request when an id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("%s?customer_id=%s", base, customerID), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		httptest.AssertValidationField(s.T(), rec, "therapist_id")
	})

	s.Run("error: 500 when history lookup fails", func() {
		s.mockQueries.EXPECT().Suggest(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")).Times(1)

		url := fmt.Sprintf("%s?customer_id=%s&therapist_id=%s", base, customerID, therapistID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

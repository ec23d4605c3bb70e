//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"servicebook/internal/handler/api"
	reqdto "servicebook/internal/handler/dto/request"
	resdto "servicebook/internal/handler/dto/response"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"
	"servicebook/tests/common/httptest"
	commandsmock "servicebook/tests/mock/commands"
	queriesmock "servicebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	ownerID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.ownerID = uuid.New()

	// Stands in for the JWT middleware: requests carry a bearer token and the
	// owner identity lands in the context under the same key.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("owner_id", s.ownerID)
		c.Next()
	}

	bookings := s.router.Group("/api/bookings", authMiddleware)
	bookings.GET("", s.handler.ListBookings)
	bookings.GET("/:id", s.handler.GetBooking)
	bookings.PATCH("/:id/status", s.handler.TransitionStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/api/bookings"

	s.Run("success: returns 200 OK with bookings", func() {
		views := []queries.BookingView{
			*cannedBookingView(s.ownerID),
			*cannedBookingView(s.ownerID),
		}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.ownerID, queries.BookingFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: query parameters become the filter", func() {
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		expected := queries.BookingFilter{Status: "pending", From: &from, Limit: 10}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.ownerID, gomock.Cond(func(f queries.BookingFilter) bool {
			return f.Status == expected.Status && f.Limit == expected.Limit &&
				f.From != nil && f.From.Equal(from) && f.To == nil
		})).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=pending&from=2025-06-01T00:00:00Z&limit=10", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed filter", func() {
		cases := []struct {
			name  string
			query string
		}{
			{name: "bad from timestamp", query: "?from=yesterday"},
			{name: "bad to timestamp", query: "?to=tomorrow"},
			{name: "non-numeric limit", query: "?limit=many"},
			{name: "zero limit", query: "?limit=0"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with the booking", func() {
		view := cannedBookingView(s.ownerID)
		view.ID = bookingID
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID, s.ownerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 404 Not Found for another owner's booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID, s.ownerID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

// ================================================================================
// TestTransitionStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitionStatus() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String() + "/status"
	reqBody := reqdto.TransitionBookingRequest{Status: "confirmed"}

	s.Run("success: returns 200 OK with the updated booking", func() {
		view := cannedBookingView(s.ownerID)
		view.ID = bookingID
		view.Status = "confirmed"
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, s.ownerID, reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
		s.True(decimal.NewFromInt(200).Equal(response.TotalPrice))
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, s.ownerID, reqBody).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 when the transition is not allowed", func() {
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, s.ownerID, reqBody).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Status transition not allowed")
	})

	s.Run("error: 400 Bad Request when the status field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

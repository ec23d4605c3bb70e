//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"servicebook/internal/domain/service"
	"servicebook/internal/handler/api"
	reqdto "servicebook/internal/handler/dto/request"
	resdto "servicebook/internal/handler/dto/response"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"
	"servicebook/tests/common/httptest"
	"servicebook/tests/common/testutil"
	commandsmock "servicebook/tests/mock/commands"
	queriesmock "servicebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockCatalog  *queriesmock.MockCatalogQueries
	mockAreas    *queriesmock.MockAreaQueries
	mockDiscount *queriesmock.MockDiscountQueries
	handler      *api.PublicHandler

	ownerID uuid.UUID
}

func (s *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAreas = queriesmock.NewMockAreaQueries(s.mockCtrl)
	s.mockDiscount = queriesmock.NewMockDiscountQueries(s.mockCtrl)
	s.handler = api.NewPublicHandler(s.mockBookings, s.mockCatalog, s.mockAreas, s.mockDiscount)

	s.ownerID = uuid.New()

	s.router.GET("/api/public/providers", s.handler.FindProviders)

	public := s.router.Group("/api/public/:owner_id")
	public.GET("/services", s.handler.ListServices)
	public.GET("/coverage", s.handler.CheckCoverage)
	public.POST("/discounts/preview", s.handler.PreviewDiscount)
	public.POST("/bookings", s.handler.CreateBooking)
}

func (s *PublicHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

func (s *PublicHandlerTestSuite) bookingURL() string {
	return "/api/public/" + s.ownerID.String() + "/bookings"
}

func (s *PublicHandlerTestSuite) bookingRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		ZipCode:       "12345",
		ServiceDate:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Services:      []reqdto.BookingServiceRequest{{ServiceID: uuid.New(), Quantity: 1}},
	}
}

func (s *PublicHandlerTestSuite) bookingHeaders(key string) map[string]string {
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	return headers
}

func cannedBookingView(ownerID uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		ZipCode:       "12345",
		ServiceDate:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(200),
		TotalPrice:    decimal.NewFromInt(200),
		Status:        "pending",
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *PublicHandlerTestSuite) TestCreateBooking() {
	url := s.bookingURL()
	reqBody := s.bookingRequest()
	idempotencyKey := uuid.NewString()

	s.Run("success: returns 201 Created for a new booking", func() {
		view := cannedBookingView(s.ownerID)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.bookingHeaders(idempotencyKey))

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Jane Doe", response.CustomerName)
		s.True(view.TotalPrice.Equal(response.TotalPrice))
	})

	s.Run("success: returns 200 OK when the booking is replayed", func() {
		view := cannedBookingView(s.ownerID)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.bookingHeaders(idempotencyKey))

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request without an Idempotency-Key header", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 Bad Request when the Idempotency-Key is not a UUID", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.bookingHeaders("not-a-uuid"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 Bad Request for a malformed owner id", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/public/not-a-uuid/bookings", reqBody, s.bookingHeaders(idempotencyKey))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid owner ID format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customer_name", mutate: testutil.Field("customer_name", nil)},
			{name: "missing field: zip_code", mutate: testutil.Field("zip_code", nil)},
			{name: "missing field: service_date", mutate: testutil.Field("service_date", nil)},
			{name: "invalid email", mutate: testutil.Field("customer_email", "not-an-email")},
			{name: "missing services", mutate: testutil.Field("services", nil)},
			{name: "empty services", mutate: testutil.Field("services", []any{})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, s.bookingHeaders(idempotencyKey))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 with field details when option values fail validation", func() {
		optionID := uuid.New()
		validationErr := &commands.ValidationError{Fields: []service.FieldError{
			{OptionID: optionID, Field: "Bedrooms", Message: "Bedrooms is required"},
		}}
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return(nil, validationErr).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.bookingHeaders(idempotencyKey))

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body struct {
			Error  string `json:"error"`
			Fields []struct {
				OptionID string `json:"option_id"`
				Field    string `json:"field"`
				Message  string `json:"message"`
			} `json:"fields"`
		}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Validation failed", body.Error)
		s.Require().Len(body.Fields, 1)
		s.Equal(optionID.String(), body.Fields[0].OptionID)
		s.Equal("Bedrooms is required", body.Fields[0].Message)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown service",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Unknown service",
			},
			{
				name:           "service not bookable",
				commandsError:  commands.ErrServiceNotBookable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not available for booking",
			},
			{
				name:           "zip outside the service area",
				commandsError:  commands.ErrZipNotCovered,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "outside the service area",
			},
			{
				name:           "discount exhausted",
				commandsError:  commands.ErrDiscountExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "usage limit reached",
			},
			{
				name:           "idempotent request still processing",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already being processed",
			},
			{
				name:           "idempotency key reused with a different body",
				commandsError:  commands.ErrIdempotencyConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "different request body",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CreateBooking(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.bookingHeaders(idempotencyKey))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListServices
// ================================================================================

func (s *PublicHandlerTestSuite) TestListServices() {
	url := "/api/public/" + s.ownerID.String() + "/services"

	s.Run("success: returns 200 OK with bookable services only", func() {
		views := []queries.ServiceView{
			{ID: uuid.New(), Name: "Deep Clean", Price: decimal.NewFromInt(100), Status: "active"},
			{ID: uuid.New(), Name: "Window Wash", Price: decimal.NewFromInt(40), Status: "active"},
		}
		s.mockCatalog.EXPECT().ListBookableServices(gomock.Any(), s.ownerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Deep Clean", response[0].Name)
	})

	s.Run("error: 400 Bad Request for a malformed owner id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/public/nope/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid owner ID format")
	})
}

// ================================================================================
// TestCheckCoverage
// ================================================================================

func (s *PublicHandlerTestSuite) TestCheckCoverage() {
	url := "/api/public/" + s.ownerID.String() + "/coverage"

	s.Run("success: covered ZIP returns the area label", func() {
		s.mockAreas.EXPECT().CheckCoverage(gomock.Any(), s.ownerID, "12345").
			Return(&queries.AreaView{ID: uuid.New(), ZipCode: "12345", Label: "Downtown", Active: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?zip=12345", nil, "")

		var response resdto.CoverageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Covered)
		s.Equal("12345", response.ZipCode)
		s.Equal("Downtown", response.Label)
	})

	s.Run("success: uncovered ZIP is 200 with covered=false", func() {
		s.mockAreas.EXPECT().CheckCoverage(gomock.Any(), s.ownerID, "99999").
			Return(nil, queries.ErrZipNotCovered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?zip=99999", nil, "")

		var response resdto.CoverageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Covered)
		s.Equal("99999", response.ZipCode)
	})

	s.Run("error: 400 Bad Request for a malformed ZIP", func() {
		s.mockAreas.EXPECT().CheckCoverage(gomock.Any(), s.ownerID, "abc").
			Return(nil, queries.ErrInvalidZip).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?zip=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ZIP code format")
	})
}

// ================================================================================
// TestFindProviders
// ================================================================================

func (s *PublicHandlerTestSuite) TestFindProviders() {
	url := "/api/public/providers"

	s.Run("success: returns the owners covering the ZIP", func() {
		ownerA := uuid.New()
		ownerB := uuid.New()
		s.mockAreas.EXPECT().FindOwnersCovering(gomock.Any(), "12345").
			Return([]uuid.UUID{ownerA, ownerB}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?zip=12345", nil, "")

		var response struct {
			OwnerIDs []string `json:"owner_ids"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{ownerA.String(), ownerB.String()}, response.OwnerIDs)
	})

	s.Run("error: 400 Bad Request for a malformed ZIP", func() {
		s.mockAreas.EXPECT().FindOwnersCovering(gomock.Any(), "nope").
			Return(nil, queries.ErrInvalidZip).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?zip=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ZIP code format")
	})
}

// ================================================================================
// TestPreviewDiscount
// ================================================================================

func (s *PublicHandlerTestSuite) TestPreviewDiscount() {
	url := "/api/public/" + s.ownerID.String() + "/discounts/preview"
	reqBody := reqdto.PreviewDiscountRequest{Code: "SUMMER10", Subtotal: decimal.NewFromInt(200)}

	s.Run("success: valid code returns the computed amount", func() {
		s.mockDiscount.EXPECT().Preview(gomock.Any(), s.ownerID, "SUMMER10", gomock.Any()).
			Return(&queries.DiscountPreview{Code: "SUMMER10", Valid: true, DiscountAmount: decimal.NewFromInt(20)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DiscountPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.True(decimal.NewFromInt(20).Equal(response.DiscountAmount))
	})

	s.Run("success: invalid code reports the reason without consuming a use", func() {
		s.mockDiscount.EXPECT().Preview(gomock.Any(), s.ownerID, "SUMMER10", gomock.Any()).
			Return(&queries.DiscountPreview{Code: "SUMMER10", Valid: false, Reason: "expired", DiscountAmount: decimal.Zero}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DiscountPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("expired", response.Reason)
	})

	s.Run("success: unknown code is 200 with valid=false", func() {
		s.mockDiscount.EXPECT().Preview(gomock.Any(), s.ownerID, "SUMMER10", gomock.Any()).
			Return(nil, queries.ErrDiscountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DiscountPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("code not found", response.Reason)
	})

	s.Run("error: 400 Bad Request when the body is malformed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": 42}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

package api

import (
	"errors"
	"net/http"

	reqdto "servicebook/internal/handler/dto/request"
	resdto "servicebook/internal/handler/dto/response"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PublicHandler serves the unauthenticated booking form endpoints. Every
// route is scoped to one owner account through the owner_id path segment.
type PublicHandler struct {
	bookingCommands commands.BookingCommands
	catalogQueries  queries.CatalogQueries
	areaQueries     queries.AreaQueries
	discountQueries queries.DiscountQueries
}

func NewPublicHandler(
	bookingCommands commands.BookingCommands,
	catalogQueries queries.CatalogQueries,
	areaQueries queries.AreaQueries,
	discountQueries queries.DiscountQueries,
) *PublicHandler {
	return &PublicHandler{
		bookingCommands: bookingCommands,
		catalogQueries:  catalogQueries,
		areaQueries:     areaQueries,
		discountQueries: discountQueries,
	}
}

// @Summary List bookable services
// @Description Active services of one owner, for the public booking form
// @Tags public
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Success 200 {array} resdto.ServiceResponse
// @Router /public/{owner_id}/services [get]
func (h *PublicHandler) ListServices(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListBookableServices(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Check ZIP coverage
// @Description Whether the owner serves the given ZIP code
// @Tags public
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param zip query string true "ZIP code"
// @Success 200 {object} resdto.CoverageResponse
// @Failure 400 {object} map[string]string
// @Router /public/{owner_id}/coverage [get]
func (h *PublicHandler) CheckCoverage(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}
	zip := c.Query("zip")

	view, err := h.areaQueries.CheckCoverage(c.Request.Context(), ownerID, zip)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidZip):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ZIP code format"})
		case errors.Is(err, queries.ErrZipNotCovered):
			c.JSON(http.StatusOK, resdto.CoverageResponse{Covered: false, ZipCode: zip})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.CoverageResponse{Covered: true, ZipCode: view.ZipCode, Label: view.Label})
}

// @Summary Find providers for a ZIP
// @Description Owner accounts that actively service the given ZIP code
// @Tags public
// @Produce json
// @Param zip query string true "ZIP code"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} map[string]string
// @Router /public/providers [get]
func (h *PublicHandler) FindProviders(c *gin.Context) {
	zip := c.Query("zip")

	owners, err := h.areaQueries.FindOwnersCovering(c.Request.Context(), zip)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidZip) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ZIP code format"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ids := make([]string, len(owners))
	for i, id := range owners {
		ids[i] = id.String()
	}
	c.JSON(http.StatusOK, gin.H{"owner_ids": ids})
}

// @Summary Preview discount code
// @Description Validate a code against a subtotal without consuming a use
// @Tags public
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param request body reqdto.PreviewDiscountRequest true "Code and subtotal"
// @Success 200 {object} resdto.DiscountPreviewResponse
// @Router /public/{owner_id}/discounts/preview [post]
func (h *PublicHandler) PreviewDiscount(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	var req reqdto.PreviewDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preview, err := h.discountQueries.Preview(c.Request.Context(), ownerID, req.Code, req.Subtotal)
	if err != nil {
		if errors.Is(err, queries.ErrDiscountNotFound) {
			c.JSON(http.StatusOK, resdto.DiscountPreviewResponse{
				Code:           req.Code,
				Valid:          false,
				Reason:         "code not found",
				DiscountAmount: decimal.Zero,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountPreview(preview))
}

// @Summary Create booking
// @Description Submit the public booking form. Requires an Idempotency-Key header.
// @Tags public
// @Accept json
// @Produce json
// @Param owner_id path string true "Owner ID"
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed from an earlier identical request"
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /public/{owner_id}/bookings [post]
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}
	idempotencyKey, ok := getIdempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), ownerID, req, idempotencyKey)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if result.IsReplayed {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PublicHandler) respondBookingError(c *gin.Context, err error) {
	var validationErr *commands.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]gin.H, len(validationErr.Fields))
		for i, f := range validationErr.Fields {
			fields[i] = gin.H{
				"option_id": f.OptionID.String(),
				"field":     f.Field,
				"message":   f.Message,
			}
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": fields})
		return
	}

	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown service in booking"})
	case errors.Is(err, commands.ErrServiceNotBookable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Service is not available for booking"})
	case errors.Is(err, commands.ErrOptionMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Option does not belong to a booked service"})
	case errors.Is(err, commands.ErrZipNotCovered):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "ZIP code is outside the service area"})
	case errors.Is(err, commands.ErrDiscountNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Discount code not found"})
	case errors.Is(err, commands.ErrInvalidDiscount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Discount code is not valid"})
	case errors.Is(err, commands.ErrDiscountExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": "Discount code usage limit reached"})
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Request is already being processed"})
	case errors.Is(err, commands.ErrIdempotencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key was used with a different request body"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner ID format"})
		return uuid.Nil, false
	}
	return ownerID, true
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header is required"})
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key must be a UUID"})
		return uuid.Nil, false
	}
	return key, true
}

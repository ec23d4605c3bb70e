package api

import (
	"errors"
	"net/http"

	reqdto "servicebook/internal/handler/dto/request"
	resdto "servicebook/internal/handler/dto/response"
	"servicebook/internal/handler/middleware"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
	discountQueries  queries.DiscountQueries
}

func NewDiscountHandler(discountCommands commands.DiscountCommands, discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
		discountQueries:  discountQueries,
	}
}

// @Summary List discount codes
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DiscountResponse
// @Router /discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.discountQueries.ListDiscounts(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountViews(views))
}

// @Summary Create discount code
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	discountID, err := h.discountCommands.CreateDiscount(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": discountID.String()})
}

// @Summary Update discount code
// @Tags discounts
// @Accept json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Discount"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [put]
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount ID format"})
		return
	}

	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.discountCommands.UpdateDiscount(c.Request.Context(), discountID, ownerID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete discount code
// @Tags discounts
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount ID format"})
		return
	}

	if err := h.discountCommands.DeleteDiscount(c.Request.Context(), discountID, ownerID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DiscountHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDiscountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"error": "Code already in use"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

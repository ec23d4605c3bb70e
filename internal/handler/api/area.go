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

type AreaHandler struct {
	areaCommands commands.AreaCommands
	areaQueries  queries.AreaQueries
}

func NewAreaHandler(areaCommands commands.AreaCommands, areaQueries queries.AreaQueries) *AreaHandler {
	return &AreaHandler{
		areaCommands: areaCommands,
		areaQueries:  areaQueries,
	}
}

// @Summary List service areas
// @Tags areas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AreaResponse
// @Router /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.areaQueries.ListAreas(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAreaViews(views))
}

// @Summary Create service area
// @Tags areas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAreaRequest true "Area"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	areaID, err := h.areaCommands.CreateArea(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": areaID.String()})
}

// @Summary Update service area
// @Tags areas
// @Accept json
// @Security BearerAuth
// @Param id path string true "Area ID"
// @Param request body reqdto.UpdateAreaRequest true "Area"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /areas/{id} [put]
func (h *AreaHandler) UpdateArea(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area ID format"})
		return
	}

	var req reqdto.UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.areaCommands.UpdateArea(c.Request.Context(), areaID, ownerID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete service area
// @Tags areas
// @Security BearerAuth
// @Param id path string true "Area ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /areas/{id} [delete]
func (h *AreaHandler) DeleteArea(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid area ID format"})
		return
	}

	if err := h.areaCommands.DeleteArea(c.Request.Context(), areaID, ownerID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AreaHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAreaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
	case errors.Is(err, commands.ErrDuplicateZip):
		c.JSON(http.StatusConflict, gin.H{"error": "ZIP code already registered"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

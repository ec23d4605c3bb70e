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

type ServiceHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewServiceHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *ServiceHandler {
	return &ServiceHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List services
// @Description List all services of the authenticated owner
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Failure 401 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.catalogQueries.ListServices(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Description Get one service with its options
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	view, err := h.catalogQueries.GetService(c.Request.Context(), serviceID, ownerID)
	if err != nil {
		if errors.Is(err, queries.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateService(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateService(c.Request.Context(), serviceID, ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Delete service
// @Description Delete a service and all of its options
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	if err := h.catalogCommands.DeleteService(c.Request.Context(), serviceID, ownerID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add option
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.OptionRequest true "Option"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id}/options [post]
func (h *ServiceHandler) AddOption(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	var req reqdto.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.AddOption(c.Request.Context(), serviceID, ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update option
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param option_id path string true "Option ID"
// @Param request body reqdto.OptionRequest true "Option"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id}/options/{option_id} [put]
func (h *ServiceHandler) UpdateOption(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}
	optionID, err := uuid.Parse(c.Param("option_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option ID format"})
		return
	}

	var req reqdto.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateOption(c.Request.Context(), optionID, serviceID, ownerID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Delete option
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param option_id path string true "Option ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id}/options/{option_id} [delete]
func (h *ServiceHandler) DeleteOption(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}
	optionID, err := uuid.Parse(c.Param("option_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option ID format"})
		return
	}

	if err := h.catalogCommands.DeleteOption(c.Request.Context(), optionID, serviceID, ownerID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reorder options
// @Description Rewrite the display order of a service's options
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.ReorderOptionsRequest true "Ordered option IDs"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /services/{id}/options/order [put]
func (h *ServiceHandler) ReorderOptions(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	var req reqdto.ReorderOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogCommands.ReorderOptions(c.Request.Context(), serviceID, ownerID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrServiceNotFound), errors.Is(err, queries.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, commands.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
	case errors.Is(err, commands.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": "Name already in use"})
	case errors.Is(err, commands.ErrOptionMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Option list does not match the service"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

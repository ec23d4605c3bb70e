package api

import (
	"net/http"

	resdto "servicebook/internal/handler/dto/response"
	"servicebook/internal/handler/middleware"
	"servicebook/internal/pkg/clock"
	"servicebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	analyticsQueries queries.AnalyticsQueries
	clock            clock.Clock
}

func NewDashboardHandler(analyticsQueries queries.AnalyticsQueries, clk clock.Clock) *DashboardHandler {
	return &DashboardHandler{
		analyticsQueries: analyticsQueries,
		clock:            clk,
	}
}

// @Summary Dashboard summary
// @Description Booking counts, revenue, top services, monthly trend and recent bookings
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.analyticsQueries.Dashboard(c.Request.Context(), ownerID, h.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromDashboardView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

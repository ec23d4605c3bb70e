package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"servicebook/internal/handler/api"
	"servicebook/internal/handler/middleware"
	"servicebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	serviceHandler *api.ServiceHandler,
	areaHandler *api.AreaHandler,
	discountHandler *api.DiscountHandler,
	bookingHandler *api.BookingHandler,
	dashboardHandler *api.DashboardHandler,
	publicHandler *api.PublicHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, serviceHandler, areaHandler, discountHandler, bookingHandler, dashboardHandler, publicHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	serviceHandler *api.ServiceHandler,
	areaHandler *api.AreaHandler,
	discountHandler *api.DiscountHandler,
	bookingHandler *api.BookingHandler,
	dashboardHandler *api.DashboardHandler,
	publicHandler *api.PublicHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/public/providers", publicHandler.FindProviders)

		public := apiGroup.Group("/public/:owner_id")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/services", Handler: publicHandler.ListServices},
				{Method: http.MethodGet, Path: "/coverage", Handler: publicHandler.CheckCoverage},
				{Method: http.MethodPost, Path: "/discounts/preview", Handler: publicHandler.PreviewDiscount},
				{Method: http.MethodPost, Path: "/bookings", Handler: publicHandler.CreateBooking},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: serviceHandler.ListServices},
				{Method: http.MethodPost, Path: "", Handler: serviceHandler.CreateService},
				{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.GetService},
				{Method: http.MethodPut, Path: "/:id", Handler: serviceHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: serviceHandler.DeleteService},
				{Method: http.MethodPost, Path: "/:id/options", Handler: serviceHandler.AddOption},
				{Method: http.MethodPut, Path: "/:id/options/order", Handler: serviceHandler.ReorderOptions},
				{Method: http.MethodPut, Path: "/:id/options/:option_id", Handler: serviceHandler.UpdateOption},
				{Method: http.MethodDelete, Path: "/:id/options/:option_id", Handler: serviceHandler.DeleteOption},
			})
		}

		areas := apiGroup.Group("/areas")
		areas.Use(authMiddleware.RequireAuth())
		{
			addRoutes(areas, []route{
				{Method: http.MethodGet, Path: "", Handler: areaHandler.ListAreas},
				{Method: http.MethodPost, Path: "", Handler: areaHandler.CreateArea},
				{Method: http.MethodPut, Path: "/:id", Handler: areaHandler.UpdateArea},
				{Method: http.MethodDelete, Path: "/:id", Handler: areaHandler.DeleteArea},
			})
		}

		discounts := apiGroup.Group("/discounts")
		discounts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "", Handler: discountHandler.ListDiscounts},
				{Method: http.MethodPost, Path: "", Handler: discountHandler.CreateDiscount},
				{Method: http.MethodPut, Path: "/:id", Handler: discountHandler.UpdateDiscount},
				{Method: http.MethodDelete, Path: "/:id", Handler: discountHandler.DeleteDiscount},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.TransitionStatus},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "", Handler: dashboardHandler.GetDashboard},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

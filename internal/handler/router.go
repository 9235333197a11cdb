package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"therapist-management-saas/internal/handler/api"
	reqdto "therapist-management-saas/internal/handler/dto/request"
	"therapist-management-saas/internal/handler/middleware"
	"therapist-management-saas/internal/pkg/config"
	"therapist-management-saas/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Pricing      *api.PricingHandler
	Designation  *api.DesignationHandler
	Availability *api.AvailabilityHandler
}

func NewHandlers(pricing *api.PricingHandler, designation *api.DesignationHandler, availability *api.AvailabilityHandler) Handlers {
	return Handlers{
		Pricing:      pricing,
		Designation:  designation,
		Availability: availability,
	}
}

// m may be nil when metrics are disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", healthCheck)

	if m != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		shops := apiGroup.Group("/shops/:shopId")
		addRoutes(shops, []route{
			{Method: http.MethodPost, Path: "/price", Handler: h.Pricing.Quote},
			{Method: http.MethodGet, Path: "/designation", Handler: h.Designation.Suggest},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.DayTimeline},
			{Method: http.MethodGet, Path: "/availability/export", Handler: h.Availability.Export},
		})

		tl := apiGroup.Group("/timeline")
		addRoutes(tl, []route{
			{Method: http.MethodGet, Path: "/grid", Handler: h.Availability.Grid},
		})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

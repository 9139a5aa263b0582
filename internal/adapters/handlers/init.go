package handlers

import (
	"net/http"

	"github.com/iwtcode/stepperTorque/internal/config"
	"github.com/iwtcode/stepperTorque/internal/interfaces"
	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, metrics *observability.SimulationCollector) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	if cfg.Metrics.Enable {
		router.Use(MetricsMiddleware(metrics))
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", h.Simulate)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("", h.GetSessions)
			sessions.GET("/:id", h.GetSession)
			sessions.DELETE("/:id", h.DeleteSession)
			sessions.POST("/:id/motors", h.AddMotor)
			sessions.DELETE("/:id/motors/:index", h.RemoveMotor)
			sessions.PUT("/:id/params", h.SetParameters)
			sessions.GET("/:id/curve", h.GetCurve)
		}
	}

	return router
}

package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Oignontom8283/timeclass/internal/auth"
)

// SetupRouter собирает все маршруты API. ws: обработчик потока отсчёта,
// пустой adminSecret отключает /admin.
func SetupRouter(h *Handler, ws gin.HandlerFunc, adminSecret []byte) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", HealthHandler)
	r.GET("/status", h.GetStatusHandler)

	schools := r.Group("/schools")
	{
		schools.GET("", h.GetSchoolsHandler)
		schools.GET("/:id", h.GetSchoolHandler)
		schools.GET("/:id/slots/:index", h.GetSlotHandler)
		schools.GET("/:id/slots/:index/countdown", h.GetCountdownHandler)
		if ws != nil {
			schools.GET("/:id/slots/:index/ws", ws)
		}
	}

	transformGroup := r.Group("/transform")
	{
		transformGroup.POST("", SetTransformHandler)
		transformGroup.POST("/uniform-scale", UniformScaleHandler)
	}

	if len(adminSecret) > 0 {
		admin := r.Group("/admin", auth.AuthMiddleware(adminSecret))
		{
			admin.POST("/reload", h.ReloadHandler)
			admin.GET("/loads", h.GetLoadRunsHandler)
		}
	}

	return r
}

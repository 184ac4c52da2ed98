package router

import (
	"github.com/gin-gonic/gin"

	"slotwise/internal/handler"
	"slotwise/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	importH *handler.ImportHandler,
	scheduleH *handler.ScheduleHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Import pipeline: upload, review, commit
	imports := v1.Group("/imports")
	imports.POST("", importH.Upload)
	imports.GET("/:id", importH.Get)
	imports.GET("/:id/diagnostics", importH.Diagnostics)
	imports.GET("/:id/crosscheck", importH.CrossCheck)
	imports.GET("/:id/crosscheck/export", importH.ExportCrossCheck)
	imports.PUT("/:id/slots", importH.UpdateSlots)
	imports.POST("/:id/commit", importH.Commit)

	// Committed schedules
	schedule := v1.Group("/schedule")
	schedule.GET("", scheduleH.List)
	schedule.GET("/export", scheduleH.Export)
	schedule.GET("/runs", scheduleH.ImportRuns)

	return r
}

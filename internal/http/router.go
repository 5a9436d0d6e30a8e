package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine with all API routes registered.
// Uses RouterConfig to receive all dependencies, improving testability.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	healthController := NewHealthController(cfg.Version)
	router.GET("/health", healthController.Health)

	deviceImporter := NewDeviceImportController(cfg.Pipeline, cfg.Auditor, cfg.MaxFileSizeMB, cfg.MaxBatchFiles)
	router.POST("/api/import/device", deviceImporter.Preview)
	router.POST("/api/import/device/confirm", deviceImporter.Confirm)

	sessionsController := NewSessionsController(cfg.SessionsRepo, cfg.Auditor)
	router.GET("/api/sessions", sessionsController.List)
	router.GET("/api/sessions/:id", sessionsController.Get)
	router.DELETE("/api/sessions/:id", sessionsController.Delete)

	if cfg.AuditRepo != nil {
		auditController := NewAuditController(cfg.AuditRepo)
		router.GET("/api/audit", auditController.List)
	}

	return router
}

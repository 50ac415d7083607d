package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "catalogue-etl/docs"
	"catalogue-etl/internal/api/handler"
	"catalogue-etl/internal/config"
	"catalogue-etl/internal/logger"
	"catalogue-etl/pkg/router"
)

// NewRouter wires the run-management endpoints and the swagger UI.
func NewRouter(cfg config.Config, log *logger.Logger) *router.Router {
	r := router.New()
	h := handler.NewRunHandler(cfg, log)

	r.POST("/api/v1/runs", h.CreateRun)
	r.GET("/api/v1/runs", h.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/report", h.GetRunReport)
	r.GET("/api/v1/runs/*/errors", h.GetRunErrors)
	r.GET("/api/v1/download/*/*", h.DownloadArtifact)
	// Generic run route last
	r.GET("/api/v1/runs/*", h.GetRun)

	r.Mount("/swagger", httpSwagger.WrapHandler)

	return r
}

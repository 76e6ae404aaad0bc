package router

import (
	"github.com/mohamedlefliti/projetennaciria/internal/config"
	"github.com/mohamedlefliti/projetennaciria/internal/export"
	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/handler"
	"github.com/mohamedlefliti/projetennaciria/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter configures the Gin engine for the transaction form API.
func SetupRouter(cfg *config.Config, ctl *form.Controller, store export.Lister, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	api := r.Group("/api")

	formHandler := handler.NewFormHandler(ctl)
	api.GET("/transactions", formHandler.ListTransactions)
	api.POST("/transactions", formHandler.AddTransaction)
	api.PUT("/transactions/selected", formHandler.UpdateSelected)
	api.DELETE("/transactions/selected", formHandler.DeleteSelected)

	api.POST("/selection/:index", formHandler.SelectRow)
	api.DELETE("/selection", formHandler.Unselect)

	api.PUT("/form", formHandler.SetFields)
	api.POST("/form/clear", formHandler.ClearFields)

	exportHandler := handler.NewExportHandler(ctl, store, cfg.Export.Sheet)
	api.POST("/export", exportHandler.ExportFile)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

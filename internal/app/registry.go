package app

import (
	"database/sql"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/dataquality"
	"github.com/loskinha8/gestao-colab/internal/export"
	"github.com/loskinha8/gestao-colab/internal/folha"
	"github.com/loskinha8/gestao-colab/internal/middleware"
	"github.com/loskinha8/gestao-colab/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
) error {
	// --- Repositories ---
	colaboradorRepo := colaborador.NewRepository(gormDB)
	folhaRepo := folha.NewRepository(gormDB)

	// --- Services ---
	colaboradorService := colaborador.NewService(db, colaboradorRepo)
	folhaService := folha.NewService(db, folhaRepo, colaboradorRepo)
	dataQualityService := dataquality.NewService(colaboradorRepo)
	reportService := report.NewService(colaboradorRepo)

	// --- Handlers ---
	colaboradorHandler := colaborador.NewHandler(colaboradorService)
	folhaHandler := folha.NewHandler(folhaService)
	dataQualityHandler := dataquality.NewHandler(dataQualityService)
	reportHandler := report.NewHandler(reportService)
	exportHandler := export.NewHandler(colaboradorRepo, folhaRepo)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		colaborador.RegisterRoutes(api, colaboradorHandler)
		folha.RegisterRoutes(api, folhaHandler)
		dataquality.RegisterRoutes(api, dataQualityHandler)
		report.RegisterRoutes(api, reportHandler)
		export.RegisterRoutes(api, exportHandler)
	}

	return nil
}

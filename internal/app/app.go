package app

import (
	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/folha"
	"github.com/loskinha8/gestao-colab/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the database, runs migrations and registers every module
// on the router.
func BuildApp(router *gin.Engine) error {
	dsn := connection.ResolveDSN()
	if dsn == "" {
		zap.L().Fatal("database connection is not configured",
			zap.String("hint", "set DATABASE_URL or the DB_* variables"),
		)
	}

	gormDB, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(&colaborador.Colaborador{}, &folha.Entrada{}); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB)
}

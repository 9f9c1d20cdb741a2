package folha

import (
	"errors"
	"strings"

	folhaerrors "github.com/loskinha8/gestao-colab/internal/folha/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return folhaerrors.ErrEntradaNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_folha_colaborador_mes" {
			return folhaerrors.ErrEntradaDuplicada
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_folha_colaborador_mes") {
		return folhaerrors.ErrEntradaDuplicada
	}

	return err
}

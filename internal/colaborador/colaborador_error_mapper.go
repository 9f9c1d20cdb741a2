package colaborador

import (
	"errors"

	colaboradorerrors "github.com/loskinha8/gestao-colab/internal/colaborador/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return colaboradorerrors.ErrColaboradorNotFound
	}

	return err
}

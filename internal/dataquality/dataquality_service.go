package dataquality

import (
	"context"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
)

//go:generate mockgen -source=dataquality_service.go -destination=mock/dataquality_service_mock.go -package=mock
type Service interface {
	Report(ctx context.Context, filter colaborador.Filter) (Report, error)
}

type service struct {
	colabRepo colaborador.Repository
}

func NewService(colabRepo colaborador.Repository) Service {
	return &service{colabRepo: colabRepo}
}

// Report re-fetches and re-evaluates on every call; there is no cached state
// to go stale.
func (s *service) Report(ctx context.Context, filter colaborador.Filter) (Report, error) {
	colabs, err := s.colabRepo.FindAll(ctx, filter)
	if err != nil {
		return Report{}, err
	}

	return Evaluate(colabs), nil
}

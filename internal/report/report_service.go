package report

import (
	"context"
	"time"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Antiguidade(ctx context.Context, filter colaborador.Filter) (TenureReport, error)
	FolhaPorUnidade(ctx context.Context, filter colaborador.Filter) ([]UnitPayroll, error)
	Comparativo(ctx context.Context, filter colaborador.Filter) ([]UnitSummary, error)
}

type service struct {
	colabRepo colaborador.Repository
	now       func() time.Time
}

func NewService(colabRepo colaborador.Repository) Service {
	return &service{colabRepo: colabRepo, now: time.Now}
}

// NewServiceAt pins the reference instant; used by tests.
func NewServiceAt(colabRepo colaborador.Repository, now func() time.Time) Service {
	return &service{colabRepo: colabRepo, now: now}
}

func (s *service) Antiguidade(ctx context.Context, filter colaborador.Filter) (TenureReport, error) {
	colabs, err := s.colabRepo.FindAll(ctx, filter)
	if err != nil {
		return TenureReport{}, err
	}
	return BuildTenureReport(colabs, s.now()), nil
}

func (s *service) FolhaPorUnidade(ctx context.Context, filter colaborador.Filter) ([]UnitPayroll, error) {
	colabs, err := s.colabRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return PayrollByUnit(colabs), nil
}

func (s *service) Comparativo(ctx context.Context, filter colaborador.Filter) ([]UnitSummary, error) {
	colabs, err := s.colabRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return UnitDashboard(colabs, s.now()), nil
}

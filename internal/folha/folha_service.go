package folha

import (
	"context"
	"database/sql"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	folhaerrors "github.com/loskinha8/gestao-colab/internal/folha/errors"
	"github.com/loskinha8/gestao-colab/internal/shared/contextutil"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
	"github.com/loskinha8/gestao-colab/internal/shared/money"

	"go.uber.org/zap"
)

//go:generate mockgen -source=folha_service.go -destination=mock/folha_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	List(ctx context.Context, filter EntradaFilter) ([]EntradaResponse, error)
	GetByID(ctx context.Context, id int64) (EntradaResponse, error)
	Update(ctx context.Context, id int64, req UpdateEntradaRequest) (EntradaResponse, error)
	Resumo(ctx context.Context, inicio, fim string) ([]ResumoUnidade, error)
	Recibo(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	colabRepo colaborador.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, colabRepo colaborador.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("folha.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("folha.service")
	}
	return &service{db: db, repo: repo, colabRepo: colabRepo, logger: l}
}

// Generate snapshots every active employee of the unit into payroll lines for
// the reference month. The whole batch runs in one transaction: a failure
// midway inserts nothing, and the unique index turns a re-run (or a racing
// concurrent run) into Geradas == 0 instead of duplicate lines.
func (s *service) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	mes, ok := dateutil.ParseMonth(req.MesReferencia)
	if !ok {
		return GenerateResponse{}, folhaerrors.ErrMesInvalido
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ativo := 1
	colabs, err := s.colabRepo.FindAll(ctx, colaborador.Filter{
		Unidades: []string{req.Unidade},
		Ativo:    &ativo,
	})
	if err != nil {
		return GenerateResponse{}, err
	}

	entradas := make([]Entrada, 0, len(colabs))
	for _, c := range colabs {
		entradas = append(entradas, Entrada{
			ColaboradorID:    c.ID,
			ColaboradorNome:  c.Nome,
			CPF:              c.CPF,
			Unidade:          c.Unidade,
			MesReferencia:    mes,
			SalarioBaseCents: c.SalarioCents,
		})
	}

	inserted, err := qtx.BulkInsertSkipDuplicates(ctx, entradas)
	if err != nil {
		return GenerateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return GenerateResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("folha gerada",
		zap.String("unidade", req.Unidade),
		zap.String("mes", mes.Format("2006-01")),
		zap.Int64("geradas", inserted),
		zap.Int64("ignoradas", int64(len(entradas))-inserted),
	)

	return GenerateResponse{
		Unidade:       req.Unidade,
		MesReferencia: mes.Format("2006-01"),
		Geradas:       inserted,
		Ignoradas:     int64(len(entradas)) - inserted,
	}, nil
}

func (s *service) List(
	ctx context.Context,
	filter EntradaFilter,
) ([]EntradaResponse, error) {
	entradas, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]EntradaResponse, len(entradas))
	for i, e := range entradas {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (EntradaResponse, error) {
	entrada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EntradaResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*entrada), nil
}

// Update registers the actual payment on an existing line. Zero parses are
// kept as NULL so an untouched field stays "not yet paid" instead of "paid
// nothing".
func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateEntradaRequest,
) (EntradaResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntradaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entrada, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EntradaResponse{}, mapRepositoryError(err)
	}

	entrada.ValorDepositadoCents = parseOptionalCents(req.ValorDepositado)
	entrada.HorasExtrasCents = parseOptionalCents(req.HorasExtras)
	entrada.BonusCents = parseOptionalCents(req.Bonus)
	entrada.DescontosCents = parseOptionalCents(req.Descontos)
	entrada.ComissoesCents = parseOptionalCents(req.Comissoes)
	entrada.DataPagamento = dateutil.ParseField(req.DataPagamento).TimePtr()
	entrada.Observacoes = req.Observacoes

	if err := qtx.Update(ctx, entrada); err != nil {
		return EntradaResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EntradaResponse{}, err
	}

	return mapToResponse(*entrada), nil
}

func (s *service) Resumo(
	ctx context.Context,
	inicio, fim string,
) ([]ResumoUnidade, error) {
	from, okFrom := dateutil.ParseMonth(inicio)
	to, okTo := dateutil.ParseMonth(fim)
	if !okFrom || !okTo || to.Before(from) {
		return nil, folhaerrors.ErrPeriodoInvalido
	}

	resumo, err := s.repo.PeriodSummary(ctx, from, to)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return resumo, nil
}

func (s *service) Recibo(
	ctx context.Context,
	id int64,
) ([]byte, error) {
	entrada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return buildReciboPDF(reciboLines(*entrada))
}

func parseOptionalCents(s string) *int64 {
	if s == "" {
		return nil
	}
	v := money.FromDisplay(s)
	return &v
}

func mapToResponse(e Entrada) EntradaResponse {
	return EntradaResponse{
		ID:              e.ID,
		ColaboradorID:   e.ColaboradorID,
		ColaboradorNome: e.ColaboradorNome,
		CPF:             e.CPF,
		Unidade:         e.Unidade,
		MesReferencia:   e.MesReferencia.Format("2006-01"),
		SalarioBase:     money.ToDisplay(e.SalarioBaseCents),
		ValorDepositado: money.ToDisplayPtr(e.ValorDepositadoCents),
		HorasExtras:     displayOrEmpty(e.HorasExtrasCents),
		Bonus:           displayOrEmpty(e.BonusCents),
		Descontos:       displayOrEmpty(e.DescontosCents),
		Comissoes:       displayOrEmpty(e.ComissoesCents),
		DataPagamento:   dateutil.FromTimePtr(e.DataPagamento).Format(),
		Observacoes:     e.Observacoes,
	}
}

func displayOrEmpty(cents *int64) string {
	if cents == nil {
		return ""
	}
	return money.ToDisplay(*cents)
}

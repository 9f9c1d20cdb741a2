package colaborador

import (
	"context"
	"database/sql"
	"strings"

	colaboradorerrors "github.com/loskinha8/gestao-colab/internal/colaborador/errors"
	"github.com/loskinha8/gestao-colab/internal/shared/contextutil"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
	"github.com/loskinha8/gestao-colab/internal/shared/money"
	"github.com/loskinha8/gestao-colab/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -source=colaborador_service.go -destination=mock/colaborador_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateColaboradorRequest) (ColaboradorResponse, error)
	List(ctx context.Context, filter Filter, page, limit int) ([]ColaboradorResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id int64) (ColaboradorResponse, error)
	Update(ctx context.Context, id int64, req UpdateColaboradorRequest) (ColaboradorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("colaborador.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("colaborador.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateColaboradorRequest,
) (ColaboradorResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return ColaboradorResponse{}, colaboradorerrors.ErrNomeObrigatorio
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ColaboradorResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	colab := applyRequest(&Colaborador{}, req)

	if err := qtx.Create(ctx, colab); err != nil {
		return ColaboradorResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ColaboradorResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("colaborador criado",
		zap.Int64("id", colab.ID),
		zap.String("unidade", colab.Unidade),
	)

	return mapToResponse(*colab), nil
}

// List returns every match when limit <= 0; otherwise one page plus its
// pagination meta.
func (s *service) List(
	ctx context.Context,
	filter Filter,
	page, limit int,
) ([]ColaboradorResponse, *response.PaginationMeta, error) {
	if limit <= 0 {
		colabs, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, nil, mapRepositoryError(err)
		}
		return mapToListResponse(colabs), nil, nil
	}

	if page < 1 {
		page = 1
	}
	colabs, total, err := s.repo.FindPage(ctx, filter, page, limit)
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}

	meta := response.NewPaginationMeta(total, page, limit)
	return mapToListResponse(colabs), &meta, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (ColaboradorResponse, error) {
	colab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ColaboradorResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*colab), nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateColaboradorRequest,
) (ColaboradorResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return ColaboradorResponse{}, colaboradorerrors.ErrNomeObrigatorio
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ColaboradorResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Lookup miss must surface before any mutation happens.
	existing, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ColaboradorResponse{}, mapRepositoryError(err)
	}

	colab := applyRequest(existing, req)

	if err := qtx.Update(ctx, colab); err != nil {
		return ColaboradorResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ColaboradorResponse{}, err
	}

	return mapToResponse(*colab), nil
}

func (s *service) Delete(
	ctx context.Context,
	id int64,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("colaborador removido", zap.Int64("id", id))
	return nil
}

// applyRequest maps form fields onto the entity. Currency and dates parse
// leniently: garbage becomes 0 / NULL, matching the original forms.
func applyRequest(colab *Colaborador, req CreateColaboradorRequest) *Colaborador {
	colab.Nome = req.Nome
	colab.Funcao = req.Funcao
	colab.Unidade = req.Unidade
	colab.SalarioCents = money.FromDisplay(req.Salario)
	if req.Ativo {
		colab.Ativo = 1
	} else {
		colab.Ativo = 0
	}
	colab.Admissao = dateutil.ParseField(req.Admissao).TimePtr()
	colab.Saida = dateutil.ParseField(req.Saida).TimePtr()
	colab.Emissao = dateutil.ParseField(req.Emissao).TimePtr()
	colab.Nascimento = dateutil.ParseField(req.Nascimento).TimePtr()
	colab.CPF = req.CPF
	colab.RGOutro = req.RGOutro
	colab.OrgaoEmissor = req.OrgaoEmissor
	colab.EstadoCivil = req.EstadoCivil
	colab.Escolaridade = req.Escolaridade
	colab.Nacionalidade = req.Nacionalidade
	colab.Naturalidade = req.Naturalidade
	colab.ContaDeposito = req.ContaDeposito
	colab.CEP = req.CEP
	colab.Bairro = req.Bairro
	colab.Endereco = req.Endereco
	colab.Telefone = req.Telefone
	colab.Observacoes = req.Observacoes
	return colab
}

func mapToResponse(colab Colaborador) ColaboradorResponse {
	return ColaboradorResponse{
		ID:             colab.ID,
		Nome:           colab.Nome,
		Funcao:         colab.Funcao,
		Unidade:        colab.Unidade,
		SalarioCents:   colab.SalarioCents,
		SalarioReais:   colab.SalarioReais(),
		SalarioDisplay: money.ToDisplay(colab.SalarioCents),
		Ativo:          colab.Ativo,
		AtivoTexto:     colab.AtivoTexto(),
		Admissao:       dateutil.FromTimePtr(colab.Admissao).Format(),
		Saida:          dateutil.FromTimePtr(colab.Saida).Format(),
		CPF:            colab.CPF,
		RGOutro:        colab.RGOutro,
		OrgaoEmissor:   colab.OrgaoEmissor,
		Emissao:        dateutil.FromTimePtr(colab.Emissao).Format(),
		Nascimento:     dateutil.FromTimePtr(colab.Nascimento).Format(),
		EstadoCivil:    colab.EstadoCivil,
		Escolaridade:   colab.Escolaridade,
		Nacionalidade:  colab.Nacionalidade,
		Naturalidade:   colab.Naturalidade,
		ContaDeposito:  colab.ContaDeposito,
		CEP:            colab.CEP,
		Bairro:         colab.Bairro,
		Endereco:       colab.Endereco,
		Telefone:       colab.Telefone,
		Observacoes:    colab.Observacoes,
	}
}

func mapToListResponse(colabs []Colaborador) []ColaboradorResponse {
	res := make([]ColaboradorResponse, len(colabs))
	for i, colab := range colabs {
		res[i] = mapToResponse(colab)
	}
	return res
}

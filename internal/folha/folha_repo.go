package folha

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=folha_repo.go -destination=mock/folha_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// BulkInsertSkipDuplicates inserts the batch, silently skipping rows that
	// hit the (colaborador_id, mes_referencia) unique index. Returns how many
	// rows were actually inserted.
	BulkInsertSkipDuplicates(ctx context.Context, entradas []Entrada) (int64, error)
	FindAll(ctx context.Context, filter EntradaFilter) ([]Entrada, error)
	FindByID(ctx context.Context, id int64) (*Entrada, error)
	Update(ctx context.Context, entrada *Entrada) error
	PeriodSummary(ctx context.Context, from, to time.Time) ([]ResumoUnidade, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session onto the caller's transaction, so every
// statement issued through the returned repository joins it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.WithContext(context.Background())
	db.Statement.ConnPool = tx
	return &repository{
		db: db,
		tx: tx,
	}
}

func (r *repository) BulkInsertSkipDuplicates(ctx context.Context, entradas []Entrada) (int64, error) {
	if len(entradas) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "colaborador_id"}, {Name: "mes_referencia"}},
			DoNothing: true,
		}).
		Create(&entradas)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAll(ctx context.Context, filter EntradaFilter) ([]Entrada, error) {
	var entradas []Entrada
	q := r.db.WithContext(ctx).Model(&Entrada{})
	if filter.Unidade != "" {
		q = q.Where("unidade = ?", filter.Unidade)
	}
	if filter.Mes != nil {
		q = q.Where("mes_referencia = ?", *filter.Mes)
	}
	err := q.Order("mes_referencia DESC, colaborador_nome ASC").Find(&entradas).Error
	return entradas, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Entrada, error) {
	var entrada Entrada
	err := r.db.WithContext(ctx).First(&entrada, "id = ?", id).Error
	return &entrada, err
}

func (r *repository) Update(ctx context.Context, entrada *Entrada) error {
	return r.db.WithContext(ctx).Save(entrada).Error
}

// PeriodSummary joins nothing: the denormalized unidade on each line is the
// grouping key, so historical lines keep their unit even after transfers.
func (r *repository) PeriodSummary(ctx context.Context, from, to time.Time) ([]ResumoUnidade, error) {
	var resumo []ResumoUnidade
	query := `
SELECT
	unidade,
	COALESCE(SUM(salario_base_cents), 0)      AS total_base_cents,
	COALESCE(SUM(valor_depositado_cents), 0)  AS total_depositado_cents,
	COUNT(DISTINCT colaborador_id)            AS colaboradores
FROM folha_pagamento
WHERE mes_referencia BETWEEN ? AND ?
GROUP BY unidade
ORDER BY total_base_cents DESC
`

	err := r.db.WithContext(ctx).Raw(query, from, to).Scan(&resumo).Error
	return resumo, err
}

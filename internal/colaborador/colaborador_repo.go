package colaborador

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=colaborador_repo.go -destination=mock/colaborador_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, colab *Colaborador) error
	FindAll(ctx context.Context, filter Filter) ([]Colaborador, error)
	// FindPage returns one page of matching rows plus the unpaged total.
	FindPage(ctx context.Context, filter Filter, page, limit int) ([]Colaborador, int64, error)
	FindByID(ctx context.Context, id int64) (*Colaborador, error)
	Update(ctx context.Context, colab *Colaborador) error
	Delete(ctx context.Context, id int64) error
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

func (r *repository) Create(ctx context.Context, colab *Colaborador) error {
	return r.db.WithContext(ctx).Create(colab).Error
}

func applyFilter(q *gorm.DB, filter Filter) *gorm.DB {
	if len(filter.Unidades) > 0 {
		q = q.Where("unidade IN ?", filter.Unidades)
	}
	if filter.Ativo != nil {
		q = q.Where("ativo = ?", *filter.Ativo)
	}
	return q
}

// FindAll returns the full projection of matching rows ordered by name. An
// empty result is a plain empty slice, never an error.
func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Colaborador, error) {
	var colabs []Colaborador
	q := applyFilter(r.db.WithContext(ctx).Model(&Colaborador{}), filter)
	err := q.Order("nome ASC").Find(&colabs).Error
	return colabs, err
}

func (r *repository) FindPage(ctx context.Context, filter Filter, page, limit int) ([]Colaborador, int64, error) {
	base := applyFilter(r.db.WithContext(ctx).Model(&Colaborador{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var colabs []Colaborador
	err := base.Session(&gorm.Session{}).
		Order("nome ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&colabs).Error
	return colabs, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Colaborador, error) {
	var colab Colaborador
	err := r.db.WithContext(ctx).First(&colab, "id = ?", id).Error
	return &colab, err
}

func (r *repository) Update(ctx context.Context, colab *Colaborador) error {
	return r.db.WithContext(ctx).Save(colab).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Colaborador{}, "id = ?", id).Error
}

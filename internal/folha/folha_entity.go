package folha

import "time"

// Entrada is one employee's payroll line for one reference month. Name, CPF
// and unit are denormalized on purpose: the line must stay stable even if the
// employee record changes later. The composite unique index is what makes
// bulk generation idempotent under concurrent requests.
type Entrada struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	ColaboradorID   int64     `gorm:"not null;uniqueIndex:uq_folha_colaborador_mes"`
	ColaboradorNome string    `gorm:"not null"`
	CPF             string    `gorm:"column:cpf"`
	Unidade         string    `gorm:"index"`
	MesReferencia   time.Time `gorm:"type:date;not null;uniqueIndex:uq_folha_colaborador_mes"`

	// Amounts in centavos. ValorDepositado stays NULL until the payment is
	// registered.
	SalarioBaseCents     int64 `gorm:"not null;default:0"`
	ValorDepositadoCents *int64
	HorasExtrasCents     *int64
	BonusCents           *int64
	DescontosCents       *int64
	ComissoesCents       *int64

	DataPagamento *time.Time `gorm:"type:date"`
	Observacoes   string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Entrada) TableName() string {
	return "folha_pagamento"
}

// EntradaFilter narrows listings by unit and/or reference month.
type EntradaFilter struct {
	Unidade string
	Mes     *time.Time
}

// ResumoUnidade is the per-unit aggregation over a range of reference months.
type ResumoUnidade struct {
	Unidade              string `json:"unidade"`
	TotalBaseCents       int64  `json:"total_base_cents"`
	TotalDepositadoCents int64  `json:"total_depositado_cents"`
	Colaboradores        int64  `json:"colaboradores"`
}

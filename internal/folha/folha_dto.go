package folha

type GenerateRequest struct {
	Unidade       string `json:"unidade" binding:"required"`
	MesReferencia string `json:"mes_referencia" binding:"required"` // "2025-03" or "2025-03-01"
}

type GenerateResponse struct {
	Unidade       string `json:"unidade"`
	MesReferencia string `json:"mes_referencia"`
	Geradas       int64  `json:"geradas"`
	Ignoradas     int64  `json:"ignoradas"`
}

// UpdateEntradaRequest fills in the actual payment after the fact. Monetary
// fields arrive in display form and parse leniently.
type UpdateEntradaRequest struct {
	ValorDepositado string `json:"valor_depositado"`
	HorasExtras     string `json:"horas_extras"`
	Bonus           string `json:"bonus"`
	Descontos       string `json:"descontos"`
	Comissoes       string `json:"comissoes"`
	DataPagamento   string `json:"data_pagamento"`
	Observacoes     string `json:"observacoes"`
}

type EntradaResponse struct {
	ID              int64  `json:"id"`
	ColaboradorID   int64  `json:"colaborador_id"`
	ColaboradorNome string `json:"colaborador_nome"`
	CPF             string `json:"cpf,omitempty"`
	Unidade         string `json:"unidade,omitempty"`
	MesReferencia   string `json:"mes_referencia"`
	SalarioBase     string `json:"salario_base"`
	ValorDepositado string `json:"valor_depositado"`
	HorasExtras     string `json:"horas_extras,omitempty"`
	Bonus           string `json:"bonus,omitempty"`
	Descontos       string `json:"descontos,omitempty"`
	Comissoes       string `json:"comissoes,omitempty"`
	DataPagamento   string `json:"data_pagamento,omitempty"`
	Observacoes     string `json:"observacoes,omitempty"`
}

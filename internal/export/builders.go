package export

import (
	"time"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/folha"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
	"github.com/loskinha8/gestao-colab/internal/shared/money"
)

var colaboradorHeaders = map[string]string{
	"id":             "ID",
	"nome":           "Nome",
	"conta_deposito": "Conta de Depósito",
	"nascimento":     "Nascimento",
	"cpf":            "CPF",
	"rg_outro":       "RG/Outro",
	"orgao_emissor":  "Órgão Emissor",
	"emissao":        "Emissão",
	"admissao":       "Admissão",
	"saida":          "Saída",
	"ativo":          "Status",
	"funcao":         "Função",
	"salario":        "Salário (R$)",
	"estado_civil":   "Estado Civil",
	"escolaridade":   "Escolaridade",
	"nacionalidade":  "Nacionalidade",
	"naturalidade":   "Naturalidade",
	"cep":            "CEP",
	"bairro":         "Bairro",
	"endereco":       "Endereço",
	"telefone":       "Telefone",
	"unidade":        "Unidade",
	"observacoes":    "Observações",
}

// DefaultColaboradorFields is the column order used when the request names no
// columns.
var DefaultColaboradorFields = []string{
	"id", "nome", "funcao", "unidade", "salario", "ativo",
	"admissao", "saida", "cpf", "telefone",
}

func headerFor(field string, headers map[string]string) string {
	if h, ok := headers[field]; ok {
		return h
	}
	return field
}

// Columns resolves field names against a header map, falling back to the raw
// field name for anything unknown. Unknown fields still export, as null cells.
func colaboradorColumns(fields []string) []Column {
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = Column{Field: f, Header: headerFor(f, colaboradorHeaders)}
	}
	return cols
}

func formatDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateutil.Layout)
}

func colaboradorRow(c colaborador.Colaborador) map[string]any {
	row := map[string]any{
		"id":             c.ID,
		"nome":           c.Nome,
		"conta_deposito": c.ContaDeposito,
		"cpf":            c.CPF,
		"rg_outro":       c.RGOutro,
		"orgao_emissor":  c.OrgaoEmissor,
		"ativo":          c.AtivoTexto(),
		"funcao":         c.Funcao,
		"salario":        money.ToDisplay(c.SalarioCents),
		"estado_civil":   c.EstadoCivil,
		"escolaridade":   c.Escolaridade,
		"nacionalidade":  c.Nacionalidade,
		"naturalidade":   c.Naturalidade,
		"cep":            c.CEP,
		"bairro":         c.Bairro,
		"endereco":       c.Endereco,
		"telefone":       c.Telefone,
		"unidade":        c.Unidade,
		"observacoes":    c.Observacoes,
	}
	row["nascimento"] = formatDatePtr(c.Nascimento)
	row["emissao"] = formatDatePtr(c.Emissao)
	row["admissao"] = formatDatePtr(c.Admissao)
	row["saida"] = formatDatePtr(c.Saida)
	return row
}

// ColaboradorTable builds the export table for the employee master, projected
// to the requested fields.
func ColaboradorTable(colabs []colaborador.Colaborador, fields []string) Table {
	if len(fields) == 0 {
		fields = DefaultColaboradorFields
	}
	t := Table{Rows: make([]map[string]any, len(colabs))}
	for i, c := range colabs {
		t.Rows[i] = colaboradorRow(c)
	}
	return t.Project(colaboradorColumns(fields))
}

var folhaHeaders = map[string]string{
	"id":               "ID",
	"colaborador_id":   "ID Colaborador",
	"colaborador_nome": "Colaborador",
	"cpf":              "CPF",
	"unidade":          "Unidade",
	"mes_referencia":   "Mês de Referência",
	"salario_base":     "Salário Base (R$)",
	"valor_depositado": "Valor Depositado (R$)",
	"horas_extras":     "Horas Extras (R$)",
	"bonus":            "Bônus (R$)",
	"descontos":        "Descontos (R$)",
	"comissoes":        "Comissões (R$)",
	"data_pagamento":   "Data de Pagamento",
	"observacoes":      "Observações",
}

func folhaFields(includeExtras bool) []string {
	fields := []string{
		"id", "colaborador_id", "colaborador_nome", "cpf", "unidade",
		"mes_referencia", "salario_base", "valor_depositado",
		"data_pagamento", "observacoes",
	}
	if includeExtras {
		fields = append(fields, "horas_extras", "bonus", "descontos", "comissoes")
	}
	return fields
}

func optionalCentsCell(v *int64) any {
	if v == nil {
		return nil
	}
	return money.ToDisplay(*v)
}

// FolhaTable builds the export table for payroll lines. Monetary columns are
// formatted in display units; includeExtras appends overtime, bonus,
// deduction and commission columns.
func FolhaTable(entradas []folha.Entrada, includeExtras bool) Table {
	t := Table{Rows: make([]map[string]any, len(entradas))}
	for i, e := range entradas {
		t.Rows[i] = map[string]any{
			"id":               e.ID,
			"colaborador_id":   e.ColaboradorID,
			"colaborador_nome": e.ColaboradorNome,
			"cpf":              e.CPF,
			"unidade":          e.Unidade,
			"mes_referencia":   e.MesReferencia.Format("2006-01"),
			"salario_base":     money.ToDisplay(e.SalarioBaseCents),
			"valor_depositado": optionalCentsCell(e.ValorDepositadoCents),
			"horas_extras":     optionalCentsCell(e.HorasExtrasCents),
			"bonus":            optionalCentsCell(e.BonusCents),
			"descontos":        optionalCentsCell(e.DescontosCents),
			"comissoes":        optionalCentsCell(e.ComissoesCents),
			"data_pagamento":   formatDatePtr(e.DataPagamento),
			"observacoes":      e.Observacoes,
		}
	}
	fields := folhaFields(includeExtras)
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = Column{Field: f, Header: headerFor(f, folhaHeaders)}
	}
	return t.Project(cols)
}

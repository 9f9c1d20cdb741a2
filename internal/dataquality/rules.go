// Package dataquality runs a fixed battery of validation rules over the
// employee table. Rules are independent: one record can show up under several
// alerts at once, and no rule short-circuits another.
package dataquality

import (
	"regexp"
	"strings"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
	"github.com/loskinha8/gestao-colab/internal/shared/money"
)

// DisplayCap bounds how many rows each alert carries; Total always reports
// the full count.
const DisplayCap = 200

var phonePattern = regexp.MustCompile(`^\(\d{2}\)\s?\d{4,5}-\d{4}$`)

// ValidPhone reports whether the number matches "(11) 91234-5678" or
// "(11)1234-5678"; the space is optional, the parentheses are not.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

type Row struct {
	ID      int64             `json:"id"`
	Nome    string            `json:"nome"`
	Unidade string            `json:"unidade,omitempty"`
	Campos  map[string]string `json:"campos,omitempty"`
}

type Alert struct {
	Codigo string `json:"codigo"`
	Titulo string `json:"titulo"`
	Total  int    `json:"total"`
	Linhas []Row  `json:"linhas"`
}

type Report struct {
	Limpo   bool    `json:"limpo"`
	Alertas []Alert `json:"alertas"`
}

type rule struct {
	codigo string
	titulo string
	// match returns whether the record flags, plus the fields worth showing.
	match func(c colaborador.Colaborador) (bool, map[string]string)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var rules = []rule{
	{
		codigo: "SEM_DATA",
		titulo: "Nascimento/Admissão sem data",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if c.Nascimento != nil && c.Admissao != nil {
				return false, nil
			}
			return true, map[string]string{
				"nascimento": dateutil.FromTimePtr(c.Nascimento).Format(),
				"admissao":   dateutil.FromTimePtr(c.Admissao).Format(),
			}
		},
	},
	{
		codigo: "SALARIO_ZERADO",
		titulo: "Salário zerado",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if c.SalarioCents != 0 {
				return false, nil
			}
			return true, map[string]string{"salario": money.ToDisplay(0)}
		},
	},
	{
		codigo: "DOC_INCOMPLETO",
		titulo: "Faltando CPF/RG/Emissão",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if !blank(c.CPF) && !blank(c.RGOutro) && c.Emissao != nil {
				return false, nil
			}
			return true, map[string]string{
				"cpf":      c.CPF,
				"rg_outro": c.RGOutro,
				"emissao":  dateutil.FromTimePtr(c.Emissao).Format(),
			}
		},
	},
	{
		codigo: "TELEFONE_INVALIDO",
		titulo: "Telefone inválido",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if ValidPhone(c.Telefone) {
				return false, nil
			}
			return true, map[string]string{"telefone": c.Telefone}
		},
	},
	{
		codigo: "INATIVO_SEM_SAIDA",
		titulo: "Inativo sem data de saída",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if c.Ativo != 0 || c.Saida != nil {
				return false, nil
			}
			return true, map[string]string{"saida": ""}
		},
	},
	{
		codigo: "CONTA_VAZIA",
		titulo: "Conta de depósito vazia",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if !blank(c.ContaDeposito) {
				return false, nil
			}
			return true, map[string]string{"conta_deposito": ""}
		},
	},
	{
		codigo: "DADOS_SOCIAIS",
		titulo: "Faltando dados sociais",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if !blank(c.EstadoCivil) && !blank(c.Escolaridade) && !blank(c.Naturalidade) {
				return false, nil
			}
			return true, map[string]string{
				"estado_civil": c.EstadoCivil,
				"escolaridade": c.Escolaridade,
				"naturalidade": c.Naturalidade,
			}
		},
	},
	{
		codigo: "ENDERECO_INCOMPLETO",
		titulo: "Endereço incompleto",
		match: func(c colaborador.Colaborador) (bool, map[string]string) {
			if !blank(c.CEP) && !blank(c.Bairro) && !blank(c.Endereco) {
				return false, nil
			}
			return true, map[string]string{
				"cep":      c.CEP,
				"bairro":   c.Bairro,
				"endereco": c.Endereco,
			}
		},
	},
}

// Evaluate runs every rule over the slice. Alerts keep the rule order above
// and rows keep input order; rules that fire zero rows are omitted.
func Evaluate(colabs []colaborador.Colaborador) Report {
	report := Report{Limpo: true, Alertas: []Alert{}}

	for _, r := range rules {
		alert := Alert{Codigo: r.codigo, Titulo: r.titulo, Linhas: []Row{}}
		for _, c := range colabs {
			flagged, campos := r.match(c)
			if !flagged {
				continue
			}
			alert.Total++
			if len(alert.Linhas) < DisplayCap {
				alert.Linhas = append(alert.Linhas, Row{
					ID:      c.ID,
					Nome:    c.Nome,
					Unidade: c.Unidade,
					Campos:  campos,
				})
			}
		}
		if alert.Total > 0 {
			report.Limpo = false
			report.Alertas = append(report.Alertas, alert)
		}
	}

	return report
}

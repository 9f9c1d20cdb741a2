package colaborador

import "time"

// Colaborador is the employee master row. Dates are nullable on purpose: a
// blank form field persists as NULL, never as a malformed string. Salary is
// stored in centavos only.
type Colaborador struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Nome          string `gorm:"not null"`
	ContaDeposito string
	Nascimento    *time.Time `gorm:"type:date"`
	CPF           string     `gorm:"column:cpf"`
	RGOutro       string     `gorm:"column:rg_outro"`
	OrgaoEmissor  string
	Emissao       *time.Time `gorm:"type:date"`
	Admissao      *time.Time `gorm:"type:date"`
	Saida         *time.Time `gorm:"type:date"`
	Ativo         int        `gorm:"not null;default:0"`
	Funcao        string
	SalarioCents  int64 `gorm:"not null;default:0"`
	EstadoCivil   string
	Escolaridade  string
	Nacionalidade string
	Naturalidade  string
	CEP           string `gorm:"column:cep"`
	Bairro        string
	Endereco      string
	Telefone      string
	Unidade       string `gorm:"index"`
	Observacoes   string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Colaborador) TableName() string {
	return "colaboradores"
}

// SalarioReais is the derived display-unit value; never persisted.
func (c Colaborador) SalarioReais() float64 {
	return float64(c.SalarioCents) / 100
}

func (c Colaborador) AtivoTexto() string {
	if c.Ativo == 1 {
		return "Ativo"
	}
	return "Não-ativo"
}

// Filter narrows listings by unit membership and/or active flag. Zero value
// matches everything.
type Filter struct {
	Unidades []string
	Ativo    *int
}

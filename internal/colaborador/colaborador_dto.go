package colaborador

type CreateColaboradorRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Funcao        string `json:"funcao"`
	Unidade       string `json:"unidade"`
	Salario       string `json:"salario"` // display form, e.g. "1.500,00"; lenient parse
	Ativo         bool   `json:"ativo"`
	Admissao      string `json:"admissao"`
	Saida         string `json:"saida"`
	CPF           string `json:"cpf"`
	RGOutro       string `json:"rg_outro"`
	OrgaoEmissor  string `json:"orgao_emissor"`
	Emissao       string `json:"emissao"`
	Nascimento    string `json:"nascimento"`
	EstadoCivil   string `json:"estado_civil"`
	Escolaridade  string `json:"escolaridade"`
	Nacionalidade string `json:"nacionalidade"`
	Naturalidade  string `json:"naturalidade"`
	ContaDeposito string `json:"conta_deposito"`
	CEP           string `json:"cep"`
	Bairro        string `json:"bairro"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	Observacoes   string `json:"observacoes"`
}

type UpdateColaboradorRequest = CreateColaboradorRequest

type ColaboradorResponse struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome"`
	Funcao         string  `json:"funcao,omitempty"`
	Unidade        string  `json:"unidade,omitempty"`
	SalarioCents   int64   `json:"salario_cents"`
	SalarioReais   float64 `json:"salario_reais"`
	SalarioDisplay string  `json:"salario_display"`
	Ativo          int     `json:"ativo"`
	AtivoTexto     string  `json:"ativo_texto"`
	Admissao       string  `json:"admissao,omitempty"`
	Saida          string  `json:"saida,omitempty"`
	CPF            string  `json:"cpf,omitempty"`
	RGOutro        string  `json:"rg_outro,omitempty"`
	OrgaoEmissor   string  `json:"orgao_emissor,omitempty"`
	Emissao        string  `json:"emissao,omitempty"`
	Nascimento     string  `json:"nascimento,omitempty"`
	EstadoCivil    string  `json:"estado_civil,omitempty"`
	Escolaridade   string  `json:"escolaridade,omitempty"`
	Nacionalidade  string  `json:"nacionalidade,omitempty"`
	Naturalidade   string  `json:"naturalidade,omitempty"`
	ContaDeposito  string  `json:"conta_deposito,omitempty"`
	CEP            string  `json:"cep,omitempty"`
	Bairro         string  `json:"bairro,omitempty"`
	Endereco       string  `json:"endereco,omitempty"`
	Telefone       string  `json:"telefone,omitempty"`
	Observacoes    string  `json:"observacoes,omitempty"`
}

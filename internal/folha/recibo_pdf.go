package folha

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/loskinha8/gestao-colab/internal/shared/money"
)

func reciboLines(e Entrada) []string {
	lines := []string{
		"Recibo de Pagamento",
		"",
		fmt.Sprintf("Colaborador: %s", e.ColaboradorNome),
		fmt.Sprintf("CPF: %s", e.CPF),
		fmt.Sprintf("Unidade: %s", e.Unidade),
		fmt.Sprintf("Referência: %s", e.MesReferencia.Format("2006-01")),
		"",
		fmt.Sprintf("Salário base: R$ %s", money.ToDisplay(e.SalarioBaseCents)),
	}
	if e.HorasExtrasCents != nil {
		lines = append(lines, fmt.Sprintf("Horas extras: R$ %s", money.ToDisplay(*e.HorasExtrasCents)))
	}
	if e.BonusCents != nil {
		lines = append(lines, fmt.Sprintf("Bônus: R$ %s", money.ToDisplay(*e.BonusCents)))
	}
	if e.ComissoesCents != nil {
		lines = append(lines, fmt.Sprintf("Comissões: R$ %s", money.ToDisplay(*e.ComissoesCents)))
	}
	if e.DescontosCents != nil {
		lines = append(lines, fmt.Sprintf("Descontos: R$ %s", money.ToDisplay(*e.DescontosCents)))
	}
	lines = append(lines,
		fmt.Sprintf("Valor depositado: R$ %s", money.ToDisplayPtr(e.ValorDepositadoCents)),
	)
	if e.DataPagamento != nil {
		lines = append(lines, fmt.Sprintf("Pago em: %s", e.DataPagamento.Format("2006-01-02")))
	}
	return lines
}

// buildReciboPDF writes a one-page PDF by hand; the receipt is plain enough
// that a PDF library would be overkill.
func buildReciboPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Recibo"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}

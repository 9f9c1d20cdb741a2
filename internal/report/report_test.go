package report_test

import (
	"testing"
	"time"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/report"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func admitido(id int64, nome, unidade string, daysAgo int, salarioCents int64) colaborador.Colaborador {
	adm := now.AddDate(0, 0, -daysAgo)
	return colaborador.Colaborador{
		ID:           id,
		Nome:         nome,
		Unidade:      unidade,
		Ativo:        1,
		SalarioCents: salarioCents,
		Admissao:     &adm,
	}
}

func TestFormatTenure(t *testing.T) {
	assert.Equal(t, "0a 0m", report.FormatTenure(0))
	assert.Equal(t, "0a 2m", report.FormatTenure(75))
	assert.Equal(t, "1a 0m", report.FormatTenure(365))
	assert.Equal(t, "1a 1m", report.FormatTenure(400)) // (400%365)//30 == 1
	assert.Equal(t, "2a 3m", report.FormatTenure(825))
}

func TestBuildTenureReport(t *testing.T) {
	veterano := admitido(1, "Vera", "Serrinha", 400, 150000)
	novato := admitido(2, "Nina", "Serrinha", 40, 150000)
	semAdmissao := colaborador.Colaborador{ID: 3, Nome: "Saulo", Unidade: "Ipirá"}

	r := report.BuildTenureReport([]colaborador.Colaborador{veterano, novato, semAdmissao}, now)

	t.Run("novatos holds only the 40-day hire", func(t *testing.T) {
		assert.Len(t, r.Novatos, 1)
		assert.Equal(t, int64(2), r.Novatos[0].ID)
	})

	t.Run("top10 orders veteran first", func(t *testing.T) {
		assert.Len(t, r.Top10, 2)
		assert.Equal(t, int64(1), r.Top10[0].ID)
		assert.Equal(t, int64(2), r.Top10[1].ID)
	})

	t.Run("rows without admission are excluded everywhere", func(t *testing.T) {
		for _, row := range r.Top10 {
			assert.NotEqual(t, int64(3), row.ID)
		}
		assert.Len(t, r.MediaPorUnidade, 1)
		assert.Equal(t, "Serrinha", r.MediaPorUnidade[0].Unidade)
		assert.Equal(t, 220.0, r.MediaPorUnidade[0].MediaDias)
	})
}

func TestBuildTenureReport_Top10CapAndTies(t *testing.T) {
	colabs := make([]colaborador.Colaborador, 0, 12)
	for i := 1; i <= 12; i++ {
		// Two employees share each tenure value; stable sort keeps input order.
		colabs = append(colabs, admitido(int64(i), "C", "Serrinha", 1000-(i/2)*10, 100000))
	}

	r := report.BuildTenureReport(colabs, now)
	assert.Len(t, r.Top10, 10)
	assert.GreaterOrEqual(t, r.Top10[0].Dias, r.Top10[9].Dias)
	assert.Equal(t, int64(1), r.Top10[0].ID)
}

func TestPayrollByUnit(t *testing.T) {
	colabs := []colaborador.Colaborador{
		admitido(1, "A", "Serrinha", 100, 100000), // 1000.00
		admitido(2, "B", "Serrinha", 100, 200000), // 2000.00
		admitido(3, "C", "Ipirá", 100, 100000),    // 1000.00
	}

	r := report.PayrollByUnit(colabs)
	assert.Len(t, r, 2)
	assert.Equal(t, "Serrinha", r[0].Unidade)
	assert.Equal(t, 3000.0, r[0].FolhaTotal)
	assert.Equal(t, 0.75, r[0].Share)
	assert.Equal(t, "Ipirá", r[1].Unidade)
	assert.Equal(t, 0.25, r[1].Share)
}

func TestPayrollByUnit_Empty(t *testing.T) {
	assert.Empty(t, report.PayrollByUnit(nil))
}

func TestPayrollByUnit_MissingUnitLabeled(t *testing.T) {
	colabs := []colaborador.Colaborador{
		admitido(1, "A", "Serrinha", 100, 300000),
		admitido(2, "B", "", 100, 100000),
	}

	r := report.PayrollByUnit(colabs)
	assert.Len(t, r, 2)
	assert.Equal(t, "Serrinha", r[0].Unidade)
	assert.Equal(t, report.SemUnidade, r[1].Unidade)
	assert.Equal(t, 1000.0, r[1].FolhaTotal)
	assert.Equal(t, 0.25, r[1].Share)
}

func TestBuildTenureReport_MissingUnitLabeled(t *testing.T) {
	r := report.BuildTenureReport([]colaborador.Colaborador{
		admitido(1, "Solto", "", 200, 100000),
	}, now)

	assert.Len(t, r.MediaPorUnidade, 1)
	assert.Equal(t, report.SemUnidade, r.MediaPorUnidade[0].Unidade)
	assert.Len(t, r.Top10, 1)
	assert.Equal(t, report.SemUnidade, r.Top10[0].Unidade)
}

func TestUnitDashboard(t *testing.T) {
	colabs := make([]colaborador.Colaborador, 0, 10)
	for i := 1; i <= 10; i++ {
		c := admitido(int64(i), "C", "Serrinha", 500, 100000)
		colabs = append(colabs, c)
	}
	// Two exits inside the trailing year.
	saida1 := now.AddDate(0, 0, -30)
	saida2 := now.AddDate(0, 0, -300)
	colabs[0].Ativo = 0
	colabs[0].Saida = &saida1
	colabs[1].Ativo = 0
	colabs[1].Saida = &saida2
	// One old exit that must not count.
	saidaAntiga := now.AddDate(0, 0, -400)
	colabs[2].Ativo = 0
	colabs[2].Saida = &saidaAntiga

	r := report.UnitDashboard(colabs, now)
	assert.Len(t, r, 1)

	s := r[0]
	assert.Equal(t, "Serrinha", s.Unidade)
	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 7, s.Ativos)
	assert.Equal(t, 2, s.Saidas12m)
	assert.Equal(t, 0.2, s.Turnover)
	assert.Equal(t, 1000.0, s.MediaSalarial)
	assert.Equal(t, 10000.0, s.Folha)
}

func TestUnitDashboard_FlagsAndMissingUnit(t *testing.T) {
	colabs := []colaborador.Colaborador{
		admitido(1, "Rica", "Alta", 100, 300000),
		admitido(2, "Pobre", "Baixa", 100, 100000),
		{ID: 3, Nome: "Perdido", SalarioCents: 100000},
	}

	r := report.UnitDashboard(colabs, now)
	assert.Len(t, r, 3)

	byUnit := map[string]report.UnitSummary{}
	for _, s := range r {
		byUnit[s.Unidade] = s
	}

	assert.Contains(t, byUnit, report.SemUnidade)
	// Cross-unit mean of unit means: (3000+1000+1000)/3 ≈ 1666.67.
	assert.Equal(t, "Acima", byUnit["Alta"].SalarioVsMedia)
	assert.Equal(t, "Abaixo", byUnit["Baixa"].SalarioVsMedia)
	assert.Equal(t, "Abaixo", byUnit[report.SemUnidade].SalarioVsMedia)
}

func TestUnitDashboard_Empty(t *testing.T) {
	assert.Empty(t, report.UnitDashboard(nil, now))
}

// Package report computes the tenure, payroll and comparative-unit reports.
// Everything here is a pure function of the fetched rows and the reference
// instant: same input, same output, recomputed on every request.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
)

// NovatoLimiteDias is the "less than three months" cutoff for the newcomer
// report.
const NovatoLimiteDias = 90

// SemUnidade labels rows whose unit was never filled in, so they still show
// up in every per-unit grouping.
const SemUnidade = "(Sem Unidade)"

func unitLabel(unidade string) string {
	if unidade == "" {
		return SemUnidade
	}
	return unidade
}

// FormatTenure renders a day count as "2a 3m" with the deliberately
// calendar-naive 365/30 division the reports have always used.
func FormatTenure(days int) string {
	years := days / 365
	months := (days % 365) / 30
	return fmt.Sprintf("%da %dm", years, months)
}

type TenureUnitMean struct {
	Unidade   string  `json:"unidade"`
	MediaDias float64 `json:"media_dias"`
	Media     string  `json:"media"`
}

type TenureRow struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Unidade  string `json:"unidade,omitempty"`
	Dias     int    `json:"dias"`
	Tempo    string `json:"tempo"`
	Admissao string `json:"admissao"`
}

type TenureReport struct {
	MediaPorUnidade []TenureUnitMean `json:"media_por_unidade"`
	Top10           []TenureRow      `json:"top10"`
	Novatos         []TenureRow      `json:"novatos"`
}

// BuildTenureReport considers only rows with a recorded admission date; the
// rest have undefined tenure and stay out of every section.
func BuildTenureReport(colabs []colaborador.Colaborador, now time.Time) TenureReport {
	report := TenureReport{
		MediaPorUnidade: []TenureUnitMean{},
		Top10:           []TenureRow{},
		Novatos:         []TenureRow{},
	}

	type unitAcc struct {
		sum   int
		count int
	}
	byUnit := map[string]*unitAcc{}

	rows := make([]TenureRow, 0, len(colabs))
	for _, c := range colabs {
		if c.Admissao == nil {
			continue
		}
		days := int(now.Sub(*c.Admissao).Hours() / 24)
		unidade := unitLabel(c.Unidade)
		rows = append(rows, TenureRow{
			ID:       c.ID,
			Nome:     c.Nome,
			Unidade:  unidade,
			Dias:     days,
			Tempo:    FormatTenure(days),
			Admissao: dateutil.FromTimePtr(c.Admissao).Format(),
		})

		acc := byUnit[unidade]
		if acc == nil {
			acc = &unitAcc{}
			byUnit[unidade] = acc
		}
		acc.sum += days
		acc.count++
	}

	units := make([]string, 0, len(byUnit))
	for u := range byUnit {
		units = append(units, u)
	}
	sort.Strings(units)
	for _, u := range units {
		acc := byUnit[u]
		mean := float64(acc.sum) / float64(acc.count)
		report.MediaPorUnidade = append(report.MediaPorUnidade, TenureUnitMean{
			Unidade:   u,
			MediaDias: mean,
			Media:     FormatTenure(int(mean)),
		})
	}

	// Stable sort keeps natural row order on equal tenure.
	top := make([]TenureRow, len(rows))
	copy(top, rows)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Dias > top[j].Dias })
	if len(top) > 10 {
		top = top[:10]
	}
	report.Top10 = top

	for _, r := range rows {
		if r.Dias < NovatoLimiteDias {
			report.Novatos = append(report.Novatos, r)
		}
	}

	return report
}

type UnitPayroll struct {
	Unidade    string  `json:"unidade"`
	FolhaTotal float64 `json:"folha_total"`
	// Share is this unit's 0-1 fraction of the grand total, for the
	// proportional breakdown chart.
	Share float64 `json:"share"`
}

// PayrollByUnit sums salario_reais per unit, descending by total.
func PayrollByUnit(colabs []colaborador.Colaborador) []UnitPayroll {
	totals := map[string]float64{}
	var grand float64
	for _, c := range colabs {
		totals[unitLabel(c.Unidade)] += c.SalarioReais()
		grand += c.SalarioReais()
	}

	result := make([]UnitPayroll, 0, len(totals))
	for u, total := range totals {
		result = append(result, UnitPayroll{Unidade: u, FolhaTotal: round2(total)})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].FolhaTotal != result[j].FolhaTotal {
			return result[i].FolhaTotal > result[j].FolhaTotal
		}
		return result[i].Unidade < result[j].Unidade
	})

	if grand > 0 {
		for i := range result {
			result[i].Share = round3(result[i].FolhaTotal / round2(grand))
		}
	}
	return result
}

type UnitSummary struct {
	Unidade        string  `json:"unidade"`
	Total          int     `json:"total"`
	Ativos         int     `json:"ativos"`
	MediaSalarial  float64 `json:"media_salarial"`
	Folha          float64 `json:"folha"`
	Saidas12m      int     `json:"saidas_12m"`
	Turnover       float64 `json:"turnover"`
	SalarioVsMedia string  `json:"salario_vs_media"`
}

// UnitDashboard builds the comparative table. Exits count when the recorded
// saida falls inside the trailing 365 days; turnover divides those exits by
// the unit's current headcount.
func UnitDashboard(colabs []colaborador.Colaborador, now time.Time) []UnitSummary {
	type acc struct {
		total  int
		ativos int
		folha  float64
		saidas int
	}
	byUnit := map[string]*acc{}
	cutoff := now.AddDate(0, 0, -365)

	for _, c := range colabs {
		unidade := unitLabel(c.Unidade)
		a := byUnit[unidade]
		if a == nil {
			a = &acc{}
			byUnit[unidade] = a
		}
		a.total++
		if c.Ativo == 1 {
			a.ativos++
		}
		a.folha += c.SalarioReais()
		if c.Saida != nil && !c.Saida.Before(cutoff) && !c.Saida.After(now) {
			a.saidas++
		}
	}

	units := make([]string, 0, len(byUnit))
	for u := range byUnit {
		units = append(units, u)
	}
	sort.Strings(units)

	summaries := make([]UnitSummary, 0, len(units))
	var meanSum float64
	for _, u := range units {
		a := byUnit[u]
		media := 0.0
		turnover := 0.0
		if a.total > 0 {
			media = round2(a.folha / float64(a.total))
			turnover = round3(float64(a.saidas) / float64(a.total))
		}
		meanSum += media
		summaries = append(summaries, UnitSummary{
			Unidade:       u,
			Total:         a.total,
			Ativos:        a.ativos,
			MediaSalarial: media,
			Folha:         round2(a.folha),
			Saidas12m:     a.saidas,
			Turnover:      turnover,
		})
	}

	if len(summaries) > 0 {
		overall := meanSum / float64(len(summaries))
		for i := range summaries {
			if summaries[i].MediaSalarial >= overall {
				summaries[i].SalarioVsMedia = "Acima"
			} else {
				summaries[i].SalarioVsMedia = "Abaixo"
			}
		}
	}

	return summaries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

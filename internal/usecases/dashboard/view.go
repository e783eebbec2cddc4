// Package dashboard monta a visão do painel a partir da tabela enriquecida
package dashboard

import (
	"strings"

	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/utils"
)

const (
	DefaultTopN       = 5
	defaultComparison = 3
)

// BuildView calcula todos os blocos do painel para os filtros informados.
// Uma seleção vazia gera indicadores zerados e gráficos sem pontos.
func BuildView(table *domain.EnrichedTable, params domain.DashboardParams, defaultTopN int) *domain.DashboardView {
	if table == nil {
		table = analyzing.Transform(nil)
	}

	topN := params.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	filtered := analyzing.Filter(table, params.Filters)
	comparison := compareRows(filtered.Rows, params.Compare)

	return &domain.DashboardView{
		Filters:          params.Filters,
		KPIs:             buildKPIs(table, filtered),
		SalaryComparison: salaryComparisonChart(filtered.Rows),
		TopStarting:      analyzing.TopN(filtered.Rows, domain.MetricStartingSalary, topN),
		TopMidCareer:     analyzing.TopN(filtered.Rows, domain.MetricMidCareerSalary, topN),
		RiskReward:       riskRewardChart(filtered.Rows),
		RiskDistribution: riskDistributionChart(filtered.Rows),
		TopGrowth:        analyzing.TopN(filtered.Rows, domain.MetricGrowthPercentage, topN),
		GrowthByGroup:    growthByGroupChart(filtered.Groups),
		OutlookByGroup:   outlookByGroupChart(filtered.Rows),
		TopSatisfaction:  analyzing.TopN(filtered.Rows, domain.MetricSatisfaction, topN),
		SatisfactionPay:  satisfactionSalaryChart(filtered.Rows),
		Groups:           domain.OrderedGroups(filtered.Groups),
		Comparison:       comparison,
		ComparisonChart:  comparisonChart(comparison),
	}
}

func buildKPIs(table *domain.EnrichedTable, filtered *domain.EnrichedTable) domain.DashboardKPIs {
	overall := analyzing.Stats(table)
	selection := analyzing.Stats(filtered)

	kpis := domain.DashboardKPIs{
		TotalMajors:    selection.TotalMajors,
		DatasetMajors:  overall.TotalMajors,
		AvgStarting:    selection.AvgStarting,
		AvgMidCareer:   selection.AvgMidCareer,
		StartingDelta:  selection.AvgStarting.Sub(overall.AvgStarting),
		MidCareerDelta: selection.AvgMidCareer.Sub(overall.AvgMidCareer),
	}

	if selection.AvgGrowthPercentage != nil {
		kpis.AvgGrowthPercentage = utils.RoundWithTwoDecimalPlace(*selection.AvgGrowthPercentage)
	}

	return kpis
}

// compareRows devolve os cursos pedidos na ordem da tabela. Sem nomes, usa os
// três maiores salários mid-career.
func compareRows(rows []domain.EnrichedMajor, names []string) []domain.EnrichedMajor {
	if len(names) == 0 {
		return analyzing.TopN(rows, domain.MetricMidCareerSalary, defaultComparison)
	}

	selected := make([]domain.EnrichedMajor, 0, len(names))
	for _, row := range rows {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(name), row.Record.Name) {
				selected = append(selected, row)
				break
			}
		}
	}

	return selected
}

func salaryComparisonChart(rows []domain.EnrichedMajor) domain.Chart {
	series := make([]domain.ChartSeries, 0, len(domain.Groups()))

	for _, group := range domain.Groups() {
		points := make([]domain.ChartPoint, 0)
		for _, row := range rows {
			if row.Record.Group != group {
				continue
			}
			x := row.Record.StartingSalary.InexactFloat64()
			points = append(points, domain.ChartPoint{
				Label: row.Record.Name,
				Group: group,
				X:     &x,
				Y:     row.Record.MidCareerSalary.InexactFloat64(),
			})
		}

		if len(points) > 0 {
			series = append(series, domain.ChartSeries{Name: string(group), Points: points})
		}
	}

	return domain.Chart{
		Type:   domain.ChartScatter,
		Title:  "Salary Progression by Major Group",
		XAxis:  "Starting Median Salary",
		YAxis:  "Mid-Career Median Salary",
		Series: series,
	}
}

func riskRewardChart(rows []domain.EnrichedMajor) domain.Chart {
	series := make([]domain.ChartSeries, 0, len(domain.RiskLevels()))

	for _, level := range domain.RiskLevels() {
		points := make([]domain.ChartPoint, 0)
		for _, row := range rows {
			if row.Metrics.RiskLevel != level {
				continue
			}
			x := row.Record.MidCareerSalary.InexactFloat64()
			points = append(points, domain.ChartPoint{
				Label: row.Record.Name,
				Group: row.Record.Group,
				X:     &x,
				Y:     row.Metrics.PercentileSpread.InexactFloat64(),
			})
		}

		if len(points) > 0 {
			series = append(series, domain.ChartSeries{Name: string(level), Points: points})
		}
	}

	return domain.Chart{
		Type:   domain.ChartScatter,
		Title:  "Risk vs Reward: Salary Spread Analysis",
		XAxis:  "Mid-Career Median Salary",
		YAxis:  "Spread",
		Series: series,
	}
}

func riskDistributionChart(rows []domain.EnrichedMajor) domain.Chart {
	counts := make(map[domain.RiskLevel]int, len(domain.RiskLevels()))
	for _, row := range rows {
		counts[row.Metrics.RiskLevel]++
	}

	points := make([]domain.ChartPoint, 0, len(counts))
	for _, level := range domain.RiskLevels() {
		if counts[level] == 0 {
			continue
		}
		points = append(points, domain.ChartPoint{
			Label: string(level),
			Y:     float64(counts[level]),
		})
	}

	return domain.Chart{
		Type:   domain.ChartPie,
		Title:  "Risk Level Distribution",
		Series: []domain.ChartSeries{{Name: "Risk Level", Points: points}},
	}
}

func growthByGroupChart(groups map[domain.Group]domain.GroupSummary) domain.Chart {
	points := make([]domain.ChartPoint, 0, len(groups))
	for _, summary := range domain.OrderedGroups(groups) {
		if summary.AvgGrowthPercentage == nil {
			continue
		}
		points = append(points, domain.ChartPoint{
			Label: string(summary.Group),
			Group: summary.Group,
			Y:     *summary.AvgGrowthPercentage,
		})
	}

	return domain.Chart{
		Type:   domain.ChartBar,
		Title:  "Average Salary Growth by Major Group",
		XAxis:  "Group",
		YAxis:  "Growth Percentage",
		Series: []domain.ChartSeries{{Name: "Average Growth", Points: points}},
	}
}

// outlookByGroupChart conta os cursos de cada grupo por perspectiva de crescimento.
// Cursos sem perspectiva ficam de fora.
func outlookByGroupChart(rows []domain.EnrichedMajor) domain.Chart {
	counts := make(map[domain.GrowthOutlook]map[domain.Group]int)
	for _, row := range rows {
		if row.Record.GrowthOutlook == nil {
			continue
		}
		outlook := *row.Record.GrowthOutlook
		if counts[outlook] == nil {
			counts[outlook] = make(map[domain.Group]int)
		}
		counts[outlook][row.Record.Group]++
	}

	series := make([]domain.ChartSeries, 0, len(counts))
	for _, outlook := range domain.GrowthOutlooks() {
		byGroup, exists := counts[outlook]
		if !exists {
			continue
		}

		points := make([]domain.ChartPoint, 0, len(byGroup))
		for _, group := range domain.Groups() {
			if byGroup[group] == 0 {
				continue
			}
			points = append(points, domain.ChartPoint{
				Label: string(group),
				Group: group,
				Y:     float64(byGroup[group]),
			})
		}
		series = append(series, domain.ChartSeries{Name: string(outlook), Points: points})
	}

	return domain.Chart{
		Type:   domain.ChartBar,
		Title:  "Job Growth Outlook by Major Group",
		XAxis:  "Group",
		YAxis:  "Number of Majors",
		Series: series,
	}
}

// satisfactionSalaryChart cruza a nota de satisfação com o salário mid-career.
// O tamanho do ponto é o equilíbrio entre vida pessoal e trabalho.
func satisfactionSalaryChart(rows []domain.EnrichedMajor) domain.Chart {
	series := make([]domain.ChartSeries, 0, len(domain.Groups()))

	for _, group := range domain.Groups() {
		points := make([]domain.ChartPoint, 0)
		for _, row := range rows {
			if row.Record.Group != group || row.Metrics.CareerSatisfaction == nil {
				continue
			}
			x := *row.Metrics.CareerSatisfaction
			points = append(points, domain.ChartPoint{
				Label: row.Record.Name,
				Group: group,
				X:     &x,
				Y:     row.Record.MidCareerSalary.InexactFloat64(),
				Size:  row.Record.WorkLifeBalance,
			})
		}

		if len(points) > 0 {
			series = append(series, domain.ChartSeries{Name: string(group), Points: points})
		}
	}

	return domain.Chart{
		Type:   domain.ChartScatter,
		Title:  "Career Satisfaction vs Salary",
		XAxis:  "Career Satisfaction Score",
		YAxis:  "Mid-Career Median Salary",
		Series: series,
	}
}

func comparisonChart(rows []domain.EnrichedMajor) domain.Chart {
	series := make([]domain.ChartSeries, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.ChartSeries{
			Name: row.Record.Name,
			Points: []domain.ChartPoint{
				{Label: "Starting Salary", Group: row.Record.Group, Y: row.Record.StartingSalary.InexactFloat64()},
				{Label: "Mid-Career Salary", Group: row.Record.Group, Y: row.Record.MidCareerSalary.InexactFloat64()},
			},
		})
	}

	return domain.Chart{
		Type:   domain.ChartBar,
		Title:  "Direct Major Comparison",
		YAxis:  "Salary",
		Series: series,
	}
}

package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/college-majors-api/internal/domain"
)

// Transform enriquece cada registro com suas métricas derivadas e resume os grupos.
// A saída tem o mesmo tamanho e a mesma ordem da entrada.
func Transform(records []domain.MajorRecord) *domain.EnrichedTable {
	rows := make([]domain.EnrichedMajor, 0, len(records))
	for i, record := range records {
		rows = append(rows, domain.EnrichedMajor{
			Index:   i,
			Record:  record,
			Metrics: domain.ComputeMetrics(record),
		})
	}

	return &domain.EnrichedTable{
		Rows:   rows,
		Groups: domain.SummarizeGroups(rows),
	}
}

// Filter retorna uma nova tabela apenas com as linhas que atendem aos filtros.
// Os resumos por grupo são recalculados sobre as linhas filtradas.
func Filter(table *domain.EnrichedTable, filters domain.MajorFilters) *domain.EnrichedTable {
	if table == nil {
		return Transform(nil)
	}

	if filters.IsEmpty() {
		return table
	}

	rows := make([]domain.EnrichedMajor, 0, len(table.Rows))
	for _, row := range table.Rows {
		if filters.Matches(row) {
			rows = append(rows, row)
		}
	}

	return &domain.EnrichedTable{
		Rows:   rows,
		Groups: domain.SummarizeGroups(rows),
	}
}

// Stats calcula os indicadores gerais da tabela. Em empates vence a primeira ocorrência.
func Stats(table *domain.EnrichedTable) domain.DatasetStats {
	stats := domain.DatasetStats{
		AvgStarting:  decimal.Zero,
		AvgMidCareer: decimal.Zero,
		Groups:       make([]domain.GroupSummary, 0),
	}

	if table == nil || len(table.Rows) == 0 {
		return stats
	}

	totalStarting := decimal.Zero
	totalMidCareer := decimal.Zero
	totalGrowth := 0.0
	growthCount := 0

	for i := range table.Rows {
		row := &table.Rows[i]

		totalStarting = totalStarting.Add(row.Record.StartingSalary)
		totalMidCareer = totalMidCareer.Add(row.Record.MidCareerSalary)

		if stats.HighestStarting == nil || row.Record.StartingSalary.GreaterThan(stats.HighestStarting.Record.StartingSalary) {
			stats.HighestStarting = row
		}
		if stats.LowestStarting == nil || row.Record.StartingSalary.LessThan(stats.LowestStarting.Record.StartingSalary) {
			stats.LowestStarting = row
		}
		if stats.HighestMidCareer == nil || row.Record.MidCareerSalary.GreaterThan(stats.HighestMidCareer.Record.MidCareerSalary) {
			stats.HighestMidCareer = row
		}
		if stats.LowestMidCareer == nil || row.Record.MidCareerSalary.LessThan(stats.LowestMidCareer.Record.MidCareerSalary) {
			stats.LowestMidCareer = row
		}

		if row.Metrics.GrowthPercentage == nil {
			continue
		}
		totalGrowth += *row.Metrics.GrowthPercentage
		growthCount++

		if stats.BestGrowth == nil || *row.Metrics.GrowthPercentage > *stats.BestGrowth.Metrics.GrowthPercentage {
			stats.BestGrowth = row
		}
	}

	count := decimal.NewFromInt(int64(len(table.Rows)))

	stats.TotalMajors = len(table.Rows)
	stats.AvgStarting = totalStarting.Div(count)
	stats.AvgMidCareer = totalMidCareer.Div(count)
	stats.Groups = domain.OrderedGroups(table.Groups)

	if growthCount > 0 {
		avgGrowth := totalGrowth / float64(growthCount)
		stats.AvgGrowthPercentage = &avgGrowth
	}

	return stats
}

// TopN retorna as n linhas com maior valor da métrica, mantendo a ordem de entrada
// nos empates. Linhas com a métrica indefinida ficam de fora.
func TopN(rows []domain.EnrichedMajor, metric domain.Metric, n int) []domain.EnrichedMajor {
	type ranked struct {
		row   domain.EnrichedMajor
		value float64
	}

	candidates := make([]ranked, 0, len(rows))
	for _, row := range rows {
		value, ok := metric.Value(row)
		if !ok {
			continue
		}
		candidates = append(candidates, ranked{row: row, value: value})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value > candidates[j].value
	})

	if n < 0 {
		n = 0
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	top := make([]domain.EnrichedMajor, 0, n)
	for _, candidate := range candidates[:n] {
		top = append(top, candidate.row)
	}

	return top
}

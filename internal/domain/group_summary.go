package domain

import (
	"github.com/shopspring/decimal"
)

type GroupSummary struct {
	Group               Group           `json:"group"`
	AvgStarting         decimal.Decimal `json:"avg_starting"`
	AvgMidCareer        decimal.Decimal `json:"avg_mid_career"`
	AvgGrowthPercentage *float64        `json:"avg_growth_percentage"`
	Count               int             `json:"count"`
}

// Estrutura para acumular os valores de cada grupo antes de calcular as médias
type groupAccumulator struct {
	totalStarting  decimal.Decimal
	totalMidCareer decimal.Decimal
	totalGrowth    float64
	growthCount    int
	count          int
}

// SummarizeGroups agrupa as linhas por Group e calcula as médias.
// Só existem entradas para grupos presentes nas linhas.
func SummarizeGroups(rows []EnrichedMajor) map[Group]GroupSummary {
	accumulators := make(map[Group]*groupAccumulator)

	for _, row := range rows {
		acc, exists := accumulators[row.Record.Group]
		if !exists {
			acc = &groupAccumulator{}
			accumulators[row.Record.Group] = acc
		}

		acc.totalStarting = acc.totalStarting.Add(row.Record.StartingSalary)
		acc.totalMidCareer = acc.totalMidCareer.Add(row.Record.MidCareerSalary)
		acc.count++

		if row.Metrics.GrowthPercentage != nil {
			acc.totalGrowth += *row.Metrics.GrowthPercentage
			acc.growthCount++
		}
	}

	summaries := make(map[Group]GroupSummary, len(accumulators))
	for group, acc := range accumulators {
		count := decimal.NewFromInt(int64(acc.count))

		summary := GroupSummary{
			Group:        group,
			AvgStarting:  acc.totalStarting.Div(count),
			AvgMidCareer: acc.totalMidCareer.Div(count),
			Count:        acc.count,
		}

		if acc.growthCount > 0 {
			avgGrowth := acc.totalGrowth / float64(acc.growthCount)
			summary.AvgGrowthPercentage = &avgGrowth
		}

		summaries[group] = summary
	}

	return summaries
}

// OrderedGroups retorna os resumos na ordem canônica dos grupos
func OrderedGroups(summaries map[Group]GroupSummary) []GroupSummary {
	ordered := make([]GroupSummary, 0, len(summaries))
	for _, group := range Groups() {
		if summary, exists := summaries[group]; exists {
			ordered = append(ordered, summary)
		}
	}
	return ordered
}

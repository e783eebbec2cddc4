package domain

import "github.com/shopspring/decimal"

// DatasetStats resume o conjunto de cursos exibido no topo do painel
type DatasetStats struct {
	TotalMajors         int             `json:"total_majors"`
	AvgStarting         decimal.Decimal `json:"avg_starting_salary"`
	AvgMidCareer        decimal.Decimal `json:"avg_mid_career_salary"`
	AvgGrowthPercentage *float64        `json:"avg_growth_percentage"`
	HighestStarting     *EnrichedMajor  `json:"highest_starting,omitempty"`
	HighestMidCareer    *EnrichedMajor  `json:"highest_mid_career,omitempty"`
	LowestStarting      *EnrichedMajor  `json:"lowest_starting,omitempty"`
	LowestMidCareer     *EnrichedMajor  `json:"lowest_mid_career,omitempty"`
	BestGrowth          *EnrichedMajor  `json:"best_growth,omitempty"`
	Groups              []GroupSummary  `json:"groups"`
}

type Metric string

const (
	MetricStartingSalary   Metric = "starting_salary"
	MetricMidCareerSalary  Metric = "mid_career_salary"
	MetricGrowthPercentage Metric = "growth_percentage"
	MetricSpread           Metric = "spread"
	MetricSatisfaction     Metric = "career_satisfaction_score"
)

// Value retorna o valor numérico da métrica; ok é falso quando indefinido
func (m Metric) Value(row EnrichedMajor) (float64, bool) {
	switch m {
	case MetricStartingSalary:
		return row.Record.StartingSalary.InexactFloat64(), true
	case MetricMidCareerSalary:
		return row.Record.MidCareerSalary.InexactFloat64(), true
	case MetricSpread:
		return row.Metrics.Spread.InexactFloat64(), true
	case MetricGrowthPercentage:
		if row.Metrics.GrowthPercentage == nil {
			return 0, false
		}
		return *row.Metrics.GrowthPercentage, true
	case MetricSatisfaction:
		if row.Metrics.CareerSatisfaction == nil {
			return 0, false
		}
		return *row.Metrics.CareerSatisfaction, true
	default:
		return 0, false
	}
}

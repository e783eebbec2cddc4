package domain

import "github.com/shopspring/decimal"

type ChartType string

const (
	ChartBar     ChartType = "bar"
	ChartScatter ChartType = "scatter"
	ChartPie     ChartType = "pie"
)

type ChartPoint struct {
	Label string   `json:"label"`
	Group Group    `json:"group,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     float64  `json:"y"`
	Size  *float64 `json:"size,omitempty"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

type Chart struct {
	Type   ChartType     `json:"type"`
	Title  string        `json:"title"`
	XAxis  string        `json:"x_axis"`
	YAxis  string        `json:"y_axis"`
	Series []ChartSeries `json:"series"`
}

type DashboardParams struct {
	Filters MajorFilters `json:"filters"`
	Compare []string     `json:"compare,omitempty"`
	TopN    int          `json:"top_n" validate:"gte=0,lte=50"`
}

// DashboardKPIs são os indicadores do topo. Os deltas comparam a seleção com o dataset inteiro.
type DashboardKPIs struct {
	TotalMajors         int             `json:"total_majors"`
	DatasetMajors       int             `json:"dataset_majors"`
	AvgStarting         decimal.Decimal `json:"avg_starting_salary"`
	AvgMidCareer        decimal.Decimal `json:"avg_mid_career_salary"`
	AvgGrowthPercentage float64         `json:"avg_growth_percentage"`
	StartingDelta       decimal.Decimal `json:"starting_delta"`
	MidCareerDelta      decimal.Decimal `json:"mid_career_delta"`
}

// DashboardView é a visão completa calculada a cada requisição
type DashboardView struct {
	Filters          MajorFilters    `json:"filters"`
	KPIs             DashboardKPIs   `json:"kpis"`
	SalaryComparison Chart           `json:"salary_comparison"`
	TopStarting      []EnrichedMajor `json:"top_starting"`
	TopMidCareer     []EnrichedMajor `json:"top_mid_career"`
	RiskReward       Chart           `json:"risk_reward"`
	RiskDistribution Chart           `json:"risk_distribution"`
	TopGrowth        []EnrichedMajor `json:"top_growth"`
	GrowthByGroup    Chart           `json:"growth_by_group"`
	OutlookByGroup   Chart           `json:"outlook_by_group"`
	TopSatisfaction  []EnrichedMajor `json:"top_satisfaction"`
	SatisfactionPay  Chart           `json:"satisfaction_vs_salary"`
	Groups           []GroupSummary  `json:"groups"`
	Comparison       []EnrichedMajor `json:"comparison"`
	ComparisonChart  Chart           `json:"comparison_chart"`
}

package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrDivisionUndefined indica salário inicial zero no cálculo da taxa de crescimento
var ErrDivisionUndefined = errors.New("growth ratio undefined for zero starting salary")

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels retorna os níveis de risco em ordem crescente
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh}
}

var (
	percentile10Factor = decimal.NewFromFloat(0.7)
	percentile90Factor = decimal.NewFromFloat(1.8)
	lowRiskCeiling     = decimal.NewFromInt(60000)
	mediumRiskCeiling  = decimal.NewFromInt(80000)
)

// Pesos da nota composta de satisfação
const (
	satisfactionWeight    = 0.4
	workLifeBalanceWeight = 0.3
	midCareerScoreWeight  = 0.3
	midCareerScoreScale   = 10000.0
)

// DerivedMetrics são calculadas a partir de um MajorRecord e nunca alteradas
type DerivedMetrics struct {
	Spread                  decimal.Decimal `json:"spread"`
	GrowthRatio             *float64        `json:"growth_ratio"`
	GrowthPercentage        *float64        `json:"growth_percentage"`
	MidCareer10thPercentile decimal.Decimal `json:"mid_career_10th_percentile"`
	MidCareer90thPercentile decimal.Decimal `json:"mid_career_90th_percentile"`
	PercentileSpread        decimal.Decimal `json:"percentile_spread"`
	RiskLevel               RiskLevel       `json:"risk_level"`
	CareerSatisfaction      *float64        `json:"career_satisfaction_score"`
}

// EnrichedMajor é o par (registro, métricas) mantendo a posição original na entrada
type EnrichedMajor struct {
	Index   int            `json:"index"`
	Record  MajorRecord    `json:"record"`
	Metrics DerivedMetrics `json:"metrics"`
}

// EnrichedTable é a saída da transformação de métricas
type EnrichedTable struct {
	Rows   []EnrichedMajor        `json:"rows"`
	Groups map[Group]GroupSummary `json:"groups"`
}

// Spread retorna mid-career menos inicial
func Spread(record MajorRecord) decimal.Decimal {
	return record.MidCareerSalary.Sub(record.StartingSalary)
}

// GrowthRatio retorna spread / salário inicial, ou ErrDivisionUndefined quando o inicial é zero
func GrowthRatio(record MajorRecord) (float64, error) {
	if record.StartingSalary.IsZero() {
		return 0, ErrDivisionUndefined
	}
	return Spread(record).InexactFloat64() / record.StartingSalary.InexactFloat64(), nil
}

// ClassifyRisk classifica a amplitude entre os percentis 10 e 90.
// Amplitude zero (mid-career zero) é Low.
func ClassifyRisk(percentileSpread decimal.Decimal) RiskLevel {
	switch {
	case percentileSpread.LessThanOrEqual(lowRiskCeiling):
		return RiskLow
	case percentileSpread.LessThanOrEqual(mediumRiskCeiling):
		return RiskMedium
	default:
		return RiskHigh
	}
}

// CareerSatisfactionScore combina satisfação, equilíbrio e salário mid-career,
// arredondado a uma casa. ok é falso quando falta alguma das notas.
func CareerSatisfactionScore(record MajorRecord) (float64, bool) {
	if record.JobSatisfaction == nil || record.WorkLifeBalance == nil {
		return 0, false
	}

	score := *record.JobSatisfaction*satisfactionWeight +
		*record.WorkLifeBalance*workLifeBalanceWeight +
		record.MidCareerSalary.InexactFloat64()/midCareerScoreScale*midCareerScoreWeight

	return math.Round(score*10) / 10, true
}

// ComputeMetrics calcula todas as métricas derivadas de um registro.
// Salário inicial zero resulta em taxa de crescimento nula.
func ComputeMetrics(record MajorRecord) DerivedMetrics {
	p10 := record.MidCareerSalary.Mul(percentile10Factor)
	p90 := record.MidCareerSalary.Mul(percentile90Factor)
	percentileSpread := p90.Sub(p10)

	metrics := DerivedMetrics{
		Spread:                  Spread(record),
		MidCareer10thPercentile: p10,
		MidCareer90thPercentile: p90,
		PercentileSpread:        percentileSpread,
		RiskLevel:               ClassifyRisk(percentileSpread),
	}

	if score, ok := CareerSatisfactionScore(record); ok {
		metrics.CareerSatisfaction = &score
	}

	ratio, err := GrowthRatio(record)
	if err != nil {
		return metrics
	}

	percentage := ratio * 100
	metrics.GrowthRatio = &ratio
	metrics.GrowthPercentage = &percentage

	return metrics
}

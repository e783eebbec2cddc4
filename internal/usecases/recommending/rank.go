package recommending

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
)

type Options struct {
	DefaultTopK      int
	MaxTopK          int
	PersonalityBonus float64
	AlternativesSize int
}

func DefaultOptions() Options {
	return Options{
		DefaultTopK:      10,
		MaxTopK:          50,
		PersonalityBonus: 0.3,
		AlternativesSize: 5,
	}
}

// columnRange guarda o mínimo e o máximo de uma coluna para a normalização min-max
type columnRange struct {
	min     float64
	max     float64
	defined bool
}

func (c *columnRange) observe(value float64) {
	if !c.defined {
		c.min, c.max, c.defined = value, value, true
		return
	}
	c.min = math.Min(c.min, value)
	c.max = math.Max(c.max, value)
}

// normalize leva o valor para [0,1]. Coluna constante vale 1.
func (c columnRange) normalize(value float64) float64 {
	if !c.defined || c.max == c.min {
		return 1
	}
	return (value - c.min) / (c.max - c.min)
}

type normalizedWeights struct {
	starting     float64
	midCareer    float64
	growth       float64
	category     float64
	satisfaction float64
}

// normalizeWeights divide cada peso pela soma. Soma zero distribui igualmente entre
// salário inicial, mid-career e crescimento.
func normalizeWeights(weights domain.PriorityWeights) normalizedWeights {
	total := weights.Total()
	if total == 0 {
		return normalizedWeights{starting: 1.0 / 3, midCareer: 1.0 / 3, growth: 1.0 / 3}
	}

	return normalizedWeights{
		starting:     weights.StartingSalary / total,
		midCareer:    weights.MidCareerSalary / total,
		growth:       weights.Growth / total,
		category:     weights.Category / total,
		satisfaction: weights.Satisfaction / total,
	}
}

// Rank ordena os cursos da tabela segundo as prioridades informadas. Não guarda
// estado e é determinístico: empates seguem a ordem da entrada.
func Rank(table *domain.EnrichedTable, params domain.RecommendationParams, opts Options) (*domain.RecommendationResult, error) {
	topK, err := resolveTopK(params.TopK, opts)
	if err != nil {
		return nil, err
	}

	var profile *domain.PersonalityProfile
	if params.Personality != "" {
		found, ok := FindPersonality(params.Personality)
		if !ok {
			return nil, NewRecommendationError(ErrUnknownPersonality, apiErrors.ErrInvalidRequest, params.Personality)
		}
		profile = &found
	}

	var rows []domain.EnrichedMajor
	if table != nil {
		rows = table.Rows
	}

	weights := normalizeWeights(params.Weights)

	var startingRange, midCareerRange, growthRange, satisfactionRange columnRange
	for _, row := range rows {
		startingRange.observe(row.Record.StartingSalary.InexactFloat64())
		midCareerRange.observe(row.Record.MidCareerSalary.InexactFloat64())
		if row.Metrics.GrowthRatio != nil {
			growthRange.observe(*row.Metrics.GrowthRatio)
		}
		if row.Metrics.CareerSatisfaction != nil {
			satisfactionRange.observe(*row.Metrics.CareerSatisfaction)
		}
	}

	recommendations := make([]domain.Recommendation, 0, len(rows))
	personalityMatches := make([]string, 0)

	for _, row := range rows {
		breakdown := domain.ScoreBreakdown{
			StartingSalary:  weights.starting * startingRange.normalize(row.Record.StartingSalary.InexactFloat64()),
			MidCareerSalary: weights.midCareer * midCareerRange.normalize(row.Record.MidCareerSalary.InexactFloat64()),
		}

		// Crescimento ou satisfação indefinidos contam como zero
		if row.Metrics.GrowthRatio != nil {
			breakdown.Growth = weights.growth * growthRange.normalize(*row.Metrics.GrowthRatio)
		}
		if row.Metrics.CareerSatisfaction != nil {
			breakdown.Satisfaction = weights.satisfaction * satisfactionRange.normalize(*row.Metrics.CareerSatisfaction)
		}

		if slices.Contains(params.PreferredGroups, row.Record.Group) {
			breakdown.Category = weights.category
		}

		score := breakdown.StartingSalary + breakdown.MidCareerSalary + breakdown.Growth + breakdown.Category + breakdown.Satisfaction

		matched := profile != nil && MatchesPersonality(row.Record.Name, *profile)
		if matched {
			boosted := math.Min(1.0, score+opts.PersonalityBonus)
			breakdown.PersonalityBonus = boosted - score
			score = boosted
			personalityMatches = append(personalityMatches, row.Record.Name)
		}

		recommendations = append(recommendations, domain.Recommendation{
			Major:            row,
			Score:            score,
			MatchPercentage:  score * 100,
			PersonalityMatch: matched,
			Breakdown:        breakdown,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > topK {
		recommendations = recommendations[:topK]
	}
	for i := range recommendations {
		recommendations[i].Rank = i + 1
	}

	return &domain.RecommendationResult{
		Priorities: domain.PriorityBreakdown{
			StartingSalary:  weights.starting * 100,
			MidCareerSalary: weights.midCareer * 100,
			Growth:          weights.growth * 100,
			Category:        weights.category * 100,
			Satisfaction:    weights.satisfaction * 100,
		},
		Recommendations:    recommendations,
		PersonalityMatches: personalityMatches,
		Alternatives: domain.Alternatives{
			ByStartingSalary:  analyzing.TopN(rows, domain.MetricStartingSalary, opts.AlternativesSize),
			ByMidCareerSalary: analyzing.TopN(rows, domain.MetricMidCareerSalary, opts.AlternativesSize),
			ByGrowth:          analyzing.TopN(rows, domain.MetricGrowthPercentage, opts.AlternativesSize),
			BySatisfaction:    analyzing.TopN(rows, domain.MetricSatisfaction, opts.AlternativesSize),
		},
	}, nil
}

func resolveTopK(topK int, opts Options) (int, error) {
	switch {
	case topK < 0:
		return 0, NewRecommendationError(ErrInvalidParams, apiErrors.ErrInvalidRequest, fmt.Sprintf("top_k must be >= 0, got %d", topK))
	case topK == 0:
		return opts.DefaultTopK, nil
	case topK > opts.MaxTopK:
		return 0, NewRecommendationError(ErrTopKTooLarge, apiErrors.ErrInvalidRequest, fmt.Sprintf("top_k %d > %d", topK, opts.MaxTopK))
	default:
		return topK, nil
	}
}

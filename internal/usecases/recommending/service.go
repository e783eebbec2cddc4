package recommending

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
	"github.com/vfg2006/college-majors-api/pkg/validation"
)

type Recommender interface {
	Recommend(params domain.RecommendationParams) (*domain.RecommendationResult, error)
	Personalities() []domain.PersonalityProfile
}

type Service struct {
	Analyzer analyzing.Analyzer
	options  Options
}

func NewService(analyzer analyzing.Analyzer, cfg *config.Config) Recommender {
	options := DefaultOptions()
	if cfg != nil {
		options = Options{
			DefaultTopK:      cfg.Recommendation.DefaultTopK,
			MaxTopK:          cfg.Recommendation.MaxTopK,
			PersonalityBonus: cfg.Recommendation.PersonalityBonus,
			AlternativesSize: cfg.Recommendation.AlternativesSize,
		}
	}

	return &Service{
		Analyzer: analyzer,
		options:  options,
	}
}

func (s *Service) Recommend(params domain.RecommendationParams) (*domain.RecommendationResult, error) {
	if fields := validation.Struct(params); fields != nil {
		return nil, &RecommendationError{
			Err:    ErrInvalidParams,
			Code:   apiErrors.ErrValidationFailed,
			Fields: fields,
		}
	}

	table, err := s.Analyzer.Table()
	if err != nil {
		return nil, err
	}

	result, err := Rank(table, params, s.options)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"candidates":          len(table.Rows),
		"recommendations":     len(result.Recommendations),
		"personality":         params.Personality,
		"personality_matches": len(result.PersonalityMatches),
	}).Debug("Recomendações calculadas")

	return result, nil
}

func (s *Service) Personalities() []domain.PersonalityProfile {
	return Personalities()
}

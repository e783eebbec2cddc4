package dashboard

import (
	"errors"

	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/validation"
)

var ErrInvalidParams = errors.New("invalid dashboard params")

// ParamsError carrega os campos que falharam na validação
type ParamsError struct {
	Fields map[string]string
}

func (e *ParamsError) Error() string {
	return ErrInvalidParams.Error()
}

func (e *ParamsError) Unwrap() error {
	return ErrInvalidParams
}

type Dashboarder interface {
	GetView(params domain.DashboardParams) (*domain.DashboardView, error)
}

type Service struct {
	Analyzer    analyzing.Analyzer
	defaultTopN int
}

func NewService(analyzer analyzing.Analyzer, cfg *config.Config) Dashboarder {
	topN := DefaultTopN
	if cfg != nil && cfg.Dashboard.TopN > 0 {
		topN = cfg.Dashboard.TopN
	}

	return &Service{
		Analyzer:    analyzer,
		defaultTopN: topN,
	}
}

func (s *Service) GetView(params domain.DashboardParams) (*domain.DashboardView, error) {
	if fields := validation.Struct(params); fields != nil {
		return nil, &ParamsError{Fields: fields}
	}

	table, err := s.Analyzer.Table()
	if err != nil {
		return nil, err
	}

	return BuildView(table, params, s.defaultTopN), nil
}

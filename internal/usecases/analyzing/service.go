package analyzing

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/domain"
)

type Analyzer interface {
	Table() (*domain.EnrichedTable, error)
	ListMajors(filters domain.MajorFilters) (*domain.EnrichedTable, error)
	GetGroupSummaries(filters domain.MajorFilters) ([]domain.GroupSummary, error)
	GetStats(filters domain.MajorFilters) (*domain.DatasetStats, error)
}

type Service struct {
	MajorRepository repository.MajorRepository

	cacheMutex sync.Mutex
	cachedID   string
	cached     *domain.EnrichedTable
}

func NewService(majorRepository repository.MajorRepository) Analyzer {
	return &Service{
		MajorRepository: majorRepository,
	}
}

// Table retorna a tabela enriquecida do snapshot atual. A transformação é
// refeita apenas quando o snapshot muda.
func (s *Service) Table() (*domain.EnrichedTable, error) {
	snapshot, err := s.MajorRepository.Snapshot()
	if err != nil {
		return nil, err
	}

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	if s.cached != nil && s.cachedID == snapshot.ID {
		return s.cached, nil
	}

	table := Transform(snapshot.Records)

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"rows":        len(table.Rows),
		"groups":      len(table.Groups),
	}).Debug("Métricas calculadas para o snapshot")

	s.cachedID = snapshot.ID
	s.cached = table

	return table, nil
}

func (s *Service) ListMajors(filters domain.MajorFilters) (*domain.EnrichedTable, error) {
	table, err := s.Table()
	if err != nil {
		return nil, err
	}

	return Filter(table, filters), nil
}

func (s *Service) GetGroupSummaries(filters domain.MajorFilters) ([]domain.GroupSummary, error) {
	table, err := s.ListMajors(filters)
	if err != nil {
		return nil, err
	}

	return domain.OrderedGroups(table.Groups), nil
}

func (s *Service) GetStats(filters domain.MajorFilters) (*domain.DatasetStats, error) {
	table, err := s.ListMajors(filters)
	if err != nil {
		return nil, err
	}

	stats := Stats(table)
	return &stats, nil
}

package analyzing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/internal/domain"
)

func newRecord(name string, starting int64, midCareer int64, group domain.Group) domain.MajorRecord {
	return domain.MajorRecord{
		Name:            name,
		StartingSalary:  decimal.NewFromInt(starting),
		MidCareerSalary: decimal.NewFromInt(midCareer),
		Group:           group,
	}
}

func sampleRecords() []domain.MajorRecord {
	return []domain.MajorRecord{
		newRecord("Computer Science", 55900, 95000, domain.GroupSTEM),
		newRecord("Psychology", 35900, 60400, domain.GroupHASS),
		newRecord("Finance", 47900, 88300, domain.GroupBusiness),
		newRecord("Math", 45400, 92400, domain.GroupSTEM),
		newRecord("Drama", 35900, 56900, domain.GroupHASS),
	}
}

func TestTransform_Scenario(t *testing.T) {
	table := Transform([]domain.MajorRecord{
		newRecord("Computer Science", 55900, 95000, domain.GroupSTEM),
		newRecord("Psychology", 35900, 60400, domain.GroupHASS),
	})

	require.Len(t, table.Rows, 2)

	assert.True(t, decimal.NewFromInt(39100).Equal(table.Rows[0].Metrics.Spread))
	assert.True(t, decimal.NewFromInt(24500).Equal(table.Rows[1].Metrics.Spread))

	require.NotNil(t, table.Rows[0].Metrics.GrowthRatio)
	require.NotNil(t, table.Rows[1].Metrics.GrowthRatio)
	assert.InDelta(t, 0.6995, *table.Rows[0].Metrics.GrowthRatio, 1e-4)
	assert.InDelta(t, 0.6824, *table.Rows[1].Metrics.GrowthRatio, 1e-4)

	stem, exists := table.Groups[domain.GroupSTEM]
	require.True(t, exists)
	assert.True(t, decimal.NewFromInt(55900).Equal(stem.AvgStarting))
	assert.True(t, decimal.NewFromInt(95000).Equal(stem.AvgMidCareer))
	assert.Equal(t, 1, stem.Count)
}

func TestTransform_PreservesOrderAndLength(t *testing.T) {
	records := sampleRecords()
	table := Transform(records)

	require.Len(t, table.Rows, len(records))
	for i, row := range table.Rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, records[i], row.Record)
	}
}

func TestTransform_GroupCounts(t *testing.T) {
	records := sampleRecords()
	table := Transform(records)

	total := 0
	for group, summary := range table.Groups {
		expected := 0
		for _, record := range records {
			if record.Group == group {
				expected++
			}
		}
		assert.Equal(t, expected, summary.Count, "grupo %s", group)
		total += summary.Count
	}
	assert.Equal(t, len(records), total)
}

func TestTransform_Idempotent(t *testing.T) {
	records := sampleRecords()

	first := Transform(records)
	second := Transform(records)

	assert.Equal(t, first, second)
}

func TestTransform_ZeroStartingSalary(t *testing.T) {
	table := Transform([]domain.MajorRecord{
		newRecord("Zero", 0, 40000, domain.GroupHASS),
	})

	require.Len(t, table.Rows, 1)
	assert.Nil(t, table.Rows[0].Metrics.GrowthRatio)
	assert.Nil(t, table.Rows[0].Metrics.GrowthPercentage)
	assert.Nil(t, table.Groups[domain.GroupHASS].AvgGrowthPercentage)
}

func TestTransform_Empty(t *testing.T) {
	table := Transform(nil)

	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.Groups)
}

func TestFilter(t *testing.T) {
	table := Transform(sampleRecords())
	minimum := decimal.NewFromInt(45400)
	maximum := decimal.NewFromInt(50000)

	tests := []struct {
		name     string
		filters  domain.MajorFilters
		expected []string
	}{
		{
			name:     "Sem filtros devolve a tabela inteira",
			filters:  domain.MajorFilters{},
			expected: []string{"Computer Science", "Psychology", "Finance", "Math", "Drama"},
		},
		{
			name:     "Por grupo",
			filters:  domain.MajorFilters{Groups: []domain.Group{domain.GroupSTEM}},
			expected: []string{"Computer Science", "Math"},
		},
		{
			name:     "Faixa de salário inicial inclusiva",
			filters:  domain.MajorFilters{MinStarting: &minimum, MaxStarting: &maximum},
			expected: []string{"Finance", "Math"},
		},
		{
			name:     "Por nome",
			filters:  domain.MajorFilters{Names: []string{"drama", "Psychology"}},
			expected: []string{"Psychology", "Drama"},
		},
		{
			name:     "Nenhuma linha corresponde",
			filters:  domain.MajorFilters{Names: []string{"Nursing"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(table, tt.filters)

			names := make([]string, 0, len(filtered.Rows))
			for _, row := range filtered.Rows {
				names = append(names, row.Record.Name)
			}
			assert.Equal(t, tt.expected, names)

			count := 0
			for _, summary := range filtered.Groups {
				count += summary.Count
			}
			assert.Equal(t, len(tt.expected), count)
		})
	}

	t.Run("Índice original é mantido", func(t *testing.T) {
		filtered := Filter(table, domain.MajorFilters{Names: []string{"Math"}})
		require.Len(t, filtered.Rows, 1)
		assert.Equal(t, 3, filtered.Rows[0].Index)
	})
}

func TestStats(t *testing.T) {
	stats := Stats(Transform(sampleRecords()))

	assert.Equal(t, 5, stats.TotalMajors)
	assert.True(t, decimal.NewFromInt(44200).Equal(stats.AvgStarting))
	assert.True(t, decimal.NewFromInt(78600).Equal(stats.AvgMidCareer))
	require.NotNil(t, stats.AvgGrowthPercentage)

	require.NotNil(t, stats.HighestStarting)
	assert.Equal(t, "Computer Science", stats.HighestStarting.Record.Name)
	require.NotNil(t, stats.HighestMidCareer)
	assert.Equal(t, "Computer Science", stats.HighestMidCareer.Record.Name)

	// Psychology e Drama empatam no salário inicial, vence a primeira
	require.NotNil(t, stats.LowestStarting)
	assert.Equal(t, "Psychology", stats.LowestStarting.Record.Name)
	require.NotNil(t, stats.LowestMidCareer)
	assert.Equal(t, "Drama", stats.LowestMidCareer.Record.Name)

	// Math: 47000 / 45400
	require.NotNil(t, stats.BestGrowth)
	assert.Equal(t, "Math", stats.BestGrowth.Record.Name)

	require.Len(t, stats.Groups, 3)
	assert.Equal(t, domain.GroupSTEM, stats.Groups[0].Group)
	assert.Equal(t, domain.GroupBusiness, stats.Groups[1].Group)
	assert.Equal(t, domain.GroupHASS, stats.Groups[2].Group)
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(Transform(nil))

	assert.Zero(t, stats.TotalMajors)
	assert.True(t, stats.AvgStarting.IsZero())
	assert.Nil(t, stats.AvgGrowthPercentage)
	assert.Nil(t, stats.HighestStarting)
	assert.Nil(t, stats.BestGrowth)
	assert.Empty(t, stats.Groups)
}

func TestTopN(t *testing.T) {
	rows := Transform(sampleRecords()).Rows

	t.Run("Maiores salários mid-career", func(t *testing.T) {
		top := TopN(rows, domain.MetricMidCareerSalary, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "Computer Science", top[0].Record.Name)
		assert.Equal(t, "Math", top[1].Record.Name)
	})

	t.Run("Empates mantêm a ordem de entrada", func(t *testing.T) {
		top := TopN(rows, domain.MetricStartingSalary, 5)
		require.Len(t, top, 5)
		assert.Equal(t, "Psychology", top[3].Record.Name)
		assert.Equal(t, "Drama", top[4].Record.Name)
	})

	t.Run("N maior que a quantidade de linhas", func(t *testing.T) {
		assert.Len(t, TopN(rows, domain.MetricSpread, 50), 5)
	})

	t.Run("N zero ou negativo", func(t *testing.T) {
		assert.Empty(t, TopN(rows, domain.MetricSpread, 0))
		assert.Empty(t, TopN(rows, domain.MetricSpread, -1))
	})

	t.Run("Crescimento indefinido fica de fora", func(t *testing.T) {
		withZero := Transform([]domain.MajorRecord{
			newRecord("Zero", 0, 40000, domain.GroupHASS),
			newRecord("Psychology", 35900, 60400, domain.GroupHASS),
		}).Rows

		top := TopN(withZero, domain.MetricGrowthPercentage, 5)
		require.Len(t, top, 1)
		assert.Equal(t, "Psychology", top[0].Record.Name)
	})
}

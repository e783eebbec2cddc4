package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// MajorFilters equivale aos filtros laterais do painel. Campos vazios não filtram.
type MajorFilters struct {
	Groups      []Group          `json:"groups,omitempty"`
	MinStarting *decimal.Decimal `json:"min_starting,omitempty"`
	MaxStarting *decimal.Decimal `json:"max_starting,omitempty"`
	RiskLevels  []RiskLevel      `json:"risk_levels,omitempty"`
	Names       []string         `json:"names,omitempty"`
}

// IsEmpty indica que nenhum filtro foi informado
func (f MajorFilters) IsEmpty() bool {
	return len(f.Groups) == 0 &&
		f.MinStarting == nil &&
		f.MaxStarting == nil &&
		len(f.RiskLevels) == 0 &&
		len(f.Names) == 0
}

// Matches verifica se a linha atende a todos os filtros informados
func (f MajorFilters) Matches(row EnrichedMajor) bool {
	if len(f.Groups) > 0 && !slices.Contains(f.Groups, row.Record.Group) {
		return false
	}

	if f.MinStarting != nil && row.Record.StartingSalary.LessThan(*f.MinStarting) {
		return false
	}

	if f.MaxStarting != nil && row.Record.StartingSalary.GreaterThan(*f.MaxStarting) {
		return false
	}

	if len(f.RiskLevels) > 0 && !slices.Contains(f.RiskLevels, row.Metrics.RiskLevel) {
		return false
	}

	if len(f.Names) > 0 {
		return slices.ContainsFunc(f.Names, func(name string) bool {
			return strings.EqualFold(strings.TrimSpace(name), row.Record.Name)
		})
	}

	return true
}

// ParseRiskLevel converte texto em RiskLevel ignorando caixa
func ParseRiskLevel(value string) (RiskLevel, bool) {
	trimmed := strings.TrimSpace(value)
	for _, level := range RiskLevels() {
		if strings.EqualFold(trimmed, string(level)) {
			return level, true
		}
	}
	return "", false
}

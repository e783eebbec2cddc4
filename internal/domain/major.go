// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Group string

const (
	GroupSTEM     Group = "STEM"
	GroupBusiness Group = "Business"
	GroupHASS     Group = "HASS"
)

// Groups retorna os grupos conhecidos na ordem canônica de exibição
func Groups() []Group {
	return []Group{GroupSTEM, GroupBusiness, GroupHASS}
}

// ParseGroup converte o texto do CSV em um Group, ignorando caixa e espaços
func ParseGroup(value string) (Group, bool) {
	trimmed := strings.TrimSpace(value)
	for _, group := range Groups() {
		if strings.EqualFold(trimmed, string(group)) {
			return group, true
		}
	}
	return "", false
}

type GrowthOutlook string

const (
	OutlookLow      GrowthOutlook = "Low"
	OutlookModerate GrowthOutlook = "Moderate"
	OutlookHigh     GrowthOutlook = "High"
	OutlookVeryHigh GrowthOutlook = "Very High"
)

// GrowthOutlooks retorna as perspectivas de crescimento em ordem crescente
func GrowthOutlooks() []GrowthOutlook {
	return []GrowthOutlook{OutlookLow, OutlookModerate, OutlookHigh, OutlookVeryHigh}
}

// ParseGrowthOutlook aceita "very high", "Very_High" e variações de caixa
func ParseGrowthOutlook(value string) (GrowthOutlook, bool) {
	normalized := strings.Join(strings.Fields(strings.ReplaceAll(value, "_", " ")), " ")
	for _, outlook := range GrowthOutlooks() {
		if strings.EqualFold(normalized, string(outlook)) {
			return outlook, true
		}
	}
	return "", false
}

// MajorRecord é uma linha do arquivo de entrada. Imutável após o parsing.
// As notas de satisfação (0 a 10) e a perspectiva são opcionais no arquivo.
type MajorRecord struct {
	Name            string          `json:"name"`
	StartingSalary  decimal.Decimal `json:"starting_salary"`
	MidCareerSalary decimal.Decimal `json:"mid_career_salary"`
	Group           Group           `json:"group"`
	JobSatisfaction *float64        `json:"job_satisfaction_score"`
	WorkLifeBalance *float64        `json:"work_life_balance"`
	GrowthOutlook   *GrowthOutlook  `json:"job_growth_outlook"`
}

// DatasetSnapshot é uma carga completa do arquivo de entrada
type DatasetSnapshot struct {
	ID       string        `json:"id"`
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loaded_at"`
	Records  []MajorRecord `json:"-"`
	Skipped  int           `json:"skipped_rows"`
}

// Len retorna a quantidade de registros carregados
func (s *DatasetSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

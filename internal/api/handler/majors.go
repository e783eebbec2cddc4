package handler

import (
	"net/http"

	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
)

type majorsResponse struct {
	Total  int                    `json:"total"`
	Majors []domain.EnrichedMajor `json:"majors"`
}

// ListMajors retorna os cursos com as métricas derivadas, aplicando os filtros da query
func ListMajors(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseMajorFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		table, err := service.ListMajors(filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar cursos")
			return
		}

		writeJSON(w, majorsResponse{
			Total:  len(table.Rows),
			Majors: table.Rows,
		})
	}
}

// GetGroupSummaries retorna os agregados por grupo na ordem STEM, Business, HASS
func GetGroupSummaries(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseMajorFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		groups, err := service.GetGroupSummaries(filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao resumir grupos")
			return
		}

		writeJSON(w, groups)
	}
}

func GetStats(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseMajorFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.GetStats(filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, stats)
	}
}

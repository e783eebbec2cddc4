package handler

import (
	"net/http"

	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
	"github.com/vfg2006/college-majors-api/pkg/utils"
)

// GetDashboard monta todos os blocos do painel para os filtros da query
func GetDashboard(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters, err := parseMajorFilters(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		topN, err := parseIntParam(query, "top_n")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		view, err := service.GetView(domain.DashboardParams{
			Filters: filters,
			Compare: utils.SplitList(query.Get("compare")),
			TopN:    topN,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		writeJSON(w, view)
	}
}

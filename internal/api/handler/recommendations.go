package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
)

// Recommend calcula o ranking de cursos para as prioridades enviadas no corpo
func Recommend(service recommending.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - Recommend")

		var params domain.RecommendationParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.Recommend(params)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular recomendações")
			return
		}

		writeJSON(w, result)
	}
}

// ListPersonalities retorna os perfis de personalidade disponíveis
func ListPersonalities(service recommending.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.Personalities())
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
	"github.com/vfg2006/college-majors-api/pkg/log"
)

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var recommendationErr *recommending.RecommendationError
	var paramsErr *dashboard.ParamsError

	switch {
	case errors.As(err, &recommendationErr):
		var details any
		if len(recommendationErr.Fields) > 0 {
			details = recommendationErr.Fields
		}
		apiErrors.WriteError(w, recommendationErr.Code, recommendationErr.Error(), details)

	case errors.As(err, &paramsErr):
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, paramsErr.Error(), paramsErr.Fields)

	case errors.Is(err, repository.ErrDatasetNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Dataset de cursos ainda não foi carregado", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/internal/scheduler"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
)

// CronJobTypeDatasetReload é o único job que pode ser executado manualmente
const CronJobTypeDatasetReload = "dataset-reload"

// DatasetReloader é a parte do agendador usada pelas rotas de cron
type DatasetReloader interface {
	TriggerManualSync()
	GetStatus() scheduler.ReloadStatus
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(reloader DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetReload:
			if reloader == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
				return
			}
			reloader.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-reload", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(reloader DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reloader == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
			return
		}

		writeJSON(w, map[string]any{
			CronJobTypeDatasetReload: reloader.GetStatus(),
		})
	}
}

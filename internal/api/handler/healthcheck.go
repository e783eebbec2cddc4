package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
)

type healthcheckResponse struct {
	Status     string    `json:"status"`
	Time       time.Time `json:"time"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	Records    int       `json:"records"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// HealthcheckHandler responde 200 com o snapshot atual, ou 503 antes da primeira carga
func HealthcheckHandler(majorRepo repository.MajorRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
		}

		snapshot, err := majorRepo.Snapshot()
		if err != nil {
			logrus.WithError(err).Warn("healthcheck sem dataset carregado")
			response.Status = "dataset_not_loaded"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if err := json.NewEncoder(w).Encode(response); err != nil {
				logrus.WithError(err).Warn("error responding to healthcheck")
			}
			return
		}

		response.SnapshotID = snapshot.ID
		response.Records = snapshot.Len()
		response.LoadedAt = snapshot.LoadedAt

		writeJSON(w, response)
	})
}

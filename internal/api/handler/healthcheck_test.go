package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/infrastructure/repository/mocks"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMajorRepository(ctrl)
	handler := newTestRouter(Healthcheck(mockRepo))

	t.Run("Dataset carregado", func(t *testing.T) {
		mockRepo.EXPECT().Snapshot().Return(&domain.DatasetSnapshot{
			ID:      "AbC123",
			Records: make([]domain.MajorRecord, 50),
		}, nil)

		rec := doRequest(t, handler, http.MethodGet, "/healthcheck", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "AbC123", body["snapshot_id"])
		assert.Equal(t, 50.0, body["records"])
	})

	t.Run("Antes da primeira carga", func(t *testing.T) {
		mockRepo.EXPECT().Snapshot().Return(nil, repository.ErrDatasetNotLoaded)

		rec := doRequest(t, handler, http.MethodGet, "/healthcheck", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "dataset_not_loaded", decodeBody(t, rec)["status"])
	})
}

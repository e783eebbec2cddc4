package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/internal/scheduler"
	"github.com/vfg2006/college-majors-api/pkg/apiErrors"
)

type fakeReloader struct {
	triggered int
	status    scheduler.ReloadStatus
}

func (f *fakeReloader) TriggerManualSync() {
	f.triggered++
}

func (f *fakeReloader) GetStatus() scheduler.ReloadStatus {
	return f.status
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		wantStatus    int
		wantCode      string
		wantTriggered int
	}{
		{
			name:          "Recarga do dataset",
			target:        "/v1/cron/dataset-reload/run",
			wantStatus:    http.StatusAccepted,
			wantTriggered: 1,
		},
		{
			name:       "Tipo desconhecido",
			target:     "/v1/cron/meta/run",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reloader := &fakeReloader{}
			handler := newTestRouter(CronJobs(reloader))

			rec := doRequest(t, handler, http.MethodPost, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, reloader.triggered)

			body := decodeBody(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			} else {
				assert.Equal(t, CronJobTypeDatasetReload, body["type"])
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	reloader := &fakeReloader{status: scheduler.ReloadStatus{
		Enabled:        true,
		CronSchedule:   "0 */6 * * *",
		LastSnapshotID: "AbC123",
	}}
	handler := newTestRouter(CronJobs(reloader))

	rec := doRequest(t, handler, http.MethodGet, "/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	status, ok := decodeBody(t, rec)[CronJobTypeDatasetReload].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, "AbC123", status["last_snapshot_id"])
}

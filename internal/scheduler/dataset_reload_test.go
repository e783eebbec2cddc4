package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/college-majors-api/infrastructure/repository/mocks"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetReload: config.DatasetReload{
			CronSchedule: "0 */6 * * *",
			Enabled:      enabled,
		},
	}
}

func TestDatasetReloadService_ReloadDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMajorRepository(ctrl)
	service := NewDatasetReloadService(mockRepo, newTestConfig(false))

	tests := []struct {
		name     string
		setup    func()
		wantErr  bool
		validate func(t *testing.T, status ReloadStatus)
	}{
		{
			name: "Recarga com sucesso atualiza o status",
			setup: func() {
				mockRepo.EXPECT().
					Reload(gomock.Any()).
					Return(&domain.DatasetSnapshot{
						ID:      "AbC123",
						Records: make([]domain.MajorRecord, 3),
						Skipped: 1,
					}, nil)
			},
			validate: func(t *testing.T, status ReloadStatus) {
				assert.False(t, status.Running)
				assert.Equal(t, "AbC123", status.LastSnapshotID)
				assert.Equal(t, 3, status.LastRecords)
				assert.Equal(t, 1, status.LastSkipped)
				assert.Equal(t, 1, status.SuccessfulReloads)
				assert.Empty(t, status.LastError)
				assert.False(t, status.LastCompletedAt.Before(status.LastStartedAt))
			},
		},
		{
			name: "Falha mantém o último snapshot registrado",
			setup: func() {
				mockRepo.EXPECT().
					Reload(gomock.Any()).
					Return(nil, errors.New("line 7: salary is not a non-negative number"))
			},
			wantErr: true,
			validate: func(t *testing.T, status ReloadStatus) {
				assert.Equal(t, "AbC123", status.LastSnapshotID)
				assert.Equal(t, 1, status.FailedReloads)
				assert.Contains(t, status.LastError, "line 7")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.ReloadDataset(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMajorRepository(ctrl)
	mockRepo.EXPECT().
		Reload(gomock.Any()).
		Return(&domain.DatasetSnapshot{ID: "XyZ789"}, nil)

	service := NewDatasetReloadService(mockRepo, newTestConfig(false))

	service.TriggerManualSync()
	service.Wait()

	status := service.GetStatus()
	assert.Equal(t, "XyZ789", status.LastSnapshotID)
	assert.Equal(t, 1, status.SuccessfulReloads)
}

func TestDatasetReloadService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMajorRepository(ctrl)

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewDatasetReloadService(mockRepo, newTestConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Zero(t, service.scheduler.Len())
		assert.False(t, service.GetStatus().Enabled)
	})

	t.Run("Habilitado agenda a recarga", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewDatasetReloadService(mockRepo, newTestConfig(true))

		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())
		assert.True(t, service.GetStatus().Enabled)
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		cfg := newTestConfig(true)
		cfg.DatasetReload.CronSchedule = "not a cron"

		service := NewDatasetReloadService(mockRepo, cfg)
		assert.Error(t, service.Start(context.Background()))
	})
}

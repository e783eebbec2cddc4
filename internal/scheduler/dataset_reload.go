// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/config"
)

type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService relê periodicamente o mesmo arquivo de entrada.
// Uma carga com erro mantém o snapshot anterior.
type DatasetReloadService struct {
	scheduler  *gocron.Scheduler
	majorRepo  repository.MajorRepository
	config     DatasetReloadConfig
	ctx        context.Context
	syncMutex  sync.Mutex
	wg         sync.WaitGroup
	status     ReloadStatus
	statusLock sync.RWMutex
}

// ReloadStatus é o estado exposto em /v1/cron/status
type ReloadStatus struct {
	Enabled           bool      `json:"sync_enabled"`
	CronSchedule      string    `json:"sync_cron"`
	Running           bool      `json:"running"`
	LastStartedAt     time.Time `json:"last_sync_started_at"`
	LastCompletedAt   time.Time `json:"last_sync_completed_at"`
	LastSnapshotID    string    `json:"last_snapshot_id,omitempty"`
	LastRecords       int       `json:"last_records"`
	LastSkipped       int       `json:"last_skipped"`
	LastError         string    `json:"last_error,omitempty"`
	SuccessfulReloads int       `json:"successful_reloads"`
	FailedReloads     int       `json:"failed_reloads"`
}

func NewDatasetReloadService(majorRepo repository.MajorRepository, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.DatasetReload.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		majorRepo: majorRepo,
		config:    reloadConfig,
		ctx:       context.Background(),
		status: ReloadStatus{
			Enabled:      reloadConfig.Enabled,
			CronSchedule: reloadConfig.CronSchedule,
		},
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDataset(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset executa uma recarga. Se outra já estiver em andamento, retorna sem fazer nada.
func (s *DatasetReloadService) ReloadDataset(ctx context.Context) error {
	if !s.syncMutex.TryLock() {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}
	defer s.syncMutex.Unlock()

	s.updateStatus(func(status *ReloadStatus) {
		status.Running = true
		status.LastStartedAt = time.Now()
	})

	logrus.Info("Iniciando recarga do dataset")

	snapshot, err := s.majorRepo.Reload(ctx)

	s.updateStatus(func(status *ReloadStatus) {
		status.Running = false
		status.LastCompletedAt = time.Now()

		if err != nil {
			status.LastError = err.Error()
			status.FailedReloads++
			return
		}

		status.LastError = ""
		status.LastSnapshotID = snapshot.ID
		status.LastRecords = snapshot.Len()
		status.LastSkipped = snapshot.Skipped
		status.SuccessfulReloads++
	})

	if err != nil {
		return fmt.Errorf("erro ao recarregar o dataset, snapshot anterior mantido: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"records":     snapshot.Len(),
	}).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetReloadService) TriggerManualSync() {
	if s.GetStatus().Running {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando recarga manual do dataset")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.ReloadDataset(s.ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// Wait aguarda as recargas manuais disparadas terminarem
func (s *DatasetReloadService) Wait() {
	s.wg.Wait()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() ReloadStatus {
	s.statusLock.RLock()
	defer s.statusLock.RUnlock()
	return s.status
}

func (s *DatasetReloadService) updateStatus(update func(status *ReloadStatus)) {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	update(&s.status)
}

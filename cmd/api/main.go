package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/api"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/scheduler"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Salários saem como números no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	majorRepo := repository.NewMajorRepository(cfg.Dataset)
	if _, err := majorRepo.Reload(ctx); err != nil {
		logrus.WithError(err).WithField("path", cfg.Dataset.Path).Fatal("Erro ao carregar o dataset de cursos")
	}

	analyzer := analyzing.NewService(majorRepo)
	recommender := recommending.NewService(analyzer, cfg)
	dashboarder := dashboard.NewService(analyzer, cfg)

	datasetReloadService := scheduler.NewDatasetReloadService(majorRepo, cfg)

	// Inicia o agendador em background
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		majorRepo,
		analyzer,
		recommender,
		dashboarder,
		datasetReloadService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// Aguarda recargas manuais em andamento antes de sair
	cancel()
	datasetReloadService.Wait()
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/api/handler"
	"github.com/vfg2006/college-majors-api/internal/api/handler/router"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/internal/usecases/dashboard"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
	"github.com/vfg2006/college-majors-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	majorRepo repository.MajorRepository,
	analyzer analyzing.Analyzer,
	recommender recommending.Recommender,
	dashboarder dashboard.Dashboarder,
	datasetReloader handler.DatasetReloader,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(majorRepo)...),
		router.WithRoutes(handler.Majors(analyzer)...),
		router.WithRoutes(handler.Dashboard(dashboarder)...),
		router.WithRoutes(handler.Recommendations(recommender)...),
		router.WithRoutes(handler.CronJobs(datasetReloader)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas, usada nos testes de ponta a ponta
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run sobe o servidor e bloqueia até receber SIGINT/SIGTERM ou o contexto ser cancelado
func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-signalCtx.Done():
		logrus.Info("Sinal de interrupção recebido ou contexto cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// DatasetRefreshConfig representa a configuração do agendador de refresh
// do dataset.
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService mantém o cache do dataset aquecido: em um
// intervalo agendado, reconfere a identidade do arquivo de origem e
// reinterpreta o conteúdo quando ele mudou. Não é ingestão em tempo
// real: entre execuções o dashboard continua servindo o cache.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	loader    dataset.Loader

	refreshMutex           sync.Mutex
	refreshRunning         bool
	lastRunID              string
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewDatasetRefreshService cria uma nova instância do serviço de refresh.
func NewDatasetRefreshService(loader dataset.Loader, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de refresh do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		loader:    loader,
	}
}

// Start inicia o agendador.
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Refresh agendado do dataset desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de refresh do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh do dataset: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de refresh do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRefresh dispara uma execução fora do agendamento.
func (s *DatasetRefreshService) TriggerManualRefresh() {
	go s.refreshDataset(context.Background())
}

// refreshDataset recarrega o dataset respeitando a memoização do Loader.
// Execuções sobrepostas são ignoradas.
func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Refresh do dataset já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}
	s.lastRunID = runID
	s.refreshMutex.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando refresh do dataset")

	ds, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao recarregar o dataset")
	} else {
		logger.WithFields(logrus.Fields{
			"rows":     len(ds.Rows),
			"warnings": len(ds.Warnings),
		}).Info("Refresh do dataset concluído")
	}

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()
	s.refreshMutex.Unlock()
}

// GetStatus retorna o estado atual do agendador, para o endpoint de cron.
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.refreshRunning,
		"last_run_id":   s.lastRunID,
	}

	if !s.lastRefreshStartedAt.IsZero() {
		status["last_started_at"] = s.lastRefreshStartedAt.Format(time.RFC3339)
	}
	if !s.lastRefreshCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastRefreshCompletedAt.Format(time.RFC3339)
	}

	return status
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// SessionsSyncRunner é a fatia do orquestrador de sessões usada pelo agendador.
type SessionsSyncRunner interface {
	Run(ctx context.Context, window domain.DateRange) (*domain.RunSummary, error)
	IncrementalWindow(now time.Time, lookbackDays int) domain.DateRange
}

// SessionsSyncConfig representa a configuração do agendador de sessões do GA4
type SessionsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// SessionsSyncService gerencia o agendamento e execução da sincronização
// incremental de sessões do GA4
type SessionsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SessionsSyncConfig
	runner              SessionsSyncRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.RunSummary
}

// NewSessionsSyncService cria uma nova instância do serviço de sincronização de sessões
func NewSessionsSyncService(runner SessionsSyncRunner, appConfig *config.Config) *SessionsSyncService {
	syncConfig := SessionsSyncConfig{
		CronSchedule: appConfig.SessionsSync.CronSchedule,
		LookbackDays: appConfig.SessionsSync.LookbackDays,
		SyncEnabled:  appConfig.SessionsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sessões do GA4 carregada")

	return &SessionsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		runner:      runner,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SessionsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de sessões do GA4 desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de sessões do GA4")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSessions(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de sessões do GA4: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de sessões do GA4")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSessions executa uma sincronização incremental completa. Execuções
// sobrepostas são descartadas: o merge é idempotente, então a próxima
// execução agendada recupera o que esta deixaria de cobrir.
func (s *SessionsSyncService) syncSessions(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de sessões do GA4 já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	window := s.runner.IncrementalWindow(time.Now(), s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"window":        window.String(),
		"lookback_days": s.config.LookbackDays,
	}).Info("Iniciando sincronização incremental de sessões do GA4")

	summary, err := s.runner.Run(ctx, window)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização incremental de sessões do GA4")
		s.syncMutex.Lock()
		s.lastSummary = summary
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"staged_rows": summary.StagedRows,
		"synced":      summary.CountByStatus(domain.PropertyRunSynced),
		"skipped":     summary.CountByStatus(domain.PropertyRunSkipped),
		"failed":      summary.CountByStatus(domain.PropertyRunFailed),
	}).Info("Sincronização incremental de sessões do GA4 concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de sessões do GA4
func (s *SessionsSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de sessões do GA4 já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de sessões do GA4")
	go s.syncSessions(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *SessionsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_run_id"] = s.lastSummary.RunID
		status["last_run_window"] = s.lastSummary.Window.String()
		status["last_run_staged_rows"] = s.lastSummary.StagedRows
	}

	return status
}

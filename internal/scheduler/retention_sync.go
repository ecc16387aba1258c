package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/config"
)

// RetentionSyncConfig representa a configuração da limpeza de retenção
type RetentionSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// RetentionSyncService remove os agregados diários de impressões mais antigos
// que a janela de retenção configurada
type RetentionSyncService struct {
	scheduler           *gocron.Scheduler
	config              RetentionSyncConfig
	impressionRepo      repository.ImpressionRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeletedRows     int64
}

// NewRetentionSyncService cria uma nova instância do serviço de limpeza de retenção
func NewRetentionSyncService(
	impressionRepo repository.ImpressionRepository,
	appConfig *config.Config,
) *RetentionSyncService {
	syncConfig := RetentionSyncConfig{
		CronSchedule:  appConfig.RetentionSync.CronSchedule,
		SyncEnabled:   appConfig.RetentionSync.Enabled,
		RetentionDays: appConfig.RetentionSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"retention_days": syncConfig.RetentionDays,
	}).Info("Configuração da limpeza de retenção carregada")

	return &RetentionSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		impressionRepo: impressionRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *RetentionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da limpeza de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupImpressions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da limpeza de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupImpressions apaga os agregados além da janela de retenção
func (s *RetentionSyncService) cleanupImpressions() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if s.config.RetentionDays <= 0 {
		logrus.Warn("Janela de retenção inválida, limpeza ignorada")
		return
	}

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza de retenção de impressões")

	deleted, err := s.impressionRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao apagar agregados antigos de impressões")
		return
	}

	s.syncMutex.Lock()
	s.lastDeletedRows = deleted
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted_rows": deleted,
		"duration":     time.Since(startTime).String(),
	}).Info("Limpeza de retenção concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma limpeza de retenção
func (s *RetentionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza de retenção manual")
	go s.cleanupImpressions()
}

// GetStatus retorna o status atual da limpeza
func (s *RetentionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"retention_days":         s.config.RetentionDays,
		"last_deleted_rows":      s.lastDeletedRows,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

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
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/reporting"
)

// MonthlyReportSyncConfig representa a configuração do agendador do consolidado mensal
type MonthlyReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookback int
}

// MonthlyReportSyncService consolida os relatórios mensais de publishers e
// anunciantes a partir dos agregados diários de impressões
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	reporter            reporting.Reporter
	monthlyRepo         repository.MonthlyReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de consolidação mensal
func NewMonthlyReportSyncService(
	reporter reporting.Reporter,
	monthlyRepo repository.MonthlyReportRepository,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule:  appConfig.MonthlyReportSync.CronSchedule,
		SyncEnabled:   appConfig.MonthlyReportSync.Enabled,
		MonthLookback: appConfig.MonthlyReportSync.MonthLookback,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookback,
	}).Info("Configuração do agendador do consolidado mensal carregada")

	return &MonthlyReportSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reporter:    reporter,
		monthlyRepo: monthlyRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidado mensal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do consolidado mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o consolidado mensal: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do consolidado mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports consolida os meses anteriores conforme o lookback configurado
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando")
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

	logrus.Info("Iniciando consolidação mensal de relatórios")

	lookback := s.config.MonthLookback
	if lookback < 1 {
		lookback = 1
	}

	for i := 1; i <= lookback; i++ {
		now := time.Now()
		month := now.AddDate(0, -i, 0)
		firstDayOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastDayOfMonth := firstDayOfMonth.AddDate(0, 1, -1)
		period := firstDayOfMonth.Format("01-2006")

		logrus.WithFields(logrus.Fields{
			"start_date": firstDayOfMonth.Format(time.DateOnly),
			"end_date":   lastDayOfMonth.Format(time.DateOnly),
			"period":     period,
		}).Info("Período para consolidação mensal")

		if err := s.syncPeriod(firstDayOfMonth, lastDayOfMonth, period); err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao consolidar período")
		}
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Consolidação mensal concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncPeriod consolida publishers e anunciantes de um único mês
func (s *MonthlyReportSyncService) syncPeriod(start, end time.Time, period string) error {
	filters := &domain.ReportFilters{
		StartDate: &start,
		EndDate:   &end,
	}

	publisherReports, err := s.reporter.AllPublishersReport(filters)
	if err != nil {
		return fmt.Errorf("erro ao montar relatórios de publishers: %w", err)
	}

	for _, report := range publisherReports.Reports {
		row := &domain.MonthlyReportRow{
			EntityKind: "publisher",
			EntitySlug: report.Publisher.Slug,
			Period:     period,
			Views:      report.Report.Total.Views,
			Clicks:     report.Report.Total.Clicks,
			Spend:      report.Report.Total.Cost,
			Revenue:    report.Report.Total.RevenueShare,
		}

		if err := s.monthlyRepo.SaveOrUpdate(row); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"publisher": report.Publisher.Slug,
				"period":    period,
			}).Error("Erro ao salvar consolidado mensal do publisher")
			continue
		}
	}

	advertiserReports, err := s.reporter.AllAdvertisersReport(filters)
	if err != nil {
		return fmt.Errorf("erro ao montar relatórios de anunciantes: %w", err)
	}

	for _, report := range advertiserReports.Reports {
		row := &domain.MonthlyReportRow{
			EntityKind: "advertiser",
			EntitySlug: report.Advertiser.Slug,
			Period:     period,
			Views:      report.Report.Total.Views,
			Clicks:     report.Report.Total.Clicks,
			Spend:      report.Report.Total.Cost,
			Revenue:    report.Report.Total.Revenue,
		}

		if err := s.monthlyRepo.SaveOrUpdate(row); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"advertiser": report.Advertiser.Slug,
				"period":     period,
			}).Error("Erro ao salvar consolidado mensal do anunciante")
			continue
		}
	}

	logrus.WithFields(logrus.Fields{
		"period":      period,
		"publishers":  len(publisherReports.Reports),
		"advertisers": len(advertiserReports.Reports),
	}).Info("Consolidado mensal do período salvo com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação mensal
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação mensal manual")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual da consolidação
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/infrastructure/cache"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/infrastructure/integrator/geoip"
	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/api"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/scheduler"
	"github.com/vfg2006/adserver-api/internal/usecases/account"
	"github.com/vfg2006/adserver-api/internal/usecases/authenticating"
	"github.com/vfg2006/adserver-api/internal/usecases/deciding"
	"github.com/vfg2006/adserver-api/internal/usecases/reporting"
	"github.com/vfg2006/adserver-api/internal/usecases/tracking"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	publisherRepo := repository.NewPublisherRepository(pgConn)
	advertiserRepo := repository.NewAdvertiserRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	impressionRepo := repository.NewImpressionRepository(pgConn)
	monthlyReportRepo := repository.NewMonthlyReportRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	geoLocator, err := geoip.New(cfg.GeoIP)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a base de GeoIP")
	}
	defer geoLocator.Close()

	offerStore := cache.NewOfferStore(
		time.Duration(cfg.Tracking.ViewNonceTTLMinutes)*time.Minute,
		time.Duration(cfg.Tracking.ClickNonceTTLMinutes)*time.Minute,
	)
	clickLimiter := cache.NewClickLimiter(cfg.Tracking.ClickRatelimitPerMinute)

	authenticator := authenticating.NewService(userRepo, cfg)
	accountService := account.NewService(publisherRepo, advertiserRepo)
	decider := deciding.NewService(cfg, publisherRepo, adRepo, impressionRepo, offerStore, geoLocator)
	tracker := tracking.NewService(cfg, adRepo, publisherRepo, impressionRepo, offerStore, clickLimiter, geoLocator)
	reporter := reporting.NewService(publisherRepo, advertiserRepo, adRepo, impressionRepo, monthlyReportRepo)

	// Inicializa os agendadores de consolidação e retenção
	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(reporter, monthlyReportRepo, cfg)
	retentionSyncService := scheduler.NewRetentionSyncService(impressionRepo, cfg)

	// Inicia os agendadores em background
	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do consolidado mensal")
	} else {
		logrus.Info("Agendador do consolidado mensal iniciado com sucesso")
	}

	if err := retentionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da limpeza de retenção")
	} else {
		logrus.Info("Agendador da limpeza de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		decider,
		tracker,
		reporter,
		accountService,
		authenticator,
		monthlyReportSyncService,
		retentionSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

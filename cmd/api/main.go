package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/repository"
	"github.com/vfg2006/ga4-sessions-sync/internal/api"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/scheduler"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/authenticating"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/backfilling"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/fetching"
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

	propertyRepo := repository.NewPropertyRepository(pgConn)
	sessionRepo := repository.NewSessionReportRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	analyticsClient := analyticsclient.NewClient(cfg)
	tokenSource := analytics.NewFileTokenSource(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient, tokenSource)

	fetcher := fetching.NewService(fetching.ConfigFromApp(cfg), analyticsIntegrator)

	pipeline := backfilling.NewService(propertyRepo, sessionRepo, fetcher, cfg)

	sessionsSyncService := scheduler.NewSessionsSyncService(pipeline, cfg)

	if err := sessionsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de sessões do GA4")
	} else {
		logrus.Info("Agendador de sincronização de sessões do GA4 iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sessionsSyncService,
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

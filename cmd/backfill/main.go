package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/repository"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/backfilling"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/fetching"
	"github.com/vfg2006/ga4-sessions-sync/pkg/utils"
)

// Backfill histórico de sessões do GA4: executa o pipeline uma única vez sobre
// a janela pedida (ou a janela padrão de MonthLookback meses) e imprime o
// resumo da execução.
func main() {
	startFlag := flag.String("start", "", "Início da janela (YYYY-MM-DD). Padrão: janela histórica completa")
	endFlag := flag.String("end", "", "Fim da janela (YYYY-MM-DD). Padrão: ontem")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	propertyRepo := repository.NewPropertyRepository(conn)
	sessionRepo := repository.NewSessionReportRepository(conn)

	analyticsClient := analyticsclient.NewClient(cfg)
	tokenSource := analytics.NewFileTokenSource(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient, tokenSource)

	fetcher := fetching.NewService(fetching.ConfigFromApp(cfg), analyticsIntegrator)

	pipeline := backfilling.NewService(propertyRepo, sessionRepo, fetcher, cfg)

	window, err := resolveWindow(pipeline, *startFlag, *endFlag)
	if err != nil {
		logrus.WithError(err).Fatal("Janela de backfill inválida")
	}

	logrus.WithField("window", window.String()).Info("Iniciando backfill de sessões do GA4")

	summary, err := pipeline.Run(ctx, window)
	if summary != nil {
		fmt.Println(summary.Render())
	}
	if err != nil {
		logrus.WithError(err).Error("Backfill de sessões do GA4 finalizado com erro")
		os.Exit(1)
	}
}

// resolveWindow monta a janela de execução a partir das flags. Sem flags, usa
// a janela histórica padrão; com apenas -start, o fim é ontem.
func resolveWindow(pipeline *backfilling.Service, startFlag, endFlag string) (domain.DateRange, error) {
	if startFlag == "" && endFlag == "" {
		return pipeline.DefaultWindow(time.Now()), nil
	}

	window := pipeline.DefaultWindow(time.Now())

	if startFlag != "" {
		start, err := utils.ParseDate(startFlag)
		if err != nil {
			return domain.DateRange{}, err
		}
		window.Start = domain.TruncateToDay(*start)
	}

	if endFlag != "" {
		end, err := utils.ParseDate(endFlag)
		if err != nil {
			return domain.DateRange{}, err
		}
		window.End = domain.TruncateToDay(*end)
	}

	if !window.IsValid() {
		return domain.DateRange{}, fmt.Errorf("janela inválida: %s", window)
	}

	return window, nil
}

package backfilling

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/repository"
	repomocks "github.com/vfg2006/ga4-sessions-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/backfilling/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Backfill: config.Backfill{
			BaseSpanDays:      210,
			MinSpanDays:       31,
			MonthLookback:     50,
			MaxConcurrentJobs: 1, // sequencial nos testes, para desfechos determinísticos
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sessionRow(propertyID string, day time.Time, channel string, sessions int64) domain.SessionRow {
	return domain.SessionRow{
		PropertyID:   propertyID,
		Date:         day,
		ChannelGroup: channel,
		Sessions:     sessions,
	}
}

func TestRun_SemPropriedadesUtilizaveis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{}, nil)

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	_, err := service.Run(context.Background(), domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoUsableProperties))
}

func TestRun_PropriedadeSemCredencialEhPuladaSemAbortarAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	window := domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	withToken := &domain.Property{ID: "P1", Name: "Com Token", TokenFile: "token1.json"}
	withoutToken := &domain.Property{ID: "P2", Name: "Sem Token"}

	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{withToken, withoutToken}, nil)

	rows := []domain.SessionRow{sessionRow("P1", date(2024, 1, 1), "Direct", 5)}
	fetcher.EXPECT().FetchSessions(gomock.Any(), withToken, window).Return(rows, nil)
	fetcher.EXPECT().FetchSessions(gomock.Any(), withoutToken, window).
		Return(nil, errors.Wrap(analytics.ErrCredentialUnavailable, "propriedade P2 sem arquivo de token"))

	sessionRepo.EXPECT().MergeBatch(gomock.Any(), rows).Return(&domain.MergeResult{Inserted: 1}, nil)

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	summary, err := service.Run(context.Background(), window)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.CountByStatus(domain.PropertyRunSynced))
	assert.Equal(t, 1, summary.CountByStatus(domain.PropertyRunSkipped))
	assert.Equal(t, 0, summary.CountByStatus(domain.PropertyRunFailed))
	assert.Equal(t, 1, summary.StagedRows)
	require.NotNil(t, summary.Merge)
	assert.Equal(t, int64(1), summary.Merge.Inserted)
}

func TestRun_FalhaDeUmaPropriedadeNaoAbortaAsIrmas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	window := domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	failing := &domain.Property{ID: "P1", Name: "Com Problema", TokenFile: "token1.json"}
	healthy := &domain.Property{ID: "P2", Name: "Saudável", TokenFile: "token2.json"}

	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{failing, healthy}, nil)

	fetcher.EXPECT().FetchSessions(gomock.Any(), failing, window).
		Return(nil, errors.New("resposta do relatório malformada"))

	rows := []domain.SessionRow{sessionRow("P2", date(2024, 1, 2), "Organic Search", 12)}
	fetcher.EXPECT().FetchSessions(gomock.Any(), healthy, window).Return(rows, nil)

	sessionRepo.EXPECT().MergeBatch(gomock.Any(), rows).Return(&domain.MergeResult{Inserted: 1}, nil)

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	summary, err := service.Run(context.Background(), window)

	require.NoError(t, err, "falhas por propriedade não derrubam a execução")
	assert.Equal(t, 1, summary.CountByStatus(domain.PropertyRunFailed))
	assert.Equal(t, 1, summary.CountByStatus(domain.PropertyRunSynced))
}

func TestRun_LoteVazioNaoExecutaMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	window := domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	property := &domain.Property{ID: "P1", Name: "Sem Dados", TokenFile: "token1.json"}

	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{property}, nil)
	fetcher.EXPECT().FetchSessions(gomock.Any(), property, window).Return([]domain.SessionRow{}, nil)
	// Nenhuma expectativa em MergeBatch: não deve ser chamado

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	summary, err := service.Run(context.Background(), window)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.StagedRows)
	assert.Nil(t, summary.Merge)
}

func TestRun_FalhaDoDestinoEhFatalComResumoParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	window := domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	property := &domain.Property{ID: "P1", Name: "Portal", TokenFile: "token1.json"}

	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{property}, nil)

	rows := []domain.SessionRow{sessionRow("P1", date(2024, 1, 1), "Direct", 5)}
	fetcher.EXPECT().FetchSessions(gomock.Any(), property, window).Return(rows, nil)

	sessionRepo.EXPECT().MergeBatch(gomock.Any(), rows).Return(nil, repository.ErrSinkUnavailable)

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	summary, err := service.Run(context.Background(), window)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSinkUnavailable))
	// O resumo parcial acompanha o erro, para diagnóstico do progresso
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.CountByStatus(domain.PropertyRunSynced))
	assert.Nil(t, summary.Merge)
}

func TestRun_LoteGlobalOrdenadoEntrePropriedades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyRepo := repomocks.NewMockPropertyRepository(ctrl)
	sessionRepo := repomocks.NewMockSessionReportRepository(ctrl)
	fetcher := mocks.NewMockSessionFetcher(ctrl)

	window := domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	second := &domain.Property{ID: "P2", Name: "Segunda", TokenFile: "token2.json"}
	first := &domain.Property{ID: "P1", Name: "Primeira", TokenFile: "token1.json"}

	// P2 é listada antes de P1: a ordenação final não depende da ordem de chegada
	propertyRepo.EXPECT().ListProperties(true).Return([]*domain.Property{second, first}, nil)

	fetcher.EXPECT().FetchSessions(gomock.Any(), second, window).
		Return([]domain.SessionRow{sessionRow("P2", date(2024, 1, 1), "Direct", 3)}, nil)
	fetcher.EXPECT().FetchSessions(gomock.Any(), first, window).
		Return([]domain.SessionRow{sessionRow("P1", date(2024, 1, 5), "Referral", 8)}, nil)

	sessionRepo.EXPECT().
		MergeBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []domain.SessionRow) (*domain.MergeResult, error) {
			require.Len(t, batch, 2)
			assert.Equal(t, "P1", batch[0].PropertyID)
			assert.Equal(t, "P2", batch[1].PropertyID)
			return &domain.MergeResult{Inserted: 2}, nil
		})

	service := NewService(propertyRepo, sessionRepo, fetcher, testConfig())

	_, err := service.Run(context.Background(), window)
	require.NoError(t, err)
}

func TestJanelas(t *testing.T) {
	service := NewService(nil, nil, nil, testConfig())

	// Referência: 16 de janeiro de 2024
	now := time.Date(2024, 1, 16, 10, 30, 0, 0, time.UTC)

	t.Run("Janela padrão termina ontem e cobre o lookback de meses", func(t *testing.T) {
		window := service.DefaultWindow(now)
		assert.Equal(t, date(2024, 1, 15), window.End)
		assert.Equal(t, date(2019, 11, 16), window.Start)
		assert.True(t, window.IsValid())
	})

	t.Run("Janela incremental termina ontem e cobre o lookback de dias", func(t *testing.T) {
		window := service.IncrementalWindow(now, 7)
		assert.Equal(t, date(2024, 1, 15), window.End)
		assert.Equal(t, date(2024, 1, 9), window.Start)
		assert.Equal(t, 7, window.Days())
	})
}

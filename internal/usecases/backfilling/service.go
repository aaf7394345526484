package backfilling

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/repository"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/fetching"
	"github.com/vfg2006/ga4-sessions-sync/pkg/utils"
)

// ErrNoUsableProperties indica que nenhuma propriedade ativa foi encontrada.
// É a única falha de preparação irrecuperável de uma execução.
var ErrNoUsableProperties = errors.New("nenhuma propriedade utilizável para sincronização")

// Service orquestra uma execução completa do pipeline: lista as propriedades,
// busca as sessões de cada uma em paralelo limitado, acumula tudo em um único
// lote e o aplica no destino de uma só vez.
type Service struct {
	appConfig     *config.Config
	propertyRepo  repository.PropertyRepository
	sessionRepo   repository.SessionReportRepository
	fetcher       SessionFetcher
	maxConcurrent int
}

func NewService(
	propertyRepo repository.PropertyRepository,
	sessionRepo repository.SessionReportRepository,
	fetcher SessionFetcher,
	appConfig *config.Config,
) *Service {
	maxConcurrent := appConfig.Backfill.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		appConfig:     appConfig,
		propertyRepo:  propertyRepo,
		sessionRepo:   sessionRepo,
		fetcher:       fetcher,
		maxConcurrent: maxConcurrent,
	}
}

// DefaultWindow retorna a janela histórica padrão do backfill: os últimos
// MonthLookback meses terminando ontem, inclusivo.
func (s *Service) DefaultWindow(now time.Time) domain.DateRange {
	end := domain.TruncateToDay(now).AddDate(0, 0, -1)
	start := end.AddDate(0, -s.appConfig.Backfill.MonthLookback, 0).AddDate(0, 0, 1)
	return domain.DateRange{Start: start, End: end}
}

// IncrementalWindow retorna a janela da sincronização diária: os últimos
// lookbackDays dias terminando ontem, inclusivo.
func (s *Service) IncrementalWindow(now time.Time, lookbackDays int) domain.DateRange {
	end := domain.TruncateToDay(now).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(lookbackDays - 1))
	return domain.DateRange{Start: start, End: end}
}

// Run executa o pipeline para a janela dada e retorna o resumo da execução.
// Falhas por propriedade (credencial ausente, busca, normalização) são
// registradas no resumo e nunca abortam as demais; apenas a ausência total de
// propriedades e falhas do destino interrompem a execução. Em caso de falha
// do destino o resumo parcial acompanha o erro, para diagnóstico do progresso
// feito até ali.
func (s *Service) Run(ctx context.Context, window domain.DateRange) (*domain.RunSummary, error) {
	runID, _ := utils.GenerateID()

	summary := &domain.RunSummary{
		RunID:     runID,
		Window:    window,
		StartedAt: time.Now(),
	}

	properties, err := s.propertyRepo.ListProperties(true)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar propriedades para sincronização")
	}

	if len(properties) == 0 {
		return nil, ErrNoUsableProperties
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"window":     window.String(),
		"properties": len(properties),
	}).Info("Iniciando execução do pipeline de sessões")

	batch := s.fetchAllProperties(ctx, properties, window, summary)

	// A ordenação do lote completo torna o staging determinístico entre
	// execuções, facilitando comparação de cargas.
	fetching.SortRows(batch)
	summary.StagedRows = len(batch)

	if len(batch) == 0 {
		logrus.WithField("run_id", runID).Warn("Nenhuma linha obtida, merge não será executado")
		summary.FinishedAt = time.Now()
		return summary, nil
	}

	result, err := s.sessionRepo.MergeBatch(ctx, batch)
	if err != nil {
		summary.FinishedAt = time.Now()
		return summary, err
	}

	summary.Merge = result
	summary.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"rows":     summary.StagedRows,
		"inserted": result.Inserted,
		"updated":  result.Updated,
		"duration": summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Execução do pipeline de sessões concluída")

	return summary, nil
}

// fetchAllProperties processa a lista de propriedades como uma fila de
// trabalho: uma goroutine por propriedade, limitadas pelo semáforo, todas
// alimentando o mesmo lote e o mesmo resumo. Dentro de cada propriedade as
// requisições permanecem estritamente sequenciais.
func (s *Service) fetchAllProperties(ctx context.Context, properties []*domain.Property, window domain.DateRange, summary *domain.RunSummary) []domain.SessionRow {
	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	batch := make([]domain.SessionRow, 0)

	for _, property := range properties {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(p *domain.Property) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			outcome, rows := s.processProperty(ctx, p, window)

			mu.Lock()
			summary.Outcomes = append(summary.Outcomes, outcome)
			batch = append(batch, rows...)
			mu.Unlock()
		}(property)
	}

	wg.Wait()
	return batch
}

// processProperty busca as sessões de uma propriedade e registra o desfecho.
func (s *Service) processProperty(ctx context.Context, property *domain.Property, window domain.DateRange) (domain.PropertyRunOutcome, []domain.SessionRow) {
	logrus.WithFields(logrus.Fields{
		"property_id":   property.ID,
		"property_name": property.Name,
		"window":        window.String(),
	}).Info("Processando propriedade")

	rows, err := s.fetcher.FetchSessions(ctx, property, window)
	if err != nil {
		if errors.Is(err, analytics.ErrCredentialUnavailable) {
			logrus.WithFields(logrus.Fields{
				"property_id": property.ID,
				"error":       err.Error(),
			}).Warn("Credencial indisponível. Pulando propriedade.")

			return domain.PropertyRunOutcome{
				PropertyID:   property.ID,
				PropertyName: property.Name,
				Status:       domain.PropertyRunSkipped,
				Reason:       "credencial indisponível",
			}, nil
		}

		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"error":       err.Error(),
		}).Error("Erro ao buscar sessões da propriedade")

		return domain.PropertyRunOutcome{
			PropertyID:   property.ID,
			PropertyName: property.Name,
			Status:       domain.PropertyRunFailed,
			Reason:       err.Error(),
		}, nil
	}

	logrus.WithFields(logrus.Fields{
		"property_id": property.ID,
		"rows":        len(rows),
	}).Info("Sessões da propriedade obtidas com sucesso")

	return domain.PropertyRunOutcome{
		PropertyID:   property.ID,
		PropertyName: property.Name,
		Status:       domain.PropertyRunSynced,
		Rows:         len(rows),
	}, rows
}

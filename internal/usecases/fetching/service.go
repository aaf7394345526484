package fetching

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/usecases/chunking"
)

// Config controla a sessão de busca adaptativa. Os valores são passados na
// construção para permitir testes com parâmetros variados.
type Config struct {
	// BaseSpanDays é a largura inicial de cada requisição, em dias.
	BaseSpanDays int
	// MinSpanDays é o piso do span: abaixo dele não há mais encolhimento e a
	// falha de tamanho vira fatal.
	MinSpanDays int
	// RequestDelay é a pausa entre requisições consecutivas de uma mesma
	// sessão, para não sobrecarregar a API.
	RequestDelay time.Duration
}

// ConfigFromApp monta a configuração da sessão a partir da config global.
func ConfigFromApp(cfg *config.Config) Config {
	return Config{
		BaseSpanDays: cfg.Backfill.BaseSpanDays,
		MinSpanDays:  cfg.Backfill.MinSpanDays,
		RequestDelay: time.Duration(cfg.Backfill.RequestDelaySeconds) * time.Second,
	}
}

// Service implementa a sessão de busca adaptativa: uma requisição por
// sub-intervalo, com encolhimento de span e reinício da janela inteira quando
// a resposta excede o limite de tamanho da API.
type Service struct {
	cfg    Config
	source ReportSource
}

func NewService(cfg Config, source ReportSource) *Service {
	if cfg.BaseSpanDays < cfg.MinSpanDays {
		cfg.BaseSpanDays = cfg.MinSpanDays
	}

	return &Service{
		cfg:    cfg,
		source: source,
	}
}

// FetchWindow busca a janela inteira de uma propriedade e retorna as respostas
// brutas na ordem dos sub-intervalos.
//
// O span começa em BaseSpanDays. Quando uma requisição falha por resposta
// grande demais, o span é reduzido à metade (respeitando o piso), as respostas
// já obtidas nesta tentativa são descartadas e a janela inteira é refeita no
// novo span: os resultados parciais de uma tentativa com span grande demais
// não são confiáveis no sub-intervalo que falhou. Se o piso também falhar, o
// erro é fatal. Qualquer outra classe de falha propaga imediatamente, porque
// encolher o span não a resolve.
func (s *Service) FetchWindow(ctx context.Context, property *domain.Property, window domain.DateRange) ([]*analyticsdomain.RunReportResponse, error) {
	span := s.cfg.BaseSpanDays

	for {
		responses, retry, err := s.fetchAttempt(ctx, property, window, span)
		if err != nil {
			return nil, err
		}

		if !retry {
			return responses, nil
		}

		newSpan := span / 2
		if newSpan < s.cfg.MinSpanDays {
			newSpan = s.cfg.MinSpanDays
		}

		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"window":      window.String(),
			"span":        span,
			"new_span":    newSpan,
		}).Warn("Resposta excedeu o limite de tamanho, reiniciando a janela com span reduzido")

		span = newSpan
	}
}

// fetchAttempt executa uma tentativa completa: a janela inteira no span atual.
// Retorna retry=true quando a tentativa deve ser refeita com span menor; nesse
// caso as respostas parciais já foram descartadas.
func (s *Service) fetchAttempt(ctx context.Context, property *domain.Property, window domain.DateRange, span int) ([]*analyticsdomain.RunReportResponse, bool, error) {
	chunks := chunking.Chunks(window, span)
	responses := make([]*analyticsdomain.RunReportResponse, 0, len(chunks))

	for i, chunk := range chunks {
		if i > 0 && s.cfg.RequestDelay > 0 {
			time.Sleep(s.cfg.RequestDelay)
		}

		resp, err := s.source.FetchSessionsReport(ctx, property, chunk)
		if err != nil {
			var apiErr *analyticsdomain.APIError
			if errors.As(err, &apiErr) && apiErr.IsResponseTooLarge() {
				if span <= s.cfg.MinSpanDays {
					// Um único sub-intervalo no piso ainda excede o limite:
					// não há mais como encolher.
					return nil, false, errors.Wrapf(err,
						"resposta excede o limite mesmo no span mínimo de %d dias", s.cfg.MinSpanDays)
				}
				return nil, true, nil
			}

			return nil, false, errors.Wrapf(err, "erro ao buscar o intervalo %s da propriedade %s", chunk, property.ID)
		}

		responses = append(responses, resp)
	}

	return responses, false, nil
}

// FetchSessions busca a janela inteira e entrega as linhas já normalizadas,
// deduplicadas e ordenadas da propriedade.
func (s *Service) FetchSessions(ctx context.Context, property *domain.Property, window domain.DateRange) ([]domain.SessionRow, error) {
	responses, err := s.FetchWindow(ctx, property, window)
	if err != nil {
		return nil, err
	}

	accumulator := NewRowAccumulator()
	for _, resp := range responses {
		if err := accumulator.Add(property, resp); err != nil {
			return nil, err
		}
	}

	return accumulator.Rows(), nil
}

package analytics

import (
	"context"

	"github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/analyticsclient"
	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// Integrator é a origem de relatórios consumida pelo pipeline: uma chamada por
// sub-intervalo, com a credencial da propriedade resolvida a cada chamada.
type Integrator interface {
	FetchSessionsReport(ctx context.Context, property *domain.Property, window domain.DateRange) (*analyticsdomain.RunReportResponse, error)
}

type Service struct {
	cfg    *config.Config
	client analyticsclient.Client
	tokens TokenSource
}

func New(cfg *config.Config, client analyticsclient.Client, tokens TokenSource) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
		tokens: tokens,
	}
}

func (s *Service) FetchSessionsReport(ctx context.Context, property *domain.Property, window domain.DateRange) (*analyticsdomain.RunReportResponse, error) {
	accessToken, err := s.tokens.AccessToken(property)
	if err != nil {
		return nil, err
	}

	return s.client.RunReport(ctx, property.ID, accessToken, window)
}

package analyticsclient

import (
	"context"
	"net/http"
	"time"

	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/config"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

type Client interface {
	RunReport(ctx context.Context, propertyID, accessToken string, window domain.DateRange) (*analyticsdomain.RunReportResponse, error)
}

// GA4Client é o cliente HTTP da API de dados do Google Analytics 4.
type GA4Client struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Analytics.RequestTimeoutSeconds) * time.Second

	return &GA4Client{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

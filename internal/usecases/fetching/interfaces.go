package fetching

import (
	"context"

	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// ReportSource abstrai a origem dos relatórios de sessões. Falhas devem chegar
// como *analyticsdomain.APIError classificado: a sessão de busca decide o que
// fazer apenas pelo tipo do erro, nunca inspecionando mensagens.
type ReportSource interface {
	// FetchSessionsReport executa uma requisição para o sub-intervalo dado.
	FetchSessionsReport(ctx context.Context, property *domain.Property, window domain.DateRange) (*analyticsdomain.RunReportResponse, error)
}

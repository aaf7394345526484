package backfilling

import (
	"context"

	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// SessionFetcher busca e normaliza as sessões de uma propriedade em uma
// janela. É a sessão de busca adaptativa vista pelo orquestrador.
type SessionFetcher interface {
	FetchSessions(ctx context.Context, property *domain.Property, window domain.DateRange) ([]domain.SessionRow, error)
}

package fetching

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
	"github.com/vfg2006/ga4-sessions-sync/pkg/utils"
)

// ErrMalformedResponse indica que uma resposta não possui os campos esperados.
// Não é retentável: a propriedade falha e as demais seguem normalmente.
var ErrMalformedResponse = errors.New("resposta do relatório malformada")

// RowAccumulator normaliza respostas brutas do runReport em SessionRow e
// deduplica pela chave composta. Chaves repetidas dentro de um mesmo lote
// colapsam para o último valor visto, o mesmo comportamento do merge no
// destino.
type RowAccumulator struct {
	rows map[domain.SessionKey]domain.SessionRow
}

func NewRowAccumulator() *RowAccumulator {
	return &RowAccumulator{
		rows: make(map[domain.SessionKey]domain.SessionRow),
	}
}

// Add normaliza todas as linhas de uma resposta e as acumula.
func (a *RowAccumulator) Add(property *domain.Property, resp *analyticsdomain.RunReportResponse) error {
	if resp == nil {
		return errors.Wrap(ErrMalformedResponse, "resposta nula")
	}

	for _, raw := range resp.Rows {
		row, err := normalizeRow(property, raw)
		if err != nil {
			return err
		}
		a.rows[row.Key()] = row
	}

	return nil
}

// Len retorna o total de linhas acumuladas após a deduplicação.
func (a *RowAccumulator) Len() int {
	return len(a.rows)
}

// Rows retorna as linhas acumuladas ordenadas pela chave composta. A ordem não
// tem significado para o destino, mas torna a saída determinística para
// comparação e testes.
func (a *RowAccumulator) Rows() []domain.SessionRow {
	rows := make([]domain.SessionRow, 0, len(a.rows))
	for _, row := range a.rows {
		rows = append(rows, row)
	}

	SortRows(rows)
	return rows
}

// SortRows ordena linhas por (property_id, date, channel_group).
func SortRows(rows []domain.SessionRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PropertyID != rows[j].PropertyID {
			return rows[i].PropertyID < rows[j].PropertyID
		}
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].ChannelGroup < rows[j].ChannelGroup
	})
}

// normalizeRow converte uma linha bruta (data, canal, sessões) em SessionRow.
// Canal vazio recebe o rótulo sentinela em vez de descartar a linha: sessões
// sem canal atribuído ainda são dados válidos.
func normalizeRow(property *domain.Property, raw analyticsdomain.ReportRow) (domain.SessionRow, error) {
	if len(raw.DimensionValues) < 2 || len(raw.MetricValues) < 1 {
		return domain.SessionRow{}, errors.Wrapf(ErrMalformedResponse,
			"linha com %d dimensões e %d métricas", len(raw.DimensionValues), len(raw.MetricValues))
	}

	date, err := utils.ParseCompactDate(raw.DimensionValues[0].Value)
	if err != nil {
		return domain.SessionRow{}, errors.Wrapf(ErrMalformedResponse,
			"data inválida %q", raw.DimensionValues[0].Value)
	}

	channelGroup := raw.DimensionValues[1].Value
	if channelGroup == "" {
		channelGroup = domain.UnassignedChannelGroup
	}

	sessions, err := strconv.ParseInt(raw.MetricValues[0].Value, 10, 64)
	if err != nil || sessions < 0 {
		return domain.SessionRow{}, errors.Wrapf(ErrMalformedResponse,
			"métrica de sessões inválida %q", raw.MetricValues[0].Value)
	}

	return domain.SessionRow{
		PropertyID:   property.ID,
		PropertyName: property.Name,
		AccountID:    property.AccountID,
		AccountName:  property.AccountName,
		Date:         date,
		ChannelGroup: channelGroup,
		Sessions:     sessions,
	}, nil
}

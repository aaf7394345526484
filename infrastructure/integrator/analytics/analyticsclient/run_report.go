package analyticsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunReport busca as sessões diárias por canal de aquisição de uma propriedade
// na janela dada. Falhas da API voltam como *analyticsdomain.APIError já
// classificado pelo tipo.
func (c *GA4Client) RunReport(ctx context.Context, propertyID, accessToken string, window domain.DateRange) (*analyticsdomain.RunReportResponse, error) {
	body := analyticsdomain.RunReportRequest{
		DateRanges: []analyticsdomain.DateRange{
			{
				StartDate: window.Start.Format(time.DateOnly),
				EndDate:   window.End.Format(time.DateOnly),
			},
		},
		Dimensions: []analyticsdomain.Dimension{
			{Name: "date"},
			{Name: "sessionDefaultChannelGroup"},
		},
		Metrics: []analyticsdomain.Metric{
			{Name: "sessions"},
		},
		KeepEmptyRows: false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição runReport: %w", err)
	}

	url := fmt.Sprintf("%s/properties/%s:runReport", c.Cfg.Analytics.URL, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição runReport: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"window":      window.String(),
	}).Debug("Executando runReport")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, analyticsdomain.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyError(resp)
	}

	var report analyticsdomain.RunReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta do runReport: %w", err)
	}

	return &report, nil
}

// classifyError decodifica o payload de erro do Google e o converte no erro
// classificado que o pipeline consome.
func (c *GA4Client) classifyError(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return analyticsdomain.Classify(resp.StatusCode, analyticsdomain.ErrorDetails{
			Message: fmt.Sprintf("erro ao ler o corpo da resposta: %v", err),
		})
	}

	var errResp analyticsdomain.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		// Corpo fora do formato padrão de erro do Google: mantém o texto cru
		// para diagnóstico, classificado como desconhecido.
		errResp.Error = analyticsdomain.ErrorDetails{Message: string(raw)}
	}

	apiErr := analyticsdomain.Classify(resp.StatusCode, errResp.Error)

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"kind":        apiErr.Kind.String(),
		"status":      apiErr.Status,
	}).Debug("Erro retornado pela API de analytics")

	return apiErr
}

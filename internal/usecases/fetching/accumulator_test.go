package fetching

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	analyticsdomain "github.com/vfg2006/ga4-sessions-sync/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

func reportRow(dateStr, channel, sessions string) analyticsdomain.ReportRow {
	return analyticsdomain.ReportRow{
		DimensionValues: []analyticsdomain.ReportValue{{Value: dateStr}, {Value: channel}},
		MetricValues:    []analyticsdomain.ReportValue{{Value: sessions}},
	}
}

func TestRowAccumulator_CanalVazioRecebeRotuloSentinela(t *testing.T) {
	accumulator := NewRowAccumulator()

	err := accumulator.Add(testProperty, &analyticsdomain.RunReportResponse{
		Rows: []analyticsdomain.ReportRow{
			reportRow("20240101", "", "15"),
		},
	})

	require.NoError(t, err)
	rows := accumulator.Rows()
	require.Len(t, rows, 1, "a linha sem canal nunca é descartada")
	assert.Equal(t, domain.UnassignedChannelGroup, rows[0].ChannelGroup)
	assert.Equal(t, int64(15), rows[0].Sessions)
}

func TestRowAccumulator_ChavesDuplicadasColapsamParaUltimoValor(t *testing.T) {
	accumulator := NewRowAccumulator()

	err := accumulator.Add(testProperty, &analyticsdomain.RunReportResponse{
		Rows: []analyticsdomain.ReportRow{
			reportRow("20240101", "Direct", "5"),
			reportRow("20240101", "Direct", "9"),
		},
	})

	require.NoError(t, err)
	rows := accumulator.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(9), rows[0].Sessions, "o último valor visto deve vencer")
}

func TestRowAccumulator_SaidaOrdenadaPelaChaveComposta(t *testing.T) {
	accumulator := NewRowAccumulator()

	err := accumulator.Add(testProperty, &analyticsdomain.RunReportResponse{
		Rows: []analyticsdomain.ReportRow{
			reportRow("20240102", "Organic Search", "3"),
			reportRow("20240101", "Referral", "2"),
			reportRow("20240101", "Direct", "1"),
		},
	})

	require.NoError(t, err)
	rows := accumulator.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Direct", rows[0].ChannelGroup)
	assert.Equal(t, "Referral", rows[1].ChannelGroup)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rows[2].Date)
}

func TestRowAccumulator_RespostasMalformadas(t *testing.T) {
	tests := []struct {
		name string
		resp *analyticsdomain.RunReportResponse
	}{
		{
			name: "Resposta nula",
			resp: nil,
		},
		{
			name: "Linha sem a dimensão de canal",
			resp: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.ReportRow{
					{
						DimensionValues: []analyticsdomain.ReportValue{{Value: "20240101"}},
						MetricValues:    []analyticsdomain.ReportValue{{Value: "10"}},
					},
				},
			},
		},
		{
			name: "Linha sem métricas",
			resp: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.ReportRow{
					{
						DimensionValues: []analyticsdomain.ReportValue{{Value: "20240101"}, {Value: "Direct"}},
					},
				},
			},
		},
		{
			name: "Data fora do formato compacto",
			resp: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.ReportRow{
					reportRow("2024-01-01", "Direct", "10"),
				},
			},
		},
		{
			name: "Métrica de sessões não numérica",
			resp: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.ReportRow{
					reportRow("20240101", "Direct", "many"),
				},
			},
		},
		{
			name: "Métrica de sessões negativa",
			resp: &analyticsdomain.RunReportResponse{
				Rows: []analyticsdomain.ReportRow{
					reportRow("20240101", "Direct", "-1"),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accumulator := NewRowAccumulator()
			err := accumulator.Add(testProperty, tt.resp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedResponse))
		})
	}
}

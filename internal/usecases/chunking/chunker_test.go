package chunking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name     string
		window   domain.DateRange
		spanDays int
		expected []domain.DateRange
	}{
		{
			name:     "Janela menor que o span deve gerar um único intervalo",
			window:   domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)},
			spanDays: 210,
			expected: []domain.DateRange{
				{Start: date(2024, 1, 1), End: date(2024, 1, 10)},
			},
		},
		{
			name:     "Janela exata de um span",
			window:   domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
			spanDays: 31,
			expected: []domain.DateRange{
				{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
			},
		},
		{
			name:     "Janela dividida em múltiplos intervalos com o último cortado",
			window:   domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)},
			spanDays: 4,
			expected: []domain.DateRange{
				{Start: date(2024, 1, 1), End: date(2024, 1, 4)},
				{Start: date(2024, 1, 5), End: date(2024, 1, 8)},
				{Start: date(2024, 1, 9), End: date(2024, 1, 10)},
			},
		},
		{
			name:     "Span de um dia gera um intervalo por dia",
			window:   domain.DateRange{Start: date(2024, 2, 27), End: date(2024, 3, 1)},
			spanDays: 1,
			expected: []domain.DateRange{
				{Start: date(2024, 2, 27), End: date(2024, 2, 27)},
				{Start: date(2024, 2, 28), End: date(2024, 2, 28)},
				{Start: date(2024, 2, 29), End: date(2024, 2, 29)},
				{Start: date(2024, 3, 1), End: date(2024, 3, 1)},
			},
		},
		{
			name:     "Janela invertida não gera intervalos",
			window:   domain.DateRange{Start: date(2024, 1, 10), End: date(2024, 1, 1)},
			spanDays: 31,
			expected: nil,
		},
		{
			name:     "Span inválido não gera intervalos",
			window:   domain.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 10)},
			spanDays: 0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Chunks(tt.window, tt.spanDays))
		})
	}
}

// Verifica as propriedades estruturais da divisão: contiguidade, cobertura
// exata da janela e largura máxima respeitada para qualquer combinação.
func TestChunksProperties(t *testing.T) {
	windows := []domain.DateRange{
		{Start: date(2020, 1, 1), End: date(2024, 3, 1)},
		{Start: date(2024, 1, 1), End: date(2024, 1, 1)},
		{Start: date(2023, 12, 15), End: date(2024, 2, 20)},
	}
	spans := []int{1, 2, 31, 52, 105, 210}

	for _, window := range windows {
		for _, span := range spans {
			chunks := Chunks(window, span)
			require.NotEmpty(t, chunks, "janela %s span %d", window, span)

			assert.Equal(t, window.Start, chunks[0].Start, "o primeiro intervalo deve começar no início da janela")
			assert.Equal(t, window.End, chunks[len(chunks)-1].End, "o último intervalo deve terminar no fim da janela")

			totalDays := 0
			for i, chunk := range chunks {
				require.True(t, chunk.IsValid())
				assert.LessOrEqual(t, chunk.Days(), span, "nenhum intervalo pode exceder o span")
				totalDays += chunk.Days()

				if i > 0 {
					previous := chunks[i-1]
					assert.Equal(t, previous.End.AddDate(0, 0, 1), chunk.Start,
						"os intervalos devem ser contíguos, sem lacunas nem sobreposição")
				}
			}

			assert.Equal(t, window.Days(), totalDays, "a soma dos intervalos deve cobrir exatamente a janela")
		}
	}
}

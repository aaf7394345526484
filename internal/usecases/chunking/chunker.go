package chunking

import (
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

// Chunks divide a janela [Start, End] em sub-intervalos ordenados de até
// spanDays dias. Os sub-intervalos são contíguos (o fim de um é a véspera do
// início do próximo), sem lacunas e sem sobreposição, e o último é cortado
// para nunca ultrapassar o fim da janela. Função pura: o span pode mudar entre
// tentativas sem perder nem duplicar dias.
func Chunks(window domain.DateRange, spanDays int) []domain.DateRange {
	if spanDays < 1 || !window.IsValid() {
		return nil
	}

	var chunks []domain.DateRange

	cur := window.Start
	for !cur.After(window.End) {
		chunkEnd := cur.AddDate(0, 0, spanDays-1)
		if chunkEnd.After(window.End) {
			chunkEnd = window.End
		}

		chunks = append(chunks, domain.DateRange{Start: cur, End: chunkEnd})
		cur = chunkEnd.AddDate(0, 0, 1)
	}

	return chunks
}

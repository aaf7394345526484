package domain

import (
	"fmt"
	"strings"
	"time"
)

// PropertyRunStatus indica o desfecho do processamento de uma propriedade.
type PropertyRunStatus string

const (
	PropertyRunSynced  PropertyRunStatus = "synced"
	PropertyRunSkipped PropertyRunStatus = "skipped"
	PropertyRunFailed  PropertyRunStatus = "failed"
)

// PropertyRunOutcome registra o desfecho de uma propriedade dentro de uma execução.
type PropertyRunOutcome struct {
	PropertyID   string            `json:"property_id"`
	PropertyName string            `json:"property_name"`
	Status       PropertyRunStatus `json:"status"`
	Rows         int               `json:"rows"`
	Reason       string            `json:"reason,omitempty"`
}

// RunSummary resume uma execução completa do pipeline: janela, desfecho por
// propriedade, linhas preparadas no staging e contadores do merge.
type RunSummary struct {
	RunID      string               `json:"run_id"`
	Window     DateRange            `json:"window"`
	Outcomes   []PropertyRunOutcome `json:"outcomes"`
	StagedRows int                  `json:"staged_rows"`
	Merge      *MergeResult         `json:"merge,omitempty"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
}

// CountByStatus retorna quantas propriedades terminaram com o status dado.
func (s *RunSummary) CountByStatus(status PropertyRunStatus) int {
	count := 0
	for _, outcome := range s.Outcomes {
		if outcome.Status == status {
			count++
		}
	}
	return count
}

// Render monta o resumo legível impresso ao final de uma execução em lote.
func (s *RunSummary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Execução %s\n", s.RunID)
	fmt.Fprintf(&b, "Janela: %s\n", s.Window)
	fmt.Fprintf(&b, "Propriedades: %d sincronizadas, %d puladas, %d com erro\n",
		s.CountByStatus(PropertyRunSynced),
		s.CountByStatus(PropertyRunSkipped),
		s.CountByStatus(PropertyRunFailed),
	)

	for _, outcome := range s.Outcomes {
		if outcome.Status == PropertyRunSynced {
			continue
		}
		fmt.Fprintf(&b, "  - %s (%s): %s %s\n", outcome.PropertyName, outcome.PropertyID, outcome.Status, outcome.Reason)
	}

	fmt.Fprintf(&b, "Linhas no staging: %d\n", s.StagedRows)
	if s.Merge != nil {
		fmt.Fprintf(&b, "Merge: %d inseridas, %d atualizadas\n", s.Merge.Inserted, s.Merge.Updated)
	}
	fmt.Fprintf(&b, "Duração: %s", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))

	return b.String()
}

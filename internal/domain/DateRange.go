package domain

import "time"

// DateRange representa um intervalo fechado de datas de calendário.
// Start e End são inclusivos; um intervalo válido nunca tem Start depois de End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange cria um intervalo normalizado para meia-noite UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateToDay(start), End: TruncateToDay(end)}
}

// IsValid retorna verdadeiro se Start não é posterior a End.
func (r DateRange) IsValid() bool {
	return !r.Start.After(r.End)
}

// Days retorna a largura do intervalo em dias de calendário (inclusivo).
func (r DateRange) Days() int {
	if !r.IsValid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}

// TruncateToDay descarta o componente de hora, mantendo apenas a data em UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

const (
	sessionsStageTable  = "ga4_sessions_stage"
	sessionsTargetTable = "ga4_sessions_by_channel"
)

// ErrSinkUnavailable indica que o staging ou o merge não puderam ser
// concluídos. É fatal para a execução: nenhum commit parcial é tentado.
var ErrSinkUnavailable = errors.New("destino de merge indisponível")

// mergeSessionsQuery aplica o lote do staging sobre a tabela de destino pela
// chave composta. Linhas existentes são sobrescritas com novo ingested_at,
// linhas novas são inseridas; nada é removido, então janelas já carregadas e
// fora do lote permanecem intactas. O staging chega deduplicado, o que garante
// que nenhuma chave é afetada duas vezes pelo mesmo comando.
const mergeSessionsQuery = `
	WITH merged AS (
		INSERT INTO ` + sessionsTargetTable + ` AS t
			(property_id, property_name, account_id, account_name, date, channel_group, sessions, ingested_at)
		SELECT s.property_id, s.property_name, s.account_id, s.account_name, s.date, s.channel_group, s.sessions, NOW()
		FROM ` + sessionsStageTable + ` s
		ON CONFLICT (property_id, date, channel_group) DO UPDATE SET
			property_name = EXCLUDED.property_name,
			account_id = EXCLUDED.account_id,
			account_name = EXCLUDED.account_name,
			sessions = EXCLUDED.sessions,
			ingested_at = NOW()
		RETURNING (xmax = 0) AS inserted
	)
	SELECT
		COUNT(*) FILTER (WHERE inserted),
		COUNT(*) FILTER (WHERE NOT inserted)
	FROM merged
`

type SessionReportRepository interface {
	MergeBatch(ctx context.Context, rows []domain.SessionRow) (*domain.MergeResult, error)
}

type sessionReportRepository struct {
	conn postgres.Conn
}

func NewSessionReportRepository(conn postgres.Conn) SessionReportRepository {
	return &sessionReportRepository{
		conn: conn,
	}
}

// MergeBatch grava o lote no staging (sobrescrevendo qualquer conteúdo
// anterior) e o aplica na tabela de destino, tudo em uma única transação: ou o
// lote inteiro fica visível para o merge ou nada fica.
func (r *sessionReportRepository) MergeBatch(ctx context.Context, rows []domain.SessionRow) (*domain.MergeResult, error) {
	result := &domain.MergeResult{}

	if len(rows) == 0 {
		return result, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+sessionsStageTable); err != nil {
			return fmt.Errorf("erro ao truncar o staging: %w", err)
		}

		if err := r.stageRows(ctx, tx, rows); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, mergeSessionsQuery)
		if err := row.Scan(&result.Inserted, &result.Updated); err != nil {
			return fmt.Errorf("erro ao executar o merge: %w", err)
		}

		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return nil, fmt.Errorf("%w: erro no banco de dados (código %s): %v", ErrSinkUnavailable, pqErr.Code, pqErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}

	return result, nil
}

// stageRows faz a carga em massa do lote no staging via COPY.
func (r *sessionReportRepository) stageRows(ctx context.Context, tx *sql.Tx, rows []domain.SessionRow) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(sessionsStageTable,
		"property_id", "property_name", "account_id", "account_name", "date", "channel_group", "sessions",
	))
	if err != nil {
		return fmt.Errorf("erro ao preparar o COPY do staging: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.PropertyID,
			row.PropertyName,
			row.AccountID,
			row.AccountName,
			row.Date.Format(time.DateOnly),
			row.ChannelGroup,
			row.Sessions,
		)
		if err != nil {
			return fmt.Errorf("erro ao gravar linha no staging: %w", err)
		}
	}

	// Exec sem argumentos descarrega o buffer do COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("erro ao finalizar o COPY do staging: %w", err)
	}

	return nil
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ga4-sessions-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ga4-sessions-sync/internal/domain"
)

const propertiesTable = "ga4_properties p"

type PropertyRepository interface {
	ListProperties(onlyActive bool) ([]*domain.Property, error)
}

type propertyRepository struct {
	conn postgres.Conn
}

func NewPropertyRepository(conn postgres.Conn) PropertyRepository {
	return &propertyRepository{
		conn: conn,
	}
}

func (r *propertyRepository) ListProperties(onlyActive bool) ([]*domain.Property, error) {
	builder := squirrel.
		Select("p.id, p.name, p.account_id, p.account_name, p.token_file, p.active, p.created_at, p.updated_at").
		From(propertiesTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"p.active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		property := &domain.Property{}
		var tokenFile sql.NullString
		var accountName sql.NullString

		err := rows.Scan(
			&property.ID,
			&property.Name,
			&property.AccountID,
			&accountName,
			&tokenFile,
			&property.Active,
			&property.CreatedAt,
			&property.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear propriedade: %w", err)
		}

		property.AccountName = accountName.String
		property.TokenFile = tokenFile.String
		properties = append(properties, property)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return properties, nil
}

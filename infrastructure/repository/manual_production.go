package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/laviva-alimentos/previsao-api/infrastructure/database/postgres"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
)

const manualProductionTable = "producao_manual pm"

type ManualProductionRepository interface {
	ListOverrides(products []string) ([]*domain.ManualProductionOverride, error)
	SaveOrUpdate(override *domain.ManualProductionOverride) error
	DeleteByScope(scope domain.OverrideScope) error
}

type manualProductionRepository struct {
	conn *postgres.Connection
}

func NewManualProductionRepository(conn *postgres.Connection) ManualProductionRepository {
	return &manualProductionRepository{conn: conn}
}

func (r *manualProductionRepository) ListOverrides(products []string) ([]*domain.ManualProductionOverride, error) {
	query := squirrel.
		Select("pm.id, pm.codigo_produto, pm.cliente, pm.ano, pm.mes, pm.quantidade").
		From(manualProductionTable).
		PlaceholderFormat(squirrel.Dollar)

	if len(products) > 0 {
		query = query.Where(squirrel.Eq{"pm.codigo_produto": products})
	}

	overridesSQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(overridesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	overrides := make([]*domain.ManualProductionOverride, 0)
	for rows.Next() {
		override := &domain.ManualProductionOverride{}
		if err := rows.Scan(
			&override.ID,
			&override.ProductCode,
			&override.ClientID,
			&override.Year,
			&override.Month,
			&override.Quantity,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produção manual: %w", err)
		}
		overrides = append(overrides, override)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return overrides, nil
}

func (r *manualProductionRepository) SaveOrUpdate(override *domain.ManualProductionOverride) error {
	id := override.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador: %w", err)
		}
		id = generated
	}

	query := squirrel.StatementBuilder.
		Insert("producao_manual").
		Columns("id", "codigo_produto", "cliente", "ano", "mes", "quantidade").
		Values(id, override.ProductCode, override.ClientID, override.Year, override.Month, override.Quantity).
		Suffix(`
			ON CONFLICT (codigo_produto, COALESCE(cliente, ''), ano, mes) DO UPDATE SET
				quantidade = EXCLUDED.quantidade,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	overrideSQL, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(overrideSQL, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *manualProductionRepository) DeleteByScope(scope domain.OverrideScope) error {
	deleteSQL, args, err := squirrel.
		Delete("producao_manual").
		Where(scopeClause("", scope)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

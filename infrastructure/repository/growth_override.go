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

const growthOverridesTable = "crescimento_produtos c"

type GrowthOverrideRepository interface {
	ListOverrides(products []string) ([]*domain.GrowthOverride, error)
	// SaveOrUpdate grava o percentual para o escopo, substituindo o valor de
	// um escopo idêntico já existente.
	SaveOrUpdate(override *domain.GrowthOverride) error
	// DeleteByScope remove o override do escopo exato. Não é erro o escopo
	// não existir.
	DeleteByScope(scope domain.OverrideScope) error
}

type growthOverrideRepository struct {
	conn *postgres.Connection
}

func NewGrowthOverrideRepository(conn *postgres.Connection) GrowthOverrideRepository {
	return &growthOverrideRepository{conn: conn}
}

func (r *growthOverrideRepository) ListOverrides(products []string) ([]*domain.GrowthOverride, error) {
	query := squirrel.
		Select("c.id, c.codigo_produto, c.cliente, c.ano, c.mes, c.percentual_crescimento").
		From(growthOverridesTable).
		PlaceholderFormat(squirrel.Dollar)

	if len(products) > 0 {
		query = query.Where(squirrel.Eq{"c.codigo_produto": products})
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

	overrides := make([]*domain.GrowthOverride, 0)
	for rows.Next() {
		override := &domain.GrowthOverride{}
		if err := rows.Scan(
			&override.ID,
			&override.ProductCode,
			&override.ClientID,
			&override.Year,
			&override.Month,
			&override.GrowthPercent,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear crescimento: %w", err)
		}
		overrides = append(overrides, override)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return overrides, nil
}

func (r *growthOverrideRepository) SaveOrUpdate(override *domain.GrowthOverride) error {
	id := override.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador: %w", err)
		}
		id = generated
	}

	query := squirrel.StatementBuilder.
		Insert("crescimento_produtos").
		Columns("id", "codigo_produto", "cliente", "ano", "mes", "percentual_crescimento").
		Values(id, override.ProductCode, override.ClientID, override.Year, override.Month, override.GrowthPercent).
		Suffix(`
			ON CONFLICT (codigo_produto, COALESCE(cliente, ''), COALESCE(ano, 0), COALESCE(mes, 0)) DO UPDATE SET
				percentual_crescimento = EXCLUDED.percentual_crescimento,
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

func (r *growthOverrideRepository) DeleteByScope(scope domain.OverrideScope) error {
	deleteSQL, args, err := squirrel.
		Delete("crescimento_produtos").
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

// scopeClause monta o predicado de escopo exato tratando campos nulos como
// IS NULL, nunca como coringa.
func scopeClause(alias string, scope domain.OverrideScope) squirrel.And {
	clause := squirrel.And{squirrel.Eq{alias + "codigo_produto": scope.ProductCode}}

	if scope.ClientID != nil {
		clause = append(clause, squirrel.Eq{alias + "cliente": *scope.ClientID})
	} else {
		clause = append(clause, squirrel.Expr(alias+"cliente IS NULL"))
	}

	if scope.Year != nil {
		clause = append(clause, squirrel.Eq{alias + "ano": *scope.Year})
	} else {
		clause = append(clause, squirrel.Expr(alias+"ano IS NULL"))
	}

	if scope.Month != nil {
		clause = append(clause, squirrel.Eq{alias + "mes": *scope.Month})
	} else {
		clause = append(clause, squirrel.Expr(alias+"mes IS NULL"))
	}

	return clause
}

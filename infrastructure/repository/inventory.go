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

const inventoryTable = "estoque_atual e"

type InventoryRepository interface {
	// ListInventory retorna os lotes em estoque. A agregação por produto é
	// feita pelo código normalizado na camada de caso de uso, não aqui.
	ListInventory(products []string) ([]*domain.InventoryRecord, error)
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{conn: conn}
}

func (r *inventoryRepository) ListInventory(products []string) ([]*domain.InventoryRecord, error) {
	query := squirrel.
		Select("e.codigo_produto, e.produto, e.lote, e.quantidade_disponivel, e.quantidade_total").
		From(inventoryTable).
		PlaceholderFormat(squirrel.Dollar)

	if len(products) > 0 {
		// Códigos chegam com e sem zeros à esquerda no esquema legado; o
		// filtro compara a forma normalizada.
		query = query.Where(squirrel.Eq{
			"COALESCE(NULLIF(ltrim(e.codigo_produto, '0'), ''), '0')": normalizedCodes(products),
		})
	}

	inventorySQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(inventorySQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.InventoryRecord, 0)
	for rows.Next() {
		record := &domain.InventoryRecord{}
		if err := rows.Scan(
			&record.ProductCode,
			&record.ProductName,
			&record.Lot,
			&record.QuantityAvailable,
			&record.QuantityTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func normalizedCodes(products []string) []string {
	codes := make([]string, 0, len(products))
	for _, code := range products {
		codes = append(codes, utils.NormalizeProductCode(code))
	}
	return codes
}

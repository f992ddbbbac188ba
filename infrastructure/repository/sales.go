package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/laviva-alimentos/previsao-api/infrastructure/database/postgres"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

const salesTable = "vendas_reais v"

type SalesRepository interface {
	// ListSales retorna as vendas em escopo: a linha agregada quando client é
	// nulo, ou as linhas do cliente informado. Sem filtro de período; os
	// resolvedores precisam do histórico completo para os fallbacks.
	ListSales(products []string, client *string) ([]*domain.SalesRecord, error)
	// ListClientSales retorna as vendas por cliente de um produto em um ano,
	// para o ranking de clientes.
	ListClientSales(productCode string, year int) ([]*domain.SalesRecord, error)
	// LastSaleDates retorna a data da venda mais recente de cada produto,
	// sem filtro de cliente. O alerta de produto parado considera qualquer
	// venda, inclusive de clientes fora do escopo da consulta.
	LastSaleDates(products []string) (map[string]time.Time, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{conn: conn}
}

func (r *salesRepository) ListSales(products []string, client *string) ([]*domain.SalesRecord, error) {
	query := squirrel.
		Select("v.codigo_produto, v.produto, v.cliente, v.ano, v.mes, v.total_vendido, v.ultima_venda").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if client != nil {
		query = query.Where(squirrel.Eq{"v.cliente": *client})
	} else {
		query = query.Where("v.cliente IS NULL")
	}

	if len(products) > 0 {
		query = query.Where(squirrel.Eq{"v.codigo_produto": products})
	}

	return r.listSales(query)
}

func (r *salesRepository) ListClientSales(productCode string, year int) ([]*domain.SalesRecord, error) {
	query := squirrel.
		Select("v.codigo_produto, v.produto, v.cliente, v.ano, v.mes, v.total_vendido, v.ultima_venda").
		From(salesTable).
		Where("v.cliente IS NOT NULL").
		Where(squirrel.Eq{"v.codigo_produto": productCode}).
		Where(squirrel.Eq{"v.ano": year}).
		PlaceholderFormat(squirrel.Dollar)

	return r.listSales(query)
}

func (r *salesRepository) LastSaleDates(products []string) (map[string]time.Time, error) {
	query := squirrel.
		Select("v.codigo_produto, MAX(v.ultima_venda)").
		From(salesTable).
		GroupBy("v.codigo_produto").
		PlaceholderFormat(squirrel.Dollar)

	if len(products) > 0 {
		query = query.Where(squirrel.Eq{"v.codigo_produto": products})
	}

	salesSQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(salesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	lastSales := make(map[string]time.Time)
	for rows.Next() {
		var code string
		var lastSaleAt time.Time
		if err := rows.Scan(&code, &lastSaleAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear última venda: %w", err)
		}
		lastSales[code] = lastSaleAt
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lastSales, nil
}

func (r *salesRepository) listSales(query squirrel.SelectBuilder) ([]*domain.SalesRecord, error) {
	salesSQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(salesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record := &domain.SalesRecord{}
		if err := rows.Scan(
			&record.ProductCode,
			&record.ProductName,
			&record.ClientID,
			&record.Year,
			&record.Month,
			&record.QuantitySold,
			&record.LastSaleAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

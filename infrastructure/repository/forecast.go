package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/laviva-alimentos/previsao-api/infrastructure/database/postgres"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const forecastsTable = "previsoes p"

type ForecastRepository interface {
	// ListForecasts retorna as previsões armazenadas em escopo, já
	// normalizadas das formas legadas de previsao_mensal.
	ListForecasts(products []string, client *string) ([]*domain.ForecastRecord, error)
	// SaveSnapshot grava a previsão mensal canônica de um produto para um
	// ano, substituindo o payload legado existente.
	SaveSnapshot(productCode, productName string, clientID *string, year int, monthly []*domain.ForecastRecord) error
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{conn: conn}
}

func (r *forecastRepository) ListForecasts(products []string, client *string) ([]*domain.ForecastRecord, error) {
	query := squirrel.
		Select("p.codigo_produto, p.produto, p.cliente, p.ano, p.previsao_mensal").
		From(forecastsTable).
		PlaceholderFormat(squirrel.Dollar)

	if client != nil {
		query = query.Where(squirrel.Eq{"p.cliente": *client})
	} else {
		query = query.Where("p.cliente IS NULL")
	}

	if len(products) > 0 {
		query = query.Where(squirrel.Eq{"p.codigo_produto": products})
	}

	forecastsSQL, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(forecastsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.ForecastRecord, 0)
	for rows.Next() {
		var (
			productCode string
			productName string
			clientID    *string
			rawYear     interface{}
			rawMonthly  []byte
		)

		if err := rows.Scan(&productCode, &productName, &clientID, &rawYear, &rawMonthly); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}

		year := parseYearValue(yearScanValue(rawYear))
		if year == 0 {
			logrus.WithFields(logrus.Fields{
				"codigo_produto": productCode,
				"ano":            rawYear,
			}).Warn("Previsão com ano ilegível ignorada")
			continue
		}

		monthly, err := normalizeMonthlyForecast(rawMonthly, productCode, productName, clientID, year)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"codigo_produto": productCode,
				"ano":            year,
			}).Warn("Previsão mensal ilegível ignorada")
			continue
		}

		forecasts = append(forecasts, monthly...)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forecasts, nil
}

func (r *forecastRepository) SaveSnapshot(
	productCode, productName string,
	clientID *string,
	year int,
	monthly []*domain.ForecastRecord,
) error {
	type monthlyEntry struct {
		Month    int     `json:"mes"`
		Quantity float64 `json:"quantidade"`
	}

	entries := make([]monthlyEntry, 0, len(monthly))
	for _, record := range monthly {
		if record == nil || record.Year != year {
			continue
		}
		entries = append(entries, monthlyEntry{Month: record.Month, Quantity: record.QuantityForecast})
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("erro ao serializar previsão mensal: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("previsoes").
		Columns("id", "codigo_produto", "produto", "cliente", "ano", "previsao_mensal").
		Values(id, productCode, productName, clientID, fmt.Sprintf("%d", year), payload).
		Suffix(`
			ON CONFLICT (codigo_produto, COALESCE(cliente, ''), ano) DO UPDATE SET
				produto = EXCLUDED.produto,
				previsao_mensal = EXCLUDED.previsao_mensal,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(snapshotSQL, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// yearScanValue reduz o valor bruto do driver para algo que parseYearValue
// entende. A coluna ano é texto no esquema legado.
func yearScanValue(raw interface{}) interface{} {
	if b, ok := raw.([]byte); ok {
		return string(b)
	}
	return raw
}

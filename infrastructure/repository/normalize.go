package repository

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// normalizeMonthlyForecast converte o JSON de previsão mensal, em qualquer
// das formas históricas gravadas, em registros tipados. Formas observadas:
//
//   - array de objetos {"mes": 1, "quantidade": 100} ou
//     {"mes": "jan", "total_previsto": "100"};
//   - objeto chaveado por mês {"1": 100, "jan": 200}.
//
// Meses aparecem como número, string numérica ou abreviação pt-BR de três
// letras; quantidades como número ou string numérica. Entradas ilegíveis são
// descartadas em silêncio, a forma canônica é sempre recomposta aqui.
func normalizeMonthlyForecast(
	raw []byte,
	productCode, productName string,
	clientID *string,
	year int,
) ([]*domain.ForecastRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	records := make([]*domain.ForecastRecord, 0, 12)

	appendRecord := func(month int, quantity float64, ok bool) {
		if !ok || month < 1 || month > 12 {
			return
		}
		records = append(records, &domain.ForecastRecord{
			ProductCode:      productCode,
			ProductName:      productName,
			ClientID:         clientID,
			Year:             year,
			Month:            month,
			QuantityForecast: quantity,
		})
	}

	var asArray []map[string]interface{}
	if err := json.Unmarshal(raw, &asArray); err == nil {
		for _, entry := range asArray {
			month := parseMonthValue(entry["mes"])

			quantity, ok := parseQuantityValue(entry["quantidade"])
			if !ok {
				quantity, ok = parseQuantityValue(entry["total_previsto"])
			}

			appendRecord(month, quantity, ok)
		}
		return records, nil
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		for key, value := range asObject {
			quantity, ok := parseQuantityValue(value)
			appendRecord(parseMonthValue(key), quantity, ok)
		}
		return records, nil
	}

	return nil, fmt.Errorf("formato de previsão mensal não reconhecido: %s", truncateForLog(raw))
}

func parseMonthValue(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		return utils.ParseMonth(v)
	default:
		return 0
	}
}

func parseQuantityValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", ".")), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// parseYearValue aceita ano como número ou string numérica.
func parseYearValue(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func truncateForLog(raw []byte) string {
	const limit = 120
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

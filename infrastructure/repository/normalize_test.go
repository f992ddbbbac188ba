package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonthlyForecast_ArrayCanonico(t *testing.T) {
	raw := []byte(`[{"mes": 1, "quantidade": 100}, {"mes": 2, "quantidade": 150.5}]`)

	records, err := normalizeMonthlyForecast(raw, "100", "CASTANHA DE CAJU", nil, 2025)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Month)
	assert.Equal(t, 100.0, records[0].QuantityForecast)
	assert.Equal(t, 2025, records[0].Year)
	assert.Equal(t, "100", records[0].ProductCode)
	assert.Equal(t, 150.5, records[1].QuantityForecast)
}

func TestNormalizeMonthlyForecast_ArrayComStrings(t *testing.T) {
	// Forma legada: mês como abreviação e quantidade como string com vírgula
	// no campo total_previsto.
	raw := []byte(`[{"mes": "mar", "total_previsto": "120,5"}, {"mes": "04", "total_previsto": "80"}]`)

	records, err := normalizeMonthlyForecast(raw, "100", "CASTANHA DE CAJU", nil, 2025)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 3, records[0].Month)
	assert.Equal(t, 120.5, records[0].QuantityForecast)
	assert.Equal(t, 4, records[1].Month)
	assert.Equal(t, 80.0, records[1].QuantityForecast)
}

func TestNormalizeMonthlyForecast_ObjetoChaveado(t *testing.T) {
	raw := []byte(`{"jan": 100, "fev": "200", "3": 300}`)

	records, err := normalizeMonthlyForecast(raw, "100", "CASTANHA DE CAJU", nil, 2025)

	assert.NoError(t, err)
	assert.Len(t, records, 3)

	byMonth := make(map[int]float64)
	for _, r := range records {
		byMonth[r.Month] = r.QuantityForecast
	}
	assert.Equal(t, 100.0, byMonth[1])
	assert.Equal(t, 200.0, byMonth[2])
	assert.Equal(t, 300.0, byMonth[3])
}

func TestNormalizeMonthlyForecast_DescartaEntradasIlegiveis(t *testing.T) {
	raw := []byte(`[{"mes": 1, "quantidade": 100}, {"mes": "xyz", "quantidade": 50}, {"mes": 13, "quantidade": 10}, {"mes": 2}]`)

	records, err := normalizeMonthlyForecast(raw, "100", "CASTANHA DE CAJU", nil, 2025)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Month)
}

func TestNormalizeMonthlyForecast_PayloadVazio(t *testing.T) {
	records, err := normalizeMonthlyForecast(nil, "100", "CASTANHA DE CAJU", nil, 2025)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalizeMonthlyForecast_FormatoDesconhecido(t *testing.T) {
	records, err := normalizeMonthlyForecast([]byte(`"texto solto"`), "100", "CASTANHA DE CAJU", nil, 2025)

	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestNormalizeMonthlyForecast_PropagaCliente(t *testing.T) {
	client := "CLIENTE A"
	raw := []byte(`[{"mes": 1, "quantidade": 100}]`)

	records, err := normalizeMonthlyForecast(raw, "100", "CASTANHA DE CAJU", &client, 2025)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.NotNil(t, records[0].ClientID)
	assert.Equal(t, client, *records[0].ClientID)
}

func TestParseYearValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected int
	}{
		{name: "Float vindo de JSON", value: float64(2025), expected: 2025},
		{name: "Int64 vindo do driver", value: int64(2025), expected: 2025},
		{name: "String numérica", value: "2025", expected: 2025},
		{name: "String com espaços", value: " 2025 ", expected: 2025},
		{name: "String ilegível", value: "dois mil", expected: 0},
		{name: "Nulo", value: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseYearValue(tt.value))
		})
	}
}

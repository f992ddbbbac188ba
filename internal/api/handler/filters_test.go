package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterContext(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		validate    func(t *testing.T, month, year *int, products, clients []string)
	}{
		{
			name:  "Sem parâmetros",
			query: "",
			validate: func(t *testing.T, month, year *int, products, clients []string) {
				assert.Nil(t, month)
				assert.Nil(t, year)
				assert.Nil(t, products)
				assert.Nil(t, clients)
			},
		},
		{
			name:  "Período completo",
			query: "mes=3&ano=2025",
			validate: func(t *testing.T, month, year *int, products, clients []string) {
				assert.Equal(t, 3, *month)
				assert.Equal(t, 2025, *year)
			},
		},
		{
			name:  "Produtos e clientes separados por vírgula",
			query: "produtos=100,200&clientes=CLIENTE+A,+CLIENTE+B+",
			validate: func(t *testing.T, month, year *int, products, clients []string) {
				assert.Equal(t, []string{"100", "200"}, products)
				assert.Equal(t, []string{"CLIENTE A", "CLIENTE B"}, clients)
			},
		},
		{
			name:        "Mês fora do intervalo",
			query:       "mes=13",
			expectError: true,
		},
		{
			name:        "Mês não numérico",
			query:       "mes=marco",
			expectError: true,
		},
		{
			name:        "Ano fora do intervalo",
			query:       "ano=1999",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/dashboard?"+tt.query, nil)

			fc, err := parseFilterContext(r)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, fc.Month, fc.Year, fc.Products, fc.Clients)
		})
	}
}

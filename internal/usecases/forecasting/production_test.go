package forecasting

import (
	"testing"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateProduction(t *testing.T) {
	tests := []struct {
		name      string
		forecast  float64
		inventory float64
		override  *domain.ManualProductionOverride
		expected  domain.ProductionResult
	}{
		{
			name:      "Previsão maior que estoque gera necessidade",
			forecast:  100,
			inventory: 40,
			expected: domain.ProductionResult{
				Required:   60,
				Calculated: 60,
			},
		},
		{
			name:      "Estoque cobre a previsão",
			forecast:  100,
			inventory: 150,
			expected: domain.ProductionResult{
				Required:            0,
				Calculated:          -50,
				InventorySufficient: true,
			},
		},
		{
			name:      "Estoque exatamente igual à previsão é suficiente",
			forecast:  100,
			inventory: 100,
			expected: domain.ProductionResult{
				Required:            0,
				Calculated:          0,
				InventorySufficient: true,
			},
		},
		{
			name:      "Override manual substitui o cálculo por inteiro",
			forecast:  100,
			inventory: 40,
			override:  &domain.ManualProductionOverride{Quantity: 500},
			expected: domain.ProductionResult{
				Required:   500,
				Calculated: 60,
				IsManual:   true,
			},
		},
		{
			name:      "Override manual vence mesmo com estoque suficiente",
			forecast:  100,
			inventory: 150,
			override:  &domain.ManualProductionOverride{Quantity: 30},
			expected: domain.ProductionResult{
				Required:   30,
				Calculated: -50,
				IsManual:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateProduction(tt.forecast, tt.inventory, tt.override)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindManualOverride(t *testing.T) {
	clientA := "CLIENTE A"

	overrides := []*domain.ManualProductionOverride{
		{ProductCode: "100", ClientID: nil, Year: 2025, Month: 3, Quantity: 50},
		{ProductCode: "100", ClientID: &clientA, Year: 2025, Month: 3, Quantity: 80},
		{ProductCode: "200", ClientID: nil, Year: 2025, Month: 3, Quantity: 99},
	}

	t.Run("Escopo agregado casa com cliente nulo", func(t *testing.T) {
		got := FindManualOverride("100", nil, 3, 2025, overrides)
		assert.NotNil(t, got)
		assert.Equal(t, 50.0, got.Quantity)
	})

	t.Run("Escopo de cliente casa apenas com o mesmo cliente", func(t *testing.T) {
		got := FindManualOverride("100", &clientA, 3, 2025, overrides)
		assert.NotNil(t, got)
		assert.Equal(t, 80.0, got.Quantity)
	})

	t.Run("Período diferente não casa", func(t *testing.T) {
		assert.Nil(t, FindManualOverride("100", nil, 4, 2025, overrides))
	})

	t.Run("Produto sem override", func(t *testing.T) {
		assert.Nil(t, FindManualOverride("300", nil, 3, 2025, overrides))
	})
}

package alerting

import (
	"testing"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectStale(t *testing.T) {
	detector := NewDetector(60, 25)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastSaleAt time.Time
		expected   *string
	}{
		{
			name:       "Venda há 61 dias dispara o alerta",
			lastSaleAt: now.AddDate(0, 0, -61),
			expected:   strPtr("Produto parado: sem vendas há 61 dias"),
		},
		{
			name:       "Venda há exatamente 60 dias não dispara",
			lastSaleAt: now.AddDate(0, 0, -60),
			expected:   nil,
		},
		{
			name:       "Venda recente não dispara",
			lastSaleAt: now.AddDate(0, 0, -5),
			expected:   nil,
		},
		{
			name:       "Sem registro de venda não é staleness",
			lastSaleAt: time.Time{},
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.DetectStale("100", tt.lastSaleAt, now)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, domain.AlertKindStale, got.Kind)
			assert.Equal(t, domain.SeverityModerate, got.Severity)
			assert.Equal(t, *tt.expected, got.Message)
		})
	}
}

func TestDetector_DetectStale_DiasFracionados(t *testing.T) {
	detector := NewDetector(60, 25)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 60 dias e 12 horas contam como 60 dias completos; não dispara.
	lastSale := now.Add(-60*24*time.Hour - 12*time.Hour)
	assert.Nil(t, detector.DetectStale("100", lastSale, now))
}

func TestDetector_DetectDivergence(t *testing.T) {
	detector := NewDetector(60, 25)

	tests := []struct {
		name      string
		actual    float64
		forecast  float64
		hasPeriod bool
		expected  *string
	}{
		{
			name:      "26% acima dispara",
			actual:    126,
			forecast:  100,
			hasPeriod: true,
			expected:  strPtr("Variação divergente: 26% acima da previsão"),
		},
		{
			name:      "30% abaixo dispara",
			actual:    70,
			forecast:  100,
			hasPeriod: true,
			expected:  strPtr("Variação divergente: 30% abaixo da previsão"),
		},
		{
			name:      "Exatamente 25% não dispara",
			actual:    125,
			forecast:  100,
			hasPeriod: true,
			expected:  nil,
		},
		{
			name:      "Sem período selecionado não há comparação",
			actual:    200,
			forecast:  100,
			hasPeriod: false,
			expected:  nil,
		},
		{
			name:      "Previsão zerada não há comparação",
			actual:    200,
			forecast:  0,
			hasPeriod: true,
			expected:  nil,
		},
		{
			name:      "Realizado zerado não há comparação",
			actual:    0,
			forecast:  100,
			hasPeriod: true,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.DetectDivergence("100", tt.actual, tt.forecast, tt.hasPeriod)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, domain.AlertKindDivergence, got.Kind)
			assert.Equal(t, domain.SeverityCritical, got.Severity)
			assert.Equal(t, *tt.expected, got.Message)
		})
	}
}

func TestDetector_DetectDivergence_MagnitudeFracionada(t *testing.T) {
	detector := NewDetector(60, 25)

	// 33.333...% arredonda para percentual inteiro na mensagem.
	got := detector.DetectDivergence("100", 400, 300, true)
	assert.NotNil(t, got)
	assert.Equal(t, "Variação divergente: 33% acima da previsão", got.Message)
}

func strPtr(v string) *string {
	return &v
}

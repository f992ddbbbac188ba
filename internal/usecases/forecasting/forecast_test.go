package forecasting

import (
	"testing"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveForecast_PrevisaoArmazenada(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", Year: 2025, Month: 3, QuantityForecast: 110},
	}

	t.Run("Crescimento padrão mantém o valor armazenado", func(t *testing.T) {
		got := ResolveForecast("100", 3, 2025, forecasts, nil, domain.DefaultGrowthPercent, now)

		assert.Equal(t, domain.OriginStored, got.Origin)
		assert.Equal(t, 110.0, got.Quantity)
	})

	t.Run("Crescimento diferente recalcula sobre a base implícita", func(t *testing.T) {
		// 110 / 1.10 = 100 de base; 100 * 1.20 = 120.
		got := ResolveForecast("100", 3, 2025, forecasts, nil, 20, now)

		assert.Equal(t, domain.OriginStored, got.Origin)
		assert.Equal(t, 120.0, got.Quantity)
	})

	t.Run("Crescimento zero devolve a base implícita", func(t *testing.T) {
		got := ResolveForecast("100", 3, 2025, forecasts, nil, 0, now)

		assert.Equal(t, domain.OriginStored, got.Origin)
		assert.Equal(t, 100.0, got.Quantity)
	})
}

func TestResolveForecast_FallbackAnoAnterior(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2024, Month: 3, QuantitySold: 200},
	}

	got := ResolveForecast("100", 3, 2025, nil, sales, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginPriorYear, got.Origin)
	assert.Equal(t, 220.0, got.Quantity)
}

func TestResolveForecast_PrevisaoZeradaDisparaFallback(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Linha armazenada com quantidade zero é indistinguível de ausência.
	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", Year: 2025, Month: 3, QuantityForecast: 0},
	}
	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2024, Month: 3, QuantitySold: 100},
	}

	got := ResolveForecast("100", 3, 2025, forecasts, sales, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginPriorYear, got.Origin)
	assert.Equal(t, 110.0, got.Quantity)
}

func TestResolveForecast_MediaMesesRecentes(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	// Quatro meses com venda na janela recente; só os três mais recentes
	// entram na média: (90 + 120 + 150) / 3 = 120.
	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2025, Month: 6, QuantitySold: 90},
		{ProductCode: "100", Year: 2025, Month: 5, QuantitySold: 120},
		{ProductCode: "100", Year: 2025, Month: 4, QuantitySold: 150},
		{ProductCode: "100", Year: 2025, Month: 3, QuantitySold: 999},
	}

	got := ResolveForecast("100", 9, 2025, nil, sales, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginRecentAverage, got.Origin)
	assert.Equal(t, 132.0, got.Quantity) // 120 * 1.10
}

func TestResolveForecast_MediaIncluiMesesDoAnoAlvo(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	// Ano alvo diferente do corrente: meses do ano alvo entram como
	// candidatos mesmo fora da janela de seis meses.
	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2024, Month: 5, QuantitySold: 60},
	}

	got := ResolveForecast("100", 11, 2024, nil, sales, 0, now)

	assert.Equal(t, domain.OriginRecentAverage, got.Origin)
	assert.Equal(t, 60.0, got.Quantity)
}

func TestResolveForecast_JanelaRecenteNaoIncluiMesCorrente(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	// Venda só no mês corrente: fora da janela, que é estritamente anterior.
	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2025, Month: 7, QuantitySold: 100},
	}

	got := ResolveForecast("100", 9, 2025, nil, sales, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginNoData, got.Origin)
	assert.Equal(t, 0.0, got.Quantity)
}

func TestResolveForecast_SemHistorico(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveForecast("100", 3, 2025, nil, nil, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginNoData, got.Origin)
	assert.Equal(t, 0.0, got.Quantity)
	assert.NotEmpty(t, got.Explanation)
}

func TestResolveForecast_PrecedenciaArmazenadaSobreFallbacks(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", Year: 2025, Month: 3, QuantityForecast: 55},
	}
	sales := []*domain.SalesRecord{
		{ProductCode: "100", Year: 2024, Month: 3, QuantitySold: 500},
		{ProductCode: "100", Year: 2025, Month: 2, QuantitySold: 500},
	}

	got := ResolveForecast("100", 3, 2025, forecasts, sales, domain.DefaultGrowthPercent, now)

	assert.Equal(t, domain.OriginStored, got.Origin)
	assert.Equal(t, 55.0, got.Quantity)
}

package forecasting

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
)

const (
	// storedBaselineFactor desfaz a suposição de 10% embutida em toda
	// previsão armazenada: o valor gravado é sempre baseline * 1.10.
	storedBaselineFactor = 1.10

	recentMonthsWindow = 6
	recentMonthsUsed   = 3
)

// ResolveForecast calcula a previsão de venda de um produto para (mes, ano)
// aplicando a cadeia de fallback em três níveis:
//
//  1. previsão armazenada, com a base recuperada (valor / 1.10) e o
//     crescimento resolvido reaplicado quando difere do padrão;
//  2. venda real do mesmo mês no ano anterior, corrigida pelo crescimento;
//  3. média dos 3 meses recentes com venda (janela de até 6 meses antes do
//     mês corrente, mais os meses do ano alvo quando difere do corrente),
//     corrigida pelo crescimento.
//
// Sem histórico algum, termina em NO_DATA com quantidade zero; ausência de
// dados não é erro. Previsão armazenada igual a zero é indistinguível de
// linha ausente e também dispara o fallback.
func ResolveForecast(
	productCode string,
	month, year int,
	forecasts []*domain.ForecastRecord,
	sales []*domain.SalesRecord,
	growthPercent float64,
	now time.Time,
) domain.ForecastResolution {
	base := storedForecastTotal(productCode, month, year, forecasts)

	if base > 0 {
		return resolveStored(base, growthPercent)
	}

	priorYear := salesTotal(productCode, month, year-1, sales)
	if priorYear > 0 {
		quantity := math.Round(priorYear * growthFactor(growthPercent))
		return domain.ForecastResolution{
			Quantity: quantity,
			Origin:   domain.OriginPriorYear,
			Explanation: fmt.Sprintf(
				"Sem previsão armazenada; derivada da venda real de %s/%d (%.0f) com crescimento de %.1f%%",
				utils.MonthName(month), year-1, priorYear, growthPercent,
			),
		}
	}

	if resolution, ok := resolveRecentAverage(productCode, year, sales, growthPercent, now); ok {
		return resolution
	}

	return domain.ForecastResolution{
		Quantity:    0,
		Origin:      domain.OriginNoData,
		Explanation: "Sem histórico de vendas para derivar previsão",
	}
}

func resolveStored(base, growthPercent float64) domain.ForecastResolution {
	underlying := base / storedBaselineFactor

	if growthPercent == domain.DefaultGrowthPercent {
		return domain.ForecastResolution{
			Quantity: base,
			Origin:   domain.OriginStored,
			Explanation: fmt.Sprintf(
				"Previsão armazenada de %.0f (base implícita de %.0f com crescimento padrão de 10%%)",
				base, underlying,
			),
		}
	}

	quantity := math.Round(underlying * growthFactor(growthPercent))
	return domain.ForecastResolution{
		Quantity: quantity,
		Origin:   domain.OriginStored,
		Explanation: fmt.Sprintf(
			"Previsão armazenada ajustada: base de %.0f recalculada com crescimento de %.1f%%",
			underlying, growthPercent,
		),
	}
}

type periodSales struct {
	month    int
	year     int
	quantity float64
}

func resolveRecentAverage(
	productCode string,
	targetYear int,
	sales []*domain.SalesRecord,
	growthPercent float64,
	now time.Time,
) (domain.ForecastResolution, bool) {
	candidates := make(map[int]periodSales)

	m, y := int(now.Month()), now.Year()
	for i := 0; i < recentMonthsWindow; i++ {
		m, y = utils.PreviousMonth(m, y)
		candidates[utils.PeriodIndex(m, y)] = periodSales{month: m, year: y}
	}

	// Ano alvo diferente do corrente: considerar também cada mês do ano alvo.
	if targetYear != now.Year() {
		for month := 1; month <= 12; month++ {
			candidates[utils.PeriodIndex(month, targetYear)] = periodSales{month: month, year: targetYear}
		}
	}

	withSales := make([]periodSales, 0, len(candidates))
	for idx, period := range candidates {
		total := salesTotal(productCode, period.month, period.year, sales)
		if total > 0 {
			period.quantity = total
			candidates[idx] = period
			withSales = append(withSales, period)
		}
	}

	if len(withSales) == 0 {
		return domain.ForecastResolution{}, false
	}

	sort.Slice(withSales, func(i, j int) bool {
		return utils.PeriodIndex(withSales[i].month, withSales[i].year) >
			utils.PeriodIndex(withSales[j].month, withSales[j].year)
	})

	if len(withSales) > recentMonthsUsed {
		withSales = withSales[:recentMonthsUsed]
	}

	var sum float64
	used := make([]string, 0, len(withSales))
	for _, period := range withSales {
		sum += period.quantity
		used = append(used, fmt.Sprintf("%d/%d", period.month, period.year))
	}

	average := sum / float64(len(withSales))
	if average <= 0 {
		return domain.ForecastResolution{}, false
	}

	quantity := math.Round(average * growthFactor(growthPercent))
	return domain.ForecastResolution{
		Quantity: quantity,
		Origin:   domain.OriginRecentAverage,
		Explanation: fmt.Sprintf(
			"Sem previsão armazenada nem venda no ano anterior; média de %.1f dos meses %s com crescimento de %.1f%%",
			average, strings.Join(used, ", "), growthPercent,
		),
	}, true
}

func growthFactor(percent float64) float64 {
	return 1 + percent/100
}

func storedForecastTotal(productCode string, month, year int, forecasts []*domain.ForecastRecord) float64 {
	var total float64
	for _, f := range forecasts {
		if f != nil && f.ProductCode == productCode && f.Month == month && f.Year == year {
			total += f.QuantityForecast
		}
	}
	return total
}

func salesTotal(productCode string, month, year int, sales []*domain.SalesRecord) float64 {
	var total float64
	for _, s := range sales {
		if s != nil && s.ProductCode == productCode && s.Month == month && s.Year == year {
			total += s.QuantitySold
		}
	}
	return total
}

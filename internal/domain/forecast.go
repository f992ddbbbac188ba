package domain

// DefaultGrowthPercent é o crescimento assumido quando nenhum override
// cobre o escopo. As previsões armazenadas historicamente foram geradas
// sempre com essa base de 10%.
const DefaultGrowthPercent = 10.0

// ForecastOrigin indica de onde veio o valor de previsão resolvido.
type ForecastOrigin string

const (
	// OriginStored: havia previsão armazenada para o período.
	OriginStored ForecastOrigin = "STORED"
	// OriginPriorYear: derivada da venda real do mesmo mês no ano anterior.
	OriginPriorYear ForecastOrigin = "PRIOR_YEAR_FALLBACK"
	// OriginRecentAverage: derivada da média dos meses recentes com venda.
	OriginRecentAverage ForecastOrigin = "RECENT_AVERAGE_FALLBACK"
	// OriginNoData: sem histórico para derivar qualquer previsão.
	OriginNoData ForecastOrigin = "NO_DATA"
)

// ForecastResolution é o resultado da resolução de previsão para um
// (produto, mês, ano).
type ForecastResolution struct {
	Quantity    float64        `json:"quantidade"`
	Origin      ForecastOrigin `json:"origem"`
	Explanation string         `json:"explicacao"`
}

// ProductionResult é a necessidade de produção de um produto no período.
// Calculated é sempre previsão menos estoque, exposto mesmo quando o valor
// manual está ativo. InventorySufficient marca o estado "estoque suficiente"
// (calculado <= 0 sem override manual); a camada de exibição nunca mostra
// número negativo nesse estado.
type ProductionResult struct {
	Required            float64 `json:"producao_necessaria"`
	Calculated          float64 `json:"producao_calculada"`
	IsManual            bool    `json:"producao_manual"`
	InventorySufficient bool    `json:"estoque_suficiente"`
}

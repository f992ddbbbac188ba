package domain

import "time"

// SalesRecord é a venda realizada de um produto em um mês. Cliente nulo
// representa a linha agregada (todos os clientes). Unicidade:
// (codigo_produto, cliente-ou-agregado, ano, mes).
type SalesRecord struct {
	ProductCode  string    `json:"codigo_produto"`
	ProductName  string    `json:"produto"`
	ClientID     *string   `json:"cliente"`
	Year         int       `json:"ano"`
	Month        int       `json:"mes"`
	QuantitySold float64   `json:"total_vendido"`
	LastSaleAt   time.Time `json:"ultima_venda"`
}

// ForecastRecord é uma previsão armazenada para um produto em um mês.
// Pode não existir para um dado período; valor zero é tratado como ausência
// (ver resolução de previsão).
type ForecastRecord struct {
	ProductCode      string  `json:"codigo_produto"`
	ProductName      string  `json:"produto"`
	ClientID         *string `json:"cliente"`
	Year             int     `json:"ano"`
	Month            int     `json:"mes"`
	QuantityForecast float64 `json:"total_previsto"`
}

// GrowthOverride é um percentual de crescimento gravado para um escopo.
// Ano/mês nulos aplicam o percentual a todos os períodos; cliente nulo é o
// escopo agregado.
type GrowthOverride struct {
	ID            string  `json:"id"`
	ProductCode   string  `json:"codigo_produto"`
	ClientID      *string `json:"cliente"`
	Year          *int    `json:"ano"`
	Month         *int    `json:"mes"`
	GrowthPercent float64 `json:"percentual_crescimento"`
}

// Scope retorna a tupla de escopo do override.
func (g *GrowthOverride) Scope() OverrideScope {
	return OverrideScope{
		ProductCode: g.ProductCode,
		ClientID:    g.ClientID,
		Year:        g.Year,
		Month:       g.Month,
	}
}

// ManualProductionOverride substitui integralmente a necessidade de produção
// calculada para o escopo exato.
type ManualProductionOverride struct {
	ID          string  `json:"id"`
	ProductCode string  `json:"codigo_produto"`
	ClientID    *string `json:"cliente"`
	Year        int     `json:"ano"`
	Month       int     `json:"mes"`
	Quantity    float64 `json:"quantidade"`
}

// InventoryRecord é um lote em estoque. Totais por produto são agregados
// pelo código normalizado (zeros à esquerda removidos).
type InventoryRecord struct {
	ProductCode       string  `json:"codigo_produto"`
	ProductName       string  `json:"produto"`
	Lot               string  `json:"lote"`
	QuantityAvailable float64 `json:"quantidade_disponivel"`
	QuantityTotal     float64 `json:"quantidade_total"`
}

// InventorySummary é o rollup de estoque de um produto, somado entre lotes.
type InventorySummary struct {
	ProductCode       string  `json:"codigo_produto"`
	ProductName       string  `json:"produto"`
	Lots              int     `json:"lotes"`
	QuantityAvailable float64 `json:"estoque_disponivel"`
	QuantityTotal     float64 `json:"estoque_total"`
}

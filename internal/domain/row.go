package domain

// ProductRow é a linha derivada do dashboard: uma por produto para o período
// selecionado. Todo valor é recomputado a partir do snapshot atual dos dados;
// nada aqui é persistido.
type ProductRow struct {
	ID                 string           `json:"id"`
	ProductCode        string           `json:"codigo_produto"`
	ProductName        string           `json:"produto"`
	ClientLabel        string           `json:"cliente"`
	Month              int              `json:"mes"`
	Year               int              `json:"ano"`
	GrowthPercent      float64          `json:"percentual_crescimento"`
	ForecastQuantity   float64          `json:"previsao"`
	ForecastOrigin     ForecastOrigin   `json:"origem_previsao"`
	ForecastExplained  string           `json:"explicacao_previsao"`
	ActualQuantity     *float64         `json:"realizado"`
	InventoryAvailable float64          `json:"estoque_disponivel"`
	Production         ProductionResult `json:"producao"`
	VariationPercent   float64          `json:"variacao_percentual"`
	Alerts             []AlertFinding   `json:"alertas"`
}

// DashboardStats alimenta os cartões de resumo do topo do dashboard.
type DashboardStats struct {
	DistinctProducts      int     `json:"produtos_monitorados"`
	InventoryTotal        float64 `json:"estoque_total"`
	InventoryAvailable    float64 `json:"estoque_disponivel"`
	InventoryAvailablePct float64 `json:"percentual_estoque_disponivel"`
	ForecastTotal         float64 `json:"previsao_total"`
	AlertCount            int     `json:"total_alertas"`
}

// ViewingContext descreve o período em exibição para o aviso de contexto.
type ViewingContext struct {
	Type    string `json:"tipo"` // all | focus | current | past | future
	Message string `json:"mensagem"`
}

// DashboardResponse é o payload completo de uma consulta de dashboard.
type DashboardResponse struct {
	Context ViewingContext `json:"contexto"`
	Filters FilterContext  `json:"filtros"`
	Rows    []*ProductRow  `json:"linhas"`
}

// MonthlyComparison é um ponto da série previsão vs realizado de um produto.
type MonthlyComparison struct {
	Month    int     `json:"mes"`
	Year     int     `json:"ano"`
	Forecast float64 `json:"previsao"`
	Actual   float64 `json:"realizado"`
}

// ClientVolume é o volume vendido a um cliente, para o ranking de clientes.
type ClientVolume struct {
	Client   string  `json:"cliente"`
	Quantity float64 `json:"quantidade"`
}

// ProductDetails é o detalhamento de um produto: série mensal do ano
// selecionado e os maiores clientes por volume.
type ProductDetails struct {
	ProductCode        string              `json:"codigo_produto"`
	ProductName        string              `json:"produto"`
	Year               int                 `json:"ano"`
	InventoryAvailable float64             `json:"estoque_disponivel"`
	Series             []MonthlyComparison `json:"serie_mensal"`
	TopClients         []ClientVolume      `json:"top_clientes"`
}

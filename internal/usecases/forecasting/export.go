package forecasting

import (
	"strings"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// ExportRow é a linha achatada para exportação em planilha. O conjunto e o
// texto dos cabeçalhos são contrato com as planilhas existentes da operação;
// não adicionar nem renomear colunas.
type ExportRow struct {
	Product   string  `json:"Produto"`
	Code      string  `json:"Código"`
	Client    string  `json:"Cliente"`
	Forecast  float64 `json:"Previsão"`
	Actual    float64 `json:"Realizado"`
	Inventory float64 `json:"Estoque Atual"`
	Variation float64 `json:"Variação Trimestral (%)"`
	Alerts    string  `json:"Alertas"`
}

// ExportDashboard achata as linhas do dashboard do filtro ativo para
// exportação. Alertas viram uma lista separada por ponto e vírgula; sem
// alertas, "Nenhum".
func (s *Service) ExportDashboard(fc domain.FilterContext, now time.Time) ([]*ExportRow, error) {
	response, err := s.BuildDashboard(fc, now)
	if err != nil {
		return nil, err
	}

	export := make([]*ExportRow, 0, len(response.Rows))
	for _, row := range response.Rows {
		var actual float64
		if row.ActualQuantity != nil {
			actual = *row.ActualQuantity
		}

		alerts := "Nenhum"
		if len(row.Alerts) > 0 {
			messages := make([]string, 0, len(row.Alerts))
			for _, finding := range row.Alerts {
				messages = append(messages, finding.Message)
			}
			alerts = strings.Join(messages, "; ")
		}

		export = append(export, &ExportRow{
			Product:   row.ProductName,
			Code:      row.ProductCode,
			Client:    row.ClientLabel,
			Forecast:  row.ForecastQuantity,
			Actual:    actual,
			Inventory: row.InventoryAvailable,
			Variation: row.VariationPercent,
			Alerts:    alerts,
		})
	}

	return export, nil
}

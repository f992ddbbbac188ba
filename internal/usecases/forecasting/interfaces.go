package forecasting

import (
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// Forecaster é a fachada de casos de uso do dashboard de previsão.
type Forecaster interface {
	BuildDashboard(fc domain.FilterContext, now time.Time) (*domain.DashboardResponse, error)
	BuildStats(fc domain.FilterContext, now time.Time) (*domain.DashboardStats, error)
	ProductDetails(productCode string, year int, now time.Time) (*domain.ProductDetails, error)
	ExportDashboard(fc domain.FilterContext, now time.Time) ([]*ExportRow, error)

	SaveGrowthOverride(productCode string, fc domain.FilterContext, percent float64) error
	DeleteGrowthOverride(productCode string, fc domain.FilterContext) error
	SaveManualProduction(productCode string, fc domain.FilterContext, quantity float64) error
	DeleteManualProduction(productCode string, fc domain.FilterContext) error
}

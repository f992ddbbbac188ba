package handler

import (
	"net/http"

	"github.com/laviva-alimentos/previsao-api/internal/api/handler/router"
	"github.com/laviva-alimentos/previsao-api/internal/auth"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/stocking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service auth.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Forecasting(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: Dashboard(service),
		},
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: DashboardStats(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: DashboardExport(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: Alerts(service),
		},
		{
			Path:    "/v1/products/:codigo/details",
			Method:  http.MethodGet,
			Handler: ProductDetails(service),
		},
	}
}

func Overrides(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:codigo/growth",
			Method:  http.MethodPut,
			Handler: SaveGrowthOverride(service),
		},
		{
			Path:    "/v1/products/:codigo/growth",
			Method:  http.MethodDelete,
			Handler: DeleteGrowthOverride(service),
		},
		{
			Path:    "/v1/products/:codigo/production",
			Method:  http.MethodPut,
			Handler: SaveManualProduction(service),
		},
		{
			Path:    "/v1/products/:codigo/production",
			Method:  http.MethodDelete,
			Handler: DeleteManualProduction(service),
		},
	}
}

func Inventory(service stocking.Stocker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inventory/summary",
			Method:  http.MethodGet,
			Handler: InventorySummary(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

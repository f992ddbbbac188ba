package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

// Dashboard retorna as linhas recomputadas do dashboard para o filtro da
// query string.
func Dashboard(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		response, err := service.BuildDashboard(fc, time.Now())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		logger.WithField("rows", len(response.Rows)).Info("dashboard: built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

// DashboardStats retorna os totais dos cartões de resumo.
func DashboardStats(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		stats, err := service.BuildStats(fc, time.Now())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build stats")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular os totais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

// DashboardExport retorna as linhas achatadas para exportação.
func DashboardExport(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		rows, err := service.ExportDashboard(fc, time.Now())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build export")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a exportação", nil)
			return
		}

		logger.WithField("rows", len(rows)).Info("dashboard: export built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

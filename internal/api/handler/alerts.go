package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/usecases/alerting"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

// Alerts retorna os alertas do filtro ativo agrupados por categoria, em
// ordem de severidade.
func Alerts(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("alerts: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		response, err := service.BuildDashboard(fc, time.Now())
		if err != nil {
			logger.WithError(err).Error("alerts: failed to build dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao detectar alertas", nil)
			return
		}

		groups := alerting.GroupRows(response.Rows)
		logger.WithField("groups", len(groups)).Info("alerts: grouped successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("alerts: failed to encode response")
		}
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

type GrowthOverrideRequest struct {
	GrowthPercent *float64 `json:"percentual_crescimento"`
}

// SaveGrowthOverride grava o percentual de crescimento para o escopo
// derivado do filtro ativo da query string.
func SaveGrowthOverride(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("codigo")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do produto não informado", nil)
			return
		}

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("growth: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var req GrowthOverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GrowthPercent == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Percentual de crescimento não informado", nil)
			return
		}

		if err := service.SaveGrowthOverride(code, fc, *req.GrowthPercent); err != nil {
			logger.WithError(err).WithField("codigo_produto", code).Error("growth: failed to save override")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar o crescimento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Crescimento gravado com sucesso",
		})
	})
}

// DeleteGrowthOverride remove o override de crescimento do escopo derivado
// do filtro ativo, voltando ao percentual padrão.
func DeleteGrowthOverride(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("codigo")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do produto não informado", nil)
			return
		}

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("growth: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if err := service.DeleteGrowthOverride(code, fc); err != nil {
			logger.WithError(err).WithField("codigo_produto", code).Error("growth: failed to delete override")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover o crescimento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Crescimento removido com sucesso",
		})
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

type ManualProductionRequest struct {
	Quantity *float64 `json:"quantidade"`
}

// SaveManualProduction fixa a quantidade de produção manual para o período
// selecionado. Quantidade zero ou negativa remove o override.
func SaveManualProduction(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("codigo")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do produto não informado", nil)
			return
		}

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("production: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if !fc.HasPeriod() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário selecionar mês e ano", nil)
			return
		}

		var req ManualProductionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade não informada", nil)
			return
		}

		if err := service.SaveManualProduction(code, fc, *req.Quantity); err != nil {
			logger.WithError(err).WithField("codigo_produto", code).Error("production: failed to save override")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar a produção manual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Produção manual gravada com sucesso",
		})
	})
}

// DeleteManualProduction remove o override manual do período selecionado,
// voltando ao cálculo de previsão menos estoque.
func DeleteManualProduction(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("codigo")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do produto não informado", nil)
			return
		}

		fc, err := parseFilterContext(r)
		if err != nil {
			logger.WithError(err).Warn("production: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if !fc.HasPeriod() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário selecionar mês e ano", nil)
			return
		}

		if err := service.DeleteManualProduction(code, fc); err != nil {
			logger.WithError(err).WithField("codigo_produto", code).Error("production: failed to delete override")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover a produção manual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Produção manual removida com sucesso",
		})
	})
}

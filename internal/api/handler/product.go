package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

// ProductDetails retorna a série mensal previsão vs realizado e o ranking de
// clientes de um produto. Sem parâmetro ano, usa o ano corrente.
func ProductDetails(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("codigo")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do produto não informado", nil)
			return
		}

		now := time.Now()

		year := now.Year()
		if raw := r.URL.Query().Get("ano"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithField("ano", raw).Warn("product: invalid year parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		details, err := service.ProductDetails(code, year, now)
		if err != nil {
			logger.WithError(err).WithField("codigo_produto", code).Error("product: failed to build details")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o detalhamento do produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(details); err != nil {
			logger.WithError(err).Error("product: failed to encode response")
		}
	})
}

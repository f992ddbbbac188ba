package handler

import (
	"encoding/json"
	"net/http"

	"github.com/laviva-alimentos/previsao-api/internal/usecases/stocking"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/laviva-alimentos/previsao-api/pkg/log"
)

// InventorySummary retorna o rollup de estoque por produto.
func InventorySummary(service stocking.Stocker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products := splitParam(r.URL.Query().Get("produtos"))

		summaries, err := service.Summary(products)
		if err != nil {
			logger.WithError(err).Error("inventory: failed to build summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar o estoque", nil)
			return
		}

		logger.WithField("products", len(summaries)).Info("inventory: summary built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("inventory: failed to encode response")
		}
	})
}

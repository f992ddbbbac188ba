package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// parseFilterContext monta o contexto de filtro a partir da query string.
// Parâmetros aceitos: mes (1-12), ano, produtos e clientes (separados por
// vírgula). Todos opcionais; ausentes significam "todos".
func parseFilterContext(r *http.Request) (domain.FilterContext, error) {
	fc := domain.FilterContext{}
	query := r.URL.Query()

	if raw := strings.TrimSpace(query.Get("mes")); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return fc, fmt.Errorf("mês inválido: %q", raw)
		}
		fc.Month = &month
	}

	if raw := strings.TrimSpace(query.Get("ano")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			return fc, fmt.Errorf("ano inválido: %q", raw)
		}
		fc.Year = &year
	}

	fc.Products = splitParam(query.Get("produtos"))
	fc.Clients = splitParam(query.Get("clientes"))

	return fc, nil
}

func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

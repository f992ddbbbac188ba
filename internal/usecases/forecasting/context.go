package forecasting

import (
	"fmt"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
)

// Tipos de contexto de visualização do dashboard.
const (
	ContextAll     = "all"
	ContextFocus   = "focus"
	ContextCurrent = "current"
	ContextPast    = "past"
	ContextFuture  = "future"
)

// ViewingContextFor classifica o período selecionado para o aviso exibido no
// topo do dashboard. O período dois meses à frente do corrente é o foco de
// produção e tem precedência sobre a classificação temporal simples.
func ViewingContextFor(fc domain.FilterContext, now time.Time) domain.ViewingContext {
	if fc.Month == nil || fc.Year == nil {
		return domain.ViewingContext{
			Type:    ContextAll,
			Message: "Visualizando todos os períodos disponíveis",
		}
	}

	month, year := *fc.Month, *fc.Year

	if isProductionFocus(month, year, now) {
		return domain.ViewingContext{
			Type:    ContextFocus,
			Message: fmt.Sprintf("%s/%d é foco atual de produção", utils.MonthName(month), year),
		}
	}

	if utils.IsCurrentMonth(month, year, now) {
		return domain.ViewingContext{
			Type:    ContextCurrent,
			Message: "Visualizando mês atual, dados em tempo real",
		}
	}

	if utils.IsMonthInPast(month, year, now) {
		return domain.ViewingContext{
			Type:    ContextPast,
			Message: "Visualizando dados passados com comparativo real",
		}
	}

	return domain.ViewingContext{
		Type:    ContextFuture,
		Message: "Visualizando previsão futura de produção",
	}
}

// isProductionFocus indica se o período está exatamente dois meses à frente
// do mês corrente.
func isProductionFocus(month, year int, now time.Time) bool {
	return utils.PeriodIndex(month, year)-utils.PeriodIndex(int(now.Month()), now.Year()) == 2
}

package forecasting

import "github.com/laviva-alimentos/previsao-api/internal/domain"

// CalculateProduction deriva a necessidade de produção de um produto:
// previsão menos estoque disponível. Um override manual para o escopo exato
// substitui o cálculo por inteiro, mesmo quando o estoque cobriria a
// previsão. Sem override, resultado menor ou igual a zero significa estoque
// suficiente e a necessidade é zerada.
func CalculateProduction(
	forecast float64,
	inventoryAvailable float64,
	override *domain.ManualProductionOverride,
) domain.ProductionResult {
	calculated := forecast - inventoryAvailable

	if override != nil {
		return domain.ProductionResult{
			Required:   override.Quantity,
			Calculated: calculated,
			IsManual:   true,
		}
	}

	if calculated <= 0 {
		return domain.ProductionResult{
			Required:            0,
			Calculated:          calculated,
			InventorySufficient: true,
		}
	}

	return domain.ProductionResult{
		Required:   calculated,
		Calculated: calculated,
	}
}

// FindManualOverride localiza o override de produção manual cujo escopo casa
// exatamente com (produto, cliente, ano, mes). Nil quando não há.
func FindManualOverride(
	productCode string,
	clientID *string,
	month, year int,
	overrides []*domain.ManualProductionOverride,
) *domain.ManualProductionOverride {
	for _, o := range overrides {
		if o == nil || o.ProductCode != productCode || o.Year != year || o.Month != month {
			continue
		}
		if !equalStringPtrValue(o.ClientID, clientID) {
			continue
		}
		return o
	}
	return nil
}

func equalStringPtrValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

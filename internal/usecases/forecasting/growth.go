package forecasting

import (
	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// ResolveGrowth determina o percentual de crescimento aplicável a um produto
// no período alvo, do escopo mais específico para o mais amplo:
//
//  1. (produto, cliente, ano, mes), só avaliado com um único cliente em escopo
//  2. (produto, agregado, ano, mes)
//  3. (produto, agregado, ano, todos os meses)
//  4. (produto, agregado, todos os anos, todos os meses)
//  5. padrão de 10%
//
// A busca é pura: opera apenas sobre as linhas recebidas.
func ResolveGrowth(productCode string, clientID *string, month, year int, overrides []*domain.GrowthOverride) float64 {
	var product []*domain.GrowthOverride
	for _, o := range overrides {
		if o != nil && o.ProductCode == productCode {
			product = append(product, o)
		}
	}

	if clientID != nil {
		for _, o := range product {
			if o.ClientID != nil && *o.ClientID == *clientID &&
				o.Year != nil && *o.Year == year &&
				o.Month != nil && *o.Month == month {
				return o.GrowthPercent
			}
		}
	}

	for _, o := range product {
		if o.ClientID == nil && o.Year != nil && *o.Year == year &&
			o.Month != nil && *o.Month == month {
			return o.GrowthPercent
		}
	}

	for _, o := range product {
		if o.ClientID == nil && o.Year != nil && *o.Year == year && o.Month == nil {
			return o.GrowthPercent
		}
	}

	for _, o := range product {
		if o.ClientID == nil && o.Year == nil && o.Month == nil {
			return o.GrowthPercent
		}
	}

	return domain.DefaultGrowthPercent
}

// BuildOverrideScope monta a tupla de escopo gravada a partir do contexto de
// filtro ativo: um único cliente selecionado grava aquele cliente; zero ou
// múltiplos clientes gravam o escopo agregado. Os filtros de mês/ano ativos
// (possivelmente nulos, significando "todos") são gravados como estão.
func BuildOverrideScope(productCode string, fc domain.FilterContext) domain.OverrideScope {
	scope := domain.OverrideScope{
		ProductCode: productCode,
		Year:        fc.Year,
		Month:       fc.Month,
	}

	if client, ok := fc.SingleClient(); ok {
		scope.ClientID = &client
	}

	return scope
}

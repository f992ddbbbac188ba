// Package stocking agrega o estoque por produto. Lotes do mesmo produto
// aparecem no esquema legado com códigos com e sem zeros à esquerda; a
// agregação é sempre pelo código normalizado.
package stocking

import (
	"fmt"
	"sort"

	"github.com/laviva-alimentos/previsao-api/infrastructure/repository"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
)

// RollupInventory soma os lotes por código normalizado. O nome exibido é o
// do primeiro lote encontrado de cada produto.
func RollupInventory(records []*domain.InventoryRecord) map[string]*domain.InventorySummary {
	rollup := make(map[string]*domain.InventorySummary)

	for _, record := range records {
		if record == nil {
			continue
		}

		code := utils.NormalizeProductCode(record.ProductCode)
		summary, ok := rollup[code]
		if !ok {
			summary = &domain.InventorySummary{
				ProductCode: code,
				ProductName: utils.CleanProductName(record.ProductName),
			}
			rollup[code] = summary
		}

		summary.Lots++
		summary.QuantityAvailable += record.QuantityAvailable
		summary.QuantityTotal += record.QuantityTotal
	}

	return rollup
}

// Stocker expõe o resumo de estoque por produto.
type Stocker interface {
	Summary(products []string) ([]*domain.InventorySummary, error)
}

type Service struct {
	inventoryRepository repository.InventoryRepository
}

func NewService(inventoryRepo repository.InventoryRepository) *Service {
	return &Service{inventoryRepository: inventoryRepo}
}

// Summary retorna o rollup de estoque por produto, ordenado por nome.
func (s *Service) Summary(products []string) ([]*domain.InventorySummary, error) {
	records, err := s.inventoryRepository.ListInventory(products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}

	rollup := RollupInventory(records)

	summaries := make([]*domain.InventorySummary, 0, len(rollup))
	for _, summary := range rollup {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ProductName != summaries[j].ProductName {
			return summaries[i].ProductName < summaries[j].ProductName
		}
		return summaries[i].ProductCode < summaries[j].ProductCode
	})

	return summaries, nil
}

package alerting

import (
	"sort"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// kindCategories mapeia o tipo do alerta para categoria de exibição e
// severidade do grupo. Tabela estática; a mensagem nunca é inspecionada.
var kindCategories = map[domain.AlertKind]struct {
	category string
	severity domain.AlertSeverity
}{
	domain.AlertKindDivergence: {category: "Variações Divergentes", severity: domain.SeverityCritical},
	domain.AlertKindStale:      {category: "Produtos Parados", severity: domain.SeverityModerate},
}

var severityRank = map[domain.AlertSeverity]int{
	domain.SeverityCritical: 0,
	domain.SeverityModerate: 1,
	domain.SeverityInfo:     2,
}

// GroupRows agrupa os alertas das linhas do dashboard por categoria, com os
// grupos em ordem de severidade e os produtos de cada grupo em ordem
// alfabética.
func GroupRows(rows []*domain.ProductRow) []domain.AlertGroup {
	type bucket struct {
		severity domain.AlertSeverity
		products map[string]*domain.AlertedProduct
		order    []string
	}

	buckets := make(map[string]*bucket)

	for _, row := range rows {
		if row == nil {
			continue
		}
		for _, finding := range row.Alerts {
			mapping, ok := kindCategories[finding.Kind]
			if !ok {
				continue
			}

			b, ok := buckets[mapping.category]
			if !ok {
				b = &bucket{
					severity: mapping.severity,
					products: make(map[string]*domain.AlertedProduct),
				}
				buckets[mapping.category] = b
			}

			product, ok := b.products[row.ProductCode]
			if !ok {
				product = &domain.AlertedProduct{
					ProductCode: row.ProductCode,
					ProductName: row.ProductName,
					ClientLabel: row.ClientLabel,
				}
				b.products[row.ProductCode] = product
				b.order = append(b.order, row.ProductCode)
			}
			product.Messages = append(product.Messages, finding.Message)
		}
	}

	groups := make([]domain.AlertGroup, 0, len(buckets))
	for category, b := range buckets {
		products := make([]domain.AlertedProduct, 0, len(b.products))
		for _, code := range b.order {
			products = append(products, *b.products[code])
		}
		sort.Slice(products, func(i, j int) bool {
			return products[i].ProductName < products[j].ProductName
		})

		groups = append(groups, domain.AlertGroup{
			Category: category,
			Severity: b.severity,
			Products: products,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if severityRank[groups[i].Severity] != severityRank[groups[j].Severity] {
			return severityRank[groups[i].Severity] < severityRank[groups[j].Severity]
		}
		return groups[i].Category < groups[j].Category
	})

	return groups
}

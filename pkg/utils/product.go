package utils

import (
	"regexp"
	"strings"
)

var (
	// Sequências numéricas que poluem nomes de produto importados de
	// planilha, ex.: "NOZES SEM CASCA 12X100G - 1,2KG 18 10,87 0,00".
	numericSequencePattern = regexp.MustCompile(`\s+\d+[\s,.]+\d+[\s,.]+.*$`)
	trailingZerosPattern   = regexp.MustCompile(`(\s+0[,.]\d+)+\s*$`)
	trailingNumberPattern  = regexp.MustCompile(`\s+\d+\s*$`)

	leadingZerosPattern = regexp.MustCompile(`^0+`)

	clientSeparatorPattern = regexp.MustCompile(`[/;,]`)
)

// CleanProductName remove o lixo numérico que importações de planilha deixam
// após o nome do produto.
func CleanProductName(name string) string {
	cleaned := strings.TrimSpace(name)
	cleaned = numericSequencePattern.ReplaceAllString(cleaned, "")
	cleaned = trailingZerosPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = trailingNumberPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// NormalizeProductCode remove zeros à esquerda e espaços do código, para que
// "00123" e "123" agreguem no mesmo produto.
func NormalizeProductCode(code string) string {
	trimmed := strings.TrimSpace(code)
	normalized := leadingZerosPattern.ReplaceAllString(trimmed, "")
	if normalized == "" && trimmed != "" {
		// código composto só por zeros
		return "0"
	}
	return normalized
}

// SplitClients quebra um rótulo de clientes agrupados ("CLIENTE A / CLIENTE B")
// nos clientes individuais.
func SplitClients(label string) []string {
	parts := clientSeparatorPattern.Split(label, -1)
	clients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clients = append(clients, trimmed)
		}
	}
	return clients
}

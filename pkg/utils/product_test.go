package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanProductName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Nome limpo permanece igual",
			raw:      "CASTANHA DE CAJU W1 12X100G",
			expected: "CASTANHA DE CAJU W1 12X100G",
		},
		{
			name:     "Remove sequência numérica de planilha",
			raw:      "NOZES SEM CASCA 12X100G - 1,2KG 18 10,87 0,00",
			expected: "NOZES SEM CASCA 12X100G - 1,2KG",
		},
		{
			name:     "Remove zeros decimais ao final",
			raw:      "AMENDOIM TORRADO 0,00 0,00",
			expected: "AMENDOIM TORRADO",
		},
		{
			name:     "Remove número solto ao final",
			raw:      "MIX DE FRUTAS SECAS 24",
			expected: "MIX DE FRUTAS SECAS",
		},
		{
			name:     "Apara espaços",
			raw:      "  UVA PASSA ESCURA  ",
			expected: "UVA PASSA ESCURA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanProductName(tt.raw))
		})
	}
}

func TestNormalizeProductCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Sem zeros à esquerda", raw: "123", expected: "123"},
		{name: "Com zeros à esquerda", raw: "00123", expected: "123"},
		{name: "Com espaços", raw: " 0123 ", expected: "123"},
		{name: "Só zeros vira zero", raw: "000", expected: "0"},
		{name: "Vazio permanece vazio", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeProductCode(tt.raw))
		})
	}
}

func TestSplitClients(t *testing.T) {
	assert.Equal(t, []string{"CLIENTE A", "CLIENTE B"}, SplitClients("CLIENTE A / CLIENTE B"))
	assert.Equal(t, []string{"CLIENTE A", "CLIENTE B", "CLIENTE C"}, SplitClients("CLIENTE A;CLIENTE B, CLIENTE C"))
	assert.Equal(t, []string{"CLIENTE A"}, SplitClients("CLIENTE A"))
	assert.Empty(t, SplitClients(" / "))
}

package domain

// FilterContext carrega a seleção ativa do operador (produtos, clientes e
// período). É sempre passado explicitamente para os resolvedores; nenhum
// componente guarda estado de filtro.
type FilterContext struct {
	Products []string `json:"produtos"`
	Clients  []string `json:"clientes"`
	Year     *int     `json:"ano"`
	Month    *int     `json:"mes"`
}

// SingleClient retorna o cliente selecionado quando exatamente um cliente
// está em escopo. Zero ou múltiplos clientes caem para o escopo agregado.
func (f FilterContext) SingleClient() (string, bool) {
	if len(f.Clients) == 1 && f.Clients[0] != "" {
		return f.Clients[0], true
	}
	return "", false
}

// HasPeriod informa se o contexto tem mês e ano concretos selecionados.
func (f FilterContext) HasPeriod() bool {
	return f.Month != nil && f.Year != nil
}

// OverrideScope identifica a abrangência de um override (crescimento ou
// produção manual). Campos nulos significam "todos": cliente nulo é o escopo
// agregado, ano/mês nulos valem para todos os períodos.
type OverrideScope struct {
	ProductCode string  `json:"codigo_produto"`
	ClientID    *string `json:"cliente"`
	Year        *int    `json:"ano"`
	Month       *int    `json:"mes"`
}

// Matches compara o escopo com uma tupla exata, tratando nulos como nulos
// (não como coringa).
func (s OverrideScope) Matches(other OverrideScope) bool {
	if s.ProductCode != other.ProductCode {
		return false
	}
	return equalStringPtr(s.ClientID, other.ClientID) &&
		equalIntPtr(s.Year, other.Year) &&
		equalIntPtr(s.Month, other.Month)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

package domain

// AlertKind classifica um alerta na origem, eliminando a categorização por
// palavras-chave sobre o texto da mensagem.
type AlertKind string

const (
	AlertKindStale      AlertKind = "stale"
	AlertKindDivergence AlertKind = "divergence"
)

// AlertSeverity em ordem de gravidade: critico < moderado < info.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critico"
	SeverityModerate AlertSeverity = "moderado"
	SeverityInfo     AlertSeverity = "info"
)

// AlertFinding é um achado de anomalia para um produto. Nunca é persistido;
// é recalculado a cada consulta.
type AlertFinding struct {
	ProductCode string        `json:"codigo_produto"`
	Kind        AlertKind     `json:"tipo"`
	Message     string        `json:"mensagem"`
	Severity    AlertSeverity `json:"severidade"`
}

// AlertedProduct é um produto afetado dentro de um grupo de alertas.
type AlertedProduct struct {
	ProductCode string   `json:"codigo"`
	ProductName string   `json:"produto"`
	ClientLabel string   `json:"cliente"`
	Messages    []string `json:"alertas"`
}

// AlertGroup agrupa produtos afetados por categoria de alerta, ordenado por
// severidade para exibição.
type AlertGroup struct {
	Category string           `json:"tipo"`
	Severity AlertSeverity    `json:"severidade"`
	Products []AlertedProduct `json:"produtos"`
}

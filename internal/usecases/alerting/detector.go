// Package alerting detecta anomalias operacionais (produtos parados e
// variações divergentes). Alertas são sempre recalculados na consulta e
// classificados por tipo na origem; nenhuma categorização depende do texto
// da mensagem.
package alerting

import (
	"fmt"
	"math"
	"time"

	"github.com/laviva-alimentos/previsao-api/internal/domain"
)

// Detector aplica os limiares configurados de staleness e divergência.
type Detector struct {
	staleDays           int
	divergenceThreshold float64
}

func NewDetector(staleDays int, divergenceThresholdPercent float64) *Detector {
	return &Detector{
		staleDays:           staleDays,
		divergenceThreshold: divergenceThresholdPercent,
	}
}

// DetectStale acusa produto parado quando a última venda ocorreu há mais
// dias que o limiar (estritamente; exatamente o limiar não dispara). Sem
// registro de venda não há alerta: ausência de histórico não é staleness.
func (d *Detector) DetectStale(productCode string, lastSaleAt time.Time, now time.Time) *domain.AlertFinding {
	if lastSaleAt.IsZero() {
		return nil
	}

	days := int(math.Floor(now.Sub(lastSaleAt).Hours() / 24))
	if days <= d.staleDays {
		return nil
	}

	return &domain.AlertFinding{
		ProductCode: productCode,
		Kind:        domain.AlertKindStale,
		Message:     fmt.Sprintf("Produto parado: sem vendas há %d dias", days),
		Severity:    domain.SeverityModerate,
	}
}

// DetectDivergence acusa variação divergente quando o realizado desvia da
// previsão além do limiar (estritamente), em qualquer direção. Exige mês e
// ano selecionados e previsão positiva; fora disso a comparação não tem
// significado.
func (d *Detector) DetectDivergence(
	productCode string,
	actual, forecast float64,
	hasPeriod bool,
) *domain.AlertFinding {
	if !hasPeriod || forecast <= 0 || actual <= 0 {
		return nil
	}

	percent := (actual - forecast) / forecast * 100
	if math.Abs(percent) <= d.divergenceThreshold {
		return nil
	}

	direction := "acima"
	if percent < 0 {
		direction = "abaixo"
	}

	return &domain.AlertFinding{
		ProductCode: productCode,
		Kind:        domain.AlertKindDivergence,
		Message:     fmt.Sprintf("Variação divergente: %.0f%% %s da previsão", math.Abs(percent), direction),
		Severity:    domain.SeverityCritical,
	}
}

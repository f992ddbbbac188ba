package forecasting

// Níveis de intensidade da variação entre realizado e previsto.
const (
	VariationNeutral = "neutro"
	VariationMild    = "leve"
	VariationStrong  = "forte"
)

// Variation calcula o percentual de variação do realizado sobre o previsto.
// Só há variação significativa quando ambos os valores são positivos; caso
// contrário retorna zero.
func Variation(actual, forecast float64) float64 {
	if actual <= 0 || forecast <= 0 {
		return 0
	}
	return (actual - forecast) / forecast * 100
}

// ClassifyVariation classifica a magnitude absoluta da variação:
// abaixo de 5% é neutra, de 5% a menos de 20% é leve, 20% ou mais é forte.
func ClassifyVariation(percent float64) string {
	abs := percent
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs < 5:
		return VariationNeutral
	case abs < 20:
		return VariationMild
	default:
		return VariationStrong
	}
}

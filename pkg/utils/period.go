package utils

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var monthAbbreviations = map[string]int{
	"jan": 1, "fev": 2, "mar": 3, "abr": 4, "mai": 5, "jun": 6,
	"jul": 7, "ago": 8, "set": 9, "out": 10, "nov": 11, "dez": 12,
}

// QuarterOf retorna o trimestre (Q1..Q4) de um mês 1-12.
func QuarterOf(month int) string {
	switch {
	case month >= 1 && month <= 3:
		return "Q1"
	case month >= 4 && month <= 6:
		return "Q2"
	case month >= 7 && month <= 9:
		return "Q3"
	default:
		return "Q4"
	}
}

// IsMonthInPast verifica se (mes, ano) é anterior ao mês de referência.
// O próprio mês de referência não é passado nem futuro.
func IsMonthInPast(month, year int, now time.Time) bool {
	if year < now.Year() {
		return true
	}
	return year == now.Year() && month < int(now.Month())
}

// IsMonthInFuture verifica se (mes, ano) é posterior ao mês de referência.
func IsMonthInFuture(month, year int, now time.Time) bool {
	if year > now.Year() {
		return true
	}
	return year == now.Year() && month > int(now.Month())
}

// IsCurrentMonth verifica se (mes, ano) é o mês de referência.
func IsCurrentMonth(month, year int, now time.Time) bool {
	return month == int(now.Month()) && year == now.Year()
}

// IsWithinOperationalHorizon verifica se o mês alvo está no horizonte
// operacional: do mês de referência até dois meses à frente, inclusive,
// apenas dentro do mesmo ano-calendário. Novembro e dezembro têm, portanto,
// horizonte truncado na virada do ano.
func IsWithinOperationalHorizon(month, year int, now time.Time) bool {
	if year != now.Year() {
		return false
	}
	current := int(now.Month())
	return month >= current && month <= current+2
}

// PreviousMonth retorna o mês anterior; janeiro volta para dezembro do ano
// anterior.
func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// PeriodIndex ordena períodos cronologicamente (ano*12 + mês).
func PeriodIndex(month, year int) int {
	return year*12 + month
}

// MonthName retorna o nome do mês em português, ou "" para mês inválido.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ParseMonth interpreta um mês vindo de payloads legados: número (1-12),
// string numérica ("3", "03") ou abreviação em português ("mar"). Retorna 0
// quando não reconhece o valor.
func ParseMonth(raw string) int {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return 0
	}

	if m, ok := monthAbbreviations[token]; ok {
		return m
	}

	m, err := strconv.Atoi(token)
	if err != nil || m < 1 || m > 12 {
		return 0
	}

	return m
}

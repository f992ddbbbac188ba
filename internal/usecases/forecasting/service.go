package forecasting

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/laviva-alimentos/previsao-api/infrastructure/repository"
	"github.com/laviva-alimentos/previsao-api/internal/config"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/alerting"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/stocking"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const aggregateClientLabel = "Todos os clientes"

// Service implementa Forecaster sobre os repositórios de vendas, previsões,
// overrides e estoque. Nenhum estado de filtro é retido entre chamadas.
type Service struct {
	cfg                        *config.Config
	salesRepository            repository.SalesRepository
	forecastRepository         repository.ForecastRepository
	growthOverrideRepository   repository.GrowthOverrideRepository
	manualProductionRepository repository.ManualProductionRepository
	inventoryRepository        repository.InventoryRepository
	detector                   *alerting.Detector
}

func NewService(
	cfg *config.Config,
	salesRepo repository.SalesRepository,
	forecastRepo repository.ForecastRepository,
	growthOverrideRepo repository.GrowthOverrideRepository,
	manualProductionRepo repository.ManualProductionRepository,
	inventoryRepo repository.InventoryRepository,
) Forecaster {
	return &Service{
		cfg:                        cfg,
		salesRepository:            salesRepo,
		forecastRepository:         forecastRepo,
		growthOverrideRepository:   growthOverrideRepo,
		manualProductionRepository: manualProductionRepo,
		inventoryRepository:        inventoryRepo,
		detector: alerting.NewDetector(
			cfg.Alerting.StaleDays,
			cfg.Alerting.DivergenceThresholdPercent,
		),
	}
}

// dashboardData é o snapshot de dados carregado para uma consulta.
type dashboardData struct {
	sales     []*domain.SalesRecord
	forecasts []*domain.ForecastRecord
	growth    []*domain.GrowthOverride
	manual    []*domain.ManualProductionOverride
	inventory map[string]*domain.InventorySummary
	// lastSales é sempre sem filtro de cliente: uma venda recente a qualquer
	// cliente conta para o produto não estar parado.
	lastSales map[string]time.Time
}

// BuildDashboard recalcula todas as linhas do dashboard para o contexto de
// filtro informado. Sem mês/ano selecionados o período alvo é o corrente.
func (s *Service) BuildDashboard(fc domain.FilterContext, now time.Time) (*domain.DashboardResponse, error) {
	data, err := s.loadData(fc)
	if err != nil {
		return nil, err
	}

	month, year := targetPeriod(fc, now)

	var clientID *string
	if client, ok := fc.SingleClient(); ok {
		clientID = &client
	}

	codes := productCodes(data)

	const maxConcurrent = 5
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var mutex sync.Mutex

	rows := make([]*domain.ProductRow, 0, len(codes))

	for _, code := range codes {
		wg.Add(1)

		go func(code string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			row := s.buildRow(code, clientID, month, year, fc.HasPeriod(), data, now)

			mutex.Lock()
			rows = append(rows, row)
			mutex.Unlock()
		}(code)
	}

	wg.Wait()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductName != rows[j].ProductName {
			return rows[i].ProductName < rows[j].ProductName
		}
		return rows[i].ProductCode < rows[j].ProductCode
	})

	return &domain.DashboardResponse{
		Context: ViewingContextFor(fc, now),
		Filters: fc,
		Rows:    rows,
	}, nil
}

// buildRow deriva a linha completa de um produto: crescimento, previsão,
// realizado, produção e alertas.
func (s *Service) buildRow(
	code string,
	clientID *string,
	month, year int,
	hasPeriod bool,
	data *dashboardData,
	now time.Time,
) *domain.ProductRow {
	growth := ResolveGrowth(code, clientID, month, year, data.growth)
	resolution := ResolveForecast(code, month, year, data.forecasts, data.sales, growth, now)

	var actual *float64
	name := ""

	for _, sale := range data.sales {
		if sale == nil || sale.ProductCode != code {
			continue
		}
		if name == "" {
			name = utils.CleanProductName(sale.ProductName)
		}
		if sale.Month == month && sale.Year == year {
			total := sale.QuantitySold
			if actual != nil {
				total += *actual
			}
			actual = &total
		}
	}

	if name == "" {
		for _, forecast := range data.forecasts {
			if forecast != nil && forecast.ProductCode == code {
				name = utils.CleanProductName(forecast.ProductName)
				break
			}
		}
	}

	var inventoryAvailable float64
	if summary, ok := data.inventory[utils.NormalizeProductCode(code)]; ok {
		inventoryAvailable = summary.QuantityAvailable
	}

	manual := FindManualOverride(code, clientID, month, year, data.manual)
	production := CalculateProduction(resolution.Quantity, inventoryAvailable, manual)

	var actualQuantity float64
	if actual != nil {
		actualQuantity = *actual
	}
	variation := Variation(actualQuantity, resolution.Quantity)

	alerts := make([]domain.AlertFinding, 0, 2)
	if finding := s.detector.DetectStale(code, data.lastSales[code], now); finding != nil {
		alerts = append(alerts, *finding)
	}
	if finding := s.detector.DetectDivergence(code, actualQuantity, resolution.Quantity, hasPeriod); finding != nil {
		alerts = append(alerts, *finding)
	}

	label := aggregateClientLabel
	if clientID != nil {
		label = *clientID
	}

	return &domain.ProductRow{
		ID:                 fmt.Sprintf("%s-%d-%02d", code, year, month),
		ProductCode:        code,
		ProductName:        name,
		ClientLabel:        label,
		Month:              month,
		Year:               year,
		GrowthPercent:      growth,
		ForecastQuantity:   resolution.Quantity,
		ForecastOrigin:     resolution.Origin,
		ForecastExplained:  resolution.Explanation,
		ActualQuantity:     actual,
		InventoryAvailable: inventoryAvailable,
		Production:         production,
		VariationPercent:   utils.RoundWithTwoDecimalPlace(variation),
		Alerts:             alerts,
	}
}

// BuildStats resume o dashboard para os cartões do topo.
func (s *Service) BuildStats(fc domain.FilterContext, now time.Time) (*domain.DashboardStats, error) {
	response, err := s.BuildDashboard(fc, now)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{DistinctProducts: len(response.Rows)}

	seen := make(map[string]struct{})
	for _, row := range response.Rows {
		stats.ForecastTotal += row.ForecastQuantity
		stats.AlertCount += len(row.Alerts)

		if _, ok := seen[utils.NormalizeProductCode(row.ProductCode)]; !ok {
			seen[utils.NormalizeProductCode(row.ProductCode)] = struct{}{}
			stats.InventoryAvailable += row.InventoryAvailable
		}
	}

	records, err := s.inventoryRepository.ListInventory(fc.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}
	for _, summary := range stocking.RollupInventory(records) {
		stats.InventoryTotal += summary.QuantityTotal
	}

	if stats.InventoryTotal > 0 {
		stats.InventoryAvailablePct = utils.RoundWithTwoDecimalPlace(
			stats.InventoryAvailable / stats.InventoryTotal * 100,
		)
	}

	return stats, nil
}

// ProductDetails monta a série mensal previsão vs realizado de um ano e o
// ranking de clientes por volume.
func (s *Service) ProductDetails(productCode string, year int, now time.Time) (*domain.ProductDetails, error) {
	fc := domain.FilterContext{Products: []string{productCode}}

	data, err := s.loadData(fc)
	if err != nil {
		return nil, err
	}

	details := &domain.ProductDetails{
		ProductCode: productCode,
		Year:        year,
		Series:      make([]domain.MonthlyComparison, 0, 12),
	}

	for _, sale := range data.sales {
		if sale != nil && sale.ProductCode == productCode {
			details.ProductName = utils.CleanProductName(sale.ProductName)
			break
		}
	}

	if summary, ok := data.inventory[utils.NormalizeProductCode(productCode)]; ok {
		details.InventoryAvailable = summary.QuantityAvailable
		if details.ProductName == "" {
			details.ProductName = summary.ProductName
		}
	}

	for month := 1; month <= 12; month++ {
		growth := ResolveGrowth(productCode, nil, month, year, data.growth)
		resolution := ResolveForecast(productCode, month, year, data.forecasts, data.sales, growth, now)

		var actual float64
		for _, sale := range data.sales {
			if sale != nil && sale.ProductCode == productCode && sale.Month == month && sale.Year == year {
				actual += sale.QuantitySold
			}
		}

		details.Series = append(details.Series, domain.MonthlyComparison{
			Month:    month,
			Year:     year,
			Forecast: resolution.Quantity,
			Actual:   actual,
		})
	}

	clientSales, err := s.salesRepository.ListClientSales(productCode, year)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por cliente: %w", err)
	}
	details.TopClients = rankClients(clientSales)

	return details, nil
}

const topClientsLimit = 5

func rankClients(sales []*domain.SalesRecord) []domain.ClientVolume {
	totals := make(map[string]float64)
	for _, sale := range sales {
		if sale == nil || sale.ClientID == nil {
			continue
		}
		totals[*sale.ClientID] += sale.QuantitySold
	}

	volumes := make([]domain.ClientVolume, 0, len(totals))
	for client, quantity := range totals {
		volumes = append(volumes, domain.ClientVolume{Client: client, Quantity: quantity})
	}

	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].Quantity != volumes[j].Quantity {
			return volumes[i].Quantity > volumes[j].Quantity
		}
		return volumes[i].Client < volumes[j].Client
	})

	if len(volumes) > topClientsLimit {
		volumes = volumes[:topClientsLimit]
	}

	return volumes
}

// SaveGrowthOverride grava o percentual de crescimento para o escopo
// derivado do contexto de filtro ativo.
func (s *Service) SaveGrowthOverride(productCode string, fc domain.FilterContext, percent float64) error {
	scope := BuildOverrideScope(productCode, fc)

	logrus.WithFields(logrus.Fields{
		"codigo_produto": productCode,
		"percentual":     percent,
	}).Info("Gravando override de crescimento")

	return s.growthOverrideRepository.SaveOrUpdate(&domain.GrowthOverride{
		ProductCode:   scope.ProductCode,
		ClientID:      scope.ClientID,
		Year:          scope.Year,
		Month:         scope.Month,
		GrowthPercent: percent,
	})
}

// DeleteGrowthOverride remove o override do escopo exato derivado do filtro,
// voltando o produto ao crescimento padrão naquele escopo.
func (s *Service) DeleteGrowthOverride(productCode string, fc domain.FilterContext) error {
	return s.growthOverrideRepository.DeleteByScope(BuildOverrideScope(productCode, fc))
}

// SaveManualProduction grava a quantidade manual para o período selecionado.
// Quantidade menor ou igual a zero remove o override, voltando ao cálculo.
func (s *Service) SaveManualProduction(productCode string, fc domain.FilterContext, quantity float64) error {
	if !fc.HasPeriod() {
		return fmt.Errorf("é necessário selecionar mês e ano para fixar produção manual")
	}

	scope := BuildOverrideScope(productCode, fc)

	if quantity <= 0 {
		return s.manualProductionRepository.DeleteByScope(scope)
	}

	return s.manualProductionRepository.SaveOrUpdate(&domain.ManualProductionOverride{
		ProductCode: scope.ProductCode,
		ClientID:    scope.ClientID,
		Year:        *scope.Year,
		Month:       *scope.Month,
		Quantity:    quantity,
	})
}

// DeleteManualProduction remove o override manual do período selecionado.
func (s *Service) DeleteManualProduction(productCode string, fc domain.FilterContext) error {
	if !fc.HasPeriod() {
		return fmt.Errorf("é necessário selecionar mês e ano para remover produção manual")
	}

	return s.manualProductionRepository.DeleteByScope(BuildOverrideScope(productCode, fc))
}

func (s *Service) loadData(fc domain.FilterContext) (*dashboardData, error) {
	var clientID *string
	if client, ok := fc.SingleClient(); ok {
		clientID = &client
	}

	sales, err := s.salesRepository.ListSales(fc.Products, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}

	forecasts, err := s.forecastRepository.ListForecasts(fc.Products, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar previsões: %w", err)
	}

	growth, err := s.growthOverrideRepository.ListOverrides(fc.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar overrides de crescimento: %w", err)
	}

	manual, err := s.manualProductionRepository.ListOverrides(fc.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produção manual: %w", err)
	}

	inventory, err := s.inventoryRepository.ListInventory(fc.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}

	lastSales, err := s.salesRepository.LastSaleDates(fc.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar últimas vendas: %w", err)
	}

	return &dashboardData{
		sales:     sales,
		forecasts: forecasts,
		growth:    growth,
		manual:    manual,
		inventory: stocking.RollupInventory(inventory),
		lastSales: lastSales,
	}, nil
}

// targetPeriod resolve o período alvo da consulta: o selecionado ou, na
// ausência de seleção, o corrente.
func targetPeriod(fc domain.FilterContext, now time.Time) (int, int) {
	month, year := int(now.Month()), now.Year()
	if fc.Month != nil {
		month = *fc.Month
	}
	if fc.Year != nil {
		year = *fc.Year
	}
	return month, year
}

// productCodes lista os produtos distintos presentes em vendas e previsões,
// em ordem estável.
func productCodes(data *dashboardData) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)

	add := func(code string) {
		if code == "" {
			return
		}
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	for _, sale := range data.sales {
		if sale != nil {
			add(sale.ProductCode)
		}
	}
	for _, forecast := range data.forecasts {
		if forecast != nil {
			add(forecast.ProductCode)
		}
	}

	sort.Strings(codes)
	return codes
}

package forecasting

import (
	"errors"
	"testing"
	"time"

	"github.com/laviva-alimentos/previsao-api/infrastructure/repository/mocks"
	"github.com/laviva-alimentos/previsao-api/internal/config"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	sales     *mocks.MockSalesRepository
	forecasts *mocks.MockForecastRepository
	growth    *mocks.MockGrowthOverrideRepository
	manual    *mocks.MockManualProductionRepository
	inventory *mocks.MockInventoryRepository
}

func newTestService(ctrl *gomock.Controller) (Forecaster, serviceMocks) {
	m := serviceMocks{
		sales:     mocks.NewMockSalesRepository(ctrl),
		forecasts: mocks.NewMockForecastRepository(ctrl),
		growth:    mocks.NewMockGrowthOverrideRepository(ctrl),
		manual:    mocks.NewMockManualProductionRepository(ctrl),
		inventory: mocks.NewMockInventoryRepository(ctrl),
	}

	cfg := &config.Config{
		Alerting: config.Alerting{
			StaleDays:                  60,
			DivergenceThresholdPercent: 25,
		},
	}

	service := NewService(cfg, m.sales, m.forecasts, m.growth, m.manual, m.inventory)
	return service, m
}

func (m serviceMocks) expectLoadData(
	sales []*domain.SalesRecord,
	forecasts []*domain.ForecastRecord,
	growth []*domain.GrowthOverride,
	manual []*domain.ManualProductionOverride,
	inventory []*domain.InventoryRecord,
) {
	m.sales.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(sales, nil)
	m.forecasts.EXPECT().ListForecasts(gomock.Any(), gomock.Any()).Return(forecasts, nil)
	m.growth.EXPECT().ListOverrides(gomock.Any()).Return(growth, nil)
	m.manual.EXPECT().ListOverrides(gomock.Any()).Return(manual, nil)
	m.inventory.EXPECT().ListInventory(gomock.Any()).Return(inventory, nil)

	lastSales := make(map[string]time.Time)
	for _, sale := range sales {
		if sale != nil && sale.LastSaleAt.After(lastSales[sale.ProductCode]) {
			lastSales[sale.ProductCode] = sale.LastSaleAt
		}
	}
	m.sales.EXPECT().LastSaleDates(gomock.Any()).Return(lastSales, nil)
}

func TestService_BuildDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	sales := []*domain.SalesRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantitySold: 126, LastSaleAt: now.AddDate(0, 0, -2)},
		{ProductCode: "200", ProductName: "AMENDOIM TORRADO", Year: 2024, Month: 12, QuantitySold: 40, LastSaleAt: now.AddDate(0, 0, -70)},
	}
	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 100},
	}
	inventory := []*domain.InventoryRecord{
		{ProductCode: "0100", ProductName: "CASTANHA DE CAJU", Lot: "L1", QuantityAvailable: 30, QuantityTotal: 30},
	}

	m.expectLoadData(sales, forecasts, nil, nil, inventory)

	fc := domain.FilterContext{Month: intPtr(3), Year: intPtr(2025)}

	response, err := service.BuildDashboard(fc, now)

	assert.NoError(t, err)
	assert.Len(t, response.Rows, 2)
	assert.Equal(t, ContextCurrent, response.Context.Type)

	// Linhas em ordem alfabética pelo nome do produto.
	amendoim := response.Rows[0]
	castanha := response.Rows[1]

	assert.Equal(t, "AMENDOIM TORRADO", amendoim.ProductName)
	assert.Equal(t, "CASTANHA DE CAJU", castanha.ProductName)

	// Produto com previsão armazenada e venda no período: previsão mantida,
	// variação de 26% dispara alerta de divergência.
	assert.Equal(t, domain.OriginStored, castanha.ForecastOrigin)
	assert.Equal(t, 100.0, castanha.ForecastQuantity)
	assert.NotNil(t, castanha.ActualQuantity)
	assert.Equal(t, 126.0, *castanha.ActualQuantity)
	assert.Equal(t, 26.0, castanha.VariationPercent)
	assert.Equal(t, 30.0, castanha.InventoryAvailable)
	assert.Equal(t, 70.0, castanha.Production.Required)
	assert.Len(t, castanha.Alerts, 1)
	assert.Equal(t, domain.AlertKindDivergence, castanha.Alerts[0].Kind)

	// Produto sem venda há 70 dias: alerta de produto parado.
	assert.Len(t, amendoim.Alerts, 1)
	assert.Equal(t, domain.AlertKindStale, amendoim.Alerts[0].Kind)
	assert.Nil(t, amendoim.ActualQuantity)
}

func TestService_BuildDashboard_EstoqueSuficiente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 50},
	}
	inventory := []*domain.InventoryRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Lot: "L1", QuantityAvailable: 80, QuantityTotal: 80},
	}

	m.expectLoadData(nil, forecasts, nil, nil, inventory)

	fc := domain.FilterContext{Month: intPtr(3), Year: intPtr(2025)}

	response, err := service.BuildDashboard(fc, now)

	assert.NoError(t, err)
	assert.Len(t, response.Rows, 1)

	row := response.Rows[0]
	assert.True(t, row.Production.InventorySufficient)
	assert.Equal(t, 0.0, row.Production.Required)
	assert.Equal(t, -30.0, row.Production.Calculated)
}

func TestService_BuildDashboard_ProducaoManualVence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 100},
	}
	manual := []*domain.ManualProductionOverride{
		{ProductCode: "100", Year: 2025, Month: 3, Quantity: 500},
	}

	m.expectLoadData(nil, forecasts, nil, manual, nil)

	fc := domain.FilterContext{Month: intPtr(3), Year: intPtr(2025)}

	response, err := service.BuildDashboard(fc, now)

	assert.NoError(t, err)
	assert.Len(t, response.Rows, 1)

	row := response.Rows[0]
	assert.True(t, row.Production.IsManual)
	assert.Equal(t, 500.0, row.Production.Required)
	assert.Equal(t, 100.0, row.Production.Calculated)
}

func TestService_BuildDashboard_CrescimentoOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 110},
	}
	growth := []*domain.GrowthOverride{
		{ProductCode: "100", Year: intPtr(2025), Month: intPtr(3), GrowthPercent: 20},
	}

	m.expectLoadData(nil, forecasts, growth, nil, nil)

	fc := domain.FilterContext{Month: intPtr(3), Year: intPtr(2025)}

	response, err := service.BuildDashboard(fc, now)

	assert.NoError(t, err)
	assert.Len(t, response.Rows, 1)

	// Base implícita 100 recalculada com 20%.
	row := response.Rows[0]
	assert.Equal(t, 20.0, row.GrowthPercent)
	assert.Equal(t, 120.0, row.ForecastQuantity)
}

func TestService_BuildDashboard_ProdutoParadoConsideraTodosOsClientes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	clientA := "CLIENTE A"

	// As linhas do cliente filtrado pararam há 100 dias, mas outro cliente
	// comprou há 2 dias: o produto não está parado.
	sales := []*domain.SalesRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", ClientID: &clientA, Year: 2024, Month: 12, QuantitySold: 50, LastSaleAt: now.AddDate(0, 0, -100)},
	}

	m.sales.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(sales, nil)
	m.forecasts.EXPECT().ListForecasts(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.growth.EXPECT().ListOverrides(gomock.Any()).Return(nil, nil)
	m.manual.EXPECT().ListOverrides(gomock.Any()).Return(nil, nil)
	m.inventory.EXPECT().ListInventory(gomock.Any()).Return(nil, nil)
	m.sales.EXPECT().
		LastSaleDates(gomock.Any()).
		Return(map[string]time.Time{"100": now.AddDate(0, 0, -2)}, nil)

	fc := domain.FilterContext{
		Clients: []string{clientA},
		Month:   intPtr(3),
		Year:    intPtr(2025),
	}

	response, err := service.BuildDashboard(fc, now)

	assert.NoError(t, err)
	assert.Len(t, response.Rows, 1)
	assert.Empty(t, response.Rows[0].Alerts)
}

func TestService_BuildDashboard_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sales.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

	response, err := service.BuildDashboard(domain.FilterContext{}, time.Now())

	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestService_BuildStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 100},
		{ProductCode: "200", ProductName: "AMENDOIM TORRADO", Year: 2025, Month: 3, QuantityForecast: 60},
	}
	inventory := []*domain.InventoryRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Lot: "L1", QuantityAvailable: 30, QuantityTotal: 60},
		{ProductCode: "200", ProductName: "AMENDOIM TORRADO", Lot: "L1", QuantityAvailable: 10, QuantityTotal: 40},
	}

	m.expectLoadData(nil, forecasts, nil, nil, inventory)
	// BuildStats consulta o estoque de novo para o total bruto.
	m.inventory.EXPECT().ListInventory(gomock.Any()).Return(inventory, nil)

	fc := domain.FilterContext{Month: intPtr(3), Year: intPtr(2025)}

	stats, err := service.BuildStats(fc, now)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.DistinctProducts)
	assert.Equal(t, 160.0, stats.ForecastTotal)
	assert.Equal(t, 40.0, stats.InventoryAvailable)
	assert.Equal(t, 100.0, stats.InventoryTotal)
	assert.Equal(t, 40.0, stats.InventoryAvailablePct)
}

func TestService_ProductDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	clientA := "CLIENTE A"
	clientB := "CLIENTE B"

	sales := []*domain.SalesRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantitySold: 80, LastSaleAt: now},
	}
	forecasts := []*domain.ForecastRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Year: 2025, Month: 3, QuantityForecast: 100},
	}

	m.expectLoadData(sales, forecasts, nil, nil, nil)
	m.sales.EXPECT().
		ListClientSales("100", 2025).
		Return([]*domain.SalesRecord{
			{ProductCode: "100", ClientID: &clientA, Year: 2025, Month: 3, QuantitySold: 50},
			{ProductCode: "100", ClientID: &clientB, Year: 2025, Month: 3, QuantitySold: 30},
			{ProductCode: "100", ClientID: &clientA, Year: 2025, Month: 4, QuantitySold: 20},
		}, nil)

	details, err := service.ProductDetails("100", 2025, now)

	assert.NoError(t, err)
	assert.Equal(t, "CASTANHA DE CAJU", details.ProductName)
	assert.Len(t, details.Series, 12)

	march := details.Series[2]
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, 100.0, march.Forecast)
	assert.Equal(t, 80.0, march.Actual)

	// Ranking por volume: CLIENTE A soma 70, CLIENTE B soma 30.
	assert.Len(t, details.TopClients, 2)
	assert.Equal(t, clientA, details.TopClients[0].Client)
	assert.Equal(t, 70.0, details.TopClients[0].Quantity)
	assert.Equal(t, clientB, details.TopClients[1].Client)
}

func TestService_SaveGrowthOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	clientA := "CLIENTE A"
	fc := domain.FilterContext{
		Clients: []string{clientA},
		Year:    intPtr(2025),
		Month:   intPtr(3),
	}

	m.growth.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(override *domain.GrowthOverride) error {
			assert.Equal(t, "100", override.ProductCode)
			assert.Equal(t, clientA, *override.ClientID)
			assert.Equal(t, 2025, *override.Year)
			assert.Equal(t, 3, *override.Month)
			assert.Equal(t, 18.0, override.GrowthPercent)
			return nil
		})

	assert.NoError(t, service.SaveGrowthOverride("100", fc, 18))
}

func TestService_DeleteGrowthOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	fc := domain.FilterContext{Year: intPtr(2025), Month: intPtr(3)}

	m.growth.EXPECT().
		DeleteByScope(gomock.Any()).
		DoAndReturn(func(scope domain.OverrideScope) error {
			assert.Equal(t, "100", scope.ProductCode)
			assert.Nil(t, scope.ClientID)
			return nil
		})

	assert.NoError(t, service.DeleteGrowthOverride("100", fc))
}

func TestService_SaveManualProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	t.Run("Exige mês e ano selecionados", func(t *testing.T) {
		err := service.SaveManualProduction("100", domain.FilterContext{}, 50)
		assert.Error(t, err)
	})

	t.Run("Quantidade positiva grava o override", func(t *testing.T) {
		fc := domain.FilterContext{Year: intPtr(2025), Month: intPtr(3)}

		m.manual.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(override *domain.ManualProductionOverride) error {
				assert.Equal(t, "100", override.ProductCode)
				assert.Equal(t, 2025, override.Year)
				assert.Equal(t, 3, override.Month)
				assert.Equal(t, 50.0, override.Quantity)
				return nil
			})

		assert.NoError(t, service.SaveManualProduction("100", fc, 50))
	})

	t.Run("Quantidade zero remove o override", func(t *testing.T) {
		fc := domain.FilterContext{Year: intPtr(2025), Month: intPtr(3)}

		m.manual.EXPECT().DeleteByScope(gomock.Any()).Return(nil)

		assert.NoError(t, service.SaveManualProduction("100", fc, 0))
	})
}

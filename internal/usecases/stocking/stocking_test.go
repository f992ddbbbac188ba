package stocking

import (
	"errors"
	"testing"

	"github.com/laviva-alimentos/previsao-api/infrastructure/repository/mocks"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRollupInventory(t *testing.T) {
	records := []*domain.InventoryRecord{
		{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Lot: "L1", QuantityAvailable: 30, QuantityTotal: 50},
		{ProductCode: "0100", ProductName: "CASTANHA DE CAJU", Lot: "L2", QuantityAvailable: 20, QuantityTotal: 25},
		{ProductCode: "200", ProductName: "AMENDOIM TORRADO 0,00 0,00", Lot: "L1", QuantityAvailable: 10, QuantityTotal: 10},
		nil,
	}

	rollup := RollupInventory(records)

	assert.Len(t, rollup, 2)

	// Códigos com e sem zeros à esquerda agregam no mesmo produto.
	castanha := rollup["100"]
	assert.NotNil(t, castanha)
	assert.Equal(t, 2, castanha.Lots)
	assert.Equal(t, 50.0, castanha.QuantityAvailable)
	assert.Equal(t, 75.0, castanha.QuantityTotal)

	// Nome vem limpo do lixo numérico de planilha.
	amendoim := rollup["200"]
	assert.NotNil(t, amendoim)
	assert.Equal(t, "AMENDOIM TORRADO", amendoim.ProductName)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(mockInventoryRepo)

	mockInventoryRepo.EXPECT().
		ListInventory(gomock.Nil()).
		Return([]*domain.InventoryRecord{
			{ProductCode: "200", ProductName: "NOZES SEM CASCA", Lot: "L1", QuantityAvailable: 5, QuantityTotal: 5},
			{ProductCode: "100", ProductName: "CASTANHA DE CAJU", Lot: "L1", QuantityAvailable: 30, QuantityTotal: 50},
			{ProductCode: "0100", ProductName: "CASTANHA DE CAJU", Lot: "L2", QuantityAvailable: 20, QuantityTotal: 25},
		}, nil)

	summaries, err := service.Summary(nil)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	// Ordenado por nome do produto.
	assert.Equal(t, "CASTANHA DE CAJU", summaries[0].ProductName)
	assert.Equal(t, 50.0, summaries[0].QuantityAvailable)
	assert.Equal(t, "NOZES SEM CASCA", summaries[1].ProductName)
}

func TestService_Summary_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(mockInventoryRepo)

	mockInventoryRepo.EXPECT().
		ListInventory(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	summaries, err := service.Summary(nil)

	assert.Error(t, err)
	assert.Nil(t, summaries)
}

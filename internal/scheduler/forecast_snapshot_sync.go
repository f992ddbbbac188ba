package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/laviva-alimentos/previsao-api/infrastructure/repository"
	"github.com/laviva-alimentos/previsao-api/internal/config"
	"github.com/laviva-alimentos/previsao-api/internal/domain"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ForecastSnapshotSyncConfig representa a configuração do agendador de
// rematerialização de previsões.
type ForecastSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ForecastSnapshotSyncService rederiva as previsões dos meses do horizonte
// operacional e as grava como previsões armazenadas, mantendo a tabela
// pré-computada fresca para consultas.
type ForecastSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSnapshotSyncConfig
	salesRepo           repository.SalesRepository
	forecastRepo        repository.ForecastRepository
	growthOverrideRepo  repository.GrowthOverrideRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewForecastSnapshotSyncService cria uma nova instância do serviço de
// rematerialização de previsões.
func NewForecastSnapshotSyncService(
	salesRepo repository.SalesRepository,
	forecastRepo repository.ForecastRepository,
	growthOverrideRepo repository.GrowthOverrideRepository,
	appConfig *config.Config,
) *ForecastSnapshotSyncService {
	syncConfig := ForecastSnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de rematerialização de previsões carregada")

	return &ForecastSnapshotSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		salesRepo:          salesRepo,
		forecastRepo:       forecastRepo,
		growthOverrideRepo: growthOverrideRepo,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *ForecastSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Rematerialização de previsões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de rematerialização de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncForecastSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rematerialização de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de rematerialização de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// syncForecastSnapshots rederiva e grava as previsões do horizonte
// operacional de todos os produtos com histórico.
func (s *ForecastSnapshotSyncService) syncForecastSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rematerialização de previsões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando rematerialização de previsões do horizonte operacional")

	now := time.Now()

	sales, err := s.salesRepo.ListSales(nil, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas para rematerialização de previsões")
		return
	}

	forecasts, err := s.forecastRepo.ListForecasts(nil, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar previsões armazenadas para rematerialização")
		return
	}

	overrides, err := s.growthOverrideRepo.ListOverrides(nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar overrides de crescimento para rematerialização")
		return
	}

	products := collectProducts(sales, forecasts)
	if len(products) == 0 {
		logrus.Info("Nenhum produto com histórico encontrado para rematerialização")
		return
	}

	year := now.Year()
	saved := 0

	for code, name := range products {
		monthly := make([]*domain.ForecastRecord, 0, 12)

		for month := 1; month <= 12; month++ {
			var quantity float64

			if utils.IsWithinOperationalHorizon(month, year, now) {
				growth := forecasting.ResolveGrowth(code, nil, month, year, overrides)
				resolution := forecasting.ResolveForecast(code, month, year, forecasts, sales, growth, now)
				quantity = resolution.Quantity
			} else {
				quantity = storedQuantity(code, month, year, forecasts)
			}

			if quantity <= 0 {
				continue
			}

			monthly = append(monthly, &domain.ForecastRecord{
				ProductCode:      code,
				ProductName:      name,
				Year:             year,
				Month:            month,
				QuantityForecast: quantity,
			})
		}

		if len(monthly) == 0 {
			continue
		}

		if err := s.forecastRepo.SaveSnapshot(code, name, nil, year, monthly); err != nil {
			logrus.WithError(err).WithField("codigo_produto", code).Error("Erro ao gravar snapshot de previsão")
			continue
		}
		saved++
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"products":    len(products),
		"saved":       saved,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Rematerialização de previsões concluída")
}

// TriggerManualSync inicia manualmente uma rematerialização de previsões
func (s *ForecastSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rematerialização de previsões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rematerialização manual de previsões")
	go s.syncForecastSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *ForecastSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
		"sync_running": s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}

func collectProducts(sales []*domain.SalesRecord, forecasts []*domain.ForecastRecord) map[string]string {
	products := make(map[string]string)

	for _, sale := range sales {
		if sale != nil && sale.ProductCode != "" {
			if _, ok := products[sale.ProductCode]; !ok {
				products[sale.ProductCode] = utils.CleanProductName(sale.ProductName)
			}
		}
	}
	for _, forecast := range forecasts {
		if forecast != nil && forecast.ProductCode != "" {
			if _, ok := products[forecast.ProductCode]; !ok {
				products[forecast.ProductCode] = utils.CleanProductName(forecast.ProductName)
			}
		}
	}

	return products
}

func storedQuantity(code string, month, year int, forecasts []*domain.ForecastRecord) float64 {
	var total float64
	for _, f := range forecasts {
		if f != nil && f.ProductCode == code && f.Month == month && f.Year == year {
			total += f.QuantityForecast
		}
	}
	return total
}

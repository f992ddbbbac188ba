package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/laviva-alimentos/previsao-api/infrastructure/database/postgres"
	"github.com/laviva-alimentos/previsao-api/infrastructure/repository"
	"github.com/laviva-alimentos/previsao-api/internal/api"
	"github.com/laviva-alimentos/previsao-api/internal/auth"
	"github.com/laviva-alimentos/previsao-api/internal/config"
	"github.com/laviva-alimentos/previsao-api/internal/scheduler"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/forecasting"
	"github.com/laviva-alimentos/previsao-api/internal/usecases/stocking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)
	growthOverrideRepo := repository.NewGrowthOverrideRepository(pgConn)
	manualProductionRepo := repository.NewManualProductionRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)

	authenticator := auth.NewService(cfg)

	forecastService := forecasting.NewService(
		cfg,
		salesRepo,
		forecastRepo,
		growthOverrideRepo,
		manualProductionRepo,
		inventoryRepo,
	)

	stockService := stocking.NewService(inventoryRepo)

	snapshotSyncService := scheduler.NewForecastSnapshotSyncService(
		salesRepo,
		forecastRepo,
		growthOverrideRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de rematerialização de previsões")
	} else {
		logrus.Info("Agendador de rematerialização de previsões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		forecastService,
		stockService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/ai"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/api"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/scheduler"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/executing"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/trending"
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

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	actionRepo := repository.NewProposedActionRepository(pgConn)
	actionLogRepo := repository.NewActionLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := gadsclient.NewTokenManager(cfg)
	gadsClient := gadsclient.NewClient(cfg, tokenManager)
	googleAdsIntegrator := googleads.New(cfg, gadsClient)

	aiProvider, err := ai.NewProvider(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o provedor de AI")
	}
	logrus.Infof("Provedor de AI configurado: %s (%s)", aiProvider.Name(), aiProvider.Model())

	trender := trending.NewService()
	alerter := alerting.NewService(alertRepo, cfg.Analysis.PerformanceTargets())
	recommender := recommending.NewService(
		snapshotRepo,
		alertRepo,
		actionRepo,
		trender,
		aiProvider,
		cfg,
	)
	executor := executing.NewService(actionRepo, actionLogRepo, googleAdsIntegrator)

	// O analisador não tem agendamento próprio: roda sob demanda ou
	// encadeado ao final de um ciclo de monitoramento que gerou alertas
	analyzerSyncService := scheduler.NewAnalyzerSyncService(recommender, cfg)

	monitorSyncService := scheduler.NewMonitorSyncService(
		snapshotRepo,
		googleAdsIntegrator,
		alerter,
		analyzerSyncService,
		cfg,
	)

	if err := monitorSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de monitoramento de campanhas")
	} else {
		logrus.Info("Agendador de monitoramento de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		snapshotRepo,
		trender,
		alerter,
		recommender,
		executor,
		authenticator,
		monitorSyncService,
		analyzerSyncService,
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

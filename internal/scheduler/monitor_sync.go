package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-optimizer-api/pkg/utils"
)

// MonitorSyncConfig representa a configuração do agendador de monitoramento
type MonitorSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
	AnalyzerAutoRun   bool
}

// MonitorSyncService executa o ciclo periódico de monitoramento: coleta as
// métricas de todas as campanhas, persiste os snapshots, avalia os alertas e,
// quando configurado, dispara a análise com AI para as campanhas alertadas
type MonitorSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonitorSyncConfig
	snapshotRepo        repository.MetricSnapshotRepository
	integrator          *googleads.GoogleAdsIntegrator
	alerter             alerting.Alerter
	analyzer            *AnalyzerSyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

// NewMonitorSyncService cria uma nova instância do serviço de monitoramento
func NewMonitorSyncService(
	snapshotRepo repository.MetricSnapshotRepository,
	integrator *googleads.GoogleAdsIntegrator,
	alerter alerting.Alerter,
	analyzer *AnalyzerSyncService,
	appConfig *config.Config,
) *MonitorSyncService {
	monitorConfig := MonitorSyncConfig{
		CronSchedule:      appConfig.MonitorSync.CronSchedule,
		LookbackDays:      appConfig.Analysis.LookbackDays,
		MaxConcurrentJobs: appConfig.MonitorSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonitorSync.Enabled,
		AnalyzerAutoRun:   appConfig.MonitorSync.AnalyzerAutoRun,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       monitorConfig.CronSchedule,
		"lookback_days":       monitorConfig.LookbackDays,
		"max_concurrent_jobs": monitorConfig.MaxConcurrentJobs,
		"sync_enabled":        monitorConfig.SyncEnabled,
		"analyzer_auto_run":   monitorConfig.AnalyzerAutoRun,
	}).Info("Configuração do agendador de monitoramento carregada")

	return &MonitorSyncService{
		scheduler:    scheduler,
		config:       monitorConfig,
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
		alerter:      alerter,
		analyzer:     analyzer,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *MonitorSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Monitoramento de campanhas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de monitoramento de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitoramento de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de monitoramento de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns executa um ciclo completo de monitoramento. Falhas por
// campanha não abortam o ciclo: entram no resumo da rodada como avisos.
func (s *MonitorSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de campanhas já em andamento, ignorando")
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

	runID, err := utils.GenerateID()
	if err != nil {
		runID = startTime.Format("20060102150405")
	}
	s.lastRunID = runID

	logrus.WithField("run_id", runID).Info("Iniciando ciclo de monitoramento de campanhas")

	snapshots, err := s.integrator.FetchSnapshots()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao buscar métricas das campanhas na API")
		return
	}

	if len(snapshots) == 0 {
		logrus.WithField("run_id", runID).Info("Nenhuma campanha encontrada para monitoramento")
		return
	}

	saved, alertsCreated, failures := s.processSnapshots(runID, snapshots)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":         runID,
		"duration":       duration.String(),
		"campaigns":      len(snapshots),
		"snapshots":      saved,
		"alerts_created": alertsCreated,
		"failures":       failures,
	}).Info("Ciclo de monitoramento de campanhas concluído")

	s.lastSyncCompletedAt = time.Now()

	if s.config.AnalyzerAutoRun && alertsCreated > 0 {
		logrus.WithFields(logrus.Fields{
			"run_id":         runID,
			"alerts_created": alertsCreated,
		}).Info("Disparando análise automática para campanhas alertadas")
		s.analyzer.TriggerWithAlerts()
	}
}

// processSnapshots persiste os snapshots e avalia os alertas de cada campanha
// com concorrência limitada pelo semáforo
func (s *MonitorSyncService) processSnapshots(runID string, snapshots []*domain.MetricSnapshot) (int, int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	saved, alertsCreated, failures := 0, 0, 0

	for _, snapshot := range snapshots {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(snap *domain.MetricSnapshot) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			created, err := s.processCampaign(runID, snap)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return
			}
			saved++
			alertsCreated += created
		}(snapshot)
	}

	wg.Wait()

	return saved, alertsCreated, failures
}

func (s *MonitorSyncService) processCampaign(runID string, snapshot *domain.MetricSnapshot) (int, error) {
	if err := s.snapshotRepo.Save(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id":      runID,
			"campaign_id": snapshot.CampaignID,
			"error":       err.Error(),
		}).Error("Erro ao salvar snapshot da campanha")
		return 0, err
	}

	now := time.Now()
	window, err := s.snapshotRepo.GetByDateRange(snapshot.CampaignID, now.AddDate(0, 0, -s.config.LookbackDays), now)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id":      runID,
			"campaign_id": snapshot.CampaignID,
			"error":       err.Error(),
		}).Error("Erro ao buscar janela de snapshots da campanha")
		return 0, err
	}

	created, err := s.alerter.EvaluateAndStore(snapshot, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id":      runID,
			"campaign_id": snapshot.CampaignID,
			"error":       err.Error(),
		}).Error("Erro ao avaliar alertas da campanha")
		return 0, err
	}

	return created, nil
}

// TriggerManualSync inicia manualmente um ciclo de monitoramento
func (s *MonitorSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monitoramento de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de monitoramento de campanhas")
	go s.syncAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *MonitorSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"analyzer_auto_run":      s.config.AnalyzerAutoRun,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

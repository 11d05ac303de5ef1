package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-optimizer-api/pkg/utils"
)

// AnalyzerSyncService executa rodadas de análise com AI sobre as campanhas.
// Não tem cron próprio: roda sob demanda, disparado pelo monitoramento quando
// novos alertas são criados ou manualmente pela API.
type AnalyzerSyncService struct {
	recommender        recommending.Recommender
	timeoutSeconds     int
	analysisRunning    bool
	analysisMutex      sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunID          string
	lastReport         *recommending.AnalysisReport
}

// NewAnalyzerSyncService cria uma nova instância do serviço de análise
func NewAnalyzerSyncService(recommender recommending.Recommender, appConfig *config.Config) *AnalyzerSyncService {
	return &AnalyzerSyncService{
		recommender:    recommender,
		timeoutSeconds: appConfig.AI.TimeoutSeconds,
	}
}

// TriggerManualSync inicia manualmente uma rodada de análise sobre todas as
// campanhas
func (s *AnalyzerSyncService) TriggerManualSync() {
	s.trigger(false)
}

// TriggerWithAlerts inicia uma rodada restrita às campanhas com alerta aberto
func (s *AnalyzerSyncService) TriggerWithAlerts() {
	s.trigger(true)
}

func (s *AnalyzerSyncService) trigger(onlyAlerted bool) {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise de campanhas já em andamento, ignorando solicitação")
		return
	}
	s.analysisMutex.Unlock()

	go s.runAnalysis(onlyAlerted)
}

func (s *AnalyzerSyncService) runAnalysis(onlyAlerted bool) {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		return
	}
	s.analysisRunning = true
	s.analysisMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.analysisMutex.Lock()
		s.analysisRunning = false
		s.analysisMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = startTime.Format("20060102150405")
	}
	s.lastRunID = runID

	logrus.WithFields(logrus.Fields{
		"run_id":       runID,
		"only_alerted": onlyAlerted,
	}).Info("Iniciando rodada de análise de campanhas com AI")

	// Timeout global da rodada proporcional ao timeout por chamada do provider
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.timeoutSeconds)*10*time.Second)
	defer cancel()

	var report *recommending.AnalysisReport
	if onlyAlerted {
		report, err = s.recommender.AnalyzeAllWithAlerts(ctx)
	} else {
		report, err = s.recommender.AnalyzeAll(ctx)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro na rodada de análise de campanhas")
		return
	}

	s.lastReport = report
	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":             runID,
		"duration":           time.Since(startTime).String(),
		"campaigns_analyzed": report.CampaignsAnalyzed,
		"campaigns_skipped":  report.CampaignsSkipped,
		"proposals_created":  report.ProposalsCreated,
		"failures":           len(report.Failures),
	}).Info("Rodada de análise de campanhas concluída")
}

// GetStatus retorna o status atual do serviço de análise
func (s *AnalyzerSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"analysis_running":      s.analysisRunning,
		"last_run_id":           s.lastRunID,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}

	if s.lastReport != nil {
		status["last_campaigns_analyzed"] = s.lastReport.CampaignsAnalyzed
		status["last_proposals_created"] = s.lastReport.ProposalsCreated
		status["last_failures"] = len(s.lastReport.Failures)
	}

	return status
}

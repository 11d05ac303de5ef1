package recommending

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/ai"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/trending"
)

// ErrCampaignNotFound indica que não existe snapshot para a campanha pedida
var ErrCampaignNotFound = errors.New("campanha sem snapshots registrados")

// Recommender gera propostas de otimização via AI a partir do histórico de
// métricas, alertas e metas de cada campanha
type Recommender interface {
	Analyze(ctx context.Context, campaignID int64) ([]*domain.ProposedAction, error)
	AnalyzeAll(ctx context.Context) (*AnalysisReport, error)
	AnalyzeAllWithAlerts(ctx context.Context) (*AnalysisReport, error)
}

// AnalysisReport resume uma rodada de análise sobre todas as campanhas
type AnalysisReport struct {
	CampaignsAnalyzed int      `json:"campaigns_analyzed"`
	CampaignsSkipped  int      `json:"campaigns_skipped"`
	ProposalsCreated  int      `json:"proposals_created"`
	Failures          []string `json:"failures,omitempty"`
}

type Service struct {
	snapshotRepo repository.MetricSnapshotRepository
	alertRepo    repository.AlertRepository
	actionRepo   repository.ProposedActionRepository
	trender      trending.Trender
	provider     ai.Provider
	cfg          *config.Config
}

func NewService(
	snapshotRepo repository.MetricSnapshotRepository,
	alertRepo repository.AlertRepository,
	actionRepo repository.ProposedActionRepository,
	trender trending.Trender,
	provider ai.Provider,
	cfg *config.Config,
) Recommender {
	return &Service{
		snapshotRepo: snapshotRepo,
		alertRepo:    alertRepo,
		actionRepo:   actionRepo,
		trender:      trender,
		provider:     provider,
		cfg:          cfg,
	}
}

// Analyze roda o pipeline de análise de uma campanha: monta o contexto
// (snapshot mais recente, tendência da janela, alertas abertos), consulta o
// provider de AI e persiste as propostas válidas como PENDING.
//
// Respostas malformadas são tentadas de novo até o limite configurado;
// indisponibilidade do provider não é retentada aqui e sobe para o chamador.
func (s *Service) Analyze(ctx context.Context, campaignID int64) ([]*domain.ProposedAction, error) {
	snapshot, err := s.snapshotRepo.GetLatestByCampaign(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot da campanha %d: %w", campaignID, err)
	}
	if snapshot == nil {
		return nil, errors.Wrapf(ErrCampaignNotFound, "campanha %d", campaignID)
	}

	if snapshot.Status == domain.CampaignStatusPaused {
		logrus.Infof("analyzer: skipping paused campaign %d", campaignID)
		return []*domain.ProposedAction{}, nil
	}

	now := time.Now()
	window, err := s.snapshotRepo.GetByDateRange(campaignID, now.AddDate(0, 0, -s.cfg.Analysis.LookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar janela de snapshots da campanha %d: %w", campaignID, err)
	}

	trend := s.trender.Aggregate(campaignID, window, s.cfg.Analysis.LookbackDays)

	alerts, err := s.alertRepo.ListByCampaign(campaignID, false)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar alertas da campanha %d: %w", campaignID, err)
	}

	prompt := BuildPrompt(snapshot, trend, alerts, s.cfg.Analysis.PerformanceTargets(), s.cfg.Analysis.MaxProposals, now)

	proposals, err := s.generateProposals(ctx, prompt, snapshot)
	if err != nil {
		return nil, err
	}

	for _, proposal := range proposals {
		proposal.AISummary = summarize(trend, alerts)
	}

	return s.persistProposals(proposals)
}

// generateProposals consulta o provider e interpreta a resposta. Só respostas
// malformadas são retentadas; erros de transporte ou quota sobem direto.
func (s *Service) generateProposals(ctx context.Context, prompt string, snapshot *domain.MetricSnapshot) ([]*domain.ProposedAction, error) {
	attempts := s.cfg.AI.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := s.provider.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar provider %s: %w", s.provider.Name(), err)
		}

		proposals, err := parseProposals(raw, snapshot, s.provider.Model(), s.cfg.Analysis.MaxProposals)
		if err == nil {
			return proposals, nil
		}

		if !errors.Is(err, ErrMalformedResponse) {
			return nil, err
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"campaign_id": snapshot.CampaignID,
			"attempt":     attempt,
			"provider":    s.provider.Name(),
		}).Warnf("analyzer: malformed AI response: %v", err)
	}

	return nil, fmt.Errorf("resposta inválida após %d tentativas: %w", attempts, lastErr)
}

// persistProposals grava as propostas como PENDING, pulando tipos de ação que
// já têm proposta pendente para a mesma campanha
func (s *Service) persistProposals(proposals []*domain.ProposedAction) ([]*domain.ProposedAction, error) {
	if len(proposals) == 0 {
		return proposals, nil
	}

	pending, err := s.actionRepo.ListPendingByCampaign(proposals[0].CampaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ações pendentes: %w", err)
	}

	pendingTypes := make(map[domain.ActionType]bool, len(pending))
	for _, action := range pending {
		pendingTypes[action.ActionType] = true
	}

	persisted := make([]*domain.ProposedAction, 0, len(proposals))
	for _, proposal := range proposals {
		if pendingTypes[proposal.ActionType] {
			logrus.WithFields(logrus.Fields{
				"campaign_id": proposal.CampaignID,
				"action_type": proposal.ActionType,
			}).Info("analyzer: proposal already pending, skipping")
			continue
		}

		id, err := s.actionRepo.Create(proposal)
		if err != nil {
			return persisted, fmt.Errorf("erro ao salvar proposta %s: %w", proposal.ActionType, err)
		}

		proposal.ID = id
		pendingTypes[proposal.ActionType] = true
		persisted = append(persisted, proposal)
	}

	return persisted, nil
}

// AnalyzeAll roda a análise sobre todas as campanhas com snapshot, com
// isolamento de falha por campanha
func (s *Service) AnalyzeAll(ctx context.Context) (*AnalysisReport, error) {
	latest, err := s.snapshotRepo.GetLatestAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}

	report := &AnalysisReport{}

	for _, snapshot := range latest {
		if snapshot.Status == domain.CampaignStatusPaused {
			report.CampaignsSkipped++
			continue
		}

		proposals, err := s.Analyze(ctx, snapshot.CampaignID)
		if err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("campanha %d: %v", snapshot.CampaignID, err))
			logrus.Errorf("analyzer: campaign %d analysis failed: %v", snapshot.CampaignID, err)
			continue
		}

		report.CampaignsAnalyzed++
		report.ProposalsCreated += len(proposals)
	}

	return report, nil
}

// AnalyzeAllWithAlerts restringe a rodada às campanhas que têm alerta aberto,
// que é o modo usado pelo scheduler quando o monitor dispara a análise
func (s *Service) AnalyzeAllWithAlerts(ctx context.Context) (*AnalysisReport, error) {
	open, err := s.alertRepo.ListUnresolved()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas abertos: %w", err)
	}

	report := &AnalysisReport{}

	seen := make(map[int64]bool)
	for _, alert := range open {
		if seen[alert.CampaignID] {
			continue
		}
		seen[alert.CampaignID] = true

		proposals, err := s.Analyze(ctx, alert.CampaignID)
		if err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("campanha %d: %v", alert.CampaignID, err))
			logrus.Errorf("analyzer: campaign %d analysis failed: %v", alert.CampaignID, err)
			continue
		}

		report.CampaignsAnalyzed++
		report.ProposalsCreated += len(proposals)
	}

	return report, nil
}

func summarize(trend *domain.TrendSummary, alerts []*domain.Alert) string {
	base := fmt.Sprintf("Tendência %s na janela de %d dias, ROAS médio %.2f",
		trend.Direction, trend.WindowDays, trend.ROAS.Average)
	if len(alerts) == 0 {
		return base
	}
	return fmt.Sprintf("%s, %d alerta(s) aberto(s)", base, len(alerts))
}

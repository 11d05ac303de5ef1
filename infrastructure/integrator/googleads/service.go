package googleads

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// micros é a convenção monetária do Google Ads: 1 unidade de moeda equivale a
// 1.000.000 de micros
const micros = 1_000_000.0

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client
}

func New(cfg *config.Config, client gadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchSnapshots consulta as métricas atuais de todas as campanhas da conta e
// as converte para snapshots do domínio
func (s *GoogleAdsIntegrator) FetchSnapshots() ([]*domain.MetricSnapshot, error) {
	results, err := s.Client.SearchCampaignMetrics()
	if err != nil {
		logrus.WithError(err).Error("monitor: failed to search campaign metrics from API")
		return nil, err
	}

	now := time.Now()

	snapshots := make([]*domain.MetricSnapshot, 0, len(results))
	for _, result := range results {
		snapshot, err := FactoryMetricSnapshot(result, now)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": result.Campaign.ID,
				"error":       err.Error(),
			}).Warn("monitor: error converting campaign metrics")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	logrus.WithField("total_campaigns", len(snapshots)).Info("monitor: successfully retrieved campaign snapshots")

	return snapshots, nil
}

// ApplyAction executa a mutação correspondente ao tipo da ação na plataforma.
// O alvo já foi validado pelo domínio; aqui apenas despachamos para o endpoint
// correto.
func (s *GoogleAdsIntegrator) ApplyAction(action *domain.ProposedAction) (*domain.ExecutionResult, error) {
	switch action.ActionType {
	case domain.ActionIncreaseBudget, domain.ActionDecreaseBudget:
		return s.applyBudgetChange(action)

	case domain.ActionIncreaseBid, domain.ActionReduceBid:
		return s.applyBidChange(action)

	case domain.ActionPauseKeyword:
		result, err := s.Client.PauseAdGroupCriterion(derefStr(action.Target.AdGroupID), derefStr(action.Target.KeywordID))
		return mutateOutcome(result, "PAUSED", err)

	case domain.ActionPauseAd:
		result, err := s.Client.PauseAd(derefStr(action.Target.AdGroupID), derefStr(action.Target.AdID))
		return mutateOutcome(result, "PAUSED", err)

	case domain.ActionAddNegativeKeyword:
		result, err := s.Client.AddCampaignNegativeKeyword(
			action.CampaignID,
			derefStr(action.Target.KeywordText),
			derefStr(action.Target.MatchType),
		)
		return mutateOutcome(result, derefStr(action.Target.KeywordText), err)

	default:
		return nil, fmt.Errorf("tipo de ação não executável: %s", action.ActionType)
	}
}

func (s *GoogleAdsIntegrator) applyBudgetChange(action *domain.ProposedAction) (*domain.ExecutionResult, error) {
	budget, err := s.Client.GetCampaignBudgetResource(action.CampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": action.CampaignID,
			"error":       err.Error(),
		}).Error("executor: failed to resolve campaign budget resource")
		return nil, err
	}

	newBudget := *action.Target.NewBudgetMicros

	result, err := s.Client.UpdateCampaignBudget(budget.ResourceName, newBudget)
	return mutateOutcome(result, fmt.Sprintf("%.2f", float64(newBudget)/micros), err)
}

func (s *GoogleAdsIntegrator) applyBidChange(action *domain.ProposedAction) (*domain.ExecutionResult, error) {
	newBid := *action.Target.NewBidMicros

	result, err := s.Client.UpdateAdGroupCriterionBid(
		derefStr(action.Target.AdGroupID),
		derefStr(action.Target.KeywordID),
		newBid,
	)
	return mutateOutcome(result, fmt.Sprintf("%.2f", float64(newBid)/micros), err)
}

// FactoryMetricSnapshot converte um resultado da API em um snapshot do
// domínio, aplicando a conversão de micros e recalculando as métricas
// derivadas
func FactoryMetricSnapshot(result gadsdomain.SearchResult, timestamp time.Time) (*domain.MetricSnapshot, error) {
	campaignID, err := strconv.ParseInt(result.Campaign.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter campaign id: %w", err)
	}

	costMicros := parseMicrosString(result.Metrics.CostMicros, "cost_micros")
	clicks := parseIntString(result.Metrics.Clicks, "clicks")
	impressions := parseIntString(result.Metrics.Impressions, "impressions")

	snapshot := &domain.MetricSnapshot{
		CampaignID:      campaignID,
		CampaignName:    result.Campaign.Name,
		Timestamp:       timestamp,
		Status:          domain.CampaignStatus(result.Campaign.Status),
		BidStrategyType: result.Campaign.BiddingStrategyType,
		CampaignType:    result.Campaign.AdvertisingChannelType,
		Cost:            float64(costMicros) / micros,
		AvgCost:         result.Metrics.AverageCost / micros,
		CostPerConv:     result.Metrics.CostPerConversion / micros,
		Conversions:     result.Metrics.Conversions,
		ConvValue:       result.Metrics.ConversionsValue,
		Clicks:          clicks,
		CTR:             result.Metrics.CTR * 100,
		AvgCPM:          result.Metrics.AverageCPM / micros,
		Impressions:     impressions,
	}

	if result.Campaign.OptimizationScore > 0 {
		score := result.Campaign.OptimizationScore * 100
		snapshot.OptimizationScore = &score
	}

	if result.CampaignBudget.AmountMicros != "" {
		budgetMicros := parseMicrosString(result.CampaignBudget.AmountMicros, "budget_micros")
		budget := float64(budgetMicros) / micros
		snapshot.Budget = &budget
	}

	snapshot.ComputeDerivedMetrics()

	return snapshot, nil
}

func parseMicrosString(value, field string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("monitor: error converting micros value to integer")
		return 0
	}

	return parsed
}

func parseIntString(value, field string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("monitor: error converting value to integer")
		return 0
	}

	return parsed
}

func mutateOutcome(result *gadsdomain.MutateResult, newValue string, err error) (*domain.ExecutionResult, error) {
	if err != nil {
		return nil, err
	}

	return &domain.ExecutionResult{
		Status:       "SUCCESS",
		ResourceName: result.ResourceName,
		NewValue:     newValue,
	}, nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

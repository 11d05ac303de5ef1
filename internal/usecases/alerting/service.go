package alerting

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// Alerter avalia snapshots contra as metas de performance e mantém o ciclo de
// vida dos alertas
type Alerter interface {
	Evaluate(snapshot *domain.MetricSnapshot, window []*domain.MetricSnapshot) []*domain.Alert
	EvaluateAndStore(snapshot *domain.MetricSnapshot, window []*domain.MetricSnapshot) (int, error)
	ListOpen() ([]*domain.Alert, error)
	ListByCampaign(campaignID int64, includeResolved bool) ([]*domain.Alert, error)
	Resolve(id int64) (bool, error)
	CountOpenBySeverity() (map[domain.AlertSeverity]int, error)
}

type Service struct {
	alertRepo repository.AlertRepository
	targets   domain.PerformanceTargets
}

func NewService(alertRepo repository.AlertRepository, targets domain.PerformanceTargets) Alerter {
	return &Service{
		alertRepo: alertRepo,
		targets:   targets,
	}
}

// Evaluate aplica as regras de detecção sobre o snapshot mais recente.
// Campanhas pausadas não geram alertas. O resultado vem ordenado por
// severidade (CRITICAL primeiro).
//
// Para LOW_ROAS existe no máximo um alerta: abaixo do piso crítico o alerta
// CRITICAL substitui o MEDIUM de meta não atingida.
func (s *Service) Evaluate(snapshot *domain.MetricSnapshot, window []*domain.MetricSnapshot) []*domain.Alert {
	alerts := make([]*domain.Alert, 0)

	if snapshot == nil || snapshot.Status == domain.CampaignStatusPaused {
		return alerts
	}

	if alert := s.evaluateROAS(snapshot); alert != nil {
		alerts = append(alerts, alert)
	}
	if alert := s.evaluateCPC(snapshot); alert != nil {
		alerts = append(alerts, alert)
	}
	if alert := s.evaluateCTR(snapshot); alert != nil {
		alerts = append(alerts, alert)
	}
	if alert := s.evaluateOptimizationScore(snapshot); alert != nil {
		alerts = append(alerts, alert)
	}
	if alert := s.evaluateBudget(snapshot); alert != nil {
		alerts = append(alerts, alert)
	}
	if alert := s.evaluateZeroConversions(snapshot, window); alert != nil {
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity.Rank() != alerts[j].Severity.Rank() {
			return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
		}
		return alerts[i].AlertType < alerts[j].AlertType
	})

	return alerts
}

// EvaluateAndStore avalia e persiste os alertas, respeitando a deduplicação
// do repositório. Retorna quantos alertas novos foram criados.
func (s *Service) EvaluateAndStore(snapshot *domain.MetricSnapshot, window []*domain.MetricSnapshot) (int, error) {
	alerts := s.Evaluate(snapshot, window)

	created := 0
	for _, alert := range alerts {
		inserted, err := s.alertRepo.Save(alert)
		if err != nil {
			return created, fmt.Errorf("erro ao salvar alerta %s da campanha %d: %w", alert.AlertType, alert.CampaignID, err)
		}
		if inserted {
			created++
			logrus.WithFields(logrus.Fields{
				"campaign_id": alert.CampaignID,
				"alert_type":  alert.AlertType,
				"severity":    alert.Severity,
			}).Info("alerts: new alert created")
		}
	}

	return created, nil
}

func (s *Service) ListOpen() ([]*domain.Alert, error) {
	return s.alertRepo.ListUnresolved()
}

func (s *Service) ListByCampaign(campaignID int64, includeResolved bool) ([]*domain.Alert, error) {
	return s.alertRepo.ListByCampaign(campaignID, includeResolved)
}

func (s *Service) Resolve(id int64) (bool, error) {
	return s.alertRepo.Resolve(id)
}

func (s *Service) CountOpenBySeverity() (map[domain.AlertSeverity]int, error) {
	return s.alertRepo.CountUnresolvedBySeverity()
}

func (s *Service) evaluateROAS(snapshot *domain.MetricSnapshot) *domain.Alert {
	// Sem conversões não há ROAS significativo; o caso é coberto pela regra
	// de ZERO_CONVERSIONS
	if snapshot.Conversions == 0 {
		return nil
	}

	if snapshot.ROAS < s.targets.ROASCriticalFloor {
		return &domain.Alert{
			CampaignID: snapshot.CampaignID,
			AlertType:  domain.AlertLowROAS,
			Severity:   domain.SeverityCritical,
			Message: fmt.Sprintf("Campanha '%s' com ROAS %.2f abaixo do piso crítico %.2f: gastando mais do que retorna",
				snapshot.CampaignName, snapshot.ROAS, s.targets.ROASCriticalFloor),
			Details: domain.AlertDetails{
				CampaignName: snapshot.CampaignName,
				Metric:       "roas",
				CurrentValue: snapshot.ROAS,
				TargetValue:  s.targets.ROASCriticalFloor,
				Conversions:  &snapshot.Conversions,
				Cost:         &snapshot.Cost,
			},
		}
	}

	if snapshot.ROAS < s.targets.ROASMin {
		return &domain.Alert{
			CampaignID: snapshot.CampaignID,
			AlertType:  domain.AlertLowROAS,
			Severity:   domain.SeverityMedium,
			Message: fmt.Sprintf("Campanha '%s' com ROAS %.2f abaixo da meta %.2f",
				snapshot.CampaignName, snapshot.ROAS, s.targets.ROASMin),
			Details: domain.AlertDetails{
				CampaignName: snapshot.CampaignName,
				Metric:       "roas",
				CurrentValue: snapshot.ROAS,
				TargetValue:  s.targets.ROASMin,
				Conversions:  &snapshot.Conversions,
				Cost:         &snapshot.Cost,
			},
		}
	}

	return nil
}

func (s *Service) evaluateCPC(snapshot *domain.MetricSnapshot) *domain.Alert {
	if snapshot.Clicks == 0 || snapshot.CPC <= s.targets.CPCMax {
		return nil
	}

	return &domain.Alert{
		CampaignID: snapshot.CampaignID,
		AlertType:  domain.AlertHighCPC,
		Severity:   domain.SeverityMedium,
		Message: fmt.Sprintf("Campanha '%s' com CPC R$%.2f acima do limite R$%.2f",
			snapshot.CampaignName, snapshot.CPC, s.targets.CPCMax),
		Details: domain.AlertDetails{
			CampaignName: snapshot.CampaignName,
			Metric:       "cpc",
			CurrentValue: snapshot.CPC,
			TargetValue:  s.targets.CPCMax,
			Clicks:       &snapshot.Clicks,
			Cost:         &snapshot.Cost,
		},
	}
}

func (s *Service) evaluateCTR(snapshot *domain.MetricSnapshot) *domain.Alert {
	if snapshot.Impressions == 0 || snapshot.CTR >= s.targets.CTRMin {
		return nil
	}

	return &domain.Alert{
		CampaignID: snapshot.CampaignID,
		AlertType:  domain.AlertLowCTR,
		Severity:   domain.SeverityMedium,
		Message: fmt.Sprintf("Campanha '%s' com CTR %.2f%% abaixo da meta %.2f%%",
			snapshot.CampaignName, snapshot.CTR, s.targets.CTRMin),
		Details: domain.AlertDetails{
			CampaignName: snapshot.CampaignName,
			Metric:       "ctr",
			CurrentValue: snapshot.CTR,
			TargetValue:  s.targets.CTRMin,
		},
	}
}

func (s *Service) evaluateOptimizationScore(snapshot *domain.MetricSnapshot) *domain.Alert {
	if snapshot.OptimizationScore == nil {
		return nil
	}

	score := *snapshot.OptimizationScore

	if score < s.targets.OptimizationScoreCrit {
		return &domain.Alert{
			CampaignID: snapshot.CampaignID,
			AlertType:  domain.AlertLowOptimizationScore,
			Severity:   domain.SeverityCritical,
			Message: fmt.Sprintf("Campanha '%s' com optimization score %.0f muito abaixo do aceitável (%.0f)",
				snapshot.CampaignName, score, s.targets.OptimizationScoreCrit),
			Details: domain.AlertDetails{
				CampaignName: snapshot.CampaignName,
				Metric:       "optimization_score",
				CurrentValue: score,
				TargetValue:  s.targets.OptimizationScoreCrit,
			},
		}
	}

	if score < s.targets.OptimizationScoreMin {
		return &domain.Alert{
			CampaignID: snapshot.CampaignID,
			AlertType:  domain.AlertLowOptimizationScore,
			Severity:   domain.SeverityMedium,
			Message: fmt.Sprintf("Campanha '%s' com optimization score %.0f abaixo da meta %.0f",
				snapshot.CampaignName, score, s.targets.OptimizationScoreMin),
			Details: domain.AlertDetails{
				CampaignName: snapshot.CampaignName,
				Metric:       "optimization_score",
				CurrentValue: score,
				TargetValue:  s.targets.OptimizationScoreMin,
			},
		}
	}

	return nil
}

func (s *Service) evaluateBudget(snapshot *domain.MetricSnapshot) *domain.Alert {
	if snapshot.Budget == nil || *snapshot.Budget == 0 {
		return nil
	}

	used := snapshot.Cost / *snapshot.Budget
	if used < s.targets.BudgetUsedFraction {
		return nil
	}

	percentage := used * 100

	return &domain.Alert{
		CampaignID: snapshot.CampaignID,
		AlertType:  domain.AlertBudgetExhausted,
		Severity:   domain.SeverityHigh,
		Message: fmt.Sprintf("Campanha '%s' consumiu %.0f%% do budget diário",
			snapshot.CampaignName, percentage),
		Details: domain.AlertDetails{
			CampaignName:   snapshot.CampaignName,
			Metric:         "budget_used",
			CurrentValue:   snapshot.Cost,
			TargetValue:    *snapshot.Budget * s.targets.BudgetUsedFraction,
			Budget:         snapshot.Budget,
			PercentageUsed: &percentage,
		},
	}
}

// evaluateZeroConversions considera a janela completa: uma campanha que
// recebeu cliques ao longo da janela sem converter nenhuma vez está queimando
// verba. Janela sem cliques é falta de tráfego, não problema de conversão
func (s *Service) evaluateZeroConversions(snapshot *domain.MetricSnapshot, window []*domain.MetricSnapshot) *domain.Alert {
	if len(window) == 0 {
		return nil
	}

	var totalCost, totalConversions float64
	var totalClicks int64
	for _, w := range window {
		totalCost += w.Cost
		totalConversions += w.Conversions
		totalClicks += w.Clicks
	}

	if totalConversions > 0 || totalClicks == 0 {
		return nil
	}

	windowDays := len(window)

	return &domain.Alert{
		CampaignID: snapshot.CampaignID,
		AlertType:  domain.AlertZeroConversions,
		Severity:   domain.SeverityHigh,
		Message: fmt.Sprintf("Campanha '%s' recebeu %d cliques (R$%.2f) na janela sem nenhuma conversão",
			snapshot.CampaignName, totalClicks, totalCost),
		Details: domain.AlertDetails{
			CampaignName: snapshot.CampaignName,
			Metric:       "conversions",
			CurrentValue: 0,
			TargetValue:  1,
			Clicks:       &totalClicks,
			Cost:         &totalCost,
			WindowDays:   &windowDays,
		},
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/executing"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-optimizer-api/pkg/log"
	"github.com/vfg2006/campaign-optimizer-api/pkg/utils"
)

// DashboardStats é a visão consolidada do painel: distribuição de saúde das
// campanhas, alertas abertos, ações por status e o comparativo do período
// atual contra o anterior
type DashboardStats struct {
	Campaigns      CampaignStats                `json:"campaigns"`
	Alerts         map[domain.AlertSeverity]int `json:"alerts_by_severity"`
	Actions        map[domain.ActionStatus]int  `json:"actions_by_status"`
	CurrentPeriod  PeriodStats                  `json:"current_period"`
	PreviousPeriod PeriodStats                  `json:"previous_period"`
}

type CampaignStats struct {
	Total    int                           `json:"total"`
	ByStatus map[domain.CampaignStatus]int `json:"by_status"`
	ByHealth map[domain.HealthStatus]int   `json:"by_health"`
}

type PeriodStats struct {
	Days        int     `json:"days"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	ConvValue   float64 `json:"conv_value"`
	ROAS        float64 `json:"roas"`
}

// GetDashboardStats monta o resumo do painel (?days=N, default 7)
func GetDashboardStats(
	snapshotRepo repository.MetricSnapshotRepository,
	alerter alerting.Alerter,
	executor executing.Executor,
	cfg *config.Config,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		days := 7
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
				return
			}
			days = parsed
		}

		snapshots, err := snapshotRepo.GetLatestAll()
		if err != nil {
			logger.WithError(err).Error("stats: failed to list latest snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas", nil)
			return
		}

		alertCounts, err := alerter.CountOpenBySeverity()
		if err != nil {
			logger.WithError(err).Error("stats: failed to count open alerts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas", nil)
			return
		}

		actionCounts, err := executor.CountByStatus()
		if err != nil {
			logger.WithError(err).Error("stats: failed to count actions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas", nil)
			return
		}

		now := time.Now()
		current, err := snapshotRepo.AggregateBetween(now.AddDate(0, 0, -days), now)
		if err != nil {
			logger.WithError(err).Error("stats: failed to aggregate current period")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas", nil)
			return
		}

		previous, err := snapshotRepo.AggregateBetween(now.AddDate(0, 0, -2*days), now.AddDate(0, 0, -days))
		if err != nil {
			logger.WithError(err).Error("stats: failed to aggregate previous period")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas", nil)
			return
		}

		stats := DashboardStats{
			Campaigns:      campaignStats(snapshots, cfg.Analysis.PerformanceTargets()),
			Alerts:         alertCounts,
			Actions:        actionCounts,
			CurrentPeriod:  periodStats(days, current),
			PreviousPeriod: periodStats(days, previous),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("stats: failed to encode response")
		}
	})
}

func campaignStats(snapshots []*domain.MetricSnapshot, targets domain.PerformanceTargets) CampaignStats {
	stats := CampaignStats{
		Total:    len(snapshots),
		ByStatus: make(map[domain.CampaignStatus]int),
		ByHealth: make(map[domain.HealthStatus]int),
	}

	for _, snapshot := range snapshots {
		stats.ByStatus[snapshot.Status]++
		stats.ByHealth[snapshot.CalculateHealth(targets)]++
	}

	return stats
}

func periodStats(days int, totals *domain.MetricTotals) PeriodStats {
	return PeriodStats{
		Days:        days,
		Cost:        utils.RoundWithTwoDecimalPlace(totals.Cost),
		Conversions: totals.Conversions,
		ConvValue:   utils.RoundWithTwoDecimalPlace(totals.ConvValue),
		ROAS:        utils.RoundWithTwoDecimalPlace(totals.ROAS()),
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/trending"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-optimizer-api/pkg/log"
)

// CampaignSummary é o snapshot mais recente de uma campanha anotado com a
// classificação de saúde
type CampaignSummary struct {
	*domain.MetricSnapshot
	Health domain.HealthStatus `json:"health"`
}

// ListCampaigns retorna o snapshot mais recente de cada campanha monitorada,
// com filtro opcional por status (?status=ENABLED)
func ListCampaigns(snapshotRepo repository.MetricSnapshotRepository, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshots, err := snapshotRepo.GetLatestAll()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list latest snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		statusFilter := r.URL.Query().Get("status")
		targets := cfg.Analysis.PerformanceTargets()

		summaries := make([]CampaignSummary, 0, len(snapshots))
		for _, snapshot := range snapshots {
			if statusFilter != "" && string(snapshot.Status) != statusFilter {
				continue
			}
			summaries = append(summaries, CampaignSummary{
				MetricSnapshot: snapshot,
				Health:         snapshot.CalculateHealth(targets),
			})
		}

		logger.WithField("total_campaigns", len(summaries)).Info("campaigns: listed latest snapshots")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignMetrics retorna o histórico de snapshots de uma campanha em um
// intervalo (?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD, default janela de
// análise configurada)
func GetCampaignMetrics(snapshotRepo repository.MetricSnapshotRepository, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		startDate, endDate, err := dateRangeFromQuery(r, cfg.Analysis.LookbackDays)
		if err != nil {
			logger.WithError(err).Warn("campaigns: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		snapshots, err := snapshotRepo.GetByDateRange(campaignID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to get metrics history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignTrend calcula o resumo de tendência de uma campanha sob demanda
// (?days=N, default janela de análise configurada)
func GetCampaignTrend(snapshotRepo repository.MetricSnapshotRepository, trender trending.Trender, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		windowDays := cfg.Analysis.LookbackDays
		if daysParam := r.URL.Query().Get("days"); daysParam != "" {
			parsed, err := strconv.Atoi(daysParam)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
				return
			}
			windowDays = parsed
		}

		now := time.Now()
		snapshots, err := snapshotRepo.GetByDateRange(campaignID, now.AddDate(0, 0, -windowDays), now)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: failed to get snapshots for trend")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshots da campanha", nil)
			return
		}

		if len(snapshots) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha sem snapshots no período", nil)
			return
		}

		trend := trender.Aggregate(campaignID, snapshots, windowDays)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode trend response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// AnalyzeCampaign dispara manualmente a análise com AI de uma campanha e
// retorna as propostas criadas
func AnalyzeCampaign(recommender recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("campaign_id", campaignID).Info("campaigns: manual analysis requested")

		proposals, err := recommender.Analyze(r.Context(), campaignID)
		if err != nil {
			handleAnalysisError(w, logger, campaignID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(proposals); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode analysis response")
		}
	})
}

func handleAnalysisError(w http.ResponseWriter, logger log.Logger, campaignID int64, err error) {
	logger.WithFields(log.Fields{
		"campaign_id": campaignID,
		"error":       err.Error(),
	}).Error("campaigns: analysis failed")

	switch {
	case errors.Is(err, recommending.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha sem snapshots registrados", nil)

	case errors.Is(err, recommending.ErrMalformedResponse):
		apiErrors.WriteError(w, apiErrors.ErrAIProvider, "Resposta inválida do provider de AI", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrAIProvider, "Erro ao consultar o provider de AI", nil)
	}
}

func campaignIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da campanha inválido", nil)
		return 0, false
	}

	return id, true
}

func dateRangeFromQuery(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -defaultDays)
	endDate := now

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Intervalo inclusivo no dia final
		endDate = parsed.AddDate(0, 0, 1)
	}

	return startDate, endDate, nil
}

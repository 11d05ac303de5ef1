package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-optimizer-api/pkg/log"
)

// ListAlerts retorna os alertas abertos ordenados por severidade. Com
// ?campaign_id=N restringe à campanha; com ?include_resolved=true inclui os
// já resolvidos (somente no filtro por campanha).
func ListAlerts(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignParam := r.URL.Query().Get("campaign_id")

		if campaignParam == "" {
			alerts, err := service.ListOpen()
			if err != nil {
				logger.WithError(err).Error("alerts: failed to list open alerts")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(alerts); err != nil {
				logger.WithError(err).Error("alerts: failed to encode response")
			}
			return
		}

		campaignID, err := strconv.ParseInt(campaignParam, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro campaign_id inválido", nil)
			return
		}

		includeResolved := r.URL.Query().Get("include_resolved") == "true"

		alerts, err := service.ListByCampaign(campaignID, includeResolved)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("alerts: failed to list campaign alerts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logger.WithError(err).Error("alerts: failed to encode response")
		}
	})
}

// ResolveAlert marca um alerta como resolvido. Idempotente no serviço, mas
// resolver um alerta inexistente ou já resolvido retorna 404 para o cliente.
func ResolveAlert(service alerting.Alerter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do alerta inválido", nil)
			return
		}

		resolved, err := service.Resolve(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"alert_id": id,
				"error":    err.Error(),
			}).Error("alerts: failed to resolve alert")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resolver alerta", nil)
			return
		}

		if !resolved {
			apiErrors.WriteError(w, apiErrors.ErrAlertNotFound, "Alerta não encontrado ou já resolvido", nil)
			return
		}

		logger.WithField("alert_id", id).Info("alerts: alert resolved")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       id,
			"resolved": true,
		})
	})
}

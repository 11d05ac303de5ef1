package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/executing"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-optimizer-api/pkg/log"
	"github.com/vfg2006/campaign-optimizer-api/pkg/middleware"
)

// ListActions retorna as ações propostas, com filtros opcionais
// (?status=PENDING&campaign_id=N&limit=50)
func ListActions(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter := repository.ListActionsFilter{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.ActionStatus(raw)
			filter.Status = &status
		}

		if raw := r.URL.Query().Get("campaign_id"); raw != "" {
			campaignID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro campaign_id inválido", nil)
				return
			}
			filter.CampaignID = &campaignID
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			filter.Limit = limit
		}

		actions, err := service.ListActions(filter)
		if err != nil {
			logger.WithError(err).Error("actions: failed to list proposed actions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar ações propostas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(actions); err != nil {
			logger.WithError(err).Error("actions: failed to encode response")
		}
	})
}

// GetAction retorna uma ação proposta e seus registros de execução
func GetAction(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := actionIDFromRequest(w, r)
		if !ok {
			return
		}

		action, err := service.GetAction(id)
		if err != nil {
			handleActionError(w, logger, id, err)
			return
		}

		logs, err := service.ListLogsByAction(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"action_id": id,
				"error":     err.Error(),
			}).Error("actions: failed to list action logs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros de execução", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"action": action,
			"logs":   logs,
		})
	})
}

// ApplyAction aprova e executa uma ação pendente na plataforma de anúncios.
// O aprovador é o operador autenticado.
func ApplyAction(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := actionIDFromRequest(w, r)
		if !ok {
			return
		}

		approver, ok := approverFromContext(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"action_id":   id,
			"approved_by": approver,
		}).Info("actions: apply requested")

		action, err := service.Apply(id, approver)
		if err != nil {
			handleActionError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(action); err != nil {
			logger.WithError(err).Error("actions: failed to encode response")
		}
	})
}

// DismissAction descarta uma ação pendente sem executar nada
func DismissAction(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := actionIDFromRequest(w, r)
		if !ok {
			return
		}

		approver, ok := approverFromContext(w, r)
		if !ok {
			return
		}

		action, err := service.Dismiss(id, approver)
		if err != nil {
			handleActionError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(action); err != nil {
			logger.WithError(err).Error("actions: failed to encode response")
		}
	})
}

// ExecutePendingActions aplica todas as ações pendentes em lote
// (?dry_run=true apenas valida, sem mutação)
func ExecutePendingActions(service executing.Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		approver, ok := approverFromContext(w, r)
		if !ok {
			return
		}

		dryRun := r.URL.Query().Get("dry_run") == "true"

		logger.WithFields(log.Fields{
			"approved_by": approver,
			"dry_run":     dryRun,
		}).Info("actions: batch execution requested")

		report, err := service.ExecutePending(approver, dryRun)
		if err != nil {
			logger.WithError(err).Error("actions: batch execution failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar ações pendentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("actions: failed to encode response")
		}
	})
}

func handleActionError(w http.ResponseWriter, logger log.Logger, actionID int64, err error) {
	var invalid *executing.InvalidTransitionError
	if errors.As(err, &invalid) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Ação não está pendente", map[string]any{
			"action_id":      invalid.ActionID,
			"current_status": invalid.CurrentStatus,
		})
		return
	}

	switch {
	case errors.Is(err, executing.ErrActionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrActionNotFound, "Ação proposta não encontrada", nil)

	case errors.Is(err, executing.ErrActionNotExecutable):
		apiErrors.WriteError(w, apiErrors.ErrActionNotExecutable, err.Error(), nil)

	case errors.Is(err, executing.ErrActionAlreadyClaimed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Ação já reservada por outro operador", map[string]any{
			"action_id": actionID,
		})

	default:
		logger.WithFields(log.Fields{
			"action_id": actionID,
			"error":     err.Error(),
		}).Error("actions: operation failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar ação", nil)
	}
}

func actionIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da ação não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da ação inválido", nil)
		return 0, false
	}

	return id, true
}

func approverFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return userClaims.UserEmail, true
}

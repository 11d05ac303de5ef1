package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/scheduler"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-optimizer-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonitor  = "monitor"
	CronJobTypeAnalyzer = "analyzer"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonitorSyncService  *scheduler.MonitorSyncService
	AnalyzerSyncService *scheduler.AnalyzerSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonitor:
			if services.MonitorSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento não disponível", nil)
				return
			}
			services.MonitorSyncService.TriggerManualSync()

		case CronJobTypeAnalyzer:
			if services.AnalyzerSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise não disponível", nil)
				return
			}
			services.AnalyzerSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MonitorSyncService != nil {
				services.MonitorSyncService.TriggerManualSync()
			}
			if services.AnalyzerSyncService != nil {
				services.AnalyzerSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monitor, analyzer, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"monitor":  services.MonitorSyncService.GetStatus(),
			"analyzer": services.AnalyzerSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

package executing

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// Executor gerencia o ciclo de vida das ações propostas: aprovação, execução
// na plataforma de anúncios e descarte. Toda transição parte de PENDING; os
// estados APPLIED, DISMISSED e FAILED são terminais.
type Executor interface {
	Apply(id int64, approvedBy string) (*domain.ProposedAction, error)
	Dismiss(id int64, dismissedBy string) (*domain.ProposedAction, error)
	ExecutePending(approvedBy string, dryRun bool) (*ExecutionReport, error)
	GetAction(id int64) (*domain.ProposedAction, error)
	ListActions(filter repository.ListActionsFilter) ([]*domain.ProposedAction, error)
	ListLogsByAction(actionID int64) ([]*domain.ActionLog, error)
	ListLogsByCampaign(campaignID int64, limit uint64) ([]*domain.ActionLog, error)
	CountByStatus() (map[domain.ActionStatus]int, error)
}

// ExecutionReport resume uma rodada de execução em lote
type ExecutionReport struct {
	DryRun   int      `json:"dry_run,omitempty"`
	Applied  int      `json:"applied"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

type Service struct {
	actionRepo repository.ProposedActionRepository
	logRepo    repository.ActionLogRepository
	integrator *googleads.GoogleAdsIntegrator
}

func NewService(
	actionRepo repository.ProposedActionRepository,
	logRepo repository.ActionLogRepository,
	integrator *googleads.GoogleAdsIntegrator,
) Executor {
	return &Service{
		actionRepo: actionRepo,
		logRepo:    logRepo,
		integrator: integrator,
	}
}

// Apply aprova e executa uma ação pendente. Antes de qualquer mutação na
// plataforma a ação é reservada com um UPDATE condicional que grava aprovador
// e approved_at: duas aprovações simultâneas da mesma ação nunca executam duas
// vezes, porque só a primeira reserva afeta linha. A transição final para
// APPLIED ou FAILED usa o mesmo lock otimista.
//
// Cada tentativa de execução gera exatamente um registro em action_logs.
// Falha de execução deixa a ação em FAILED e não é retentada; o resultado
// volta no próprio registro da ação, não como erro.
func (s *Service) Apply(id int64, approvedBy string) (*domain.ProposedAction, error) {
	action, err := s.actionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ação %d: %w", id, err)
	}
	if action == nil {
		return nil, errors.Wrapf(ErrActionNotFound, "ação %d", id)
	}

	if action.Status != domain.StatusPending {
		return nil, &InvalidTransitionError{ActionID: id, CurrentStatus: action.Status}
	}

	if err := action.Target.ValidateFor(action.ActionType); err != nil {
		return nil, errors.Wrap(ErrActionNotExecutable, err.Error())
	}

	claimed, err := s.actionRepo.Claim(id, approvedBy)
	if err != nil {
		return nil, fmt.Errorf("erro ao reservar ação %d: %w", id, err)
	}
	if !claimed {
		return nil, s.claimLostError(id)
	}

	result, execErr := s.integrator.ApplyAction(action)

	if execErr != nil {
		return s.finishFailed(action, approvedBy, execErr)
	}

	return s.finishApplied(action, approvedBy, result)
}

func (s *Service) finishApplied(action *domain.ProposedAction, approvedBy string, result *domain.ExecutionResult) (*domain.ProposedAction, error) {
	transitioned, err := s.actionRepo.MarkApplied(action.ID, approvedBy, result)
	if err != nil {
		return nil, fmt.Errorf("erro ao marcar ação %d como aplicada: %w", action.ID, err)
	}
	if !transitioned {
		// Outro operador venceu a corrida depois da execução; o log ainda é
		// gravado porque a mutação na plataforma aconteceu
		s.appendLog(action, domain.LogSuccess, result, nil)
		return nil, s.raceError(action.ID)
	}

	s.appendLog(action, domain.LogSuccess, result, nil)

	logrus.WithFields(logrus.Fields{
		"action_id":   action.ID,
		"campaign_id": action.CampaignID,
		"action_type": action.ActionType,
		"approved_by": approvedBy,
	}).Info("executor: action applied")

	return s.actionRepo.GetByID(action.ID)
}

func (s *Service) finishFailed(action *domain.ProposedAction, approvedBy string, execErr error) (*domain.ProposedAction, error) {
	transitioned, err := s.actionRepo.MarkFailed(action.ID, approvedBy, execErr.Error(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao marcar ação %d como falha: %w", action.ID, err)
	}
	if !transitioned {
		return nil, s.raceError(action.ID)
	}

	errMsg := execErr.Error()
	s.appendLog(action, domain.LogFailure, nil, &errMsg)

	logrus.WithFields(logrus.Fields{
		"action_id":   action.ID,
		"campaign_id": action.CampaignID,
		"action_type": action.ActionType,
		"error":       errMsg,
	}).Error("executor: action execution failed")

	return s.actionRepo.GetByID(action.ID)
}

// Dismiss descarta uma ação pendente sem executar nada na plataforma. Sem
// registro em action_logs: só execuções geram log.
func (s *Service) Dismiss(id int64, dismissedBy string) (*domain.ProposedAction, error) {
	action, err := s.actionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ação %d: %w", id, err)
	}
	if action == nil {
		return nil, errors.Wrapf(ErrActionNotFound, "ação %d", id)
	}

	if action.Status != domain.StatusPending {
		return nil, &InvalidTransitionError{ActionID: id, CurrentStatus: action.Status}
	}

	transitioned, err := s.actionRepo.MarkDismissed(id, dismissedBy)
	if err != nil {
		return nil, fmt.Errorf("erro ao descartar ação %d: %w", id, err)
	}
	if !transitioned {
		return nil, s.claimLostError(id)
	}

	logrus.WithFields(logrus.Fields{
		"action_id":    id,
		"dismissed_by": dismissedBy,
	}).Info("executor: action dismissed")

	return s.actionRepo.GetByID(id)
}

// ExecutePending aplica todas as ações pendentes em sequência. Com dryRun as
// ações são apenas listadas e validadas, sem mutação na plataforma nem
// transição de status.
func (s *Service) ExecutePending(approvedBy string, dryRun bool) (*ExecutionReport, error) {
	pendingStatus := domain.StatusPending
	pending, err := s.actionRepo.List(repository.ListActionsFilter{Status: &pendingStatus})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ações pendentes: %w", err)
	}

	report := &ExecutionReport{}

	for _, action := range pending {
		if dryRun {
			if err := action.Target.ValidateFor(action.ActionType); err != nil {
				report.Failures = append(report.Failures,
					fmt.Sprintf("ação %d: %v", action.ID, err))
				continue
			}
			logrus.WithFields(logrus.Fields{
				"action_id":   action.ID,
				"campaign_id": action.CampaignID,
				"action_type": action.ActionType,
			}).Info("executor: dry run, action would be applied")
			report.DryRun++
			continue
		}

		applied, err := s.Apply(action.ID, approvedBy)
		if err != nil {
			report.Failures = append(report.Failures,
				fmt.Sprintf("ação %d: %v", action.ID, err))
			continue
		}

		if applied.Status == domain.StatusApplied {
			report.Applied++
		} else {
			report.Failed++
		}
	}

	return report, nil
}

func (s *Service) GetAction(id int64) (*domain.ProposedAction, error) {
	action, err := s.actionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, errors.Wrapf(ErrActionNotFound, "ação %d", id)
	}
	return action, nil
}

func (s *Service) ListActions(filter repository.ListActionsFilter) ([]*domain.ProposedAction, error) {
	return s.actionRepo.List(filter)
}

func (s *Service) ListLogsByAction(actionID int64) ([]*domain.ActionLog, error) {
	return s.logRepo.ListByAction(actionID)
}

func (s *Service) ListLogsByCampaign(campaignID int64, limit uint64) ([]*domain.ActionLog, error) {
	return s.logRepo.ListByCampaign(campaignID, limit)
}

func (s *Service) CountByStatus() (map[domain.ActionStatus]int, error) {
	return s.actionRepo.CountByStatus()
}

func (s *Service) appendLog(action *domain.ProposedAction, status domain.LogStatus, result *domain.ExecutionResult, errMsg *string) {
	entry := &domain.ActionLog{
		ActionID:   action.ID,
		CampaignID: action.CampaignID,
		ActionType: action.ActionType,
		Details: domain.ActionLogDetails{
			Target:         action.Target,
			Reason:         action.Reason,
			ExpectedImpact: action.ExpectedImpact,
		},
		Status:      status,
		ErrorMsg:    errMsg,
		APIResponse: result,
	}

	if err := s.logRepo.Append(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"action_id": action.ID,
			"error":     err.Error(),
		}).Error("executor: failed to append action log")
	}
}

// raceError refaz a leitura para devolver o status que venceu a corrida
func (s *Service) raceError(id int64) error {
	current, err := s.actionRepo.GetByID(id)
	if err != nil || current == nil {
		return &InvalidTransitionError{ActionID: id, CurrentStatus: domain.ActionStatus("UNKNOWN")}
	}
	return &InvalidTransitionError{ActionID: id, CurrentStatus: current.Status}
}

// claimLostError distingue a ação já finalizada por outro operador da ação
// reservada com execução ainda em andamento
func (s *Service) claimLostError(id int64) error {
	current, err := s.actionRepo.GetByID(id)
	if err != nil || current == nil {
		return &InvalidTransitionError{ActionID: id, CurrentStatus: domain.ActionStatus("UNKNOWN")}
	}
	if current.Status != domain.StatusPending {
		return &InvalidTransitionError{ActionID: id, CurrentStatus: current.Status}
	}
	return errors.Wrapf(ErrActionAlreadyClaimed, "ação %d", id)
}

package domain

import (
	"time"
)

// LogStatus indica o desfecho de uma tentativa de execução
type LogStatus string

const (
	LogSuccess LogStatus = "SUCCESS"
	LogFailure LogStatus = "FAILURE"
)

// ActionLogDetails guarda o contexto da ação no momento da execução
type ActionLogDetails struct {
	Target         ActionTarget `json:"target"`
	Reason         string       `json:"reason"`
	ExpectedImpact string       `json:"expected_impact"`
}

// ActionLog é o registro imutável de uma tentativa de execução de uma ação
// proposta. Exatamente um registro por tentativa; nunca atualizado nem
// removido.
type ActionLog struct {
	ID          int64            `json:"id"`
	ActionID    int64            `json:"action_id"`
	CampaignID  int64            `json:"campaign_id"`
	ActionType  ActionType       `json:"action_type"`
	Details     ActionLogDetails `json:"details"`
	Status      LogStatus        `json:"status"`
	ErrorMsg    *string          `json:"error_message"`
	APIResponse *ExecutionResult `json:"api_response"`
	ExecutedAt  time.Time        `json:"executed_at"`
}

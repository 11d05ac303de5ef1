package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	proposedActionsTable   = "proposed_actions pa"
	proposedActionsColumns = `pa.id, pa.campaign_id, pa.campaign_name, pa.action_type, pa.priority,
		pa.target, pa.reason, pa.expected_impact, pa.confidence, pa.current_value,
		pa.proposed_value, pa.ai_summary, pa.ai_model, pa.status, pa.created_at,
		pa.approved_at, pa.approved_by, pa.executed_at, pa.execution_result, pa.execution_error`
)

// ListActionsFilter restringe a listagem de ações propostas
type ListActionsFilter struct {
	Status     *domain.ActionStatus
	CampaignID *int64
	Limit      uint64
}

type ProposedActionRepository interface {
	Create(action *domain.ProposedAction) (int64, error)
	GetByID(id int64) (*domain.ProposedAction, error)
	List(filter ListActionsFilter) ([]*domain.ProposedAction, error)
	ListPendingByCampaign(campaignID int64) ([]*domain.ProposedAction, error)
	Claim(id int64, approvedBy string) (bool, error)
	MarkApplied(id int64, approvedBy string, result *domain.ExecutionResult) (bool, error)
	MarkFailed(id int64, approvedBy string, execError string, result *domain.ExecutionResult) (bool, error)
	MarkDismissed(id int64, dismissedBy string) (bool, error)
	CountByStatus() (map[domain.ActionStatus]int, error)
}

type proposedActionRepository struct {
	conn *postgres.Connection
}

func NewProposedActionRepository(conn *postgres.Connection) ProposedActionRepository {
	return &proposedActionRepository{
		conn: conn,
	}
}

func (r *proposedActionRepository) Create(action *domain.ProposedAction) (int64, error) {
	targetJSON, err := json.Marshal(action.Target)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar alvo da ação para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("proposed_actions").
		Columns(
			"campaign_id", "campaign_name", "action_type", "priority",
			"target", "reason", "expected_impact", "confidence",
			"current_value", "proposed_value", "ai_summary", "ai_model", "status",
		).
		Values(
			action.CampaignID,
			action.CampaignName,
			action.ActionType,
			action.Priority,
			targetJSON,
			action.Reason,
			action.ExpectedImpact,
			action.Confidence,
			action.CurrentValue,
			action.ProposedValue,
			action.AISummary,
			action.AIModel,
			domain.StatusPending,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return id, nil
}

func (r *proposedActionRepository) GetByID(id int64) (*domain.ProposedAction, error) {
	query, args, err := squirrel.
		Select(proposedActionsColumns).
		From(proposedActionsTable).
		Where(squirrel.Eq{"pa.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	action, err := r.scanAction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ação proposta: %w", err)
	}

	return action, nil
}

func (r *proposedActionRepository) List(filter ListActionsFilter) ([]*domain.ProposedAction, error) {
	builder := squirrel.
		Select(proposedActionsColumns).
		From(proposedActionsTable)

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"pa.status": *filter.Status})
	}
	if filter.CampaignID != nil {
		builder = builder.Where(squirrel.Eq{"pa.campaign_id": *filter.CampaignID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.
		OrderBy("pa.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryActions(query, args...)
}

func (r *proposedActionRepository) ListPendingByCampaign(campaignID int64) ([]*domain.ProposedAction, error) {
	pending := domain.StatusPending
	return r.List(ListActionsFilter{Status: &pending, CampaignID: &campaignID})
}

// Claim registra aprovador e momento da aprovação antes de qualquer mutação
// na plataforma. Só a primeira reserva de uma ação pendente afeta linha;
// retorna false quando outro operador chegou antes.
func (r *proposedActionRepository) Claim(id int64, approvedBy string) (bool, error) {
	query, args, err := squirrel.
		Update("proposed_actions").
		Set("approved_at", squirrel.Expr("NOW()")).
		Set("approved_by", approvedBy).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		Where("approved_by IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execTransition(query, args...)
}

// MarkApplied faz a transição PENDING → APPLIED. A cláusula WHERE com o status
// atual garante a checagem otimista: retorna false quando a ação não estava
// mais em PENDING e nenhuma linha foi alterada. Aprovador e approved_at já
// foram gravados pelo Claim.
func (r *proposedActionRepository) MarkApplied(id int64, approvedBy string, result *domain.ExecutionResult) (bool, error) {
	resultJSON, err := marshalExecutionResult(result)
	if err != nil {
		return false, err
	}

	query, args, err := squirrel.
		Update("proposed_actions").
		Set("status", domain.StatusApplied).
		Set("executed_at", squirrel.Expr("NOW()")).
		Set("execution_result", resultJSON).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending, "approved_by": approvedBy}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execTransition(query, args...)
}

// MarkFailed faz a transição PENDING → FAILED preservando o erro de execução
func (r *proposedActionRepository) MarkFailed(id int64, approvedBy string, execError string, result *domain.ExecutionResult) (bool, error) {
	resultJSON, err := marshalExecutionResult(result)
	if err != nil {
		return false, err
	}

	query, args, err := squirrel.
		Update("proposed_actions").
		Set("status", domain.StatusFailed).
		Set("executed_at", squirrel.Expr("NOW()")).
		Set("execution_result", resultJSON).
		Set("execution_error", execError).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending, "approved_by": approvedBy}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execTransition(query, args...)
}

// MarkDismissed faz a transição PENDING → DISMISSED sem tocar a campanha.
// Uma ação já reservada para execução não pode mais ser descartada.
func (r *proposedActionRepository) MarkDismissed(id int64, dismissedBy string) (bool, error) {
	query, args, err := squirrel.
		Update("proposed_actions").
		Set("status", domain.StatusDismissed).
		Set("approved_at", squirrel.Expr("NOW()")).
		Set("approved_by", dismissedBy).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		Where("approved_by IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execTransition(query, args...)
}

func (r *proposedActionRepository) CountByStatus() (map[domain.ActionStatus]int, error) {
	query, args, err := squirrel.
		Select("pa.status, COUNT(*)").
		From(proposedActionsTable).
		GroupBy("pa.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ActionStatus]int)
	for rows.Next() {
		var status domain.ActionStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem de ações: %w", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *proposedActionRepository) execTransition(query string, args ...interface{}) (bool, error) {
	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *proposedActionRepository) queryActions(query string, args ...interface{}) ([]*domain.ProposedAction, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	actions := make([]*domain.ProposedAction, 0)
	for rows.Next() {
		action, err := r.scanActionRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ações propostas: %w", err)
		}
		actions = append(actions, action)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return actions, nil
}

func (r *proposedActionRepository) scanAction(row *sql.Row) (*domain.ProposedAction, error) {
	action := &domain.ProposedAction{}
	var targetJSON, resultJSON []byte

	err := row.Scan(
		&action.ID,
		&action.CampaignID,
		&action.CampaignName,
		&action.ActionType,
		&action.Priority,
		&targetJSON,
		&action.Reason,
		&action.ExpectedImpact,
		&action.Confidence,
		&action.CurrentValue,
		&action.ProposedValue,
		&action.AISummary,
		&action.AIModel,
		&action.Status,
		&action.CreatedAt,
		&action.ApprovedAt,
		&action.ApprovedBy,
		&action.ExecutedAt,
		&resultJSON,
		&action.ExecutionError,
	)
	if err != nil {
		return nil, err
	}

	return r.decodeActionJSON(action, targetJSON, resultJSON)
}

func (r *proposedActionRepository) scanActionRows(rows *sql.Rows) (*domain.ProposedAction, error) {
	action := &domain.ProposedAction{}
	var targetJSON, resultJSON []byte

	err := rows.Scan(
		&action.ID,
		&action.CampaignID,
		&action.CampaignName,
		&action.ActionType,
		&action.Priority,
		&targetJSON,
		&action.Reason,
		&action.ExpectedImpact,
		&action.Confidence,
		&action.CurrentValue,
		&action.ProposedValue,
		&action.AISummary,
		&action.AIModel,
		&action.Status,
		&action.CreatedAt,
		&action.ApprovedAt,
		&action.ApprovedBy,
		&action.ExecutedAt,
		&resultJSON,
		&action.ExecutionError,
	)
	if err != nil {
		return nil, err
	}

	return r.decodeActionJSON(action, targetJSON, resultJSON)
}

func (r *proposedActionRepository) decodeActionJSON(action *domain.ProposedAction, targetJSON, resultJSON []byte) (*domain.ProposedAction, error) {
	if targetJSON != nil {
		if err := json.Unmarshal(targetJSON, &action.Target); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de target: %w", err)
		}
	}

	if resultJSON != nil {
		result := &domain.ExecutionResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de execution_result: %w", err)
		}
		action.ExecutionResult = result
	}

	return action, nil
}

func marshalExecutionResult(result *domain.ExecutionResult) ([]byte, error) {
	if result == nil {
		return nil, nil
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resultado de execução para JSON: %w", err)
	}

	return resultJSON, nil
}

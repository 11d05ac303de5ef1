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
	actionLogsTable   = "action_logs al"
	actionLogsColumns = "al.id, al.action_id, al.campaign_id, al.action_type, al.details, al.status, al.error_message, al.api_response, al.executed_at"
)

// ActionLogRepository é somente-inserção: registros de execução nunca são
// atualizados nem removidos
type ActionLogRepository interface {
	Append(entry *domain.ActionLog) error
	ListByAction(actionID int64) ([]*domain.ActionLog, error)
	ListByCampaign(campaignID int64, limit uint64) ([]*domain.ActionLog, error)
}

type actionLogRepository struct {
	conn *postgres.Connection
}

func NewActionLogRepository(conn *postgres.Connection) ActionLogRepository {
	return &actionLogRepository{
		conn: conn,
	}
}

func (r *actionLogRepository) Append(entry *domain.ActionLog) error {
	detailsJSON, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("erro ao serializar detalhes do log para JSON: %w", err)
	}

	var responseJSON []byte
	if entry.APIResponse != nil {
		responseJSON, err = json.Marshal(entry.APIResponse)
		if err != nil {
			return fmt.Errorf("erro ao serializar resposta da API para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("action_logs").
		Columns("action_id", "campaign_id", "action_type", "details", "status", "error_message", "api_response").
		Values(
			entry.ActionID,
			entry.CampaignID,
			entry.ActionType,
			detailsJSON,
			entry.Status,
			entry.ErrorMsg,
			responseJSON,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *actionLogRepository) ListByAction(actionID int64) ([]*domain.ActionLog, error) {
	query, args, err := squirrel.
		Select(actionLogsColumns).
		From(actionLogsTable).
		Where(squirrel.Eq{"al.action_id": actionID}).
		OrderBy("al.executed_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args...)
}

func (r *actionLogRepository) ListByCampaign(campaignID int64, limit uint64) ([]*domain.ActionLog, error) {
	builder := squirrel.
		Select(actionLogsColumns).
		From(actionLogsTable).
		Where(squirrel.Eq{"al.campaign_id": campaignID}).
		OrderBy("al.executed_at DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLogs(query, args...)
}

func (r *actionLogRepository) queryLogs(query string, args ...interface{}) ([]*domain.ActionLog, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.ActionLog, 0)
	for rows.Next() {
		entry, err := r.scanLogRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear logs de ação: %w", err)
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func (r *actionLogRepository) scanLogRows(rows *sql.Rows) (*domain.ActionLog, error) {
	entry := &domain.ActionLog{}
	var detailsJSON, responseJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.ActionID,
		&entry.CampaignID,
		&entry.ActionType,
		&detailsJSON,
		&entry.Status,
		&entry.ErrorMsg,
		&responseJSON,
		&entry.ExecutedAt,
	)
	if err != nil {
		return nil, err
	}

	if detailsJSON != nil {
		if err := json.Unmarshal(detailsJSON, &entry.Details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de details: %w", err)
		}
	}

	if responseJSON != nil {
		response := &domain.ExecutionResult{}
		if err := json.Unmarshal(responseJSON, response); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de api_response: %w", err)
		}
		entry.APIResponse = response
	}

	return entry, nil
}

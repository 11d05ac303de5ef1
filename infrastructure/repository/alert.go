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
	alertsTable   = "alerts a"
	alertsColumns = "a.id, a.campaign_id, a.alert_type, a.severity, a.message, a.details, a.resolved, a.resolved_at, a.created_at"
)

type AlertRepository interface {
	Save(alert *domain.Alert) (bool, error)
	GetByID(id int64) (*domain.Alert, error)
	ListUnresolved() ([]*domain.Alert, error)
	ListByCampaign(campaignID int64, includeResolved bool) ([]*domain.Alert, error)
	Resolve(id int64) (bool, error)
	CountUnresolvedBySeverity() (map[domain.AlertSeverity]int, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

// Save insere um alerta respeitando a deduplicação: se já existe um alerta não
// resolvido do mesmo tipo para a mesma campanha, o registro existente é
// atualizado com a severidade, a mensagem e os detalhes mais recentes em vez
// de gerar duplicata. Retorna true quando um novo alerta foi criado.
func (r *alertRepository) Save(alert *domain.Alert) (bool, error) {
	detailsJSON, err := json.Marshal(alert.Details)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar detalhes do alerta para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("alerts").
		Columns("campaign_id", "alert_type", "severity", "message", "details").
		Values(
			alert.CampaignID,
			alert.AlertType,
			alert.Severity,
			alert.Message,
			detailsJSON,
		).
		// xmax = 0 distingue inserção de atualização na mesma statement
		Suffix(`
			ON CONFLICT (campaign_id, alert_type) WHERE NOT resolved
			DO UPDATE SET
				severity = EXCLUDED.severity,
				message = EXCLUDED.message,
				details = EXCLUDED.details
			RETURNING (xmax = 0)
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&inserted); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return inserted, nil
}

func (r *alertRepository) GetByID(id int64) (*domain.Alert, error) {
	query, args, err := squirrel.
		Select(alertsColumns).
		From(alertsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	alert, err := r.scanAlert(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
	}

	return alert, nil
}

// ListUnresolved retorna os alertas abertos ordenados por severidade
// (CRITICAL primeiro) e, dentro da mesma severidade, do mais recente para o
// mais antigo
func (r *alertRepository) ListUnresolved() ([]*domain.Alert, error) {
	query, args, err := squirrel.
		Select(alertsColumns).
		From(alertsTable).
		Where(squirrel.Eq{"a.resolved": false}).
		OrderBy(severityOrderExpr, "a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAlerts(query, args...)
}

func (r *alertRepository) ListByCampaign(campaignID int64, includeResolved bool) ([]*domain.Alert, error) {
	builder := squirrel.
		Select(alertsColumns).
		From(alertsTable).
		Where(squirrel.Eq{"a.campaign_id": campaignID})

	if !includeResolved {
		builder = builder.Where(squirrel.Eq{"a.resolved": false})
	}

	query, args, err := builder.
		OrderBy(severityOrderExpr, "a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAlerts(query, args...)
}

// Resolve marca o alerta como resolvido. Retorna false quando o alerta não
// existe ou já estava resolvido (a operação é idempotente).
func (r *alertRepository) Resolve(id int64) (bool, error) {
	query, args, err := squirrel.
		Update("alerts").
		Set("resolved", true).
		Set("resolved_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "resolved": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

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

func (r *alertRepository) CountUnresolvedBySeverity() (map[domain.AlertSeverity]int, error) {
	query, args, err := squirrel.
		Select("a.severity, COUNT(*)").
		From(alertsTable).
		Where(squirrel.Eq{"a.resolved": false}).
		GroupBy("a.severity").
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

	counts := make(map[domain.AlertSeverity]int)
	for rows.Next() {
		var severity domain.AlertSeverity
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem de alertas: %w", err)
		}
		counts[severity] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// severityOrderExpr ordena CRITICAL > HIGH > MEDIUM > LOW no próprio banco
const severityOrderExpr = `CASE a.severity
	WHEN 'CRITICAL' THEN 4
	WHEN 'HIGH' THEN 3
	WHEN 'MEDIUM' THEN 2
	ELSE 1
END DESC`

func (r *alertRepository) queryAlerts(query string, args ...interface{}) ([]*domain.Alert, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert, err := r.scanAlertRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alertas: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) scanAlert(row *sql.Row) (*domain.Alert, error) {
	alert := &domain.Alert{}
	var detailsJSON []byte

	err := row.Scan(
		&alert.ID,
		&alert.CampaignID,
		&alert.AlertType,
		&alert.Severity,
		&alert.Message,
		&detailsJSON,
		&alert.Resolved,
		&alert.ResolvedAt,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if detailsJSON != nil {
		if err := json.Unmarshal(detailsJSON, &alert.Details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de details: %w", err)
		}
	}

	return alert, nil
}

func (r *alertRepository) scanAlertRows(rows *sql.Rows) (*domain.Alert, error) {
	alert := &domain.Alert{}
	var detailsJSON []byte

	err := rows.Scan(
		&alert.ID,
		&alert.CampaignID,
		&alert.AlertType,
		&alert.Severity,
		&alert.Message,
		&detailsJSON,
		&alert.Resolved,
		&alert.ResolvedAt,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if detailsJSON != nil {
		if err := json.Unmarshal(detailsJSON, &alert.Details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de details: %w", err)
		}
	}

	return alert, nil
}

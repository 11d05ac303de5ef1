package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	campaignMetricsTable   = "campaign_metrics cm"
	campaignMetricsColumns = `cm.id, cm.campaign_id, cm.campaign_name, cm.timestamp, cm.budget,
		cm.status, cm.bid_strategy_type, cm.optimization_score, cm.campaign_type,
		cm.cost, cm.avg_cost, cm.cost_per_conv, cm.conversions, cm.conv_value,
		cm.conv_value_per_cost, cm.clicks, cm.ctr, cm.avg_cpm, cm.impressions,
		cm.roas, cm.cpc, cm.quality_score, cm.created_at`
)

type MetricSnapshotRepository interface {
	Save(snapshot *domain.MetricSnapshot) error
	GetLatestByCampaign(campaignID int64) (*domain.MetricSnapshot, error)
	GetLatestAll() ([]*domain.MetricSnapshot, error)
	GetByDateRange(campaignID int64, startDate, endDate time.Time) ([]*domain.MetricSnapshot, error)
	AggregateBetween(startDate, endDate time.Time) (*domain.MetricTotals, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

// Save insere um snapshot. Snapshots com o mesmo (campaign_id, timestamp) são
// ignorados silenciosamente: o histórico é imutável e reprocessamentos não
// podem sobrescrever medições já registradas.
func (r *metricSnapshotRepository) Save(snapshot *domain.MetricSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("campaign_metrics").
		Columns(
			"campaign_id", "campaign_name", "timestamp", "budget",
			"status", "bid_strategy_type", "optimization_score", "campaign_type",
			"cost", "avg_cost", "cost_per_conv", "conversions", "conv_value",
			"conv_value_per_cost", "clicks", "ctr", "avg_cpm", "impressions",
			"roas", "cpc", "quality_score",
		).
		Values(
			snapshot.CampaignID,
			snapshot.CampaignName,
			snapshot.Timestamp,
			snapshot.Budget,
			snapshot.Status,
			snapshot.BidStrategyType,
			snapshot.OptimizationScore,
			snapshot.CampaignType,
			snapshot.Cost,
			snapshot.AvgCost,
			snapshot.CostPerConv,
			snapshot.Conversions,
			snapshot.ConvValue,
			snapshot.ConvValuePerCost,
			snapshot.Clicks,
			snapshot.CTR,
			snapshot.AvgCPM,
			snapshot.Impressions,
			snapshot.ROAS,
			snapshot.CPC,
			snapshot.QualityScore,
		).
		Suffix(`ON CONFLICT (campaign_id, timestamp) DO NOTHING`).
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

func (r *metricSnapshotRepository) GetLatestByCampaign(campaignID int64) (*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select(campaignMetricsColumns).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		OrderBy("cm.timestamp DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// GetLatestAll retorna o snapshot mais recente de cada campanha conhecida
func (r *metricSnapshotRepository) GetLatestAll() ([]*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (cm.campaign_id) " + campaignMetricsColumns).
		From(campaignMetricsTable).
		OrderBy("cm.campaign_id", "cm.timestamp DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// GetByDateRange retorna os snapshots da campanha na janela, em ordem
// cronológica ascendente
func (r *metricSnapshotRepository) GetByDateRange(campaignID int64, startDate, endDate time.Time) ([]*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select(campaignMetricsColumns).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"cm.timestamp": startDate}).
		Where(squirrel.LtOrEq{"cm.timestamp": endDate}).
		OrderBy("cm.timestamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// AggregateBetween soma custo, conversões e valor de conversão de todas as
// campanhas no período, para o comparativo do dashboard
func (r *metricSnapshotRepository) AggregateBetween(startDate, endDate time.Time) (*domain.MetricTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(cm.cost), 0)",
			"COALESCE(SUM(cm.conversions), 0)",
			"COALESCE(SUM(cm.conv_value), 0)",
			"COALESCE(SUM(cm.clicks), 0)",
			"COALESCE(SUM(cm.impressions), 0)",
		).
		From(campaignMetricsTable).
		Where(squirrel.GtOrEq{"cm.timestamp": startDate}).
		Where(squirrel.LtOrEq{"cm.timestamp": endDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.MetricTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.Cost,
		&totals.Conversions,
		&totals.ConvValue,
		&totals.Clicks,
		&totals.Impressions,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear totais de métricas: %w", err)
	}

	return totals, nil
}

func (r *metricSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("campaign_metrics").
		Where(squirrel.Lt{"timestamp": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CampaignID,
		&snapshot.CampaignName,
		&snapshot.Timestamp,
		&snapshot.Budget,
		&snapshot.Status,
		&snapshot.BidStrategyType,
		&snapshot.OptimizationScore,
		&snapshot.CampaignType,
		&snapshot.Cost,
		&snapshot.AvgCost,
		&snapshot.CostPerConv,
		&snapshot.Conversions,
		&snapshot.ConvValue,
		&snapshot.ConvValuePerCost,
		&snapshot.Clicks,
		&snapshot.CTR,
		&snapshot.AvgCPM,
		&snapshot.Impressions,
		&snapshot.ROAS,
		&snapshot.CPC,
		&snapshot.QualityScore,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *metricSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.CampaignID,
		&snapshot.CampaignName,
		&snapshot.Timestamp,
		&snapshot.Budget,
		&snapshot.Status,
		&snapshot.BidStrategyType,
		&snapshot.OptimizationScore,
		&snapshot.CampaignType,
		&snapshot.Cost,
		&snapshot.AvgCost,
		&snapshot.CostPerConv,
		&snapshot.Conversions,
		&snapshot.ConvValue,
		&snapshot.ConvValuePerCost,
		&snapshot.Clicks,
		&snapshot.CTR,
		&snapshot.AvgCPM,
		&snapshot.Impressions,
		&snapshot.ROAS,
		&snapshot.CPC,
		&snapshot.QualityScore,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

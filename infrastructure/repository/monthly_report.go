package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const monthlyReportsTable = "monthly_reports mr"

type MonthlyReportRepository interface {
	SaveOrUpdate(row *domain.MonthlyReportRow) error
	GetByPeriod(period string) ([]*domain.MonthlyReportRow, error)
	GetAvailablePeriods() ([]string, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) SaveOrUpdate(row *domain.MonthlyReportRow) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("entity_kind", "entity_slug", "period", "views", "clicks", "spend", "revenue").
		Values(
			row.EntityKind,
			row.EntitySlug,
			row.Period,
			row.Views,
			row.Clicks,
			row.Spend,
			row.Revenue,
		).
		Suffix(`
			ON CONFLICT (entity_kind, entity_slug, period) DO UPDATE SET
				views = EXCLUDED.views,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				updated_at = NOW()
		`).
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

func (r *monthlyReportRepository) GetByPeriod(period string) ([]*domain.MonthlyReportRow, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.entity_kind, mr.entity_slug, mr.period, mr.views, mr.clicks, mr.spend, mr.revenue, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.period": period}).
		OrderBy("mr.entity_kind ASC, mr.entity_slug ASC").
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

	reportRows := make([]*domain.MonthlyReportRow, 0)
	for rows.Next() {
		row := &domain.MonthlyReportRow{}
		err := rows.Scan(
			&row.ID,
			&row.EntityKind,
			&row.EntitySlug,
			&row.Period,
			&row.Views,
			&row.Clicks,
			&row.Spend,
			&row.Revenue,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
		}
		reportRows = append(reportRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reportRows, nil
}

func (r *monthlyReportRepository) GetAvailablePeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT mr.period").
		From(monthlyReportsTable).
		OrderBy("mr.period DESC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear períodos: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

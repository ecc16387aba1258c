package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const publishersTable = "publishers"

type PublisherRepository interface {
	GetBySlug(slug string) (*domain.Publisher, error)
	List() ([]*domain.Publisher, error)
	Update(publisher *domain.Publisher) error
}

type publisherRepository struct {
	conn *postgres.Connection
}

func NewPublisherRepository(conn *postgres.Connection) PublisherRepository {
	return &publisherRepository{
		conn: conn,
	}
}

func (r *publisherRepository) GetBySlug(slug string) (*domain.Publisher, error) {
	query, args, err := squirrel.
		Select("id, slug, name, revenue_share_percentage, unauthed_ad_decisions, created_at, updated_at").
		From(publishersTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	publisher := &domain.Publisher{}
	err = r.conn.QueryRow(query, args...).Scan(
		&publisher.ID,
		&publisher.Slug,
		&publisher.Name,
		&publisher.RevenueSharePercent,
		&publisher.UnauthedAdDecisions,
		&publisher.CreatedAt,
		&publisher.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear publisher: %w", err)
	}

	return publisher, nil
}

func (r *publisherRepository) List() ([]*domain.Publisher, error) {
	query, args, err := squirrel.
		Select("id, slug, name, revenue_share_percentage, unauthed_ad_decisions, created_at, updated_at").
		From(publishersTable).
		OrderBy("name ASC").
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

	publishers := make([]*domain.Publisher, 0)
	for rows.Next() {
		publisher := &domain.Publisher{}
		err := rows.Scan(
			&publisher.ID,
			&publisher.Slug,
			&publisher.Name,
			&publisher.RevenueSharePercent,
			&publisher.UnauthedAdDecisions,
			&publisher.CreatedAt,
			&publisher.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear publishers: %w", err)
		}
		publishers = append(publishers, publisher)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return publishers, nil
}

func (r *publisherRepository) Update(publisher *domain.Publisher) error {
	query, args, err := squirrel.
		Update(publishersTable).
		Set("name", publisher.Name).
		Set("revenue_share_percentage", publisher.RevenueSharePercent).
		Set("unauthed_ad_decisions", publisher.UnauthedAdDecisions).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slug": publisher.Slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar publisher: %w", err)
	}

	return nil
}

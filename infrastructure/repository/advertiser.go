package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const advertisersTable = "advertisers"

type AdvertiserRepository interface {
	GetBySlug(slug string) (*domain.Advertiser, error)
	List() ([]*domain.Advertiser, error)
	Update(advertiser *domain.Advertiser) error
}

type advertiserRepository struct {
	conn *postgres.Connection
}

func NewAdvertiserRepository(conn *postgres.Connection) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func (r *advertiserRepository) GetBySlug(slug string) (*domain.Advertiser, error) {
	query, args, err := squirrel.
		Select("id, slug, name, created_at, updated_at").
		From(advertisersTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	advertiser := &domain.Advertiser{}
	err = r.conn.QueryRow(query, args...).Scan(
		&advertiser.ID,
		&advertiser.Slug,
		&advertiser.Name,
		&advertiser.CreatedAt,
		&advertiser.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anunciante: %w", err)
	}

	return advertiser, nil
}

func (r *advertiserRepository) List() ([]*domain.Advertiser, error) {
	query, args, err := squirrel.
		Select("id, slug, name, created_at, updated_at").
		From(advertisersTable).
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

	advertisers := make([]*domain.Advertiser, 0)
	for rows.Next() {
		advertiser := &domain.Advertiser{}
		err := rows.Scan(
			&advertiser.ID,
			&advertiser.Slug,
			&advertiser.Name,
			&advertiser.CreatedAt,
			&advertiser.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anunciantes: %w", err)
		}
		advertisers = append(advertisers, advertiser)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return advertisers, nil
}

func (r *advertiserRepository) Update(advertiser *domain.Advertiser) error {
	query, args, err := squirrel.
		Update(advertisersTable).
		Set("name", advertiser.Name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slug": advertiser.Slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar anunciante: %w", err)
	}

	return nil
}

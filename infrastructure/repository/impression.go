package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const adImpressionsTable = "ad_impressions ai"

type ImpressionRepository interface {
	AddOffer(advertisementID, publisherID string, date time.Time) error
	AddView(advertisementID, publisherID string, date time.Time, spend float64) error
	AddClick(advertisementID, publisherID string, date time.Time, spend float64) error
	GetByPublisher(publisherID string, startDate, endDate time.Time, campaignType string) ([]*domain.AdImpression, error)
	GetByAdvertiser(advertiserSlug string, startDate, endDate time.Time) ([]*domain.AdImpression, error)
	ListActivePublisherSlugs(startDate, endDate time.Time, campaignType string) ([]string, error)
	ListActiveAdvertiserSlugs(startDate, endDate time.Time) ([]string, error)
	DeleteOlderThan(days int) (int64, error)
}

type impressionRepository struct {
	conn *postgres.Connection
}

func NewImpressionRepository(conn *postgres.Connection) ImpressionRepository {
	return &impressionRepository{
		conn: conn,
	}
}

// AddOffer registra que um anúncio foi oferecido a um publisher no dia
func (r *impressionRepository) AddOffer(advertisementID, publisherID string, date time.Time) error {
	return r.increment(advertisementID, publisherID, date, "offers", 0)
}

// AddView registra uma visualização válida, acumulando o custo CPM
func (r *impressionRepository) AddView(advertisementID, publisherID string, date time.Time, spend float64) error {
	return r.increment(advertisementID, publisherID, date, "views", spend)
}

// AddClick registra um clique válido, acumulando o custo CPC
func (r *impressionRepository) AddClick(advertisementID, publisherID string, date time.Time, spend float64) error {
	return r.increment(advertisementID, publisherID, date, "clicks", spend)
}

// increment faz o upsert do agregado diário somando 1 na coluna informada
func (r *impressionRepository) increment(advertisementID, publisherID string, date time.Time, column string, spend float64) error {
	suffix := fmt.Sprintf(`
		ON CONFLICT (advertisement_id, publisher_id, date) DO UPDATE SET
			%s = ad_impressions.%s + 1,
			spend = ad_impressions.spend + EXCLUDED.spend,
			updated_at = NOW()
	`, column, column)

	offers, views, clicks := 0, 0, 0
	switch column {
	case "offers":
		offers = 1
	case "views":
		views = 1
	case "clicks":
		clicks = 1
	}

	query := squirrel.StatementBuilder.
		Insert("ad_impressions").
		Columns("advertisement_id", "publisher_id", "date", "offers", "views", "clicks", "spend").
		Values(advertisementID, publisherID, date.Format("2006-01-02"), offers, views, clicks, spend).
		Suffix(suffix).
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

const impressionColumns = `ai.id, ai.advertisement_id, ai.publisher_id, p.slug, adv.slug,
	c.campaign_type, ai.date, ai.offers, ai.views, ai.clicks, ai.spend, ai.created_at, ai.updated_at`

func (r *impressionRepository) baseSelect(startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(impressionColumns).
		From(adImpressionsTable).
		Join("publishers p ON p.id = ai.publisher_id").
		Join("advertisements ad ON ad.id = ai.advertisement_id").
		Join("flights f ON f.id = ad.flight_id").
		Join("campaigns c ON c.id = f.campaign_id").
		Join("advertisers adv ON adv.id = c.advertiser_id").
		Where(squirrel.GtOrEq{"ai.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *impressionRepository) GetByPublisher(publisherID string, startDate, endDate time.Time, campaignType string) ([]*domain.AdImpression, error) {
	builder := r.baseSelect(startDate, endDate).
		Where(squirrel.Eq{"ai.publisher_id": publisherID}).
		OrderBy("ai.date ASC")

	if campaignType != "" {
		builder = builder.Where(squirrel.Eq{"c.campaign_type": campaignType})
	}

	return r.queryImpressions(builder)
}

func (r *impressionRepository) GetByAdvertiser(advertiserSlug string, startDate, endDate time.Time) ([]*domain.AdImpression, error) {
	builder := r.baseSelect(startDate, endDate).
		Where(squirrel.Eq{"adv.slug": advertiserSlug}).
		OrderBy("ai.date ASC")

	return r.queryImpressions(builder)
}

func (r *impressionRepository) queryImpressions(builder squirrel.SelectBuilder) ([]*domain.AdImpression, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	impressions := make([]*domain.AdImpression, 0)
	for rows.Next() {
		imp := &domain.AdImpression{}
		err := rows.Scan(
			&imp.ID,
			&imp.AdvertisementID,
			&imp.PublisherID,
			&imp.PublisherSlug,
			&imp.AdvertiserSlug,
			&imp.CampaignType,
			&imp.Date,
			&imp.Offers,
			&imp.Views,
			&imp.Clicks,
			&imp.Spend,
			&imp.CreatedAt,
			&imp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados de impressões: %w", err)
		}
		impressions = append(impressions, imp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return impressions, nil
}

// ListActivePublisherSlugs lista publishers com qualquer tráfego no período
func (r *impressionRepository) ListActivePublisherSlugs(startDate, endDate time.Time, campaignType string) ([]string, error) {
	builder := squirrel.
		Select("DISTINCT p.slug").
		From(adImpressionsTable).
		Join("publishers p ON p.id = ai.publisher_id").
		Join("advertisements ad ON ad.id = ai.advertisement_id").
		Join("flights f ON f.id = ad.flight_id").
		Join("campaigns c ON c.id = f.campaign_id").
		Where(squirrel.GtOrEq{"ai.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)

	if campaignType != "" {
		builder = builder.Where(squirrel.Eq{"c.campaign_type": campaignType})
	}

	return r.querySlugs(builder)
}

// ListActiveAdvertiserSlugs lista anunciantes com qualquer tráfego no período
func (r *impressionRepository) ListActiveAdvertiserSlugs(startDate, endDate time.Time) ([]string, error) {
	builder := squirrel.
		Select("DISTINCT adv.slug").
		From(adImpressionsTable).
		Join("advertisements ad ON ad.id = ai.advertisement_id").
		Join("flights f ON f.id = ad.flight_id").
		Join("campaigns c ON c.id = f.campaign_id").
		Join("advertisers adv ON adv.id = c.advertiser_id").
		Where(squirrel.GtOrEq{"ai.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySlugs(builder)
}

func (r *impressionRepository) querySlugs(builder squirrel.SelectBuilder) ([]string, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("erro ao escanear slugs: %w", err)
		}
		slugs = append(slugs, slug)
	}

	return slugs, rows.Err()
}

func (r *impressionRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("ad_impressions").
		Where(squirrel.Lt{"date": cutoffDate}).
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

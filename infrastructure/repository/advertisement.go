package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const (
	advertisementsTable = "advertisements ad"
	flightsTable        = "flights f"
	campaignsTable      = "campaigns c"
)

const flightColumns = `f.id, f.slug, f.name, f.campaign_id, f.live, f.priority_multiplier,
	f.cpc, f.cpm, f.start_date, f.end_date, f.sold_clicks, f.sold_impressions,
	f.total_clicks, f.total_views, f.targeting,
	c.id, c.slug, c.name, c.advertiser_id, adv.slug, c.campaign_type`

type AdRepository interface {
	GetAdvertisementByID(id string) (*domain.Advertisement, error)
	GetAdvertisementBySlug(slug string) (*domain.Advertisement, error)
	ListLiveFlights() ([]*domain.Flight, error)
	ListFlightsByAdvertiser(advertiserSlug string) ([]*domain.Flight, error)
	IncrementFlightCounters(flightID string, views, clicks int) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) GetAdvertisementByID(id string) (*domain.Advertisement, error) {
	return r.getAdvertisement(squirrel.Eq{"ad.id": id})
}

func (r *adRepository) GetAdvertisementBySlug(slug string) (*domain.Advertisement, error) {
	return r.getAdvertisement(squirrel.Eq{"ad.slug": slug})
}

func (r *adRepository) getAdvertisement(where squirrel.Eq) (*domain.Advertisement, error) {
	query, args, err := squirrel.
		Select(`ad.id, ad.slug, ad.name, ad.flight_id, ad.live, ad.text, ad.link,
			ad.image_url, ad.ad_types, ad.created_at, ad.updated_at, ` + flightColumns).
		From(advertisementsTable).
		Join("flights f ON f.id = ad.flight_id").
		Join("campaigns c ON c.id = f.campaign_id").
		Join("advertisers adv ON adv.id = c.advertiser_id").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	ad := &domain.Advertisement{}
	flight := &domain.Flight{Campaign: &domain.Campaign{}}
	var imageURL sql.NullString
	var endDate sql.NullTime
	var targetingJSON []byte

	err = row.Scan(
		&ad.ID,
		&ad.Slug,
		&ad.Name,
		&ad.FlightID,
		&ad.Live,
		&ad.Text,
		&ad.Link,
		&imageURL,
		pq.Array(&ad.AdTypes),
		&ad.CreatedAt,
		&ad.UpdatedAt,
		&flight.ID,
		&flight.Slug,
		&flight.Name,
		&flight.CampaignID,
		&flight.Live,
		&flight.PriorityMultiplier,
		&flight.CPC,
		&flight.CPM,
		&flight.StartDate,
		&endDate,
		&flight.SoldClicks,
		&flight.SoldImpressions,
		&flight.TotalClicks,
		&flight.TotalViews,
		&targetingJSON,
		&flight.Campaign.ID,
		&flight.Campaign.Slug,
		&flight.Campaign.Name,
		&flight.Campaign.AdvertiserID,
		&flight.Campaign.AdvertiserSlug,
		&flight.Campaign.CampaignType,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	if imageURL.Valid {
		ad.ImageURL = &imageURL.String
	}
	if endDate.Valid {
		flight.EndDate = endDate.Time
	}
	if targetingJSON != nil {
		if err := json.Unmarshal(targetingJSON, &flight.Targeting); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de targeting: %w", err)
		}
	}

	ad.Flight = flight
	return ad, nil
}

// ListLiveFlights retorna todos os flights ativos com campanha e anúncios
// ativos carregados
func (r *adRepository) ListLiveFlights() ([]*domain.Flight, error) {
	return r.listFlights(squirrel.Eq{"f.live": true}, true)
}

// ListFlightsByAdvertiser retorna todos os flights de um anunciante, ativos ou
// não, com todos os seus anúncios. Usado no detalhamento do relatório
func (r *adRepository) ListFlightsByAdvertiser(advertiserSlug string) ([]*domain.Flight, error) {
	return r.listFlights(squirrel.Eq{"adv.slug": advertiserSlug}, false)
}

func (r *adRepository) listFlights(where squirrel.Eq, liveAdsOnly bool) ([]*domain.Flight, error) {
	query, args, err := squirrel.
		Select(flightColumns).
		From(flightsTable).
		Join("campaigns c ON c.id = f.campaign_id").
		Join("advertisers adv ON adv.id = c.advertiser_id").
		Where(where).
		OrderBy("f.start_date ASC").
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

	flights := make([]*domain.Flight, 0)
	for rows.Next() {
		flight := &domain.Flight{Campaign: &domain.Campaign{}}
		var endDate sql.NullTime
		var targetingJSON []byte

		err := rows.Scan(
			&flight.ID,
			&flight.Slug,
			&flight.Name,
			&flight.CampaignID,
			&flight.Live,
			&flight.PriorityMultiplier,
			&flight.CPC,
			&flight.CPM,
			&flight.StartDate,
			&endDate,
			&flight.SoldClicks,
			&flight.SoldImpressions,
			&flight.TotalClicks,
			&flight.TotalViews,
			&targetingJSON,
			&flight.Campaign.ID,
			&flight.Campaign.Slug,
			&flight.Campaign.Name,
			&flight.Campaign.AdvertiserID,
			&flight.Campaign.AdvertiserSlug,
			&flight.Campaign.CampaignType,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear flights: %w", err)
		}

		if endDate.Valid {
			flight.EndDate = endDate.Time
		}
		if targetingJSON != nil {
			if err := json.Unmarshal(targetingJSON, &flight.Targeting); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de targeting: %w", err)
			}
		}

		flights = append(flights, flight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := r.loadAdvertisements(flights, liveAdsOnly); err != nil {
		return nil, err
	}

	return flights, nil
}

// loadAdvertisements carrega os criativos de cada flight retornado
func (r *adRepository) loadAdvertisements(flights []*domain.Flight, liveOnly bool) error {
	if len(flights) == 0 {
		return nil
	}

	flightIDs := make([]string, 0, len(flights))
	byID := make(map[string]*domain.Flight, len(flights))
	for _, f := range flights {
		flightIDs = append(flightIDs, f.ID)
		byID[f.ID] = f
	}

	where := squirrel.Eq{"ad.flight_id": flightIDs}
	if liveOnly {
		where["ad.live"] = true
	}

	query, args, err := squirrel.
		Select("ad.id, ad.slug, ad.name, ad.flight_id, ad.live, ad.text, ad.link, ad.image_url, ad.ad_types, ad.created_at, ad.updated_at").
		From(advertisementsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ad := &domain.Advertisement{}
		var imageURL sql.NullString

		err := rows.Scan(
			&ad.ID,
			&ad.Slug,
			&ad.Name,
			&ad.FlightID,
			&ad.Live,
			&ad.Text,
			&ad.Link,
			&imageURL,
			pq.Array(&ad.AdTypes),
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("erro ao escanear anúncios: %w", err)
		}

		if imageURL.Valid {
			ad.ImageURL = &imageURL.String
		}

		// Sem o ponteiro de volta para o flight: a lista é serializada
		// dentro do próprio flight e a referência circular quebraria o JSON
		if flight, ok := byID[ad.FlightID]; ok {
			flight.Advertisements = append(flight.Advertisements, ad)
		}
	}

	return rows.Err()
}

// IncrementFlightCounters acumula visualizações e cliques no total do flight
func (r *adRepository) IncrementFlightCounters(flightID string, views, clicks int) error {
	query, args, err := squirrel.
		Update("flights").
		Set("total_views", squirrel.Expr("total_views + ?", views)).
		Set("total_clicks", squirrel.Expr("total_clicks + ?", clicks)).
		Where(squirrel.Eq{"id": flightID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar contadores do flight: %w", err)
	}

	return nil
}

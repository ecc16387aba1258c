package deciding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	cachemocks "github.com/vfg2006/adserver-api/infrastructure/cache/mocks"
	geoipmocks "github.com/vfg2006/adserver-api/infrastructure/integrator/geoip/mocks"
	"github.com/vfg2006/adserver-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPublisherRepository, *mocks.MockAdRepository, *mocks.MockImpressionRepository, *cachemocks.MockOfferStore, *geoipmocks.MockGeoLocator) {
	ctrl := gomock.NewController(t)

	publisherRepo := mocks.NewMockPublisherRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)
	impressionRepo := mocks.NewMockImpressionRepository(ctrl)
	offerStore := cachemocks.NewMockOfferStore(ctrl)
	geo := geoipmocks.NewMockGeoLocator(ctrl)

	service := &Service{
		cfg:            &config.Config{App: config.App{BaseURL: "http://ads.local"}},
		publisherRepo:  publisherRepo,
		adRepo:         adRepo,
		impressionRepo: impressionRepo,
		offerStore:     offerStore,
		geo:            geo,
		randIntn:       func(n int) int { return 0 },
	}

	return service, publisherRepo, adRepo, impressionRepo, offerStore, geo
}

func livePublisher() *domain.Publisher {
	return &domain.Publisher{
		ID:                  "PUB001",
		Slug:                "blog-tecnologia",
		Name:                "Blog Tecnologia",
		RevenueSharePercent: 70,
		UnauthedAdDecisions: true,
	}
}

func liveFlight(id string, targeting domain.FlightTargeting) *domain.Flight {
	return &domain.Flight{
		ID:                 id,
		Slug:               "flight-" + id,
		Live:               true,
		StartDate:          time.Now().UTC().AddDate(0, 0, -10),
		SoldClicks:         1000,
		PriorityMultiplier: 1,
		Targeting:          targeting,
		Campaign: &domain.Campaign{
			Slug:         "campanha-" + id,
			CampaignType: domain.CampaignTypePaid,
		},
		Advertisements: []*domain.Advertisement{
			{
				ID:       "AD-" + id,
				Slug:     "ad-" + id,
				FlightID: id,
				Live:     true,
				Text:     "Texto do anúncio",
				Link:     "https://example.com",
				AdTypes:  []string{"text-v1"},
			},
		},
	}
}

func textPlacement() []*domain.Placement {
	return []*domain.Placement{{DivID: "ad-slot", AdType: "text-v1"}}
}

func TestServiceDecideValidation(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.DecisionRequest
		expected error
	}{
		{
			name:     "Requisição nula retorna erro de publisher",
			request:  nil,
			expected: ErrPublisherRequired,
		},
		{
			name:     "Sem publisher retorna erro",
			request:  &domain.DecisionRequest{Placements: textPlacement()},
			expected: ErrPublisherRequired,
		},
		{
			name:     "Sem espaços de anúncio retorna erro",
			request:  &domain.DecisionRequest{Publisher: "blog-tecnologia"},
			expected: ErrPlacementsRequired,
		},
		{
			name: "Tipo de campanha inválido retorna erro",
			request: &domain.DecisionRequest{
				Publisher:     "blog-tecnologia",
				Placements:    textPlacement(),
				CampaignTypes: []string{"invalido"},
			},
			expected: ErrInvalidCampaignType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, _, _ := newTestService(t)

			offer, err := service.Decide(tt.request)

			assert.Nil(t, offer)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestServiceDecidePublisherChecks(t *testing.T) {
	t.Run("Publisher desconhecido retorna erro", func(t *testing.T) {
		service, publisherRepo, _, _, _, _ := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("fantasma").Return(nil, nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  "fantasma",
			Placements: textPlacement(),
		})

		assert.Nil(t, offer)
		assert.ErrorIs(t, err, ErrPublisherNotFound)
	})

	t.Run("Publisher sem permissão de decisão anônima retorna erro", func(t *testing.T) {
		service, publisherRepo, _, _, _, _ := newTestService(t)

		publisher := livePublisher()
		publisher.UnauthedAdDecisions = false
		publisherRepo.EXPECT().GetBySlug(publisher.Slug).Return(publisher, nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  publisher.Slug,
			Placements: textPlacement(),
		})

		assert.Nil(t, offer)
		assert.ErrorIs(t, err, ErrPublisherNotAllowed)
	})
}

func TestServiceDecide(t *testing.T) {
	t.Run("Nenhum flight elegível retorna oferta nula sem erro", func(t *testing.T) {
		service, publisherRepo, adRepo, _, _, geo := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode(gomock.Any()).Return("BR")
		adRepo.EXPECT().ListLiveFlights().Return([]*domain.Flight{}, nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  "blog-tecnologia",
			Placements: textPlacement(),
		})

		assert.NoError(t, err)
		assert.Nil(t, offer)
	})

	t.Run("Flight elegível gera oferta com URLs de rastreio", func(t *testing.T) {
		service, publisherRepo, adRepo, impressionRepo, offerStore, geo := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode("200.10.10.10").Return("BR")
		adRepo.EXPECT().ListLiveFlights().Return([]*domain.Flight{
			liveFlight("FL001", domain.FlightTargeting{}),
		}, nil)
		offerStore.EXPECT().CreateNonce("AD-FL001", "PUB001").Return("nonce123")
		impressionRepo.EXPECT().AddOffer("AD-FL001", "PUB001", gomock.Any()).Return(nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  "blog-tecnologia",
			Placements: textPlacement(),
			UserIP:     "200.10.10.10",
		})

		assert.NoError(t, err)
		assert.NotNil(t, offer)
		assert.Equal(t, "ad-FL001", offer.ID)
		assert.Equal(t, "nonce123", offer.Nonce)
		assert.Equal(t, "http://ads.local/proxy/ads/AD-FL001/nonce123/view", offer.ViewURL)
		assert.Equal(t, "http://ads.local/proxy/ads/AD-FL001/nonce123/click", offer.Link)
		assert.Equal(t, "text-v1", offer.DisplayType)
		assert.Equal(t, "ad-slot", offer.DivID)
		assert.Equal(t, "paid", offer.CampaignType)
	})

	t.Run("Segmentação geográfica barra país de fora", func(t *testing.T) {
		service, publisherRepo, adRepo, _, _, geo := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode(gomock.Any()).Return("US")
		adRepo.EXPECT().ListLiveFlights().Return([]*domain.Flight{
			liveFlight("FL001", domain.FlightTargeting{IncludeCountries: []string{"BR"}}),
		}, nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  "blog-tecnologia",
			Placements: textPlacement(),
		})

		assert.NoError(t, err)
		assert.Nil(t, offer)
	})

	t.Run("Filtro de tipo de campanha exclui flights de outros tipos", func(t *testing.T) {
		service, publisherRepo, adRepo, _, _, geo := newTestService(t)

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode(gomock.Any()).Return("BR")
		adRepo.EXPECT().ListLiveFlights().Return([]*domain.Flight{
			liveFlight("FL001", domain.FlightTargeting{}), // paid
		}, nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:     "blog-tecnologia",
			Placements:    textPlacement(),
			CampaignTypes: []string{"community"},
		})

		assert.NoError(t, err)
		assert.Nil(t, offer)
	})

	t.Run("Espaço de maior prioridade é atendido primeiro", func(t *testing.T) {
		service, publisherRepo, adRepo, impressionRepo, offerStore, geo := newTestService(t)

		flight := liveFlight("FL001", domain.FlightTargeting{})
		flight.Advertisements[0].AdTypes = []string{"text-v1", "image-v1"}

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode(gomock.Any()).Return("BR")
		adRepo.EXPECT().ListLiveFlights().Return([]*domain.Flight{flight}, nil)
		offerStore.EXPECT().CreateNonce(gomock.Any(), gomock.Any()).Return("nonce123")
		impressionRepo.EXPECT().AddOffer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher: "blog-tecnologia",
			Placements: []*domain.Placement{
				{DivID: "rodape", AdType: "text-v1", Priority: 1},
				{DivID: "topo", AdType: "image-v1", Priority: 10},
			},
		})

		assert.NoError(t, err)
		assert.NotNil(t, offer)
		assert.Equal(t, "topo", offer.DivID)
		assert.Equal(t, "image-v1", offer.DisplayType)
	})

	t.Run("Anúncio forçado ignora o sorteio mas respeita elegibilidade", func(t *testing.T) {
		service, publisherRepo, adRepo, impressionRepo, offerStore, geo := newTestService(t)

		flight := liveFlight("FL001", domain.FlightTargeting{})
		ad := flight.Advertisements[0]
		ad.Flight = flight

		publisherRepo.EXPECT().GetBySlug("blog-tecnologia").Return(livePublisher(), nil)
		geo.EXPECT().CountryCode(gomock.Any()).Return("BR")
		adRepo.EXPECT().GetAdvertisementBySlug("ad-FL001").Return(ad, nil)
		offerStore.EXPECT().CreateNonce("AD-FL001", "PUB001").Return("nonce123")
		impressionRepo.EXPECT().AddOffer("AD-FL001", "PUB001", gomock.Any()).Return(nil)

		offer, err := service.Decide(&domain.DecisionRequest{
			Publisher:  "blog-tecnologia",
			Placements: textPlacement(),
			ForceAd:    "ad-FL001",
		})

		assert.NoError(t, err)
		assert.NotNil(t, offer)
		assert.Equal(t, "ad-FL001", offer.ID)
	})
}

func TestServiceChooseFlight(t *testing.T) {
	service, _, _, _, _, _ := newTestService(t)

	heavy := liveFlight("FL001", domain.FlightTargeting{})
	heavy.PriorityMultiplier = 10
	light := liveFlight("FL002", domain.FlightTargeting{})

	flights := []*domain.Flight{heavy, light}

	t.Run("Sorteio abaixo do peso do primeiro flight escolhe o primeiro", func(t *testing.T) {
		service.randIntn = func(n int) int { return 0 }
		assert.Equal(t, heavy, service.chooseFlight(flights))
	})

	t.Run("Sorteio acima do peso do primeiro flight escolhe o segundo", func(t *testing.T) {
		service.randIntn = func(n int) int { return n - 1 }
		assert.Equal(t, light, service.chooseFlight(flights))
	})
}

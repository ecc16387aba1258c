package deciding

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/infrastructure/cache"
	"github.com/vfg2006/adserver-api/infrastructure/integrator/geoip"
	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// Service implementa a decisão de anúncio: dado um publisher e os espaços
// disponíveis na página, escolhe um flight elegível por sorteio ponderado
// e devolve uma oferta com nonce de uso único
type Service struct {
	cfg            *config.Config
	publisherRepo  repository.PublisherRepository
	adRepo         repository.AdRepository
	impressionRepo repository.ImpressionRepository
	offerStore     cache.OfferStore
	geo            geoip.GeoLocator

	// Sobrescrito em testes para tornar o sorteio determinístico
	randIntn func(n int) int
}

func NewService(
	cfg *config.Config,
	publisherRepo repository.PublisherRepository,
	adRepo repository.AdRepository,
	impressionRepo repository.ImpressionRepository,
	offerStore cache.OfferStore,
	geo geoip.GeoLocator,
) Decider {
	return &Service{
		cfg:            cfg,
		publisherRepo:  publisherRepo,
		adRepo:         adRepo,
		impressionRepo: impressionRepo,
		offerStore:     offerStore,
		geo:            geo,
		randIntn:       rand.Intn,
	}
}

func (s *Service) Decide(req *domain.DecisionRequest) (*domain.Offer, error) {
	if req == nil || req.Publisher == "" {
		return nil, ErrPublisherRequired
	}

	if len(req.Placements) == 0 {
		return nil, ErrPlacementsRequired
	}

	for _, ct := range req.CampaignTypes {
		if !domain.IsValidCampaignType(ct) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCampaignType, ct)
		}
	}

	publisher, err := s.publisherRepo.GetBySlug(req.Publisher)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		return nil, ErrPublisherNotFound
	}
	if !publisher.UnauthedAdDecisions {
		return nil, ErrPublisherNotAllowed
	}

	countryCode := s.geo.CountryCode(req.UserIP)

	// Parâmetro de depuração: limitar a um anúncio específico
	if req.ForceAd != "" {
		return s.decideForcedAd(req, publisher, countryCode)
	}

	flights, err := s.adRepo.ListLiveFlights()
	if err != nil {
		return nil, err
	}

	eligible := s.eligibleFlights(flights, req, countryCode)
	if len(eligible) == 0 {
		logrus.WithFields(logrus.Fields{
			"publisher": req.Publisher,
			"country":   countryCode,
		}).Debug("Nenhum flight elegível para a requisição de decisão")
		return nil, nil
	}

	flight := s.chooseFlight(eligible)
	ad, placement := s.chooseAdvertisement(flight, req.Placements)
	if ad == nil {
		return nil, nil
	}

	return s.makeOffer(ad, placement, publisher, flight)
}

// decideForcedAd resolve o anúncio forçado, ainda sujeito à elegibilidade do flight
func (s *Service) decideForcedAd(req *domain.DecisionRequest, publisher *domain.Publisher, countryCode string) (*domain.Offer, error) {
	ad, err := s.adRepo.GetAdvertisementBySlug(req.ForceAd)
	if err != nil {
		return nil, err
	}
	if ad == nil || !ad.Live || ad.Flight == nil {
		return nil, nil
	}

	if !s.flightEligible(ad.Flight, req, countryCode) {
		return nil, nil
	}

	placement := s.matchPlacement(ad, req.Placements)
	if placement == nil {
		return nil, nil
	}

	return s.makeOffer(ad, placement, publisher, ad.Flight)
}

// eligibleFlights aplica todos os filtros de elegibilidade sobre os flights ativos
func (s *Service) eligibleFlights(flights []*domain.Flight, req *domain.DecisionRequest, countryCode string) []*domain.Flight {
	eligible := make([]*domain.Flight, 0, len(flights))
	for _, flight := range flights {
		if !s.flightEligible(flight, req, countryCode) {
			continue
		}

		// Só considera flights que tenham criativo para algum espaço requisitado
		if _, placement := s.chooseAdvertisementCandidates(flight, req.Placements); placement == nil {
			continue
		}

		eligible = append(eligible, flight)
	}

	return eligible
}

func (s *Service) flightEligible(flight *domain.Flight, req *domain.DecisionRequest, countryCode string) bool {
	today := utils.AdDay()

	if !flight.IsActive(today) {
		return false
	}

	if req.ForceCampaign != "" && (flight.Campaign == nil || flight.Campaign.Slug != req.ForceCampaign) {
		return false
	}

	if len(req.CampaignTypes) > 0 {
		found := false
		for _, ct := range req.CampaignTypes {
			if string(flight.CampaignType()) == ct {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !flight.ShowToGeo(countryCode) {
		return false
	}

	if !flight.ShowToKeywords(req.Keywords) {
		return false
	}

	return true
}

// chooseFlight sorteia um flight ponderado pela prioridade e pelo ritmo de entrega
func (s *Service) chooseFlight(flights []*domain.Flight) *domain.Flight {
	today := utils.AdDay()

	totalWeight := 0
	for _, f := range flights {
		totalWeight += f.SelectionWeight(today)
	}

	if totalWeight == 0 {
		return flights[s.randIntn(len(flights))]
	}

	pick := s.randIntn(totalWeight)
	for _, f := range flights {
		pick -= f.SelectionWeight(today)
		if pick < 0 {
			return f
		}
	}

	return flights[len(flights)-1]
}

// chooseAdvertisement escolhe o criativo do flight para o espaço de maior prioridade
func (s *Service) chooseAdvertisement(flight *domain.Flight, placements []*domain.Placement) (*domain.Advertisement, *domain.Placement) {
	candidates, placement := s.chooseAdvertisementCandidates(flight, placements)
	if placement == nil {
		return nil, nil
	}

	return candidates[s.randIntn(len(candidates))], placement
}

// chooseAdvertisementCandidates percorre os espaços em ordem de prioridade e
// retorna os criativos do flight compatíveis com o primeiro espaço atendível
func (s *Service) chooseAdvertisementCandidates(flight *domain.Flight, placements []*domain.Placement) ([]*domain.Advertisement, *domain.Placement) {
	ordered := make([]*domain.Placement, len(placements))
	copy(ordered, placements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, placement := range ordered {
		candidates := make([]*domain.Advertisement, 0)
		for _, ad := range flight.Advertisements {
			if ad.Live && ad.HasAdType(placement.AdType) {
				candidates = append(candidates, ad)
			}
		}
		if len(candidates) > 0 {
			return candidates, placement
		}
	}

	return nil, nil
}

func (s *Service) matchPlacement(ad *domain.Advertisement, placements []*domain.Placement) *domain.Placement {
	for _, placement := range placements {
		if ad.HasAdType(placement.AdType) {
			return placement
		}
	}
	return nil
}

// makeOffer monta a resposta da decisão, registra o nonce e contabiliza a oferta
func (s *Service) makeOffer(ad *domain.Advertisement, placement *domain.Placement, publisher *domain.Publisher, flight *domain.Flight) (*domain.Offer, error) {
	nonce := s.offerStore.CreateNonce(ad.ID, publisher.ID)

	if err := s.impressionRepo.AddOffer(ad.ID, publisher.ID, utils.AdDay()); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"advertisement": ad.Slug,
			"publisher":     publisher.Slug,
		}).Error("Erro ao contabilizar oferta de anúncio")
	}

	baseURL := s.cfg.App.BaseURL

	offer := &domain.Offer{
		ID:           ad.Slug,
		Text:         ad.Text,
		Body:         ad.Text,
		ImageURL:     ad.ImageURL,
		Link:         fmt.Sprintf("%s/proxy/ads/%s/%s/click", baseURL, ad.ID, nonce),
		ViewURL:      fmt.Sprintf("%s/proxy/ads/%s/%s/view", baseURL, ad.ID, nonce),
		Nonce:        nonce,
		DisplayType:  placement.AdType,
		DivID:        placement.DivID,
		CampaignType: string(flight.CampaignType()),
	}

	return offer, nil
}

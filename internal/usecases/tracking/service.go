package tracking

import (
	"regexp"

	"github.com/mileusna/useragent"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/infrastructure/cache"
	"github.com/vfg2006/adserver-api/infrastructure/integrator/geoip"
	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// TrackRequest carrega o contexto de uma visualização ou clique recebido no proxy
type TrackRequest struct {
	AdvertisementID string
	Nonce           string
	IP              string
	UserAgent       string
	Referrer        string
	StaffUser       bool
}

// TrackResult é o desfecho do rastreio: impressão contabilizada ou descartada
type TrackResult struct {
	Accepted      bool
	Reason        string
	Advertisement *domain.Advertisement
}

// Tracker define a interface de rastreio de visualizações e cliques
type Tracker interface {
	TrackView(req *TrackRequest) (*TrackResult, error)
	TrackClick(req *TrackRequest) (*TrackResult, error)
}

// Service aplica os filtros de validade e contabiliza impressões válidas
// nos agregados diários e nos contadores do flight
type Service struct {
	cfg            *config.Config
	adRepo         repository.AdRepository
	publisherRepo  repository.PublisherRepository
	impressionRepo repository.ImpressionRepository
	offerStore     cache.OfferStore
	clickLimiter   cache.ClickLimiter
	geo            geoip.GeoLocator
	blacklist      []*regexp.Regexp
	internalIPs    map[string]bool
}

func NewService(
	cfg *config.Config,
	adRepo repository.AdRepository,
	publisherRepo repository.PublisherRepository,
	impressionRepo repository.ImpressionRepository,
	offerStore cache.OfferStore,
	clickLimiter cache.ClickLimiter,
	geo geoip.GeoLocator,
) Tracker {
	blacklist := make([]*regexp.Regexp, 0, len(cfg.Tracking.BlacklistedUserAgents))
	for _, pattern := range cfg.Tracking.BlacklistedUserAgents {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			logrus.WithError(err).WithField("pattern", pattern).Warn("Padrão de user agent inválido na blacklist, ignorando")
			continue
		}
		blacklist = append(blacklist, re)
	}

	internalIPs := make(map[string]bool, len(cfg.Tracking.InternalIPs))
	for _, ip := range cfg.Tracking.InternalIPs {
		if ip != "" {
			internalIPs[ip] = true
		}
	}

	return &Service{
		cfg:            cfg,
		adRepo:         adRepo,
		publisherRepo:  publisherRepo,
		impressionRepo: impressionRepo,
		offerStore:     offerStore,
		clickLimiter:   clickLimiter,
		geo:            geo,
		blacklist:      blacklist,
		internalIPs:    internalIPs,
	}
}

func (s *Service) TrackView(req *TrackRequest) (*TrackResult, error) {
	return s.track(req, domain.ImpressionKindView)
}

func (s *Service) TrackClick(req *TrackRequest) (*TrackResult, error) {
	return s.track(req, domain.ImpressionKindClick)
}

func (s *Service) track(req *TrackRequest, kind domain.ImpressionKind) (*TrackResult, error) {
	ad, err := s.adRepo.GetAdvertisementByID(req.AdvertisementID)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdvertisementNotFound
	}

	publisherID, validNonce := s.offerStore.PublisherForNonce(ad.ID, kind, req.Nonce)

	reason := s.ignoreReason(req, ad, kind, publisherID, validNonce)
	if reason != "" {
		logrus.WithFields(logrus.Fields{
			"advertisement": ad.Slug,
			"kind":          kind,
			"reason":        reason,
		}).Debug("Impressão descartada pelos filtros de validade")

		return &TrackResult{Accepted: false, Reason: reason, Advertisement: ad}, nil
	}

	s.offerStore.InvalidateNonce(ad.ID, kind, req.Nonce)

	if err := s.record(ad, kind, publisherID); err != nil {
		return nil, err
	}

	return &TrackResult{Accepted: true, Reason: ReasonBilled, Advertisement: ad}, nil
}

// ignoreReason devolve o motivo para descartar a impressão, ou vazio quando
// ela deve ser contabilizada. A ordem dos filtros segue do mais barato ao
// mais caro e é estável para facilitar a depuração.
func (s *Service) ignoreReason(req *TrackRequest, ad *domain.Advertisement, kind domain.ImpressionKind, publisherID string, validNonce bool) string {
	ua := useragent.Parse(req.UserAgent)

	switch {
	case !validNonce:
		return ReasonStaleNonce
	case ua.Bot:
		return ReasonBot
	case s.internalIPs[req.IP]:
		return ReasonInternalIP
	case ua.Name == "" && ua.OS == "":
		// Provavelmente um bot, proxy ou prefetcher sem user agent reconhecível
		return ReasonUnknownUserAgent
	case req.StaffUser:
		return ReasonStaffUser
	case s.isBlacklisted(req.UserAgent):
		return ReasonBlacklisted
	case publisherID == "":
		return ReasonUnknownPublisher
	case ad.Flight != nil && !ad.Flight.ShowToGeo(s.geo.CountryCode(req.IP)):
		// Raro, mas acontece: o usuário recebeu o anúncio por VPN e
		// clicou depois de desconectar
		return ReasonInvalidTargeting
	case kind == domain.ImpressionKindClick && !s.clickLimiter.Allow(req.IP):
		return ReasonRatelimited
	}

	return ""
}

func (s *Service) isBlacklisted(userAgent string) bool {
	for _, re := range s.blacklist {
		if re.MatchString(userAgent) {
			return true
		}
	}
	return false
}

// record contabiliza a impressão no agregado diário e no total do flight
func (s *Service) record(ad *domain.Advertisement, kind domain.ImpressionKind, publisherID string) error {
	today := utils.AdDay()

	if kind == domain.ImpressionKindClick {
		spend := 0.0
		if ad.Flight != nil {
			spend = ad.Flight.CPC
		}

		if err := s.impressionRepo.AddClick(ad.ID, publisherID, today, spend); err != nil {
			return err
		}

		return s.adRepo.IncrementFlightCounters(ad.FlightID, 0, 1)
	}

	spend := 0.0
	if ad.Flight != nil {
		spend = ad.Flight.CPM / 1000
	}

	if err := s.impressionRepo.AddView(ad.ID, publisherID, today, spend); err != nil {
		return err
	}

	return s.adRepo.IncrementFlightCounters(ad.FlightID, 1, 0)
}

package cache

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/vfg2006/adserver-api/internal/domain"
)

// OfferStore guarda os nonces de ofertas em memória com TTL. Cada oferta gera
// um nonce válido uma única vez por tipo de impressão (view e click), o que
// impede a contagem dupla da mesma oferta.
type OfferStore interface {
	CreateNonce(advertisementID, publisherID string) string
	PublisherForNonce(advertisementID string, kind domain.ImpressionKind, nonce string) (string, bool)
	InvalidateNonce(advertisementID string, kind domain.ImpressionKind, nonce string)
}

type offerStore struct {
	cache    *gocache.Cache
	viewTTL  time.Duration
	clickTTL time.Duration
}

func NewOfferStore(viewTTL, clickTTL time.Duration) OfferStore {
	longest := clickTTL
	if viewTTL > longest {
		longest = viewTTL
	}

	return &offerStore{
		cache:    gocache.New(longest, 10*time.Minute),
		viewTTL:  viewTTL,
		clickTTL: clickTTL,
	}
}

func nonceKey(advertisementID string, kind domain.ImpressionKind, nonce string) string {
	return fmt.Sprintf("advertisement:%s:%s:%s", advertisementID, kind, nonce)
}

// CreateNonce registra um novo nonce para a oferta do anúncio ao publisher,
// válido para uma visualização e um clique dentro dos respectivos TTLs
func (s *offerStore) CreateNonce(advertisementID, publisherID string) string {
	nonce := uuid.New().String()

	s.cache.Set(nonceKey(advertisementID, domain.ImpressionKindView, nonce), publisherID, s.viewTTL)
	s.cache.Set(nonceKey(advertisementID, domain.ImpressionKindClick, nonce), publisherID, s.clickTTL)

	return nonce
}

// PublisherForNonce valida o nonce e retorna o publisher da oferta original
func (s *offerStore) PublisherForNonce(advertisementID string, kind domain.ImpressionKind, nonce string) (string, bool) {
	value, found := s.cache.Get(nonceKey(advertisementID, kind, nonce))
	if !found {
		return "", false
	}

	publisherID, ok := value.(string)
	return publisherID, ok
}

func (s *offerStore) InvalidateNonce(advertisementID string, kind domain.ImpressionKind, nonce string) {
	s.cache.Delete(nonceKey(advertisementID, kind, nonce))
}

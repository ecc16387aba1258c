package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adserver-api/internal/domain"
)

func TestOfferStoreNonceLifecycle(t *testing.T) {
	store := NewOfferStore(time.Minute, time.Minute)

	nonce := store.CreateNonce("AD001", "PUB001")
	require.NotEmpty(t, nonce)

	t.Run("Nonce vale para view e click de forma independente", func(t *testing.T) {
		publisherID, ok := store.PublisherForNonce("AD001", domain.ImpressionKindView, nonce)
		assert.True(t, ok)
		assert.Equal(t, "PUB001", publisherID)

		publisherID, ok = store.PublisherForNonce("AD001", domain.ImpressionKindClick, nonce)
		assert.True(t, ok)
		assert.Equal(t, "PUB001", publisherID)
	})

	t.Run("Invalidar a view não afeta o click", func(t *testing.T) {
		store.InvalidateNonce("AD001", domain.ImpressionKindView, nonce)

		_, ok := store.PublisherForNonce("AD001", domain.ImpressionKindView, nonce)
		assert.False(t, ok)

		_, ok = store.PublisherForNonce("AD001", domain.ImpressionKindClick, nonce)
		assert.True(t, ok)
	})

	t.Run("Nonce não vale para outro anúncio", func(t *testing.T) {
		_, ok := store.PublisherForNonce("AD002", domain.ImpressionKindClick, nonce)
		assert.False(t, ok)
	})

	t.Run("Nonce desconhecido é rejeitado", func(t *testing.T) {
		_, ok := store.PublisherForNonce("AD001", domain.ImpressionKindView, "inventado")
		assert.False(t, ok)
	})
}

func TestOfferStoreNonceExpiration(t *testing.T) {
	store := NewOfferStore(10*time.Millisecond, time.Minute)

	nonce := store.CreateNonce("AD001", "PUB001")

	time.Sleep(20 * time.Millisecond)

	_, ok := store.PublisherForNonce("AD001", domain.ImpressionKindView, nonce)
	assert.False(t, ok, "nonce de view deveria ter expirado")

	_, ok = store.PublisherForNonce("AD001", domain.ImpressionKindClick, nonce)
	assert.True(t, ok, "nonce de click ainda deveria valer")
}

func TestOfferStoreNoncesAreUnique(t *testing.T) {
	store := NewOfferStore(time.Minute, time.Minute)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		nonce := store.CreateNonce("AD001", "PUB001")
		assert.False(t, seen[nonce])
		seen[nonce] = true
	}
}

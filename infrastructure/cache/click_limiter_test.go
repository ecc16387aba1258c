package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClickLimiterAllow(t *testing.T) {
	t.Run("Cliques dentro do limite são aceitos", func(t *testing.T) {
		limiter := NewClickLimiter(3)

		assert.True(t, limiter.Allow("200.1.1.1"))
		assert.True(t, limiter.Allow("200.1.1.1"))
		assert.True(t, limiter.Allow("200.1.1.1"))
	})

	t.Run("Clique acima do limite é descartado", func(t *testing.T) {
		limiter := NewClickLimiter(2)

		assert.True(t, limiter.Allow("200.1.1.1"))
		assert.True(t, limiter.Allow("200.1.1.1"))
		assert.False(t, limiter.Allow("200.1.1.1"))
	})

	t.Run("Limite é contado por IP", func(t *testing.T) {
		limiter := NewClickLimiter(1)

		assert.True(t, limiter.Allow("200.1.1.1"))
		assert.False(t, limiter.Allow("200.1.1.1"))
		assert.True(t, limiter.Allow("200.1.1.2"))
	})

	t.Run("Limite zero desativa o ratelimit", func(t *testing.T) {
		limiter := NewClickLimiter(0)

		for i := 0; i < 50; i++ {
			assert.True(t, limiter.Allow("200.1.1.1"))
		}
	})
}

package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ClickLimiter limita a quantidade de cliques contabilizados por IP dentro
// de uma janela de um minuto. Cliques acima do limite são descartados como
// inválidos pelo rastreio.
type ClickLimiter interface {
	Allow(ip string) bool
}

type clickLimiter struct {
	cache        *gocache.Cache
	maxPerMinute int
}

func NewClickLimiter(maxPerMinute int) ClickLimiter {
	return &clickLimiter{
		cache:        gocache.New(time.Minute, time.Minute),
		maxPerMinute: maxPerMinute,
	}
}

func (l *clickLimiter) Allow(ip string) bool {
	if l.maxPerMinute <= 0 {
		return true
	}

	key := fmt.Sprintf("clicks:%s", ip)

	count, err := l.cache.IncrementInt(key, 1)
	if err != nil {
		// Primeira ocorrência do IP na janela
		l.cache.Set(key, 1, time.Minute)
		return true
	}

	return count <= l.maxPerMinute
}

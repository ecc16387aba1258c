package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extrai o IP real do cliente da requisição, considerando proxies
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// O primeiro IP da lista é o do cliente original
		parts := strings.Split(forwarded, ",")
		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return ip
		}
	}

	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// ClientUserAgent extrai o user agent da requisição
func ClientUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

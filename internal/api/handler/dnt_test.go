package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adserver-api/internal/config"
)

func TestGetDNTStatus(t *testing.T) {
	tests := []struct {
		name             string
		dntHeader        string
		policyURL        string
		expectedTracking string
		expectedPolicy   string
	}{
		{
			name:             "Visitante com o cabeçalho DNT não é rastreado",
			dntHeader:        "1",
			policyURL:        "https://example.com/privacidade",
			expectedTracking: "N",
			expectedPolicy:   "https://example.com/privacidade",
		},
		{
			name:             "Visitante sem o cabeçalho DNT é rastreado",
			expectedTracking: "T",
		},
		{
			name:             "Cabeçalho DNT com valor diferente de 1 indica rastreio",
			dntHeader:        "0",
			expectedTracking: "T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Tracking.DoNotTrack = true
			cfg.Tracking.PrivacyPolicyURL = tt.policyURL

			r := httptest.NewRequest(http.MethodGet, "/.well-known/dnt", nil)
			if tt.dntHeader != "" {
				r.Header.Set("DNT", tt.dntHeader)
			}
			w := httptest.NewRecorder()

			GetDNTStatus(cfg)(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/tracking-status+json", w.Header().Get("Content-Type"))

			var status DNTStatusResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.expectedTracking, status.Tracking)
			assert.Equal(t, tt.expectedPolicy, status.Policy)
		})
	}

	t.Run("Responde 404 quando o DNT está desabilitado", func(t *testing.T) {
		cfg := &config.Config{}

		r := httptest.NewRequest(http.MethodGet, "/.well-known/dnt", nil)
		r.Header.Set("DNT", "1")
		w := httptest.NewRecorder()

		GetDNTStatus(cfg)(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetDNTPolicy(t *testing.T) {
	t.Run("Política servida em texto puro quando o DNT está habilitado", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Tracking.DoNotTrack = true
		cfg.Tracking.PrivacyPolicyURL = "https://example.com/privacidade"

		r := httptest.NewRequest(http.MethodGet, "/.well-known/dnt-policy.txt", nil)
		w := httptest.NewRecorder()

		GetDNTPolicy(cfg)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "não têm dados pessoais coletados")
		assert.Contains(t, w.Body.String(), "https://example.com/privacidade")
	})

	t.Run("Responde 404 quando o DNT está desabilitado", func(t *testing.T) {
		cfg := &config.Config{}

		r := httptest.NewRequest(http.MethodGet, "/.well-known/dnt-policy.txt", nil)
		w := httptest.NewRecorder()

		GetDNTPolicy(cfg)(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

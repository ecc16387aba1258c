package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/tracking"
	trackingmocks "github.com/vfg2006/adserver-api/internal/usecases/tracking/mocks"
	"go.uber.org/mock/gomock"
)

// proxyRequest monta a requisição com os parâmetros de rota que o router
// injetaria no contexto
func proxyRequest(t *testing.T, kind, adID, nonce string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/proxy/ads/"+adID+"/"+nonce+"/"+kind, nil)
	params := httprouter.Params{
		{Key: "id", Value: adID},
		{Key: "nonce", Value: nonce},
	}

	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func TestProxyView(t *testing.T) {
	t.Run("Visualização aceita responde o pixel SVG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackView(gomock.Any()).DoAndReturn(func(req *tracking.TrackRequest) (*tracking.TrackResult, error) {
			assert.Equal(t, "AD001", req.AdvertisementID)
			assert.Equal(t, "nonce123", req.Nonce)
			assert.False(t, req.StaffUser)
			return &tracking.TrackResult{Accepted: true, Reason: ""}, nil
		})

		w := httptest.NewRecorder()
		ProxyView(tracker, nil)(w, proxyRequest(t, "view", "AD001", "nonce123"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, svgPixel, w.Body.String())
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	})

	t.Run("Visualização descartada também responde o pixel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackView(gomock.Any()).Return(&tracking.TrackResult{
			Accepted: false,
			Reason:   "bot",
		}, nil)

		w := httptest.NewRecorder()
		ProxyView(tracker, nil)(w, proxyRequest(t, "view", "AD001", "nonce123"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, svgPixel, w.Body.String())
	})

	t.Run("Motivo do descarte exposto em desenvolvimento", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackView(gomock.Any()).Return(&tracking.TrackResult{
			Accepted: false,
			Reason:   "stale_nonce",
		}, nil)

		w := httptest.NewRecorder()
		ProxyView(tracker, nil)(w, proxyRequest(t, "view", "AD001", "nonce123"))

		assert.Equal(t, "stale_nonce", w.Header().Get("X-Adserver-Reason"))
	})

	t.Run("Motivo do descarte oculto em produção para visitantes comuns", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackView(gomock.Any()).Return(&tracking.TrackResult{
			Accepted: false,
			Reason:   "stale_nonce",
		}, nil)

		w := httptest.NewRecorder()
		ProxyView(tracker, nil)(w, proxyRequest(t, "view", "AD001", "nonce123"))

		assert.Empty(t, w.Header().Get("X-Adserver-Reason"))
	})

	t.Run("Anúncio desconhecido responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackView(gomock.Any()).Return(nil, tracking.ErrAdvertisementNotFound)

		w := httptest.NewRecorder()
		ProxyView(tracker, nil)(w, proxyRequest(t, "view", "FANTASMA", "nonce123"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProxyClick(t *testing.T) {
	t.Run("Clique aceito redireciona para o destino do anúncio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackClick(gomock.Any()).Return(&tracking.TrackResult{
			Accepted:      true,
			Advertisement: &domain.Advertisement{Slug: "AD001", Link: "https://anunciante.example.com/promo"},
		}, nil)

		w := httptest.NewRecorder()
		ProxyClick(tracker, nil)(w, proxyRequest(t, "click", "AD001", "nonce123"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://anunciante.example.com/promo", w.Header().Get("Location"))
		assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	})

	t.Run("Clique descartado redireciona mesmo assim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackClick(gomock.Any()).Return(&tracking.TrackResult{
			Accepted:      false,
			Reason:        "ratelimited",
			Advertisement: &domain.Advertisement{Slug: "AD001", Link: "https://anunciante.example.com/promo"},
		}, nil)

		w := httptest.NewRecorder()
		ProxyClick(tracker, nil)(w, proxyRequest(t, "click", "AD001", "nonce123"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://anunciante.example.com/promo", w.Header().Get("Location"))
	})

	t.Run("Anúncio desconhecido responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracker := trackingmocks.NewMockTracker(ctrl)

		tracker.EXPECT().TrackClick(gomock.Any()).Return(nil, tracking.ErrAdvertisementNotFound)

		w := httptest.NewRecorder()
		ProxyClick(tracker, nil)(w, proxyRequest(t, "click", "FANTASMA", "nonce123"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTrackRequestFrom(t *testing.T) {
	r := proxyRequest(t, "view", "AD001", "nonce123")
	r.Header.Set("X-Forwarded-For", "200.10.10.10, 10.0.0.1")
	r.Header.Set("User-Agent", "Mozilla/5.0")
	r.Header.Set("Referer", "https://blog.example.com/post")

	req := trackRequestFrom(r, nil)

	require.NotNil(t, req)
	assert.Equal(t, "AD001", req.AdvertisementID)
	assert.Equal(t, "nonce123", req.Nonce)
	assert.Equal(t, "200.10.10.10", req.IP)
	assert.Equal(t, "Mozilla/5.0", req.UserAgent)
	assert.Equal(t, "https://blog.example.com/post", req.Referrer)
	assert.False(t, req.StaffUser)
}

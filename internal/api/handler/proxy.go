package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/usecases/authenticating"
	"github.com/vfg2006/adserver-api/internal/usecases/tracking"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
	"github.com/vfg2006/adserver-api/pkg/log"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// svgPixel é a resposta do proxy de visualização: um SVG transparente de 1x1
const svgPixel = `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`

// ProxyView contabiliza a visualização referenciada pelo nonce e responde
// com um pixel SVG, independentemente do resultado do rastreio
func ProxyView(service tracking.Tracker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := trackRequestFrom(r, authenticator)

		result, err := service.TrackView(req)
		if err != nil {
			handleProxyError(w, err)
			return
		}

		writeReasonHeader(w, req.StaffUser, result.Reason)

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		if _, err := w.Write([]byte(svgPixel)); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o pixel de visualização")
		}
	}
}

// ProxyClick contabiliza o clique referenciado pelo nonce e redireciona o
// visitante para o destino do anúncio, mesmo quando o clique é descartado
func ProxyClick(service tracking.Tracker, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := trackRequestFrom(r, authenticator)

		result, err := service.TrackClick(req)
		if err != nil {
			handleProxyError(w, err)
			return
		}

		writeReasonHeader(w, req.StaffUser, result.Reason)

		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		http.Redirect(w, r, result.Advertisement.Link, http.StatusFound)
	}
}

func trackRequestFrom(r *http.Request, authenticator authenticating.Authenticator) *tracking.TrackRequest {
	params := httprouter.ParamsFromContext(r.Context())

	return &tracking.TrackRequest{
		AdvertisementID: params.ByName("id"),
		Nonce:           params.ByName("nonce"),
		IP:              utils.ClientIP(r),
		UserAgent:       utils.ClientUserAgent(r),
		Referrer:        r.Referer(),
		StaffUser:       isStaffRequest(r, authenticator),
	}
}

// isStaffRequest detecta equipes internas testando anúncios em produção.
// O proxy é público, então o token só é inspecionado quando presente
func isStaffRequest(r *http.Request, authenticator authenticating.Authenticator) bool {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return false
	}

	claims, err := authenticator.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	return claims.UserStaff
}

// writeReasonHeader expõe o motivo do descarte para depuração, apenas para
// usuários staff ou em ambiente de desenvolvimento
func writeReasonHeader(w http.ResponseWriter, staffUser bool, reason string) {
	if reason == "" {
		return
	}

	if staffUser || log.IsDevelopment() {
		w.Header().Set("X-Adserver-Reason", reason)
	}
}

func handleProxyError(w http.ResponseWriter, err error) {
	if errors.Is(err, tracking.ErrAdvertisementNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrAdvertisementNotFound, "Anúncio não encontrado", nil)
		return
	}

	logrus.WithError(err).Error("Erro ao rastrear impressão")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao rastrear impressão", nil)
}

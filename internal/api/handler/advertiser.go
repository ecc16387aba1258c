package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/account"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
	"github.com/vfg2006/adserver-api/pkg/middleware"
)

// ListAdvertisers lista os anunciantes visíveis para o usuário autenticado
func ListAdvertisers(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())

		advertisers, err := service.ListAdvertisers(claims)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, advertisers)
	}
}

// GetAdvertiser retorna os dados cadastrais de um anunciante
func GetAdvertiser(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		claims, _ := middleware.ClaimsFromContext(r.Context())

		advertiser, err := service.GetAdvertiser(claims, slug)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, advertiser)
	}
}

// UpdateAdvertiser atualiza os dados cadastrais de um anunciante
func UpdateAdvertiser(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		req := &domain.UpdateAdvertiserRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.Slug = slug

		advertiser, err := service.UpdateAdvertiser(req)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, advertiser)
	}
}

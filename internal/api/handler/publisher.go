package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/account"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
	"github.com/vfg2006/adserver-api/pkg/middleware"
)

// ListPublishers lista os publishers visíveis para o usuário autenticado
func ListPublishers(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())

		publishers, err := service.ListPublishers(claims)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, publishers)
	}
}

// GetPublisher retorna os dados cadastrais de um publisher
func GetPublisher(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		claims, _ := middleware.ClaimsFromContext(r.Context())

		publisher, err := service.GetPublisher(claims, slug)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, publisher)
	}
}

// UpdatePublisher atualiza os dados cadastrais de um publisher
func UpdatePublisher(service account.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		req := &domain.UpdatePublisherRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.Slug = slug

		publisher, err := service.UpdatePublisher(req)
		if err != nil {
			handleAccountError(w, err)
			return
		}

		writeJSON(w, publisher)
	}
}

func handleAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrPublisherNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPublisherNotFound, "Publisher não encontrado", nil)

	case errors.Is(err, account.ErrAdvertiserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAdvertiserNotFound, "Anunciante não encontrado", nil)

	case errors.Is(err, account.ErrAccessDenied):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esse recurso", nil)

	default:
		logrus.WithError(err).Error("Erro ao acessar cadastro")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao acessar cadastro", nil)
	}
}

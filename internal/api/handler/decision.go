package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/deciding"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// GetDecision atende a decisão de anúncio via GET, com os espaços da página
// descritos em listas separadas por pipe (div_ids, ad_types, priorities)
func GetDecision(service deciding.Decider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		req := &domain.DecisionRequest{
			Publisher:     query.Get("publisher"),
			Placements:    parsePlacements(query.Get("div_ids"), query.Get("ad_types"), query.Get("priorities")),
			Keywords:      splitPipe(query.Get("keywords")),
			CampaignTypes: splitPipe(query.Get("campaign_types")),
			ForceAd:       query.Get("force_ad"),
			ForceCampaign: query.Get("force_campaign"),
			UserIP:        query.Get("user_ip"),
			UserUA:        query.Get("user_ua"),
		}

		decide(w, r, service, req)
	}
}

// PostDecision atende a decisão de anúncio via POST com o corpo em JSON,
// usado por integrações server-to-server
func PostDecision(service deciding.Decider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &domain.DecisionRequest{}

		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		decide(w, r, service, req)
	}
}

func decide(w http.ResponseWriter, r *http.Request, service deciding.Decider, req *domain.DecisionRequest) {
	// O IP e o user agent do visitante vêm da conexão quando não são
	// informados explicitamente pela integração
	if req.UserIP == "" {
		req.UserIP = utils.ClientIP(r)
	}
	if req.UserUA == "" {
		req.UserUA = utils.ClientUserAgent(r)
	}

	offer, err := service.Decide(req)
	if err != nil {
		handleDecisionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// Sem anúncio elegível: resposta vazia, nunca um erro
	if offer == nil {
		w.Write([]byte("{}"))
		return
	}

	if err := json.NewEncoder(w).Encode(offer); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta da decisão")
	}
}

func handleDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deciding.ErrPublisherRequired),
		errors.Is(err, deciding.ErrPlacementsRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, deciding.ErrInvalidCampaignType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCampaignType, err.Error(), nil)

	case errors.Is(err, deciding.ErrPublisherNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPublisherNotFound, "Publisher não encontrado", nil)

	case errors.Is(err, deciding.ErrPublisherNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Publisher não aceita decisões sem autenticação", nil)

	default:
		logrus.WithError(err).Error("Erro ao decidir anúncio")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao decidir anúncio", nil)
	}
}

// parsePlacements reconstrói os espaços da página a partir das listas paralelas
// separadas por pipe. Listas de tamanhos diferentes são completadas com defaults
func parsePlacements(divIDs, adTypes, priorities string) []*domain.Placement {
	ids := splitPipe(divIDs)
	types := splitPipe(adTypes)
	prios := splitPipe(priorities)

	placements := make([]*domain.Placement, 0, len(ids))
	for i, id := range ids {
		placement := &domain.Placement{DivID: id}

		if i < len(types) {
			placement.AdType = types[i]
		}
		if i < len(prios) {
			if p, err := strconv.Atoi(prios[i]); err == nil {
				placement.Priority = p
			}
		}

		placements = append(placements, placement)
	}

	return placements
}

func splitPipe(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, "|")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}

	return cleaned
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/deciding"
	decidingmocks "github.com/vfg2006/adserver-api/internal/usecases/deciding/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetDecision(t *testing.T) {
	t.Run("Parâmetros da query viram a requisição de decisão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := decidingmocks.NewMockDecider(ctrl)

		decider.EXPECT().Decide(gomock.Any()).DoAndReturn(func(req *domain.DecisionRequest) (*domain.Offer, error) {
			assert.Equal(t, "blog-tecnologia", req.Publisher)
			require.Len(t, req.Placements, 2)
			assert.Equal(t, "topo", req.Placements[0].DivID)
			assert.Equal(t, "image-v1", req.Placements[0].AdType)
			assert.Equal(t, 10, req.Placements[0].Priority)
			assert.Equal(t, "rodape", req.Placements[1].DivID)
			assert.Equal(t, []string{"golang", "linux"}, req.Keywords)
			assert.Equal(t, []string{"paid"}, req.CampaignTypes)
			return &domain.Offer{ID: "ad-exemplo", Nonce: "nonce123"}, nil
		})

		r := httptest.NewRequest(http.MethodGet,
			"/api/v1/decision?publisher=blog-tecnologia&div_ids=topo|rodape&ad_types=image-v1|text-v1&priorities=10|1&keywords=golang|linux&campaign_types=paid",
			nil)
		w := httptest.NewRecorder()

		GetDecision(decider)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var offer domain.Offer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &offer))
		assert.Equal(t, "ad-exemplo", offer.ID)
	})

	t.Run("Sem anúncio elegível responde objeto vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := decidingmocks.NewMockDecider(ctrl)

		decider.EXPECT().Decide(gomock.Any()).Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/decision?publisher=blog-tecnologia&div_ids=topo&ad_types=text-v1", nil)
		w := httptest.NewRecorder()

		GetDecision(decider)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "{}", strings.TrimSpace(w.Body.String()))
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("Publisher desconhecido vira erro de negócio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := decidingmocks.NewMockDecider(ctrl)

		decider.EXPECT().Decide(gomock.Any()).Return(nil, deciding.ErrPublisherNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/decision?publisher=fantasma&div_ids=topo&ad_types=text-v1", nil)
		w := httptest.NewRecorder()

		GetDecision(decider)(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostDecision(t *testing.T) {
	t.Run("Corpo em JSON é aceito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := decidingmocks.NewMockDecider(ctrl)

		decider.EXPECT().Decide(gomock.Any()).DoAndReturn(func(req *domain.DecisionRequest) (*domain.Offer, error) {
			assert.Equal(t, "blog-tecnologia", req.Publisher)
			assert.Equal(t, "200.10.10.10", req.UserIP) // informado pela integração
			return nil, nil
		})

		body := `{"publisher": "blog-tecnologia", "placements": [{"div_id": "topo", "ad_type": "text-v1"}], "user_ip": "200.10.10.10"}`
		r := httptest.NewRequest(http.MethodPost, "/api/v1/decision", strings.NewReader(body))
		w := httptest.NewRecorder()

		PostDecision(decider)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("JSON inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		decider := decidingmocks.NewMockDecider(ctrl)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/decision", strings.NewReader("{invalido"))
		w := httptest.NewRecorder()

		PostDecision(decider)(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParsePlacements(t *testing.T) {
	tests := []struct {
		name       string
		divIDs     string
		adTypes    string
		priorities string
		expected   int
	}{
		{
			name:     "Listas paralelas completas",
			divIDs:   "topo|rodape",
			adTypes:  "image-v1|text-v1",
			expected: 2,
		},
		{
			name:     "Sem div_ids não há espaços",
			divIDs:   "",
			adTypes:  "text-v1",
			expected: 0,
		},
		{
			name:       "Listas de tamanhos diferentes não quebram",
			divIDs:     "topo|meio|rodape",
			adTypes:    "text-v1",
			priorities: "5",
			expected:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := parsePlacements(tt.divIDs, tt.adTypes, tt.priorities)
			assert.Len(t, placements, tt.expected)
		})
	}
}

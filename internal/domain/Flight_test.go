package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlightIsActive(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		flight   Flight
		expected bool
	}{
		{
			name: "Flight ativo com cliques restantes",
			flight: Flight{
				Live:       true,
				StartDate:  today.AddDate(0, 0, -10),
				SoldClicks: 100,
			},
			expected: true,
		},
		{
			name: "Flight não publicado deve ser inativo",
			flight: Flight{
				Live:       false,
				StartDate:  today.AddDate(0, 0, -10),
				SoldClicks: 100,
			},
			expected: false,
		},
		{
			name: "Flight antes da data de início deve ser inativo",
			flight: Flight{
				Live:       true,
				StartDate:  today.AddDate(0, 0, 1),
				SoldClicks: 100,
			},
			expected: false,
		},
		{
			name: "Flight após a data de fim deve ser inativo",
			flight: Flight{
				Live:       true,
				StartDate:  today.AddDate(0, 0, -30),
				EndDate:    today.AddDate(0, 0, -1),
				SoldClicks: 100,
			},
			expected: false,
		},
		{
			name: "Flight com metas esgotadas deve ser inativo",
			flight: Flight{
				Live:        true,
				StartDate:   today.AddDate(0, 0, -10),
				SoldClicks:  100,
				TotalClicks: 100,
			},
			expected: false,
		},
		{
			name: "Flight de CPM com visualizações restantes",
			flight: Flight{
				Live:            true,
				StartDate:       today.AddDate(0, 0, -10),
				SoldImpressions: 10000,
				TotalViews:      5000,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flight.IsActive(today))
		})
	}
}

func TestFlightSelectionWeight(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		flight   Flight
		expected int
	}{
		{
			name: "Flight de CPC pesa pela meta diária de cliques",
			flight: Flight{
				SoldClicks:         100,
				TotalClicks:        0,
				EndDate:            today.AddDate(0, 0, 9), // 10 dias restantes
				PriorityMultiplier: 1,
			},
			expected: 10,
		},
		{
			name: "Prioridade multiplica o peso",
			flight: Flight{
				SoldClicks:         100,
				EndDate:            today.AddDate(0, 0, 9),
				PriorityMultiplier: 3,
			},
			expected: 30,
		},
		{
			name: "Flight de CPM normaliza a meta por mil",
			flight: Flight{
				SoldImpressions:    100000,
				EndDate:            today.AddDate(0, 0, 9), // 10000 views/dia
				PriorityMultiplier: 1,
			},
			expected: 10,
		},
		{
			name: "Flight de CPM com meta pequena ainda tem peso mínimo",
			flight: Flight{
				SoldImpressions:    500,
				EndDate:            today.AddDate(0, 0, 9),
				PriorityMultiplier: 1,
			},
			expected: 1,
		},
		{
			name: "Prioridade zero é tratada como um",
			flight: Flight{
				SoldClicks:         100,
				EndDate:            today.AddDate(0, 0, 9),
				PriorityMultiplier: 0,
			},
			expected: 10,
		},
		{
			name: "Flight sem data de fim usa meta integral",
			flight: Flight{
				SoldClicks:         7,
				PriorityMultiplier: 1,
			},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flight.SelectionWeight(today))
		})
	}
}

func TestFlightShowToGeo(t *testing.T) {
	tests := []struct {
		name      string
		targeting FlightTargeting
		country   string
		expected  bool
	}{
		{
			name:      "Sem segmentação exibe para qualquer país",
			targeting: FlightTargeting{},
			country:   "BR",
			expected:  true,
		},
		{
			name:      "Lista de inclusão aceita país incluído",
			targeting: FlightTargeting{IncludeCountries: []string{"BR", "PT"}},
			country:   "br",
			expected:  true,
		},
		{
			name:      "Lista de inclusão barra país de fora",
			targeting: FlightTargeting{IncludeCountries: []string{"BR"}},
			country:   "US",
			expected:  false,
		},
		{
			name:      "Lista de inclusão barra país desconhecido",
			targeting: FlightTargeting{IncludeCountries: []string{"BR"}},
			country:   "",
			expected:  false,
		},
		{
			name:      "Lista de exclusão barra país excluído",
			targeting: FlightTargeting{ExcludeCountries: []string{"US"}},
			country:   "US",
			expected:  false,
		},
		{
			name:      "Lista de exclusão não barra país desconhecido",
			targeting: FlightTargeting{ExcludeCountries: []string{"US"}},
			country:   "",
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight := Flight{Targeting: tt.targeting}
			assert.Equal(t, tt.expected, flight.ShowToGeo(tt.country))
		})
	}
}

func TestFlightShowToKeywords(t *testing.T) {
	tests := []struct {
		name      string
		targeting FlightTargeting
		keywords  []string
		expected  bool
	}{
		{
			name:      "Sem keywords segmentadas exibe para qualquer página",
			targeting: FlightTargeting{},
			keywords:  []string{"python"},
			expected:  true,
		},
		{
			name:      "Keyword da página casa com a segmentação",
			targeting: FlightTargeting{IncludeKeywords: []string{"golang", "devops"}},
			keywords:  []string{"linux", "golang"},
			expected:  true,
		},
		{
			name:      "Comparação ignora maiúsculas",
			targeting: FlightTargeting{IncludeKeywords: []string{"Golang"}},
			keywords:  []string{"GOLANG"},
			expected:  true,
		},
		{
			name:      "Página sem keyword segmentada não exibe",
			targeting: FlightTargeting{IncludeKeywords: []string{"golang"}},
			keywords:  []string{"python"},
			expected:  false,
		},
		{
			name:      "Página sem keywords não exibe flight segmentado",
			targeting: FlightTargeting{IncludeKeywords: []string{"golang"}},
			keywords:  nil,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight := Flight{Targeting: tt.targeting}
			assert.Equal(t, tt.expected, flight.ShowToKeywords(tt.keywords))
		})
	}
}

func TestAdvertisementHasAdType(t *testing.T) {
	ad := Advertisement{AdTypes: []string{"text-v1", "image-v1"}}

	assert.True(t, ad.HasAdType("text-v1"))
	assert.True(t, ad.HasAdType("image-v1"))
	assert.False(t, ad.HasAdType("video-v1"))
	assert.False(t, ad.HasAdType(""))
}

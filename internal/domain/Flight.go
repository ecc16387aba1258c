package domain

import (
	"strings"
	"time"
)

// FlightTargeting define as restrições de exibição de um flight
type FlightTargeting struct {
	IncludeCountries []string `json:"include_countries,omitempty"`
	ExcludeCountries []string `json:"exclude_countries,omitempty"`
	IncludeKeywords  []string `json:"include_keywords,omitempty"`
}

// Flight representa um período de veiculação contratado dentro de uma campanha,
// com metas de cliques/visualizações e segmentação própria
type Flight struct {
	ID                 string          `json:"id"`
	Slug               string          `json:"slug"`
	Name               string          `json:"name"`
	CampaignID         string          `json:"campaign_id"`
	Campaign           *Campaign       `json:"campaign,omitempty"`
	Live               bool            `json:"live"`
	PriorityMultiplier int             `json:"priority_multiplier"`
	CPC                float64         `json:"cpc"`
	CPM                float64         `json:"cpm"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	SoldClicks         int             `json:"sold_clicks"`
	SoldImpressions    int             `json:"sold_impressions"`
	TotalClicks        int             `json:"total_clicks"`
	TotalViews         int             `json:"total_views"`
	Targeting          FlightTargeting `json:"targeting"`
	Advertisements     []*Advertisement `json:"advertisements,omitempty"`
}

// IsActive indica se o flight pode veicular anúncios no dia informado
func (f *Flight) IsActive(day time.Time) bool {
	if !f.Live {
		return false
	}

	if day.Before(f.StartDate) {
		return false
	}

	if !f.EndDate.IsZero() && day.After(f.EndDate) {
		return false
	}

	return f.ClicksRemaining() > 0 || f.ViewsRemaining() > 0
}

func (f *Flight) ClicksRemaining() int {
	remaining := f.SoldClicks - f.TotalClicks
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (f *Flight) ViewsRemaining() int {
	remaining := f.SoldImpressions - f.TotalViews
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysRemaining retorna quantos dias de veiculação restam, no mínimo 1
// enquanto o flight estiver dentro do período
func (f *Flight) DaysRemaining(today time.Time) int {
	if f.EndDate.IsZero() {
		return 1
	}

	days := int(f.EndDate.Sub(today).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ClicksNeededToday calcula a meta diária de cliques para manter o ritmo do flight
func (f *Flight) ClicksNeededToday(today time.Time) int {
	remaining := f.ClicksRemaining()
	if remaining == 0 {
		return 0
	}

	needed := remaining / f.DaysRemaining(today)
	if needed < 1 {
		needed = 1
	}
	return needed
}

// ViewsNeededToday calcula a meta diária de visualizações para flights de CPM
func (f *Flight) ViewsNeededToday(today time.Time) int {
	remaining := f.ViewsRemaining()
	if remaining == 0 {
		return 0
	}

	needed := remaining / f.DaysRemaining(today)
	if needed < 1 {
		needed = 1
	}
	return needed
}

// SelectionWeight pondera o flight na escolha aleatória da decisão de anúncio.
// Flights de CPC pesam pela meta diária de cliques; flights de CPM pela meta
// de visualizações normalizada por mil, ambos multiplicados pela prioridade.
func (f *Flight) SelectionWeight(today time.Time) int {
	priority := f.PriorityMultiplier
	if priority < 1 {
		priority = 1
	}

	value := f.ClicksNeededToday(today)
	if value == 0 {
		value = f.ViewsNeededToday(today) / 1000
		if f.ViewsRemaining() > 0 && value < 1 {
			value = 1
		}
	}

	return value * priority
}

// ShowToGeo verifica a segmentação geográfica do flight para o país informado.
// País vazio (geolocalização indisponível) só é barrado por lista de inclusão.
func (f *Flight) ShowToGeo(countryCode string) bool {
	countryCode = strings.ToUpper(countryCode)

	if len(f.Targeting.IncludeCountries) > 0 {
		found := false
		for _, c := range f.Targeting.IncludeCountries {
			if strings.ToUpper(c) == countryCode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, c := range f.Targeting.ExcludeCountries {
		if countryCode != "" && strings.ToUpper(c) == countryCode {
			return false
		}
	}

	return true
}

// ShowToKeywords verifica se alguma keyword da página casa com a segmentação.
// Flights sem keywords segmentadas são exibidos para qualquer página.
func (f *Flight) ShowToKeywords(keywords []string) bool {
	if len(f.Targeting.IncludeKeywords) == 0 {
		return true
	}

	for _, target := range f.Targeting.IncludeKeywords {
		for _, kw := range keywords {
			if strings.EqualFold(target, kw) {
				return true
			}
		}
	}

	return false
}

// CampaignType retorna o tipo da campanha do flight, vazio se não carregada
func (f *Flight) CampaignType() CampaignType {
	if f.Campaign == nil {
		return ""
	}
	return f.Campaign.CampaignType
}

package domain

import (
	"time"

	"github.com/vfg2006/adserver-api/pkg/utils"
)

// AdImpression é o agregado diário de tráfego de um anúncio em um publisher.
// Offers conta quantas vezes o anúncio foi oferecido; Views e Clicks contam
// apenas impressões que passaram pelos filtros de validade.
type AdImpression struct {
	ID               int64        `json:"id"`
	AdvertisementID  string       `json:"advertisement_id"`
	PublisherID      string       `json:"publisher_id"`
	PublisherSlug    string       `json:"publisher_slug"`
	AdvertiserSlug   string       `json:"advertiser_slug"`
	CampaignType     CampaignType `json:"campaign_type"`
	Date             time.Time    `json:"date"`
	Offers           int          `json:"offers"`
	Views            int          `json:"views"`
	Clicks           int          `json:"clicks"`
	Spend            float64      `json:"spend"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CTR retorna a taxa de cliques do agregado em porcentagem
func (i *AdImpression) CTR() float64 {
	return utils.CalculateCTR(i.Clicks, i.Views)
}

// ECPM retorna o custo efetivo por mil visualizações do agregado
func (i *AdImpression) ECPM() float64 {
	return utils.CalculateECPM(i.Spend, i.Views)
}

// FillRate retorna a proporção de ofertas que viraram visualizações
func (i *AdImpression) FillRate() float64 {
	if i.Offers == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(i.Views) / float64(i.Offers) * 100)
}

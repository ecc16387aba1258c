package domain

// CampaignType classifica a origem comercial de uma campanha
type CampaignType string

const (
	// CampaignTypePaid são campanhas pagas por anunciantes
	CampaignTypePaid CampaignType = "paid"
	// CampaignTypeCommunity são campanhas de projetos da comunidade
	CampaignTypeCommunity CampaignType = "community"
	// CampaignTypeHouse são campanhas internas, exibidas quando não há outra elegível
	CampaignTypeHouse CampaignType = "house"
)

// CampaignTypes lista os tipos válidos, na ordem de precedência
var CampaignTypes = []CampaignType{CampaignTypePaid, CampaignTypeCommunity, CampaignTypeHouse}

func IsValidCampaignType(value string) bool {
	for _, ct := range CampaignTypes {
		if string(ct) == value {
			return true
		}
	}
	return false
}

// Campaign agrupa flights de um anunciante sob um mesmo tipo
type Campaign struct {
	ID             string       `json:"id"`
	Slug           string       `json:"slug"`
	Name           string       `json:"name"`
	AdvertiserID   string       `json:"advertiser_id"`
	AdvertiserSlug string       `json:"advertiser_slug"`
	CampaignType   CampaignType `json:"campaign_type"`
}

package domain

// Placement descreve um espaço da página onde um anúncio pode ser inserido
type Placement struct {
	DivID    string `json:"div_id"`
	AdType   string `json:"ad_type"`
	Priority int    `json:"priority,omitempty"`
}

// DecisionRequest agrega os parâmetros de uma requisição de decisão de anúncio
type DecisionRequest struct {
	Publisher     string       `json:"publisher"`
	Placements    []*Placement `json:"placements"`
	Keywords      []string     `json:"keywords,omitempty"`
	CampaignTypes []string     `json:"campaign_types,omitempty"`

	// Parâmetros de depuração: limitam o resultado a um anúncio ou campanha
	ForceAd       string `json:"force_ad,omitempty"`
	ForceCampaign string `json:"force_campaign,omitempty"`

	// Sobrescritas para requisições server-to-server
	UserIP string `json:"user_ip,omitempty"`
	UserUA string `json:"user_ua,omitempty"`
}

// Offer é a resposta da decisão: o anúncio escolhido com as URLs de rastreio.
// O nonce garante que a mesma oferta nunca seja contabilizada duas vezes.
type Offer struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Body         string  `json:"body"`
	ImageURL     *string `json:"image,omitempty"`
	Link         string  `json:"link"`
	ViewURL      string  `json:"view_url"`
	Nonce        string  `json:"nonce"`
	DisplayType  string  `json:"display_type"`
	DivID        string  `json:"div_id"`
	CampaignType string  `json:"campaign_type"`
}

// ImpressionKind diferencia visualizações de cliques no rastreio
type ImpressionKind string

const (
	ImpressionKindView  ImpressionKind = "view"
	ImpressionKindClick ImpressionKind = "click"
)

package domain

import "time"

// Publisher representa um site ou aplicação que exibe anúncios
// e recebe uma fatia da receita gerada por eles
type Publisher struct {
	ID                  string    `json:"id"`
	Slug                string    `json:"slug"`
	Name                string    `json:"name"`
	RevenueSharePercent float64   `json:"revenue_share_percentage"`
	UnauthedAdDecisions bool      `json:"unauthed_ad_decisions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdatePublisherRequest struct {
	Slug                string   `json:"slug"`
	Name                *string  `json:"name,omitempty"`
	RevenueSharePercent *float64 `json:"revenue_share_percentage,omitempty"`
	UnauthedAdDecisions *bool    `json:"unauthed_ad_decisions,omitempty"`
}

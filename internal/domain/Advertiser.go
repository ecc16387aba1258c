package domain

import "time"

// Advertiser representa um anunciante dono de campanhas
type Advertiser struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateAdvertiserRequest struct {
	Slug string  `json:"slug"`
	Name *string `json:"name,omitempty"`
}

package domain

import "time"

// Advertisement representa um criativo veiculado dentro de um flight
type Advertisement struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	FlightID  string    `json:"flight_id"`
	Flight    *Flight   `json:"flight,omitempty"`
	Live      bool      `json:"live"`
	Text      string    `json:"text"`
	Link      string    `json:"link"`
	ImageURL  *string   `json:"image_url,omitempty"`
	AdTypes   []string  `json:"ad_types"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAdType indica se o criativo pode ser exibido no tipo de espaço informado
func (a *Advertisement) HasAdType(adType string) bool {
	for _, t := range a.AdTypes {
		if t == adType {
			return true
		}
	}
	return false
}

package reporting

import "errors"

var (
	ErrPublisherNotFound   = errors.New("publisher não encontrado")
	ErrAdvertiserNotFound  = errors.New("anunciante não encontrado")
	ErrInvalidCampaignType = errors.New("tipo de campanha inválido")
	ErrInvalidPeriod       = errors.New("período inválido, use o formato MM-YYYY")
)

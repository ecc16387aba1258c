package deciding

import "errors"

var (
	// ErrPublisherRequired indica requisição sem o slug do publisher
	ErrPublisherRequired = errors.New("o publisher é obrigatório")
	// ErrPublisherNotFound indica publisher desconhecido
	ErrPublisherNotFound = errors.New("publisher não encontrado")
	// ErrPublisherNotAllowed indica publisher sem permissão para decisões sem autenticação
	ErrPublisherNotAllowed = errors.New("publisher não autorizado a requisitar anúncios sem autenticação")
	// ErrPlacementsRequired indica requisição sem nenhum espaço de anúncio
	ErrPlacementsRequired = errors.New("é necessário informar ao menos um espaço de anúncio")
	// ErrInvalidCampaignType indica um tipo de campanha desconhecido no filtro
	ErrInvalidCampaignType = errors.New("tipo de campanha inválido")
)

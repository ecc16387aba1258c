package deciding

import (
	"github.com/vfg2006/adserver-api/internal/domain"
)

// Decider define a interface da decisão de anúncio
type Decider interface {
	// Decide escolhe um anúncio elegível para a requisição ou retorna nil
	// quando nenhum anúncio pode ser oferecido
	Decide(req *domain.DecisionRequest) (*domain.Offer, error)
}

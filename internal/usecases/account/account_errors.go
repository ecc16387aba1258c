package account

import "errors"

var (
	ErrPublisherNotFound  = errors.New("publisher não encontrado")
	ErrAdvertiserNotFound = errors.New("anunciante não encontrado")
	ErrAccessDenied       = errors.New("usuário não tem acesso a esse recurso")
)

package tracking

import "errors"

var (
	// ErrAdvertisementNotFound indica que o anúncio do proxy não existe
	ErrAdvertisementNotFound = errors.New("anúncio não encontrado")
)

// Motivos pelos quais uma impressão é descartada. São expostos no cabeçalho
// X-Adserver-Reason para depuração por usuários staff.
const (
	ReasonBilled           = "Billed impression"
	ReasonStaleNonce       = "Old/Nonexistent nonce"
	ReasonBot              = "Bot impression"
	ReasonInternalIP       = "Internal IP"
	ReasonUnknownUserAgent = "Unrecognized user agent"
	ReasonStaffUser        = "Staff impression"
	ReasonBlacklisted      = "Blacklisted impression"
	ReasonUnknownPublisher = "Unknown publisher"
	ReasonInvalidTargeting = "Invalid targeting impression"
	ReasonRatelimited      = "Ratelimited impression"
)

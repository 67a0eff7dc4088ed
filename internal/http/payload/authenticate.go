package payload

import (
	"chainboard/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	WalletAddress string `json:"walletAddress"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.WalletAddress, validation.Required, validation.Match(walletRegex)),
		validation.Field(&a.Message, validation.Required),
		validation.Field(&a.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		WalletAddress: a.WalletAddress,
		Message:       a.Message,
		Signature:     a.Signature,
	}
}

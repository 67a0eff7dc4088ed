package payload

import "github.com/jellydator/validation"

type FundRequest struct {
	WalletAddress string `json:"walletAddress"`
}

func (f FundRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.WalletAddress, validation.Required, validation.Match(walletRegex)),
	)
}

package payload

import "regexp"

var walletRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
var signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
var identifierRegex = regexp.MustCompile(`^[0-9a-zA-Z-]{1,64}$`)

package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tokenIssuer "chainboard/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var ErrSignatureMismatch error = errors.New("signature does not match wallet address")

// Authenticator gates the board behind wallet ownership: a caller proves
// control of an address by personal-signing a challenge message and receives
// a session token bound to the normalized address.
type Authenticator struct {
	logs      *zap.SugaredLogger
	jwtIssuer TokenIssuer
}

func NewAuthenticator(logger *zap.SugaredLogger, jwt TokenIssuer) *Authenticator {
	return &Authenticator{
		logs:      logger,
		jwtIssuer: jwt,
	}
}

func (a *Authenticator) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	recovered, err := recoverSigner(msg.Message, msg.Signature)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(recovered, msg.WalletAddress) {
		return "", ErrSignatureMismatch
	}

	wallet := strings.ToLower(msg.WalletAddress)

	tokenInfo := tokenIssuer.TokenInfo{
		Wallet:     wallet,
		Subject:    wallet,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("wallet authenticated", "wallet", wallet)

	return signed, nil
}

// WalletOf returns the normalized wallet address a session token was issued
// for.
func (a *Authenticator) WalletOf(token string) (string, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	wallet, ok := claims["sub"].(string)
	if !ok || wallet == "" {
		return "", tokenIssuer.ErrTokenNotValid
	}

	return wallet, nil
}

// recoverSigner recovers the address behind an EIP-191 personal-sign
// signature over message.
func recoverSigner(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("%w: decode signature: %w", ErrSignatureMismatch, err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", ErrSignatureMismatch
	}

	// wallets return the recovery id as 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("%w: recover public key: %w", ErrSignatureMismatch, err)
	}

	return crypto.PubkeyToAddress(*pubKey).Hex(), nil
}

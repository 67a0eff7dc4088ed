package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"chainboard/internal/core"
	"chainboard/internal/core/fake"
	tokenIssuer "chainboard/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Authenticator", func() {
	var (
		fakeJWT    *fake.TokenIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		authenticator *core.Authenticator

		fakeErr error
	)

	BeforeEach(func() {
		fakeJWT = new(fake.TokenIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		authenticator = core.NewAuthenticator(fakeLogger, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg  core.AuthMessage
			token    string
			err      error
			genToken *jwt.Token
			wallet   string
		)

		BeforeEach(func() {
			key, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())

			wallet = crypto.PubkeyToAddress(key.PublicKey).Hex()
			message := "Sign in to the board"

			sig, sigErr := crypto.Sign(accounts.TextHash([]byte(message)), key)
			Expect(sigErr).NotTo(HaveOccurred())
			// wallets report the recovery id as 27/28
			sig[crypto.RecoveryIDOffset] += 27

			authMsg = core.AuthMessage{
				WalletAddress: wallet,
				Message:       message,
				Signature:     hexutil.Encode(sig),
			}

			genToken = jwt.New(jwt.SigningMethodHS512)
		})

		JustBeforeEach(func() {
			token, err = authenticator.Authenticate(ctx, authMsg)
		})

		When("the signature matches the wallet", func() {
			BeforeEach(func() {
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("issues a session token for the normalized wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info.Wallet).To(Equal(strings.ToLower(wallet)))
				Expect(info.Subject).To(Equal(strings.ToLower(wallet)))
				Expect(info.Expiration).To(Equal(time.Duration(24)))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the signature belongs to another wallet", func() {
			BeforeEach(func() {
				authMsg.WalletAddress = "0x0000000000000000000000000000000000000009"
			})

			It("rejects the login", func() {
				Expect(err).To(MatchError(core.ErrSignatureMismatch))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the signature is not valid hex", func() {
			BeforeEach(func() {
				authMsg.Signature = "0xzz"
			})

			It("rejects the login", func() {
				Expect(err).To(MatchError(core.ErrSignatureMismatch))
			})
		})

		When("the signature has the wrong length", func() {
			BeforeEach(func() {
				authMsg.Signature = "0x1234"
			})

			It("rejects the login", func() {
				Expect(err).To(MatchError(core.ErrSignatureMismatch))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("WalletOf", func() {
		var (
			wallet string
			err    error
		)

		JustBeforeEach(func() {
			wallet, err = authenticator.WalletOf("some.token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub": "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
				}, nil)
			})

			It("returns the bound wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("returns the validation error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("rejects the token", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})

package core_test

import (
	"context"
	"errors"
	"math/big"

	"chainboard/internal/core"
	"chainboard/internal/core/fake"
	"chainboard/internal/ledger"
	"chainboard/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("FundingGate", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLedger *fake.Ledger
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		gate   *core.FundingGate
		amount *big.Int

		wallet  string
		grant   core.FundingGrant
		err     error
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.Ledger)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		amount = big.NewInt(1_000_000_000_000_000_000)

		gate = core.NewFundingGate(fakeLogger, fakeRepo, fakeLedger, amount)

		wallet = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
		fakeErr = errors.New("fake error")

		fakeLedger.TreasuryAddressReturns("0x0000000000000000000000000000000000000007")
		fakeRepo.GetFundingRecordReturns(repository.FundingRecord{}, repository.ErrNotFunded)
		fakeLedger.GetBalanceReturns(big.NewInt(0).Mul(amount, big.NewInt(10)), nil)
	})

	JustBeforeEach(func() {
		grant, err = gate.RequestFunding(ctx, wallet, "203.0.113.9")
	})

	When("the wallet has never been funded", func() {
		BeforeEach(func() {
			fakeLedger.TransferReturns(ledger.Receipt{TransactionHash: "0xfund"}, nil)
		})

		It("claims, transfers, then completes the record", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(grant.TransactionHash).To(Equal("0xfund"))
			Expect(grant.Amount).To(Equal(amount.String()))

			Expect(fakeRepo.ClaimFundingCallCount()).To(Equal(1))
			_, record := fakeRepo.ClaimFundingArgsForCall(0)
			Expect(record.WalletAddress).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
			Expect(record.IPAddress).To(Equal("203.0.113.9"))

			Expect(fakeLedger.TransferCallCount()).To(Equal(1))
			_, to, transferAmount := fakeLedger.TransferArgsForCall(0)
			Expect(to).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
			Expect(transferAmount).To(Equal(amount))

			Expect(fakeRepo.ConfirmFundingCallCount()).To(Equal(1))
			_, confirmedWallet, txHash := fakeRepo.ConfirmFundingArgsForCall(0)
			Expect(confirmedWallet).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
			Expect(txHash).To(Equal("0xfund"))
		})
	})

	When("the address is not a valid hex address", func() {
		BeforeEach(func() {
			wallet = "definitely-not"
		})

		It("rejects the request", func() {
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(fakeLedger.TransferCallCount()).To(Equal(0))
		})
	})

	When("a funding record already exists", func() {
		BeforeEach(func() {
			fakeRepo.GetFundingRecordReturns(repository.FundingRecord{
				WalletAddress: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
			}, nil)
		})

		It("refuses without touching the treasury", func() {
			Expect(err).To(MatchError(core.ErrAlreadyFunded))
			Expect(fakeLedger.GetBalanceCallCount()).To(Equal(0))
			Expect(fakeLedger.TransferCallCount()).To(Equal(0))
		})
	})

	When("a concurrent request wins the claim race", func() {
		BeforeEach(func() {
			fakeRepo.ClaimFundingReturns(repository.ErrAlreadyFunded)
		})

		It("refuses without transferring", func() {
			Expect(err).To(MatchError(core.ErrAlreadyFunded))
			Expect(fakeLedger.TransferCallCount()).To(Equal(0))
		})
	})

	When("the treasury cannot cover the amount", func() {
		BeforeEach(func() {
			fakeLedger.GetBalanceReturns(big.NewInt(1), nil)
		})

		It("refuses without claiming", func() {
			Expect(err).To(MatchError(core.ErrInsufficientTreasury))
			Expect(fakeRepo.ClaimFundingCallCount()).To(Equal(0))
			Expect(fakeLedger.TransferCallCount()).To(Equal(0))
		})
	})

	When("the transfer fails", func() {
		BeforeEach(func() {
			fakeLedger.TransferReturns(ledger.Receipt{}, fakeErr)
		})

		It("releases the claim so the wallet can retry", func() {
			Expect(err).To(MatchError(core.ErrTransferFailed))

			Expect(fakeRepo.ReleaseFundingClaimCallCount()).To(Equal(1))
			_, releasedWallet := fakeRepo.ReleaseFundingClaimArgsForCall(0)
			Expect(releasedWallet).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
			Expect(fakeRepo.ConfirmFundingCallCount()).To(Equal(0))
		})
	})

	When("the record write fails after the transfer", func() {
		BeforeEach(func() {
			fakeLedger.TransferReturns(ledger.Receipt{TransactionHash: "0xfund"}, nil)
			fakeRepo.ConfirmFundingReturns(fakeErr)
		})

		It("reports the orphan and never retries the transfer", func() {
			Expect(err).To(MatchError(core.ErrRecordWrite))
			Expect(err.Error()).To(ContainSubstring("0xfund"))

			Expect(fakeLedger.TransferCallCount()).To(Equal(1))
			Expect(fakeRepo.ReleaseFundingClaimCallCount()).To(Equal(0))
		})
	})
})

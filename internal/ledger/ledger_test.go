package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"chainboard/internal/ledger"
	"chainboard/internal/ledger/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testKeyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
const contractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

var _ = Describe("Service", func() {
	var (
		fakeClient *fake.EthClient
		ctx        context.Context

		service *ledger.Service
		err     error

		fakeErr error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeClient.ChainIDReturns(big.NewInt(1337), nil)

		service, err = ledger.NewService(ctx, fakeClient, contractAddress, testKeyHex, 300*time.Millisecond)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewService", func() {
		It("derives the treasury address from the key", func() {
			key, keyErr := crypto.HexToECDSA(testKeyHex)
			Expect(keyErr).NotTo(HaveOccurred())
			Expect(service.TreasuryAddress()).To(Equal(crypto.PubkeyToAddress(key.PublicKey).Hex()))
		})

		When("the contract address is malformed", func() {
			It("fails", func() {
				_, err := ledger.NewService(ctx, fakeClient, "nope", testKeyHex, time.Second)
				Expect(err).To(MatchError(ContainSubstring("invalid contract address")))
			})
		})

		When("the key is malformed", func() {
			It("fails", func() {
				_, err := ledger.NewService(ctx, fakeClient, contractAddress, "zz", time.Second)
				Expect(err).To(MatchError(ContainSubstring("parse treasury key")))
			})
		})

		When("the chain id cannot be read", func() {
			It("fails", func() {
				fakeClient.ChainIDReturns(nil, fakeErr)
				_, err := ledger.NewService(ctx, fakeClient, contractAddress, testKeyHex, time.Second)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Submit", func() {
		var (
			receipt ledger.Receipt
			call    ledger.Call
		)

		BeforeEach(func() {
			call = ledger.AskCall("q-1", "general")

			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(2_000_000_000), nil)
			fakeClient.EstimateGasReturns(90_000, nil)
			fakeClient.SendTransactionReturns(nil)
		})

		JustBeforeEach(func() {
			receipt, err = service.Submit(ctx, call)
		})

		When("the transaction confirms", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockNumber: big.NewInt(12),
				}, nil)
			})

			It("sends a signed contract call and returns the receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.BlockNumber).To(Equal(uint64(12)))
				Expect(receipt.TransactionHash).NotTo(BeEmpty())

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, tx := fakeClient.SendTransactionArgsForCall(0)
				Expect(tx.To().Hex()).To(Equal(common.HexToAddress(contractAddress).Hex()))
				Expect(tx.Nonce()).To(Equal(uint64(7)))
				Expect(tx.Gas()).To(Equal(uint64(90_000)))

				packed, packErr := ledger.BoardABI.Pack("askQuestion", "q-1", "general")
				Expect(packErr).NotTo(HaveOccurred())
				Expect(tx.Data()).To(Equal(packed))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusFailed,
				}, nil)
			})

			It("returns the hash with ErrReverted", func() {
				Expect(err).To(MatchError(ledger.ErrReverted))
				Expect(receipt.TransactionHash).NotTo(BeEmpty())
			})
		})

		When("no receipt appears before the deadline", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, ethereum.NotFound)
			})

			It("returns the hash with ErrConfirmTimeout", func() {
				Expect(err).To(MatchError(ledger.ErrConfirmTimeout))
				Expect(receipt.TransactionHash).NotTo(BeEmpty())
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeNumerically(">", 1))
			})
		})

		When("sending fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(fakeErr)
			})

			It("returns the error without waiting", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Transfer", func() {
		var (
			receipt ledger.Receipt
			to      string
			amount  *big.Int
		)

		BeforeEach(func() {
			to = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
			amount = big.NewInt(1_000_000)

			fakeClient.PendingNonceAtReturns(1, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
			fakeClient.SendTransactionReturns(nil)
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				BlockNumber: big.NewInt(3),
			}, nil)
		})

		JustBeforeEach(func() {
			receipt, err = service.Transfer(ctx, to, amount)
		})

		It("sends a plain value transfer with the fixed gas limit", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.TransactionHash).NotTo(BeEmpty())

			Expect(fakeClient.EstimateGasCallCount()).To(Equal(0))
			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(tx.To().Hex()).To(Equal(common.HexToAddress(to).Hex()))
			Expect(tx.Value()).To(Equal(amount))
			Expect(tx.Gas()).To(Equal(uint64(21000)))
		})

		When("the target address is malformed", func() {
			BeforeEach(func() {
				to = "nope"
			})

			It("fails before sending", func() {
				Expect(err).To(MatchError(ContainSubstring("invalid transfer target")))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("views", func() {
		Describe("HasQuestion", func() {
			When("the question exists", func() {
				BeforeEach(func() {
					out, packErr := ledger.BoardABI.Methods["getQuestion"].Outputs.Pack(
						common.HexToAddress("0x1"), "general", big.NewInt(100), true)
					Expect(packErr).NotTo(HaveOccurred())
					fakeClient.CallContractReturns(out, nil)
				})

				It("returns true", func() {
					exists, err := service.HasQuestion(ctx, "q-1")
					Expect(err).NotTo(HaveOccurred())
					Expect(exists).To(BeTrue())

					_, msg, _ := fakeClient.CallContractArgsForCall(0)
					Expect(msg.To.Hex()).To(Equal(common.HexToAddress(contractAddress).Hex()))
				})
			})

			When("the question does not exist", func() {
				BeforeEach(func() {
					out, packErr := ledger.BoardABI.Methods["getQuestion"].Outputs.Pack(
						common.Address{}, "", big.NewInt(0), false)
					Expect(packErr).NotTo(HaveOccurred())
					fakeClient.CallContractReturns(out, nil)
				})

				It("returns false", func() {
					exists, err := service.HasQuestion(ctx, "missing")
					Expect(err).NotTo(HaveOccurred())
					Expect(exists).To(BeFalse())
				})
			})

			When("the node call fails", func() {
				BeforeEach(func() {
					fakeClient.CallContractReturns(nil, fakeErr)
				})

				It("returns the error", func() {
					_, err := service.HasQuestion(ctx, "q-1")
					Expect(err).To(MatchError(fakeErr))
				})
			})
		})

		Describe("AnswerIsBest", func() {
			BeforeEach(func() {
				out, packErr := ledger.BoardABI.Methods["getAnswer"].Outputs.Pack(
					common.HexToAddress("0x2"), "q-1", big.NewInt(100), true, true)
				Expect(packErr).NotTo(HaveOccurred())
				fakeClient.CallContractReturns(out, nil)
			})

			It("reads the isBestAnswer flag", func() {
				isBest, err := service.AnswerIsBest(ctx, "a-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(isBest).To(BeTrue())
			})
		})

		Describe("GetUserPoints", func() {
			BeforeEach(func() {
				out, packErr := ledger.BoardABI.Methods["getUserPoints"].Outputs.Pack(big.NewInt(25))
				Expect(packErr).NotTo(HaveOccurred())
				fakeClient.CallContractReturns(out, nil)
			})

			It("returns the contract's point total", func() {
				points, err := service.GetUserPoints(ctx, "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")
				Expect(err).NotTo(HaveOccurred())
				Expect(points.Int64()).To(Equal(int64(25)))
			})
		})
	})

	Describe("GetBalance", func() {
		BeforeEach(func() {
			fakeClient.BalanceAtReturns(big.NewInt(5000), nil)
		})

		It("reads the balance at the latest block", func() {
			balance, err := service.GetBalance(ctx, "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Int64()).To(Equal(int64(5000)))

			_, account, blockNumber := fakeClient.BalanceAtArgsForCall(0)
			Expect(account).To(Equal(common.HexToAddress("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")))
			Expect(blockNumber).To(BeNil())
		})
	})
})

package core_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainboard/internal/core"
	"chainboard/internal/core/fake"
	"chainboard/internal/ledger"
	"chainboard/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Reconciler", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLedger *fake.Ledger
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		reconciler *core.Reconciler

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.Ledger)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		reconciler = core.NewReconciler(fakeLogger, fakeRepo, fakeLedger)

		fakeErr = errors.New("fake error")
	})

	Describe("Perform", func() {
		var (
			action  core.Action
			result  core.ActionResult
			err     error
			receipt ledger.Receipt
		)

		BeforeEach(func() {
			receipt = ledger.Receipt{
				TransactionHash: "0xabc",
				BlockNumber:     42,
			}

			action = core.Action{
				Kind:         core.KindAskQuestion,
				Identifier:   "q-1",
				AuthorWallet: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
				Title:        "How do receipts work?",
				Content:      "Asking for a friend.",
				Category:     "general",
			}
		})

		JustBeforeEach(func() {
			result, err = reconciler.Perform(ctx, action)
		})

		When("asking a question succeeds", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.InsertQuestionReturns(true, nil)
				fakeRepo.AwardQuestionPointsReturns(true, nil)
			})

			It("confirms on chain before writing off chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(result.TransactionHash).To(Equal("0xabc"))
				Expect(result.PointsAwarded).To(Equal(core.AskQuestionPoints))

				Expect(fakeLedger.SubmitCallCount()).To(Equal(1))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(1))
				_, question := fakeRepo.InsertQuestionArgsForCall(0)
				Expect(question.ID).To(Equal("q-1"))
				Expect(question.AuthorWallet).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
				Expect(question.TxHash).To(Equal("0xabc"))

				Expect(fakeRepo.AwardQuestionPointsCallCount()).To(Equal(1))
				_, questionID, wallet, points := fakeRepo.AwardQuestionPointsArgsForCall(0)
				Expect(questionID).To(Equal("q-1"))
				Expect(wallet).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
				Expect(points).To(Equal(core.AskQuestionPoints))

				Expect(reconciler.Pending()).To(BeEmpty())
			})
		})

		When("the identifier was already recorded and awarded", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.InsertQuestionReturns(false, nil)
				fakeRepo.AwardQuestionPointsReturns(false, nil)
			})

			It("does not award points twice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(result.PointsAwarded).To(Equal(0))
				Expect(fakeRepo.AwardQuestionPointsCallCount()).To(Equal(1))
			})
		})

		When("the identifier is missing", func() {
			BeforeEach(func() {
				action.Identifier = ""
			})

			It("rejects the action before submission", func() {
				Expect(err).To(MatchError(core.ErrMissingIdentifier))
				Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the author wallet is not a valid address", func() {
			BeforeEach(func() {
				action.AuthorWallet = "not-an-address"
			})

			It("rejects the action before submission", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(ledger.Receipt{TransactionHash: "0xdead"}, ledger.ErrReverted)
			})

			It("returns the error and writes nothing off chain", func() {
				Expect(err).To(MatchError(ledger.ErrReverted))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(0))
				Expect(reconciler.Pending()).To(BeEmpty())
			})
		})

		When("confirmation times out", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(ledger.Receipt{TransactionHash: "0xpending"}, ledger.ErrConfirmTimeout)
			})

			It("keeps the action pending and writes nothing off chain", func() {
				Expect(err).To(MatchError(ledger.ErrConfirmTimeout))
				Expect(result.Status).To(Equal(core.StatusUnconfirmed))
				Expect(result.TransactionHash).To(Equal("0xpending"))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(0))

				pending := reconciler.Pending()
				Expect(pending).To(HaveLen(1))
				Expect(pending[0].Identifier).To(Equal("q-1"))
				Expect(pending[0].Status).To(Equal(core.StatusUnconfirmed))
			})
		})

		When("the connection drops after the transaction is broadcast", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(
					ledger.Receipt{TransactionHash: "0xpending"},
					fmt.Errorf("await confirmation: %w", context.Canceled))
			})

			It("keeps the action pending instead of dropping it", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(result.Status).To(Equal(core.StatusUnconfirmed))
				Expect(result.TransactionHash).To(Equal("0xpending"))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(0))

				pending := reconciler.Pending()
				Expect(pending).To(HaveLen(1))
				Expect(pending[0].TxHash).To(Equal("0xpending"))
				Expect(pending[0].Status).To(Equal(core.StatusUnconfirmed))
			})
		})

		When("the off-chain write fails after confirmation", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.InsertQuestionReturns(false, fakeErr)
			})

			It("keeps the action pending for a retry and never resubmits", func() {
				Expect(err).To(MatchError(core.ErrReconcileFailed))
				Expect(result.Status).To(Equal(core.StatusReconcileFailed))
				Expect(result.TransactionHash).To(Equal("0xabc"))

				pending := reconciler.Pending()
				Expect(pending).To(HaveLen(1))
				Expect(pending[0].Status).To(Equal(core.StatusReconcileFailed))
				Expect(fakeLedger.SubmitCallCount()).To(Equal(1))
			})
		})

		When("submitting an answer", func() {
			BeforeEach(func() {
				action = core.Action{
					Kind:         core.KindSubmitAnswer,
					Identifier:   "a-1",
					AuthorWallet: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
					Content:      "Like this.",
					QuestionID:   "q-1",
				}
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.GetQuestionReturns(repository.Question{
					ID:           "q-1",
					AuthorWallet: "0x0000000000000000000000000000000000000001",
				}, nil)
				fakeRepo.InsertAnswerReturns(true, nil)
				fakeRepo.AwardAnswerPointsReturns(true, nil)
			})

			It("awards answer points to the author", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.PointsAwarded).To(Equal(core.AnswerQuestionPoints))

				Expect(fakeRepo.InsertAnswerCallCount()).To(Equal(1))
				_, answer := fakeRepo.InsertAnswerArgsForCall(0)
				Expect(answer.ID).To(Equal("a-1"))
				Expect(answer.QuestionID).To(Equal("q-1"))
			})

			When("the question does not exist", func() {
				BeforeEach(func() {
					fakeRepo.GetQuestionReturns(repository.Question{}, repository.ErrQuestionNotFound)
				})

				It("rejects the action before submission", func() {
					Expect(err).To(MatchError(core.ErrQuestionNotFound))
					Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
				})
			})

			When("the author answers their own question", func() {
				BeforeEach(func() {
					fakeRepo.GetQuestionReturns(repository.Question{
						ID:           "q-1",
						AuthorWallet: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
					}, nil)
				})

				It("rejects the action before submission", func() {
					Expect(err).To(MatchError(core.ErrSelfAnswer))
					Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
				})
			})
		})

		When("selecting a best answer", func() {
			BeforeEach(func() {
				action = core.Action{
					Kind:         core.KindSelectBestAnswer,
					Identifier:   "a-1",
					AuthorWallet: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
					QuestionID:   "q-1",
				}
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.GetQuestionReturns(repository.Question{
					ID:           "q-1",
					AuthorWallet: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
				}, nil)
				fakeRepo.GetAnswerReturns(repository.Answer{
					ID:           "a-1",
					QuestionID:   "q-1",
					AuthorWallet: "0x0000000000000000000000000000000000000002",
				}, nil)
				fakeRepo.SetBestAnswerReturns(true, nil)
				fakeRepo.AwardBestAnswerPointsReturns(true, nil)
			})

			It("awards best answer points to the answer author", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.PointsAwarded).To(Equal(core.BestAnswerPoints))

				Expect(fakeRepo.SetBestAnswerCallCount()).To(Equal(1))
				_, questionID, answerID := fakeRepo.SetBestAnswerArgsForCall(0)
				Expect(questionID).To(Equal("q-1"))
				Expect(answerID).To(Equal("a-1"))

				_, answerID, wallet, points := fakeRepo.AwardBestAnswerPointsArgsForCall(0)
				Expect(answerID).To(Equal("a-1"))
				Expect(wallet).To(Equal("0x0000000000000000000000000000000000000002"))
				Expect(points).To(Equal(core.BestAnswerPoints))
			})

			When("the caller is not the question author", func() {
				BeforeEach(func() {
					fakeRepo.GetQuestionReturns(repository.Question{
						ID:           "q-1",
						AuthorWallet: "0x0000000000000000000000000000000000000003",
					}, nil)
				})

				It("rejects the action before submission", func() {
					Expect(err).To(MatchError(core.ErrNotQuestionAuthor))
					Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
				})
			})

			When("the question is already resolved", func() {
				BeforeEach(func() {
					best := "a-0"
					fakeRepo.GetQuestionReturns(repository.Question{
						ID:           "q-1",
						AuthorWallet: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
						BestAnswerID: &best,
					}, nil)
				})

				It("rejects the action before submission", func() {
					Expect(err).To(MatchError(core.ErrAlreadyResolved))
					Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
				})
			})

			When("the answer belongs to another question", func() {
				BeforeEach(func() {
					fakeRepo.GetAnswerReturns(repository.Answer{
						ID:         "a-1",
						QuestionID: "q-2",
					}, nil)
				})

				It("rejects the action before submission", func() {
					Expect(err).To(MatchError(core.ErrAnswerMismatch))
					Expect(fakeLedger.SubmitCallCount()).To(Equal(0))
				})
			})

			When("the replay finds the best answer already set and awarded", func() {
				BeforeEach(func() {
					fakeRepo.SetBestAnswerReturns(false, nil)
					fakeRepo.AwardBestAnswerPointsReturns(false, nil)
				})

				It("treats the write as a no-op and awards nothing", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(result.PointsAwarded).To(Equal(0))
				})
			})
		})
	})

	Describe("Retry", func() {
		var (
			action  core.Action
			result  core.ActionResult
			err     error
			receipt ledger.Receipt
		)

		BeforeEach(func() {
			receipt = ledger.Receipt{TransactionHash: "0xpending"}

			action = core.Action{
				Kind:         core.KindAskQuestion,
				Identifier:   "q-1",
				AuthorWallet: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
				Title:        "title",
				Content:      "content",
				Category:     "general",
			}
		})

		JustBeforeEach(func() {
			result, err = reconciler.Retry(ctx, "q-1")
		})

		When("there is no pending action", func() {
			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrNoSuchPending))
			})
		})

		When("a reconcile-failed action is retried", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.InsertQuestionReturnsOnCall(0, false, fakeErr)
				fakeRepo.InsertQuestionReturnsOnCall(1, true, nil)
				fakeRepo.AwardQuestionPointsReturns(true, nil)

				_, performErr := reconciler.Perform(ctx, action)
				Expect(performErr).To(MatchError(core.ErrReconcileFailed))
			})

			It("replays only the off-chain leg", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(result.PointsAwarded).To(Equal(core.AskQuestionPoints))

				// a single submission for both attempts
				Expect(fakeLedger.SubmitCallCount()).To(Equal(1))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(2))
				Expect(reconciler.Pending()).To(BeEmpty())
			})
		})

		When("the row was written but the award failed", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, nil)
				fakeRepo.InsertQuestionReturnsOnCall(0, true, nil)
				fakeRepo.InsertQuestionReturnsOnCall(1, false, nil)
				fakeRepo.AwardQuestionPointsReturnsOnCall(0, false, fakeErr)
				fakeRepo.AwardQuestionPointsReturnsOnCall(1, true, nil)

				_, performErr := reconciler.Perform(ctx, action)
				Expect(performErr).To(MatchError(core.ErrReconcileFailed))
			})

			It("grants the points on retry even though the row already exists", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(result.PointsAwarded).To(Equal(core.AskQuestionPoints))

				Expect(fakeRepo.AwardQuestionPointsCallCount()).To(Equal(2))
				Expect(reconciler.Pending()).To(BeEmpty())
			})
		})

		When("an unconfirmed action has since landed on the ledger", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, ledger.ErrConfirmTimeout)
				_, performErr := reconciler.Perform(ctx, action)
				Expect(performErr).To(MatchError(ledger.ErrConfirmTimeout))

				fakeLedger.HasQuestionReturns(true, nil)
				fakeRepo.InsertQuestionReturns(true, nil)
			})

			It("reconciles without resubmitting", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))

				Expect(fakeLedger.SubmitCallCount()).To(Equal(1))
				Expect(fakeLedger.HasQuestionCallCount()).To(Equal(1))
				_, identifier := fakeLedger.HasQuestionArgsForCall(0)
				Expect(identifier).To(Equal("q-1"))
			})
		})

		When("an unconfirmed action is still absent from the ledger", func() {
			BeforeEach(func() {
				fakeLedger.SubmitReturns(receipt, ledger.ErrConfirmTimeout)
				_, performErr := reconciler.Perform(ctx, action)
				Expect(performErr).To(MatchError(ledger.ErrConfirmTimeout))

				fakeLedger.HasQuestionReturns(false, nil)
			})

			It("stays pending and writes nothing", func() {
				Expect(err).To(MatchError(core.ErrUnconfirmed))
				Expect(result.Status).To(Equal(core.StatusUnconfirmed))
				Expect(fakeRepo.InsertQuestionCallCount()).To(Equal(0))
				Expect(reconciler.Pending()).To(HaveLen(1))
			})
		})
	})

	Describe("Pending", func() {
		var action core.Action

		BeforeEach(func() {
			action = core.Action{
				Kind:         core.KindAskQuestion,
				Identifier:   "q-1",
				AuthorWallet: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
				Title:        "title",
				Content:      "content",
				Category:     "general",
			}
		})

		When("listed while an action is in flight", func() {
			BeforeEach(func() {
				fakeLedger.SubmitStub = func(ctx context.Context, call ledger.Call) (ledger.Receipt, error) {
					time.Sleep(20 * time.Millisecond)
					return ledger.Receipt{TransactionHash: "0xabc"}, nil
				}
				fakeRepo.InsertQuestionReturns(true, nil)
				fakeRepo.AwardQuestionPointsReturns(true, nil)
			})

			It("serves consistent snapshots", func() {
				done := make(chan struct{})
				go func() {
					defer GinkgoRecover()
					defer close(done)
					for i := 0; i < 200; i++ {
						for _, pending := range reconciler.Pending() {
							Expect(pending.Identifier).To(Equal("q-1"))
						}
					}
				}()

				result, err := reconciler.Perform(ctx, action)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Eventually(done).Should(BeClosed())
			})
		})
	})
})

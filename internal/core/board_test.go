package core_test

import (
	"context"
	"errors"
	"math/big"

	"chainboard/internal/core"
	"chainboard/internal/core/fake"
	"chainboard/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Board", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLedger *fake.Ledger
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		board *core.Board

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.Ledger)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		board = core.NewBoard(fakeLogger, fakeRepo, fakeLedger)

		fakeErr = errors.New("fake error")
	})

	Describe("ListQuestions", func() {
		When("questions exist", func() {
			BeforeEach(func() {
				fakeRepo.ListQuestionsReturns([]repository.Question{
					{ID: "q-1", Title: "first"},
					{ID: "q-2", Title: "second"},
				}, nil)
			})

			It("returns the records and passes the category filter through", func() {
				records, err := board.ListQuestions(ctx, "defi")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("q-1"))

				_, category := fakeRepo.ListQuestionsArgsForCall(0)
				Expect(category).To(Equal("defi"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListQuestionsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				_, err := board.ListQuestions(ctx, "")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("QuestionAnswers", func() {
		When("the question exists", func() {
			BeforeEach(func() {
				fakeRepo.GetQuestionReturns(repository.Question{ID: "q-1"}, nil)
				fakeRepo.ListAnswersReturns([]repository.Answer{
					{ID: "a-1", QuestionID: "q-1"},
				}, nil)
			})

			It("returns the answers", func() {
				records, err := board.QuestionAnswers(ctx, "q-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].ID).To(Equal("a-1"))
			})
		})

		When("the question does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetQuestionReturns(repository.Question{}, repository.ErrQuestionNotFound)
			})

			It("returns question not found", func() {
				_, err := board.QuestionAnswers(ctx, "missing")
				Expect(err).To(MatchError(core.ErrQuestionNotFound))
				Expect(fakeRepo.ListAnswersCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Leaderboard", func() {
		BeforeEach(func() {
			fakeRepo.TopUsersReturns([]repository.User{
				{WalletAddress: "0x1", TotalPoints: 50},
			}, nil)
		})

		It("defaults the limit when none is given", func() {
			_, err := board.Leaderboard(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			_, limit := fakeRepo.TopUsersArgsForCall(0)
			Expect(limit).To(Equal(10))
		})

		It("caps the limit", func() {
			_, err := board.Leaderboard(ctx, 5000)
			Expect(err).NotTo(HaveOccurred())
			_, limit := fakeRepo.TopUsersArgsForCall(0)
			Expect(limit).To(Equal(100))
		})
	})

	Describe("UserProfile", func() {
		var wallet string

		BeforeEach(func() {
			wallet = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					WalletAddress: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
					TotalPoints:   20,
				}, nil)
				fakeLedger.GetUserPointsReturns(big.NewInt(20), nil)
			})

			It("combines the off-chain row with on-chain points", func() {
				profile, err := board.UserProfile(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.TotalPoints).To(Equal(20))
				Expect(profile.OnChainPoints).To(Equal("20"))

				_, arg := fakeRepo.GetUserByWalletArgsForCall(0)
				Expect(arg).To(Equal("0xab5801a7d398351b8be11c439e05c5b3259aec9b"))
			})
		})

		When("the ledger read fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					WalletAddress: "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
				}, nil)
				fakeLedger.GetUserPointsReturns(nil, fakeErr)
			})

			It("still returns the profile without on-chain points", func() {
				profile, err := board.UserProfile(ctx, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.OnChainPoints).To(BeEmpty())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				_, err := board.UserProfile(ctx, wallet)
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("ListCategories", func() {
		BeforeEach(func() {
			fakeRepo.ListCategoriesReturns([]repository.Category{
				{ID: "c-1", Name: "General", Slug: "general", Color: "#888888"},
			}, nil)
		})

		It("returns the category records", func() {
			records, err := board.ListCategories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Slug).To(Equal("general"))
		})
	})
})

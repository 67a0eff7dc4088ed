package repository_test

import (
	"context"
	"errors"

	"chainboard/internal/db"
	"chainboard/internal/repository"
	"chainboard/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoardRepository", func() {
	var (
		repo        *repository.BoardRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBoardRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should migrate tables and seed categories", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Question{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Answer{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.FundingRecord{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.Category{}))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, records := fakeStorage.SaveToTableArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&[]repository.Category{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SaveToTableReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("CreateUserIfMissing", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUserIfMissing(ctx, "0xwallet")
		})

		When("the user is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(nil)
			})

			It("should insert a zero-point row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.WalletAddress).To(Equal("0xwallet"))

				Expect(fakeStorage.InsertOneCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertOneArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(db.ErrDuplicate)
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{WalletAddress: "0xwallet", TotalPoints: 15}
					return nil
				}
			})

			It("should return the existing row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.TotalPoints).To(Equal(15))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddPoints", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.AddPoints(ctx, "0xwallet", 5)
		})

		When("the user row exists", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should increment atomically in the database", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, model, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(updates).To(HaveKey("total_points"))
				Expect(cond).To(Equal("wallet_address = ?"))
				Expect(args).To(Equal([]any{"0xwallet"}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("AwardQuestionPoints", func() {
		var (
			awarded bool
			err     error
		)

		JustBeforeEach(func() {
			awarded, err = repo.AwardQuestionPoints(ctx, "q-1", "0xwallet", 5)
		})

		When("the claim wins", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturnsOnCall(0, 1, nil)
				fakeStorage.UpdateWhereReturnsOnCall(1, 1, nil)
			})

			It("should flip the flag before incrementing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(awarded).To(BeTrue())

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(2))
				_, model, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Question{}))
				Expect(updates).To(HaveKeyWithValue("points_awarded", true))
				Expect(cond).To(Equal("id = ? AND points_awarded = ?"))
				Expect(args).To(Equal([]any{"q-1", false}))
			})
		})

		When("the row was already awarded", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should report a no-op without touching the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(awarded).To(BeFalse())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
			})
		})

		When("the increment fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturnsOnCall(0, 1, nil)
				fakeStorage.UpdateWhereReturnsOnCall(1, 0, nil)
				fakeStorage.UpdateWhereReturnsOnCall(2, 1, nil)
			})

			It("should release the claim so a retry can award", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
				Expect(awarded).To(BeFalse())

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(3))
				_, model, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(2)
				Expect(model).To(BeAssignableToTypeOf(&repository.Question{}))
				Expect(updates).To(HaveKeyWithValue("points_awarded", false))
				Expect(cond).To(Equal("id = ?"))
				Expect(args).To(Equal([]any{"q-1"}))
			})
		})
	})

	Describe("AwardBestAnswerPoints", func() {
		var (
			awarded bool
			err     error
		)

		JustBeforeEach(func() {
			awarded, err = repo.AwardBestAnswerPoints(ctx, "a-1", "0xwallet", 10)
		})

		When("the claim wins", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturnsOnCall(0, 1, nil)
				fakeStorage.UpdateWhereReturnsOnCall(1, 1, nil)
			})

			It("should claim the bonus flag on the answer row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(awarded).To(BeTrue())

				_, model, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Answer{}))
				Expect(updates).To(HaveKeyWithValue("best_points_awarded", true))
				Expect(cond).To(Equal("id = ? AND best_points_awarded = ?"))
				Expect(args).To(Equal([]any{"a-1", false}))
			})
		})
	})

	Describe("InsertQuestion", func() {
		var (
			inserted bool
			err      error
		)

		JustBeforeEach(func() {
			inserted, err = repo.InsertQuestion(ctx, repository.Question{ID: "q-1"})
		})

		When("the identifier is new", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(nil)
			})

			It("should report a fresh insert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
			})
		})

		When("the identifier was already recorded", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(db.ErrDuplicate)
			})

			It("should report a no-op without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SetBestAnswer", func() {
		var (
			applied bool
			err     error
		)

		JustBeforeEach(func() {
			applied, err = repo.SetBestAnswer(ctx, "q-1", "a-1")
		})

		When("the question has no best answer yet", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should win the conditional update and flag the answer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeTrue())

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(2))
				_, _, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(updates).To(Equal(map[string]any{"best_answer_id": "a-1"}))
				Expect(cond).To(Equal("id = ? AND best_answer_id IS NULL"))
				Expect(args).To(Equal([]any{"q-1"}))

				_, model, updates, _, _ := fakeStorage.UpdateWhereArgsForCall(1)
				Expect(model).To(BeAssignableToTypeOf(&repository.Answer{}))
				Expect(updates).To(Equal(map[string]any{"is_best_answer": true}))
			})
		})

		When("the same assignment was already applied", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					best := "a-1"
					q := dest.(*repository.Question)
					*q = repository.Question{ID: "q-1", BestAnswerID: &best}
					return nil
				}
			})

			It("should be a successful no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeFalse())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
			})
		})

		When("a different answer already won", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					best := "a-other"
					q := dest.(*repository.Question)
					*q = repository.Question{ID: "q-1", BestAnswerID: &best}
					return nil
				}
			})

			It("should return already resolved", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyResolved))
				Expect(applied).To(BeFalse())
			})
		})
	})

	Describe("ClaimFunding", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.ClaimFunding(ctx, repository.FundingRecord{WalletAddress: "0xwallet"})
		})

		When("the wallet has never been funded", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(nil)
			})

			It("should insert the claim row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.InsertOneCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertOneArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.FundingRecord{}))
			})
		})

		When("another request already claimed the wallet", func() {
			BeforeEach(func() {
				fakeStorage.InsertOneReturns(db.ErrDuplicate)
			})

			It("should return already funded", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyFunded))
			})
		})
	})

	Describe("ConfirmFunding", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.ConfirmFunding(ctx, "0xwallet", "0xhash")
		})

		When("the claim row exists", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should store the transaction hash", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, updates, cond, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(updates).To(Equal(map[string]any{"transaction_hash": "0xhash"}))
				Expect(cond).To(Equal("wallet_address = ?"))
				Expect(args).To(Equal([]any{"0xwallet"}))
			})
		})

		When("the claim row is gone", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return not funded", func() {
				Expect(err).To(MatchError(repository.ErrNotFunded))
			})
		})
	})

	Describe("ListQuestions", func() {
		var (
			questions []repository.Question
			category  string
			err       error
		)

		BeforeEach(func() {
			category = ""
			fakeStorage.ListOrderedStub = func(ctx context.Context, dest any, order string, limit int, cond string, args ...any) error {
				qs := dest.(*[]repository.Question)
				*qs = []repository.Question{{ID: "q-1"}, {ID: "q-2"}}
				return nil
			}
		})

		JustBeforeEach(func() {
			questions, err = repo.ListQuestions(ctx, category)
		})

		It("should list newest first", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(questions).To(HaveLen(2))

			_, _, order, _, cond, args := fakeStorage.ListOrderedArgsForCall(0)
			Expect(order).To(Equal("created_at DESC"))
			Expect(cond).To(BeEmpty())
			Expect(args).To(BeEmpty())
		})

		When("a category filter is given", func() {
			BeforeEach(func() {
				category = "defi"
			})

			It("should pass the filter through", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, _, _, cond, args := fakeStorage.ListOrderedArgsForCall(0)
				Expect(cond).To(Equal("category = ?"))
				Expect(args).To(Equal([]any{"defi"}))
			})
		})
	})

	Describe("TopUsers", func() {
		BeforeEach(func() {
			fakeStorage.ListOrderedReturns(nil)
		})

		It("should order by points with the given limit", func() {
			_, err := repo.TopUsers(ctx, 10)
			Expect(err).NotTo(HaveOccurred())

			_, _, order, limit, _, _ := fakeStorage.ListOrderedArgsForCall(0)
			Expect(order).To(Equal("total_points DESC"))
			Expect(limit).To(Equal(10))
		})
	})
})

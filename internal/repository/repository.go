package repository

import (
	"context"
	"errors"
	"fmt"

	"chainboard/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrQuestionNotFound error = errors.New("question not found")
var ErrAnswerNotFound error = errors.New("answer not found")
var ErrAlreadyResolved error = errors.New("question already has a best answer")
var ErrAlreadyFunded error = errors.New("wallet already funded")
var ErrNotFunded error = errors.New("wallet not funded")

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) MigrateAndSeed() error {

	err := r.db.MigrateTable(&User{}, &Question{}, &Answer{}, &FundingRecord{}, &Category{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	categories := []Category{
		{ID: uuid.NewString(), Name: "General", Slug: "general", Color: "#64748b"},
		{ID: uuid.NewString(), Name: "Technology", Slug: "technology", Color: "#0ea5e9"},
		{ID: uuid.NewString(), Name: "Blockchain", Slug: "blockchain", Color: "#8b5cf6"},
		{ID: uuid.NewString(), Name: "Finance", Slug: "finance", Color: "#10b981"},
		{ID: uuid.NewString(), Name: "Community", Slug: "community", Color: "#f59e0b"},
	}
	err = r.db.SaveToTable(context.Background(), &categories)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

// CreateUserIfMissing inserts a zero-point user row for the wallet and returns
// the stored row. Losing the insert race to a concurrent session is fine, the
// existing row is returned instead.
func (r *BoardRepository) CreateUserIfMissing(ctx context.Context, wallet string) (User, error) {
	user := User{WalletAddress: wallet}

	err := r.db.InsertOne(ctx, &user)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, db.ErrDuplicate) {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return r.GetUserByWallet(ctx, wallet)
}

func (r *BoardRepository) GetUserByWallet(ctx context.Context, wallet string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) AddPoints(ctx context.Context, wallet string, points int) error {
	rows, err := r.db.UpdateWhere(ctx, &User{},
		map[string]any{"total_points": gorm.Expr("total_points + ?", points)},
		"wallet_address = ?", wallet)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AwardQuestionPoints grants the ask reward for a question at most once. The
// points_awarded flag on the row is claimed with a conditional update before
// the increment, so a replayed reconciliation cannot double-award and an
// award lost to a mid-flight failure can still be granted on retry.
func (r *BoardRepository) AwardQuestionPoints(ctx context.Context, questionID, wallet string, points int) (bool, error) {
	return r.awardOnce(ctx, &Question{}, "points_awarded", questionID, wallet, points)
}

func (r *BoardRepository) AwardAnswerPoints(ctx context.Context, answerID, wallet string, points int) (bool, error) {
	return r.awardOnce(ctx, &Answer{}, "points_awarded", answerID, wallet, points)
}

func (r *BoardRepository) AwardBestAnswerPoints(ctx context.Context, answerID, wallet string, points int) (bool, error) {
	return r.awardOnce(ctx, &Answer{}, "best_points_awarded", answerID, wallet, points)
}

func (r *BoardRepository) awardOnce(ctx context.Context, model any, flag, id, wallet string, points int) (bool, error) {
	rows, err := r.db.UpdateWhere(ctx, model,
		map[string]any{flag: true},
		fmt.Sprintf("id = ? AND %s = ?", flag), id, false)
	if err != nil {
		return false, fmt.Errorf("claim points award: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	if err := r.AddPoints(ctx, wallet, points); err != nil {
		// release the claim so a retry can award again
		if _, releaseErr := r.db.UpdateWhere(ctx, model,
			map[string]any{flag: false}, "id = ?", id); releaseErr != nil {
			return false, fmt.Errorf("award points: %w (release claim: %s)", err, releaseErr)
		}
		return false, fmt.Errorf("award points: %w", err)
	}

	return true, nil
}

// InsertQuestion reports whether the row was freshly created. A duplicate
// identifier means an earlier reconciliation already persisted it.
func (r *BoardRepository) InsertQuestion(ctx context.Context, question Question) (bool, error) {
	err := r.db.InsertOne(ctx, &question)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("insert question: %w", err)
	}
	return true, nil
}

func (r *BoardRepository) InsertAnswer(ctx context.Context, answer Answer) (bool, error) {
	err := r.db.InsertOne(ctx, &answer)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("insert answer: %w", err)
	}
	return true, nil
}

func (r *BoardRepository) GetQuestion(ctx context.Context, id string) (Question, error) {
	var question Question

	err := r.db.GetOneBy(ctx, "id", id, &question)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Question{}, ErrQuestionNotFound
		}
		return Question{}, fmt.Errorf("get question by id: %w", err)
	}

	return question, nil
}

func (r *BoardRepository) GetAnswer(ctx context.Context, id string) (Answer, error) {
	var answer Answer

	err := r.db.GetOneBy(ctx, "id", id, &answer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Answer{}, ErrAnswerNotFound
		}
		return Answer{}, fmt.Errorf("get answer by id: %w", err)
	}

	return answer, nil
}

// SetBestAnswer assigns the best answer through a conditional update so that
// only one of any number of concurrent attempts can win. It reports whether
// this call applied the change: a repeat of an already-applied assignment is a
// successful no-op, any other collision is ErrAlreadyResolved.
func (r *BoardRepository) SetBestAnswer(ctx context.Context, questionID, answerID string) (bool, error) {
	rows, err := r.db.UpdateWhere(ctx, &Question{},
		map[string]any{"best_answer_id": answerID},
		"id = ? AND best_answer_id IS NULL", questionID)
	if err != nil {
		return false, fmt.Errorf("set best answer on question: %w", err)
	}

	if rows == 0 {
		question, err := r.GetQuestion(ctx, questionID)
		if err != nil {
			return false, err
		}
		if question.BestAnswerID != nil && *question.BestAnswerID == answerID {
			return false, nil
		}
		return false, ErrAlreadyResolved
	}

	_, err = r.db.UpdateWhere(ctx, &Answer{},
		map[string]any{"is_best_answer": true},
		"id = ? AND is_best_answer = ?", answerID, false)
	if err != nil {
		return false, fmt.Errorf("flag best answer: %w", err)
	}

	return true, nil
}

func (r *BoardRepository) GetFundingRecord(ctx context.Context, wallet string) (FundingRecord, error) {
	var record FundingRecord

	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return FundingRecord{}, ErrNotFunded
		}
		return FundingRecord{}, fmt.Errorf("get funding record: %w", err)
	}

	return record, nil
}

// ClaimFunding inserts the funding row before any transfer. The primary key on
// wallet_address makes the insert the claim: the loser of a concurrent race
// gets ErrAlreadyFunded and must not transfer.
func (r *BoardRepository) ClaimFunding(ctx context.Context, record FundingRecord) error {
	err := r.db.InsertOne(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrAlreadyFunded
		}
		return fmt.Errorf("claim funding: %w", err)
	}
	return nil
}

func (r *BoardRepository) ConfirmFunding(ctx context.Context, wallet, txHash string) error {
	rows, err := r.db.UpdateWhere(ctx, &FundingRecord{},
		map[string]any{"transaction_hash": txHash},
		"wallet_address = ?", wallet)
	if err != nil {
		return fmt.Errorf("confirm funding: %w", err)
	}
	if rows == 0 {
		return ErrNotFunded
	}
	return nil
}

func (r *BoardRepository) ReleaseFundingClaim(ctx context.Context, wallet string) error {
	err := r.db.DeleteBy(ctx, &FundingRecord{}, "wallet_address", wallet)
	if err != nil {
		return fmt.Errorf("release funding claim: %w", err)
	}
	return nil
}

func (r *BoardRepository) ListQuestions(ctx context.Context, category string) ([]Question, error) {
	questions := []Question{}

	cond, args := "", []any{}
	if category != "" {
		cond, args = "category = ?", []any{category}
	}

	err := r.db.ListOrdered(ctx, &questions, "created_at DESC", 0, cond, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

func (r *BoardRepository) ListAnswers(ctx context.Context, questionID string) ([]Answer, error) {
	answers := []Answer{}

	err := r.db.ListOrdered(ctx, &answers, "created_at ASC", 0, "question_id = ?", questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return answers, nil
}

func (r *BoardRepository) TopUsers(ctx context.Context, limit int) ([]User, error) {
	users := []User{}

	err := r.db.ListOrdered(ctx, &users, "total_points DESC", limit, "")
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}

	return users, nil
}

func (r *BoardRepository) ListCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}

	err := r.db.ListOrdered(ctx, &categories, "name ASC", 0, "")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

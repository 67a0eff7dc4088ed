package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainboard/internal/repository"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")

const defaultLeaderboardSize = 10
const maxLeaderboardSize = 100

// Board is the read side: everything the UI renders comes out of here.
type Board struct {
	logs   *zap.SugaredLogger
	repo   Repository
	ledger Ledger
}

func NewBoard(logger *zap.SugaredLogger, repo Repository, ledgerService Ledger) *Board {
	return &Board{
		logs:   logger,
		repo:   repo,
		ledger: ledgerService,
	}
}

func (b *Board) ListQuestions(ctx context.Context, category string) ([]QuestionRecord, error) {
	questions, err := b.repo.ListQuestions(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	records := make([]QuestionRecord, len(questions))
	for i, q := range questions {
		records[i] = questionToRecord(q)
	}
	return records, nil
}

func (b *Board) QuestionAnswers(ctx context.Context, questionID string) ([]AnswerRecord, error) {
	if _, err := b.repo.GetQuestion(ctx, questionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	answers, err := b.repo.ListAnswers(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	records := make([]AnswerRecord, len(answers))
	for i, a := range answers {
		records[i] = answerToRecord(a)
	}
	return records, nil
}

func (b *Board) Leaderboard(ctx context.Context, limit int) ([]UserRecord, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	users, err := b.repo.TopUsers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = userToRecord(u)
	}
	return records, nil
}

// UserProfile returns the off-chain user row together with the contract's
// point total for the wallet. A ledger read failure only degrades the
// profile, it does not fail it.
func (b *Board) UserProfile(ctx context.Context, wallet string) (UserProfile, error) {
	wallet = strings.ToLower(wallet)

	user, err := b.repo.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, fmt.Errorf("get user: %w", err)
	}

	profile := UserProfile{UserRecord: userToRecord(user)}

	onChain, err := b.ledger.GetUserPoints(ctx, wallet)
	if err != nil {
		b.logs.Errorw("failed to read on-chain points", "wallet", wallet, "error", err)
		return profile, nil
	}
	profile.OnChainPoints = onChain.String()

	return profile, nil
}

func (b *Board) ListCategories(ctx context.Context) ([]CategoryRecord, error) {
	categories, err := b.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	records := make([]CategoryRecord, len(categories))
	for i, c := range categories {
		records[i] = CategoryRecord{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Color: c.Color,
		}
	}
	return records, nil
}

func questionToRecord(q repository.Question) QuestionRecord {
	return QuestionRecord{
		ID:           q.ID,
		AuthorWallet: q.AuthorWallet,
		Title:        q.Title,
		Content:      q.Content,
		Category:     q.Category,
		BestAnswerID: q.BestAnswerID,
		TxHash:       q.TxHash,
		CreatedAt:    q.CreatedAt,
	}
}

func answerToRecord(a repository.Answer) AnswerRecord {
	return AnswerRecord{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		AuthorWallet: a.AuthorWallet,
		Content:      a.Content,
		IsBestAnswer: a.IsBestAnswer,
		TxHash:       a.TxHash,
		CreatedAt:    a.CreatedAt,
	}
}

func userToRecord(u repository.User) UserRecord {
	return UserRecord{
		WalletAddress: u.WalletAddress,
		TotalPoints:   u.TotalPoints,
		CreatedAt:     u.CreatedAt,
	}
}

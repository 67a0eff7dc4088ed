package handler

import (
	"context"
	"net/http"

	"chainboard/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	WalletOf(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name FundingService . FundingService
type FundingService interface {
	RequestFunding(ctx context.Context, walletAddress string, clientIP string) (core.FundingGrant, error)
}

//counterfeiter:generate -o fake -fake-name ActionService . ActionService
type ActionService interface {
	Perform(ctx context.Context, action core.Action) (core.ActionResult, error)
	Retry(ctx context.Context, identifier string) (core.ActionResult, error)
	Pending() []core.PendingAction
}

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	ListQuestions(ctx context.Context, category string) ([]core.QuestionRecord, error)
	QuestionAnswers(ctx context.Context, questionID string) ([]core.AnswerRecord, error)
	Leaderboard(ctx context.Context, limit int) ([]core.UserRecord, error)
	UserProfile(ctx context.Context, walletAddress string) (core.UserProfile, error)
	ListCategories(ctx context.Context) ([]core.CategoryRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

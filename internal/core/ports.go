package core

import (
	"context"
	"math/big"

	"chainboard/internal/ledger"
	"chainboard/internal/repository"
	tokenIssuer "chainboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUserIfMissing(ctx context.Context, wallet string) (repository.User, error)
	GetUserByWallet(ctx context.Context, wallet string) (repository.User, error)
	AwardQuestionPoints(ctx context.Context, questionID, wallet string, points int) (bool, error)
	AwardAnswerPoints(ctx context.Context, answerID, wallet string, points int) (bool, error)
	AwardBestAnswerPoints(ctx context.Context, answerID, wallet string, points int) (bool, error)
	InsertQuestion(ctx context.Context, question repository.Question) (bool, error)
	InsertAnswer(ctx context.Context, answer repository.Answer) (bool, error)
	GetQuestion(ctx context.Context, id string) (repository.Question, error)
	GetAnswer(ctx context.Context, id string) (repository.Answer, error)
	SetBestAnswer(ctx context.Context, questionID, answerID string) (bool, error)
	GetFundingRecord(ctx context.Context, wallet string) (repository.FundingRecord, error)
	ClaimFunding(ctx context.Context, record repository.FundingRecord) error
	ConfirmFunding(ctx context.Context, wallet, txHash string) error
	ReleaseFundingClaim(ctx context.Context, wallet string) error
	ListQuestions(ctx context.Context, category string) ([]repository.Question, error)
	ListAnswers(ctx context.Context, questionID string) ([]repository.Answer, error)
	TopUsers(ctx context.Context, limit int) ([]repository.User, error)
	ListCategories(ctx context.Context) ([]repository.Category, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Submit(ctx context.Context, call ledger.Call) (ledger.Receipt, error)
	Transfer(ctx context.Context, to string, amount *big.Int) (ledger.Receipt, error)
	GetBalance(ctx context.Context, address string) (*big.Int, error)
	TreasuryAddress() string
	HasQuestion(ctx context.Context, identifier string) (bool, error)
	HasAnswer(ctx context.Context, identifier string) (bool, error)
	AnswerIsBest(ctx context.Context, identifier string) (bool, error)
	GetUserPoints(ctx context.Context, wallet string) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

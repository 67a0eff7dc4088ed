package core

import (
	"time"

	"chainboard/internal/ledger"
)

// Point awards mirror the board contract constants.
const (
	AskQuestionPoints    = 5
	AnswerQuestionPoints = 5
	BestAnswerPoints     = 10
)

type ActionKind string

const (
	KindAskQuestion      ActionKind = "ask_question"
	KindSubmitAnswer     ActionKind = "submit_answer"
	KindSelectBestAnswer ActionKind = "select_best_answer"
)

// Action is one submit-then-reconcile request. Identifier is generated by the
// caller before any network call and is shared between the ledger event and
// the off-chain row: the question id for asks, the answer id for answers and
// best-answer selections.
type Action struct {
	Kind         ActionKind
	Identifier   string
	AuthorWallet string
	Title        string
	Content      string
	Category     string
	QuestionID   string
}

type ActionStatus string

const (
	StatusSubmitted       ActionStatus = "submitted"
	StatusUnconfirmed     ActionStatus = "unconfirmed"
	StatusReconcileFailed ActionStatus = "reconcile_failed"
	StatusConfirmed       ActionStatus = "confirmed"
)

// PendingAction is held between transaction submission and completed
// reconciliation. It lives in memory only: a crash loses it and the on-chain
// event becomes an orphan for out-of-band reconciliation.
type PendingAction struct {
	Identifier string
	Kind       ActionKind
	Action     Action
	TxHash     string
	Receipt    *ledger.Receipt
	Status     ActionStatus
	LastError  string
	CreatedAt  time.Time
}

type ActionResult struct {
	Identifier      string       `json:"identifier"`
	TransactionHash string       `json:"transactionHash"`
	Status          ActionStatus `json:"status"`
	PointsAwarded   int          `json:"pointsAwarded"`
}

type AuthMessage struct {
	WalletAddress string `json:"walletAddress"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
}

type FundingGrant struct {
	TransactionHash string `json:"transactionHash"`
	Amount          string `json:"amount"` // wei
}

type QuestionRecord struct {
	ID           string    `json:"id"`
	AuthorWallet string    `json:"authorWallet"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	BestAnswerID *string   `json:"bestAnswerId"`
	TxHash       string    `json:"txHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AnswerRecord struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"questionId"`
	AuthorWallet string    `json:"authorWallet"`
	Content      string    `json:"content"`
	IsBestAnswer bool      `json:"isBestAnswer"`
	TxHash       string    `json:"txHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRecord struct {
	WalletAddress string    `json:"walletAddress"`
	TotalPoints   int       `json:"totalPoints"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserProfile pairs the off-chain totals with the contract's view so
// reconciliation drift is visible.
type UserProfile struct {
	UserRecord
	OnChainPoints string `json:"onChainPoints,omitempty"`
}

type CategoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

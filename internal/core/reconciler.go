package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainboard/internal/ledger"
	"chainboard/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrMissingIdentifier error = errors.New("identifier is required")
var ErrUnknownActionKind error = errors.New("unknown action kind")
var ErrQuestionNotFound error = errors.New("question not found")
var ErrAnswerNotFound error = errors.New("answer not found")
var ErrSelfAnswer error = errors.New("cannot answer your own question")
var ErrNotQuestionAuthor error = errors.New("only the question author can select a best answer")
var ErrAlreadyResolved error = errors.New("question already has a best answer")
var ErrAnswerMismatch error = errors.New("answer does not belong to this question")
var ErrUnconfirmed error = errors.New("transaction not confirmed yet")
var ErrReconcileFailed error = errors.New("off-chain write failed after confirmation")
var ErrNoSuchPending error = errors.New("no pending action with this identifier")

// Reconciler runs the submit-then-persist protocol for board actions: local
// validation, ledger submission, then an idempotent off-chain write keyed by
// the client-generated identifier once the transaction confirms.
type Reconciler struct {
	logs    *zap.SugaredLogger
	repo    Repository
	ledger  Ledger
	pending *pendingStore
}

func NewReconciler(logger *zap.SugaredLogger, repo Repository, ledgerService Ledger) *Reconciler {
	return &Reconciler{
		logs:    logger,
		repo:    repo,
		ledger:  ledgerService,
		pending: newPendingStore(),
	}
}

func (r *Reconciler) Perform(ctx context.Context, action Action) (ActionResult, error) {
	action, err := r.validate(ctx, action)
	if err != nil {
		return ActionResult{}, err
	}

	r.pending.put(action)

	receipt, err := r.ledger.Submit(ctx, buildCall(action))
	if err != nil {
		// rejected or never broadcast: nothing on chain, nothing to reconcile
		if receipt.TransactionHash == "" || errors.Is(err, ledger.ErrReverted) {
			r.pending.drop(action.Identifier)
			return ActionResult{}, fmt.Errorf("submit %s: %w", action.Kind, err)
		}

		// broadcast but final state unknown (confirmation timeout or a cut
		// connection mid-wait): keep the pending action so the caller can
		// poll by identifier and retry the off-chain leg only
		r.pending.update(action.Identifier, func(p *PendingAction) {
			p.TxHash = receipt.TransactionHash
			p.Status = StatusUnconfirmed
			p.LastError = err.Error()
		})
		r.logs.Errorw("action unconfirmed",
			"identifier", action.Identifier,
			"kind", action.Kind,
			"tx_hash", receipt.TransactionHash)
		return ActionResult{
			Identifier:      action.Identifier,
			TransactionHash: receipt.TransactionHash,
			Status:          StatusUnconfirmed,
		}, fmt.Errorf("submit %s: %w", action.Kind, err)
	}

	r.pending.update(action.Identifier, func(p *PendingAction) {
		p.TxHash = receipt.TransactionHash
		p.Receipt = &receipt
	})
	return r.finish(ctx, action, receipt)
}

// Retry re-runs the off-chain leg of a pending action with the same
// identifier. An unconfirmed action is first checked against the ledger by
// identifier; it is never resubmitted.
func (r *Reconciler) Retry(ctx context.Context, identifier string) (ActionResult, error) {
	pending, ok := r.pending.get(identifier)
	if !ok {
		return ActionResult{}, ErrNoSuchPending
	}

	receipt := pending.Receipt
	if receipt == nil {
		confirmed, err := r.eventExists(ctx, pending.Action)
		if err != nil {
			return ActionResult{}, fmt.Errorf("check ledger event: %w", err)
		}
		if !confirmed {
			return ActionResult{
				Identifier:      identifier,
				TransactionHash: pending.TxHash,
				Status:          StatusUnconfirmed,
			}, ErrUnconfirmed
		}
		receipt = &ledger.Receipt{TransactionHash: pending.TxHash}
		r.pending.update(identifier, func(p *PendingAction) {
			p.Receipt = receipt
		})
	}

	return r.finish(ctx, pending.Action, *receipt)
}

func (r *Reconciler) Pending() []PendingAction {
	return r.pending.list()
}

func (r *Reconciler) finish(ctx context.Context, action Action, receipt ledger.Receipt) (ActionResult, error) {
	points, err := r.reconcile(ctx, action, receipt)
	if err != nil {
		r.pending.update(action.Identifier, func(p *PendingAction) {
			p.Status = StatusReconcileFailed
			p.LastError = err.Error()
		})
		r.logs.Errorw("off-chain write failed after confirmation",
			"identifier", action.Identifier,
			"kind", action.Kind,
			"tx_hash", receipt.TransactionHash,
			"error", err)
		return ActionResult{
			Identifier:      action.Identifier,
			TransactionHash: receipt.TransactionHash,
			Status:          StatusReconcileFailed,
		}, fmt.Errorf("%w: %w", ErrReconcileFailed, err)
	}

	r.pending.drop(action.Identifier)

	r.logs.Infow("action reconciled",
		"identifier", action.Identifier,
		"kind", action.Kind,
		"tx_hash", receipt.TransactionHash,
		"points_awarded", points)

	return ActionResult{
		Identifier:      action.Identifier,
		TransactionHash: receipt.TransactionHash,
		Status:          StatusConfirmed,
		PointsAwarded:   points,
	}, nil
}

// validate enforces the board rules locally so invalid actions never reach
// the ledger. It returns the action with a normalized author wallet.
func (r *Reconciler) validate(ctx context.Context, action Action) (Action, error) {
	if action.Identifier == "" {
		return Action{}, ErrMissingIdentifier
	}
	if !common.IsHexAddress(action.AuthorWallet) {
		return Action{}, ErrInvalidAddress
	}
	action.AuthorWallet = strings.ToLower(action.AuthorWallet)

	switch action.Kind {
	case KindAskQuestion:
		return action, nil

	case KindSubmitAnswer:
		question, err := r.getQuestion(ctx, action.QuestionID)
		if err != nil {
			return Action{}, err
		}
		if question.AuthorWallet == action.AuthorWallet {
			return Action{}, ErrSelfAnswer
		}
		return action, nil

	case KindSelectBestAnswer:
		question, err := r.getQuestion(ctx, action.QuestionID)
		if err != nil {
			return Action{}, err
		}
		if question.AuthorWallet != action.AuthorWallet {
			return Action{}, ErrNotQuestionAuthor
		}
		if question.BestAnswerID != nil {
			return Action{}, ErrAlreadyResolved
		}
		answer, err := r.repo.GetAnswer(ctx, action.Identifier)
		if err != nil {
			if errors.Is(err, repository.ErrAnswerNotFound) {
				return Action{}, ErrAnswerNotFound
			}
			return Action{}, fmt.Errorf("get answer: %w", err)
		}
		if answer.QuestionID != question.ID {
			return Action{}, ErrAnswerMismatch
		}
		return action, nil

	default:
		return Action{}, ErrUnknownActionKind
	}
}

// reconcile performs the off-chain write for a confirmed action. Inserts are
// idempotent on identifier and every award is gated by a points-awarded claim
// on the row itself, so replays after a crash or a partial failure cannot
// duplicate rows or double-award points, and an award whose increment failed
// mid-flight is granted on retry.
func (r *Reconciler) reconcile(ctx context.Context, action Action, receipt ledger.Receipt) (int, error) {
	if _, err := r.repo.CreateUserIfMissing(ctx, action.AuthorWallet); err != nil {
		return 0, fmt.Errorf("ensure user: %w", err)
	}

	switch action.Kind {
	case KindAskQuestion:
		if _, err := r.repo.InsertQuestion(ctx, repository.Question{
			ID:           action.Identifier,
			AuthorWallet: action.AuthorWallet,
			Title:        action.Title,
			Content:      action.Content,
			Category:     action.Category,
			TxHash:       receipt.TransactionHash,
		}); err != nil {
			return 0, fmt.Errorf("insert question: %w", err)
		}
		awarded, err := r.repo.AwardQuestionPoints(ctx, action.Identifier, action.AuthorWallet, AskQuestionPoints)
		if err != nil {
			return 0, fmt.Errorf("award ask points: %w", err)
		}
		if !awarded {
			return 0, nil
		}
		return AskQuestionPoints, nil

	case KindSubmitAnswer:
		if _, err := r.repo.InsertAnswer(ctx, repository.Answer{
			ID:           action.Identifier,
			QuestionID:   action.QuestionID,
			AuthorWallet: action.AuthorWallet,
			Content:      action.Content,
			TxHash:       receipt.TransactionHash,
		}); err != nil {
			return 0, fmt.Errorf("insert answer: %w", err)
		}
		awarded, err := r.repo.AwardAnswerPoints(ctx, action.Identifier, action.AuthorWallet, AnswerQuestionPoints)
		if err != nil {
			return 0, fmt.Errorf("award answer points: %w", err)
		}
		if !awarded {
			return 0, nil
		}
		return AnswerQuestionPoints, nil

	case KindSelectBestAnswer:
		if _, err := r.repo.SetBestAnswer(ctx, action.QuestionID, action.Identifier); err != nil {
			if errors.Is(err, repository.ErrAlreadyResolved) {
				return 0, ErrAlreadyResolved
			}
			return 0, fmt.Errorf("set best answer: %w", err)
		}
		answer, err := r.repo.GetAnswer(ctx, action.Identifier)
		if err != nil {
			return 0, fmt.Errorf("get best answer author: %w", err)
		}
		if _, err := r.repo.CreateUserIfMissing(ctx, answer.AuthorWallet); err != nil {
			return 0, fmt.Errorf("ensure answer author: %w", err)
		}
		awarded, err := r.repo.AwardBestAnswerPoints(ctx, action.Identifier, answer.AuthorWallet, BestAnswerPoints)
		if err != nil {
			return 0, fmt.Errorf("award best answer points: %w", err)
		}
		if !awarded {
			return 0, nil
		}
		return BestAnswerPoints, nil

	default:
		return 0, ErrUnknownActionKind
	}
}

func (r *Reconciler) getQuestion(ctx context.Context, id string) (repository.Question, error) {
	question, err := r.repo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return repository.Question{}, ErrQuestionNotFound
		}
		return repository.Question{}, fmt.Errorf("get question: %w", err)
	}
	return question, nil
}

func (r *Reconciler) eventExists(ctx context.Context, action Action) (bool, error) {
	switch action.Kind {
	case KindAskQuestion:
		return r.ledger.HasQuestion(ctx, action.Identifier)
	case KindSubmitAnswer:
		return r.ledger.HasAnswer(ctx, action.Identifier)
	case KindSelectBestAnswer:
		return r.ledger.AnswerIsBest(ctx, action.Identifier)
	default:
		return false, ErrUnknownActionKind
	}
}

func buildCall(action Action) ledger.Call {
	switch action.Kind {
	case KindSubmitAnswer:
		return ledger.AnswerCall(action.Identifier, action.QuestionID)
	case KindSelectBestAnswer:
		return ledger.BestAnswerCall(action.Identifier, action.QuestionID)
	default:
		return ledger.AskCall(action.Identifier, action.Category)
	}
}

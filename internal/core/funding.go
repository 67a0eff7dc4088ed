package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"chainboard/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrInvalidAddress error = errors.New("invalid wallet address")
var ErrAlreadyFunded error = errors.New("wallet already funded")
var ErrInsufficientTreasury error = errors.New("insufficient treasury balance")
var ErrTransferFailed error = errors.New("funding transfer failed")
var ErrRecordWrite error = errors.New("funding record write failed after transfer")

// FundingGate sends the one-time subsidy from the treasury to a new wallet.
// The funding-record insert is the claim: whichever request inserts first owns
// the right to transfer, everyone else gets ErrAlreadyFunded.
type FundingGate struct {
	logs   *zap.SugaredLogger
	repo   Repository
	ledger Ledger
	amount *big.Int
}

func NewFundingGate(logger *zap.SugaredLogger, repo Repository, ledgerService Ledger, amount *big.Int) *FundingGate {
	return &FundingGate{
		logs:   logger,
		repo:   repo,
		ledger: ledgerService,
		amount: amount,
	}
}

func (g *FundingGate) RequestFunding(ctx context.Context, walletAddress, clientIP string) (FundingGrant, error) {
	if !common.IsHexAddress(walletAddress) {
		return FundingGrant{}, ErrInvalidAddress
	}

	wallet := strings.ToLower(walletAddress)

	_, err := g.repo.GetFundingRecord(ctx, wallet)
	if err == nil {
		return FundingGrant{}, ErrAlreadyFunded
	}
	if !errors.Is(err, repository.ErrNotFunded) {
		return FundingGrant{}, fmt.Errorf("get funding record: %w", err)
	}

	balance, err := g.ledger.GetBalance(ctx, g.ledger.TreasuryAddress())
	if err != nil {
		return FundingGrant{}, fmt.Errorf("get treasury balance: %w", err)
	}
	if balance.Cmp(g.amount) < 0 {
		g.logs.Errorw("treasury cannot cover funding request",
			"wallet", wallet,
			"balance", balance.String(),
			"required", g.amount.String())
		return FundingGrant{}, ErrInsufficientTreasury
	}

	// insert-as-claim: a duplicate key here means a concurrent request won
	// the race and its transfer is (or will be) the only one
	err = g.repo.ClaimFunding(ctx, repository.FundingRecord{
		WalletAddress: wallet,
		Amount:        g.amount.String(),
		IPAddress:     clientIP,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFunded) {
			return FundingGrant{}, ErrAlreadyFunded
		}
		return FundingGrant{}, fmt.Errorf("claim funding: %w", err)
	}

	receipt, err := g.ledger.Transfer(ctx, wallet, g.amount)
	if err != nil {
		// no funds moved, release the claim so the wallet can retry
		if releaseErr := g.repo.ReleaseFundingClaim(ctx, wallet); releaseErr != nil {
			g.logs.Errorw("failed to release funding claim",
				"wallet", wallet,
				"error", releaseErr)
		}
		return FundingGrant{}, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	if err := g.repo.ConfirmFunding(ctx, wallet, receipt.TransactionHash); err != nil {
		// funds are already sent; retrying the transfer would double-fund,
		// so the orphan is logged for out-of-band reconciliation
		g.logs.Errorw("funds sent but funding record incomplete",
			"wallet", wallet,
			"tx_hash", receipt.TransactionHash,
			"amount", g.amount.String(),
			"error", err)
		return FundingGrant{}, fmt.Errorf("%w: tx %s: %w", ErrRecordWrite, receipt.TransactionHash, err)
	}

	g.logs.Infow("wallet funded",
		"wallet", wallet,
		"tx_hash", receipt.TransactionHash,
		"amount", g.amount.String())

	return FundingGrant{
		TransactionHash: receipt.TransactionHash,
		Amount:          g.amount.String(),
	}, nil
}

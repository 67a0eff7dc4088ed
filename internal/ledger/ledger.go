package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrReverted error = errors.New("transaction reverted")
var ErrConfirmTimeout error = errors.New("transaction confirmation timed out")

const transferGasLimit = 21000

const boardABIJSON = `[
	{"type":"function","name":"askQuestion","stateMutability":"nonpayable","inputs":[{"name":"questionId","type":"string"},{"name":"category","type":"string"}],"outputs":[]},
	{"type":"function","name":"submitAnswer","stateMutability":"nonpayable","inputs":[{"name":"answerId","type":"string"},{"name":"questionId","type":"string"}],"outputs":[]},
	{"type":"function","name":"selectBestAnswer","stateMutability":"nonpayable","inputs":[{"name":"answerId","type":"string"},{"name":"questionId","type":"string"}],"outputs":[]},
	{"type":"function","name":"getQuestion","stateMutability":"view","inputs":[{"name":"questionId","type":"string"}],"outputs":[{"name":"author","type":"address"},{"name":"category","type":"string"},{"name":"timestamp","type":"uint256"},{"name":"exists","type":"bool"}]},
	{"type":"function","name":"getAnswer","stateMutability":"view","inputs":[{"name":"answerId","type":"string"}],"outputs":[{"name":"author","type":"address"},{"name":"questionId","type":"string"},{"name":"timestamp","type":"uint256"},{"name":"isBestAnswer","type":"bool"},{"name":"exists","type":"bool"}]},
	{"type":"function","name":"getUserPoints","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// BoardABI is the deployed question board contract interface.
var BoardABI = mustParseABI(boardABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse board abi: %s", err))
	}
	return parsed
}

// Service submits transactions to the board contract and the treasury wallet
// and waits for confirmation. All submissions are signed with the operator
// key, which doubles as the funding treasury.
type Service struct {
	client         EthClient
	contract       common.Address
	signerKey      *ecdsa.PrivateKey
	treasury       common.Address
	chainID        *big.Int
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewService(ctx context.Context, client EthClient, contractAddress, treasuryKeyHex string, confirmTimeout time.Duration) (*Service, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %q", contractAddress)
	}

	signerKey, err := crypto.HexToECDSA(strings.TrimPrefix(treasuryKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse treasury key: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	pollInterval := confirmTimeout / 10
	if pollInterval > 2*time.Second {
		pollInterval = 2 * time.Second
	}

	return &Service{
		client:         client,
		contract:       common.HexToAddress(contractAddress),
		signerKey:      signerKey,
		treasury:       crypto.PubkeyToAddress(signerKey.PublicKey),
		chainID:        chainID,
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
	}, nil
}

func (s *Service) TreasuryAddress() string {
	return s.treasury.Hex()
}

// Submit packs and sends a board contract call, then blocks until the network
// confirms it or the confirmation timeout elapses. On timeout the receipt
// still carries the transaction hash so the caller can poll by identifier
// before deciding to retry.
func (s *Service) Submit(ctx context.Context, call Call) (Receipt, error) {
	data, err := BoardABI.Pack(call.Method, call.Args...)
	if err != nil {
		return Receipt{}, fmt.Errorf("pack %q call: %w", call.Method, err)
	}

	tx, err := s.sendSigned(ctx, s.contract, nil, data, 0)
	if err != nil {
		return Receipt{}, err
	}

	return s.waitConfirmed(ctx, tx.Hash())
}

// Transfer moves amount wei from the treasury to the given address and waits
// for confirmation.
func (s *Service) Transfer(ctx context.Context, to string, amount *big.Int) (Receipt, error) {
	if !common.IsHexAddress(to) {
		return Receipt{}, fmt.Errorf("invalid transfer target: %q", to)
	}

	tx, err := s.sendSigned(ctx, common.HexToAddress(to), amount, nil, transferGasLimit)
	if err != nil {
		return Receipt{}, err
	}

	return s.waitConfirmed(ctx, tx.Hash())
}

func (s *Service) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// HasQuestion reports whether a question event with this identifier exists on
// the ledger. Used to audit unconfirmed submissions before retrying.
func (s *Service) HasQuestion(ctx context.Context, identifier string) (bool, error) {
	out, err := s.view(ctx, "getQuestion", identifier)
	if err != nil {
		return false, err
	}
	exists, ok := out[3].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected getQuestion output: %v", out)
	}
	return exists, nil
}

func (s *Service) HasAnswer(ctx context.Context, identifier string) (bool, error) {
	out, err := s.view(ctx, "getAnswer", identifier)
	if err != nil {
		return false, err
	}
	exists, ok := out[4].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected getAnswer output: %v", out)
	}
	return exists, nil
}

// AnswerIsBest reports the contract's isBestAnswer flag for the identifier.
func (s *Service) AnswerIsBest(ctx context.Context, identifier string) (bool, error) {
	out, err := s.view(ctx, "getAnswer", identifier)
	if err != nil {
		return false, err
	}
	isBest, ok := out[3].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected getAnswer output: %v", out)
	}
	return isBest, nil
}

func (s *Service) GetUserPoints(ctx context.Context, wallet string) (*big.Int, error) {
	out, err := s.view(ctx, "getUserPoints", common.HexToAddress(wallet))
	if err != nil {
		return nil, err
	}
	points, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getUserPoints output: %v", out)
	}
	return points, nil
}

func (s *Service) view(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := BoardABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %q call: %w", method, err)
	}

	res, err := s.client.CallContract(ctx, ethereum.CallMsg{To: &s.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %q: %w", method, err)
	}

	out, err := BoardABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("unpack %q result: %w", method, err)
	}
	return out, nil
}

func (s *Service) sendSigned(ctx context.Context, to common.Address, value *big.Int, data []byte, gasLimit uint64) (*types.Transaction, error) {
	nonce, err := s.client.PendingNonceAt(ctx, s.treasury)
	if err != nil {
		return nil, fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	if gasLimit == 0 {
		gasLimit, err = s.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  s.treasury,
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return nil, fmt.Errorf("estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signer := types.LatestSignerForChainID(s.chainID)
	signedTx, err := types.SignTx(tx, signer, s.signerKey)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	return signedTx, nil
}

func (s *Service) waitConfirmed(ctx context.Context, txHash common.Hash) (Receipt, error) {
	deadline := time.NewTimer(s.confirmTimeout)
	defer deadline.Stop()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return Receipt{TransactionHash: txHash.Hex()}, ErrReverted
			}
			return Receipt{
				TransactionHash: txHash.Hex(),
				BlockNumber:     receipt.BlockNumber.Uint64(),
				ConfirmedAt:     time.Now().UTC(),
			}, nil
		}
		// a missing receipt and transient node errors are both retried
		// until the deadline
		select {
		case <-ctx.Done():
			return Receipt{TransactionHash: txHash.Hex()}, fmt.Errorf("await confirmation: %w", ctx.Err())
		case <-deadline.C:
			return Receipt{TransactionHash: txHash.Hex()}, ErrConfirmTimeout
		case <-ticker.C:
		}
	}
}

package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	contractAddrEnvKey   = "CONTRACT_ADDRESS"
	treasuryKeyEnvKey    = "TREASURY_PRIVATE_KEY"
	fundingAmountEnvKey  = "FUNDING_AMOUNT_WEI"
	confirmTimeoutEnvKey = "CONFIRM_TIMEOUT"
)

const defaultConfirmTimeout = 90 * time.Second

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	ContractAddress string
	TreasuryKey     string
	FundingAmount   *big.Int
	ConfirmTimeout  time.Duration
}

func NewApp() (App, error) {
	// optional .env for local development
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	contractAddr, ok := os.LookupEnv(contractAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, contractAddrEnvKey)
	}

	treasuryKey, ok := os.LookupEnv(treasuryKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, treasuryKeyEnvKey)
	}

	fundingStr, ok := os.LookupEnv(fundingAmountEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, fundingAmountEnvKey)
	}
	fundingAmount, ok := new(big.Int).SetString(fundingStr, 10)
	if !ok || fundingAmount.Sign() <= 0 {
		return App{}, fmt.Errorf("%s must be a positive base-10 integer, got %q", fundingAmountEnvKey, fundingStr)
	}

	confirmTimeout := defaultConfirmTimeout
	if timeoutStr, ok := os.LookupEnv(confirmTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("%s must be a positive number of seconds, got %q", confirmTimeoutEnvKey, timeoutStr)
		}
		confirmTimeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		ContractAddress: contractAddr,
		TreasuryKey:     treasuryKey,
		FundingAmount:   fundingAmount,
		ConfirmTimeout:  confirmTimeout,
	}, nil
}

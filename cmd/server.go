package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chainboard/internal/config"
	"chainboard/internal/core"
	"chainboard/internal/db"
	"chainboard/internal/http/handler"
	"chainboard/internal/http/handler/middleware"
	"chainboard/internal/http/payload"
	"chainboard/internal/http/server"
	"chainboard/internal/ledger"
	"chainboard/internal/repository"
	"chainboard/pkg/jwt"
	"chainboard/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("chainboard", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewBoardRepository(dbConn)

	err = repo.MigrateAndSeed()
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	ledgerService, err := ledger.NewService(
		context.Background(),
		client,
		config.ContractAddress,
		config.TreasuryKey,
		config.ConfirmTimeout)
	if err != nil {
		logger.Errorw("failed to create ledger service", "error", err)
		return err
	}

	// core services
	authenticator := core.NewAuthenticator(logger, jwtService)
	fundingGate := core.NewFundingGate(logger, repo, ledgerService, config.FundingAmount)
	reconciler := core.NewReconciler(logger, repo, ledgerService)
	board := core.NewBoard(logger, repo, ledgerService)

	// handler
	boardHlr := handler.NewBoardHandler(
		logger,
		authenticator,
		fundingGate,
		reconciler,
		board,
		payload.Decoder{})

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.AuthenticateRoute, boardHlr.Authenticate)
	mux.HandleFunc(handler.RequestFundingRoute, boardHlr.RequestFunding)
	mux.HandleFunc(handler.AskQuestionRoute, boardHlr.AskQuestion)
	mux.HandleFunc(handler.SubmitAnswerRoute, boardHlr.SubmitAnswer)
	mux.HandleFunc(handler.SelectBestRoute, boardHlr.SelectBest)
	mux.HandleFunc(handler.RetryActionRoute, boardHlr.RetryAction)
	mux.HandleFunc(handler.ListPendingRoute, boardHlr.ListPending)
	mux.HandleFunc(handler.ListQuestionsRoute, boardHlr.ListQuestions)
	mux.HandleFunc(handler.ListAnswersRoute, boardHlr.ListAnswers)
	mux.HandleFunc(handler.LeaderboardRoute, boardHlr.Leaderboard)
	mux.HandleFunc(handler.UserProfileRoute, boardHlr.UserProfile)
	mux.HandleFunc(handler.ListCategoriesRoute, boardHlr.ListCategories)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

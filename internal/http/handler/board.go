package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"chainboard/internal/core"
	"chainboard/internal/http/handler/middleware"
	"chainboard/internal/http/payload"
	"chainboard/internal/ledger"
)

var (
	AuthenticateRoute   = "POST /board/authenticate"
	RequestFundingRoute = "POST /board/fund"
	AskQuestionRoute    = "POST /board/questions"
	SubmitAnswerRoute   = "POST /board/questions/{questionId}/answers"
	SelectBestRoute     = "POST /board/questions/{questionId}/best"
	RetryActionRoute    = "POST /board/actions/{identifier}/retry"
	ListPendingRoute    = "GET /board/actions"
	ListQuestionsRoute  = "GET /board/questions"
	ListAnswersRoute    = "GET /board/questions/{questionId}/answers"
	LeaderboardRoute    = "GET /board/leaderboard"
	UserProfileRoute    = "GET /board/users/{wallet}"
	ListCategoriesRoute = "GET /board/categories"
)

const authTokenHeader = "AUTH_TOKEN"

type BoardHandler struct {
	logs      *zap.SugaredLogger
	auth      AuthService
	funding   FundingService
	actions   ActionService
	board     BoardService
	validator RequestValidator
}

func NewBoardHandler(logger *zap.SugaredLogger, auth AuthService, funding FundingService, actions ActionService, board BoardService, validator RequestValidator) *BoardHandler {
	return &BoardHandler{
		logs:      logger,
		auth:      auth,
		funding:   funding,
		actions:   actions,
		board:     board,
		validator: validator,
	}
}

// Authenticate verifies a signed wallet challenge and returns a session token.
func (h *BoardHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	var pl payload.AuthRequest
	if err := h.validator.DecodeJSONPayload(r, &pl); err != nil {
		h.logs.Errorw("decode auth payload", "error", err, "request_id", requestID)
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid request payload!", Error: err.Error()})
		return
	}

	token, err := h.auth.Authenticate(r.Context(), pl.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrSignatureMismatch) {
			h.respond(w, http.StatusUnauthorized, Response{Message: "Signature does not match the wallet address!"})
			return
		}
		h.logs.Errorw("authenticate wallet", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Authentication successful!",
		Data:    map[string]string{"token": token},
	})
}

// RequestFunding transfers the configured starter amount to a wallet that
// has never been funded before.
func (h *BoardHandler) RequestFunding(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	var pl payload.FundRequest
	if err := h.validator.DecodeJSONPayload(r, &pl); err != nil {
		h.logs.Errorw("decode fund payload", "error", err, "request_id", requestID)
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid request payload!", Error: err.Error()})
		return
	}

	grant, err := h.funding.RequestFunding(r.Context(), pl.WalletAddress, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidAddress):
			h.respond(w, http.StatusBadRequest, Response{Message: "Invalid wallet address!"})
		case errors.Is(err, core.ErrAlreadyFunded):
			h.respond(w, http.StatusConflict, Response{Message: "Wallet has already been funded!"})
		case errors.Is(err, core.ErrInsufficientTreasury):
			h.respond(w, http.StatusServiceUnavailable, Response{Message: "Funding is temporarily unavailable!"})
		case errors.Is(err, core.ErrTransferFailed):
			h.logs.Errorw("funding transfer failed", "error", err, "wallet", pl.WalletAddress, "request_id", requestID)
			h.respond(w, http.StatusBadGateway, Response{Message: "Funding transfer failed, please try again later!"})
		default:
			h.logs.Errorw("request funding", "error", err, "wallet", pl.WalletAddress, "request_id", requestID)
			h.respond(w, http.StatusInternalServerError, oopsErr)
		}
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Wallet funded successfully!",
		Data:    grant,
	})
}

// AskQuestion submits a new question to the ledger and records it once confirmed.
func (h *BoardHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	wallet, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var pl payload.AskQuestionRequest
	if err := h.validator.DecodeJSONPayload(r, &pl); err != nil {
		h.logs.Errorw("decode question payload", "error", err, "request_id", requestID)
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid request payload!", Error: err.Error()})
		return
	}

	result, err := h.actions.Perform(r.Context(), pl.ToAction(wallet))
	h.respondAction(w, requestID, result, err, "Question submitted!")
}

// SubmitAnswer submits an answer to an existing question.
func (h *BoardHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	wallet, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var pl payload.SubmitAnswerRequest
	if err := h.validator.DecodeJSONPayload(r, &pl); err != nil {
		h.logs.Errorw("decode answer payload", "error", err, "request_id", requestID)
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid request payload!", Error: err.Error()})
		return
	}

	result, err := h.actions.Perform(r.Context(), pl.ToAction(r.PathValue("questionId"), wallet))
	h.respondAction(w, requestID, result, err, "Answer submitted!")
}

// SelectBest marks an answer as the accepted one for a question.
func (h *BoardHandler) SelectBest(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	wallet, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var pl payload.BestAnswerRequest
	if err := h.validator.DecodeJSONPayload(r, &pl); err != nil {
		h.logs.Errorw("decode best answer payload", "error", err, "request_id", requestID)
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid request payload!", Error: err.Error()})
		return
	}

	result, err := h.actions.Perform(r.Context(), pl.ToAction(r.PathValue("questionId"), wallet))
	h.respondAction(w, requestID, result, err, "Best answer selected!")
}

// RetryAction retries the off-chain leg of a previously submitted action.
func (h *BoardHandler) RetryAction(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	if _, ok := h.authorize(w, r); !ok {
		return
	}

	result, err := h.actions.Retry(r.Context(), r.PathValue("identifier"))
	if errors.Is(err, core.ErrNoSuchPending) {
		h.respond(w, http.StatusNotFound, Response{Message: "No pending action with that identifier!"})
		return
	}
	h.respondAction(w, requestID, result, err, "Action reconciled!")
}

// ListPending reports actions that are confirmed on the ledger but not yet
// recorded, or still awaiting confirmation.
func (h *BoardHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Pending actions retrieved!",
		Data:    h.actions.Pending(),
	})
}

func (h *BoardHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	questions, err := h.board.ListQuestions(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logs.Errorw("list questions", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Questions retrieved!",
		Data:    questions,
	})
}

func (h *BoardHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	answers, err := h.board.QuestionAnswers(r.Context(), r.PathValue("questionId"))
	if err != nil {
		if errors.Is(err, core.ErrQuestionNotFound) {
			h.respond(w, http.StatusNotFound, Response{Message: "Question not found!"})
			return
		}
		h.logs.Errorw("list answers", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Answers retrieved!",
		Data:    answers,
	})
}

func (h *BoardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respond(w, http.StatusBadRequest, Response{Message: "Invalid limit parameter!"})
			return
		}
		limit = parsed
	}

	users, err := h.board.Leaderboard(r.Context(), limit)
	if err != nil {
		h.logs.Errorw("leaderboard", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Leaderboard retrieved!",
		Data:    users,
	})
}

func (h *BoardHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	profile, err := h.board.UserProfile(r.Context(), r.PathValue("wallet"))
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, http.StatusNotFound, Response{Message: "User not found!"})
			return
		}
		h.logs.Errorw("user profile", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "User profile retrieved!",
		Data:    profile,
	})
}

func (h *BoardHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	requestID := h.getRequestID(r)

	categories, err := h.board.ListCategories(r.Context())
	if err != nil {
		h.logs.Errorw("list categories", "error", err, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
		return
	}

	h.respond(w, http.StatusOK, Response{
		Message: "Categories retrieved!",
		Data:    categories,
	})
}

// respondAction maps the outcome of a ledger action to an HTTP status. A
// confirmation timeout is not a failure, the action stays pending and the
// client is told to retry.
func (h *BoardHandler) respondAction(w http.ResponseWriter, requestID string, result core.ActionResult, err error, message string) {
	if err == nil {
		h.respond(w, http.StatusOK, Response{Message: message, Data: result})
		return
	}

	switch {
	case errors.Is(err, core.ErrMissingIdentifier),
		errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrUnknownActionKind),
		errors.Is(err, core.ErrAnswerMismatch):
		h.respond(w, http.StatusBadRequest, Response{Message: "Invalid action request!", Error: err.Error()})
	case errors.Is(err, core.ErrQuestionNotFound):
		h.respond(w, http.StatusNotFound, Response{Message: "Question not found!"})
	case errors.Is(err, core.ErrAnswerNotFound):
		h.respond(w, http.StatusNotFound, Response{Message: "Answer not found!"})
	case errors.Is(err, core.ErrSelfAnswer):
		h.respond(w, http.StatusForbidden, Response{Message: "You cannot answer your own question!"})
	case errors.Is(err, core.ErrNotQuestionAuthor):
		h.respond(w, http.StatusForbidden, Response{Message: "Only the question author can select the best answer!"})
	case errors.Is(err, core.ErrAlreadyResolved):
		h.respond(w, http.StatusConflict, Response{Message: "A best answer has already been selected!"})
	case errors.Is(err, ledger.ErrReverted):
		h.logs.Errorw("transaction reverted", "error", err, "identifier", result.Identifier, "request_id", requestID)
		h.respond(w, http.StatusBadGateway, Response{Message: "Transaction was rejected by the contract!", Data: result})
	case errors.Is(err, ledger.ErrConfirmTimeout), errors.Is(err, core.ErrUnconfirmed):
		h.respond(w, http.StatusGatewayTimeout, Response{
			Message: "Transaction not confirmed yet, retry the action later!",
			Data:    result,
		})
	case errors.Is(err, core.ErrReconcileFailed):
		h.logs.Errorw("reconcile failed", "error", err, "identifier", result.Identifier, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, Response{
			Message: "Transaction confirmed but not yet recorded, retry the action!",
			Data:    result,
		})
	default:
		h.logs.Errorw("perform action", "error", err, "identifier", result.Identifier, "request_id", requestID)
		h.respond(w, http.StatusInternalServerError, oopsErr)
	}
}

// authorize resolves the wallet bound to the session token. It writes the
// error response itself when the token is missing or invalid.
func (h *BoardHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		h.respond(w, http.StatusUnauthorized, Response{Message: "Missing authentication token!"})
		return "", false
	}

	wallet, err := h.auth.WalletOf(token)
	if err != nil {
		h.respond(w, http.StatusUnauthorized, Response{Message: "Invalid or expired authentication token!"})
		return "", false
	}

	return wallet, true
}

func (h *BoardHandler) respond(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logs.Errorw("write response", "error", err)
	}
}

func (h *BoardHandler) getRequestID(r *http.Request) string {
	requestID, ok := r.Context().Value(middleware.RequestIDKey).(string)
	if !ok {
		return ""
	}
	return requestID
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}

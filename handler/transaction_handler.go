package handler

import (
	"errors"
	"net/http"
	"simple-bank-api/common"
	"simple-bank-api/model"
	"simple-bank-api/service"
	"strconv"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves an amount from an account owned by the caller to any account. A fee of floor(amount/200) is debited from the source on top of the amount.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Details of the financial transfer"
// @Success      200  {object}  model.TransferResult
// @Failure      400  {object}  common.AppError "Bad Request (e.g., insufficient funds, invalid amount)"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      404  {object}  common.AppError "Source or destination account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfer [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, appErr := userIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	result, err := h.service.TransferMoney(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return common.NewAppError(http.StatusNotFound, "Account(s) not found", err)
		case errors.Is(err, service.ErrInsufficientFunds):
			return common.NewAppError(http.StatusBadRequest, "Insufficient funds", err)
		case errors.Is(err, service.ErrSameAccountTransfer), errors.Is(err, service.ErrInvalidAmount):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, result)
	return nil
}

// ListTransactions godoc
// @Summary      List transaction history
// @Description  Transactions recorded against any account of the caller, newest first.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        per_page  query  int     false  "Page size (default 10)"
// @Param        amount    query  number  false  "Exact amount"
// @Param        date      query  string  false  "Day in YYYY-MM-DD"
// @Success      200  {object}  model.TransactionHistoryResponse
// @Failure      400  {object}  common.AppError "Invalid date format"
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := userIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	filter, appErr := parseTransactionFilter(r)
	if appErr != nil {
		return appErr
	}

	page, err := h.service.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	common.WriteJSON(w, http.StatusOK, toHistoryResponse(page))
	return nil
}

// parseTransactionFilter reads page, per_page, amount and date from the query
// string. Unparsable numbers are ignored; an unparsable date is an error.
func parseTransactionFilter(r *http.Request) (model.TransactionFilter, *common.AppError) {
	q := r.URL.Query()
	filter := model.TransactionFilter{
		Page:    service.DefaultPage,
		PerPage: service.DefaultPerPage,
	}

	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil {
		filter.PerPage = v
	}
	if v, err := strconv.ParseFloat(q.Get("amount"), 64); err == nil {
		filter.Amount = v
	}
	if raw := q.Get("date"); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, common.NewAppError(http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD.", nil)
		}
		filter.Date = &day
	}

	return filter, nil
}

func toHistoryResponse(page *model.TransactionPage) model.TransactionHistoryResponse {
	views := make([]model.TransactionView, 0, len(page.Transactions))
	for _, t := range page.Transactions {
		views = append(views, model.TransactionView{
			ID:        t.ID,
			AccountID: t.AccountID,
			Amount:    t.Amount,
			Type:      t.TransactionType,
			Timestamp: t.Timestamp.UTC().Format(timestampLayout),
		})
	}
	return model.TransactionHistoryResponse{
		Transactions: views,
		Total:        page.Total,
		Page:         page.Page,
		Pages:        page.Pages,
	}
}

package handler

import (
	"errors"
	"net/http"
	"simple-bank-api/common"
	"simple-bank-api/logger"
	"simple-bank-api/model"
	"simple-bank-api/service"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Open a bank account
// @Description  Creates an account owned by the authenticated user. The opening balance defaults to zero.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.CreateAccountRequest true "Account details"
// @Success      201  {object}  model.CreateAccountResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User not found"
// @Failure      409  {object}  common.AppError "Account number already exists"
// @Router       /api/account [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, appErr := userIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":      userID,
		"account_type": req.AccountType,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateNewAccount(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		case errors.Is(err, service.ErrAccountNumberExists):
			return common.NewAppError(http.StatusConflict, "Account number already exists", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create account", err)
		}
	}

	common.WriteJSON(w, http.StatusCreated, model.CreateAccountResponse{
		Message: "Account created successfully",
		Account: account,
	})
	return nil
}

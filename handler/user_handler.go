package handler

import (
	"errors"
	"net/http"
	"simple-bank-api/common"
	"simple-bank-api/model"
	"simple-bank-api/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "New user"
// @Success      201  {object}  model.MessageResponse
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Email already registered"
// @Router       /api/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if _, err := h.service.Register(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return common.NewAppError(http.StatusConflict, "User already exists", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
	}

	common.WriteJSON(w, http.StatusCreated, model.MessageResponse{Message: "User registered successfully"})
	return nil
}

// Login godoc
// @Summary      Log in and obtain an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Credentials"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError "Invalid credentials"
// @Router       /api/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid credentials", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	common.WriteJSON(w, http.StatusOK, model.LoginResponse{Message: "Login successful", AccessToken: token})
	return nil
}

// GetUser godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UserProfile
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /api/user [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := userIDFromContext(r)
	if appErr != nil {
		return appErr
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve user", err)
	}

	common.WriteJSON(w, http.StatusOK, profile)
	return nil
}

package handler

import (
	"context"
	"net/http"
	"simple-bank-api/common"
	"simple-bank-api/service"
	"strings"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's user id in the request context under UserIDKey.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
				err.Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
				err.Send(w)
				return
			}

			userID, err := auth.ParseJWT(headerParts[1])
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromContext(r *http.Request) (int, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return 0, common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	return userID, nil
}

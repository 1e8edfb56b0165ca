package router

import (
	"net/http"
	"simple-bank-api/handler"
	"simple-bank-api/service"

	_ "simple-bank-api/docs"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(auth *service.AuthService, userHandler *handler.UserHandler, accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	r := mux.NewRouter()
	r.Use(handler.RequestMiddleware)

	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/register", handler.ErrorHandlingMiddleware(userHandler.Register)).Methods(http.MethodPost)
	api.Handle("/login", handler.ErrorHandlingMiddleware(userHandler.Login)).Methods(http.MethodPost)

	authenticated := handler.AuthMiddleware(auth)
	api.Handle("/user", authenticated(handler.ErrorHandlingMiddleware(userHandler.GetUser))).Methods(http.MethodGet)
	api.Handle("/account", authenticated(handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))).Methods(http.MethodPost)
	api.Handle("/transfer", authenticated(handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))).Methods(http.MethodPost)
	api.Handle("/transactions", authenticated(handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))).Methods(http.MethodGet)

	return r
}

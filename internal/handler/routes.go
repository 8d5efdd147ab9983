package handler

import (
	"net/http"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, items *service.ItemService, db Pinger) {
	users := NewUserHandler(auth)
	itemHandler := NewItemHandler(items)
	health := NewHealthHandler(db)

	mux.HandleFunc("GET /healthz", health.HandleHealthz)

	mux.HandleFunc("POST /users/register", users.HandleRegister)
	mux.HandleFunc("POST /users/login", users.HandleLogin)
	mux.Handle("GET /users/profile", RequireAuth(auth, http.HandlerFunc(users.HandleGetProfile)))
	mux.Handle("PUT /users/profile", RequireAuth(auth, http.HandlerFunc(users.HandleUpdateProfile)))
	mux.HandleFunc("GET /users", users.HandleList)

	mux.HandleFunc("GET /items", itemHandler.HandleList)
	mux.HandleFunc("GET /items/{id}", itemHandler.HandleGet)
	mux.Handle("POST /items", RequireAuth(auth, http.HandlerFunc(itemHandler.HandleCreate)))
	mux.Handle("PUT /items/{id}", RequireAuth(auth, http.HandlerFunc(itemHandler.HandleUpdate)))
	mux.Handle("DELETE /items/{id}", RequireAuth(auth, http.HandlerFunc(itemHandler.HandleDelete)))
}

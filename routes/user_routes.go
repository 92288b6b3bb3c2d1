package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes registers the user directory and profile endpoints
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewUserController(userService)

	publicRouter := r.PathPrefix("/api/users").Subrouter()
	publicRouter.HandleFunc("", controller.HandleListUsers).Methods("GET")
	publicRouter.HandleFunc("/skills", controller.HandleFindBySkills).Methods("GET")

	protectedRouter := r.PathPrefix("/api/users").Subrouter()
	protectedRouter.Use(auth)
	protectedRouter.HandleFunc("/me", controller.HandleGetMe).Methods("GET")
	protectedRouter.HandleFunc("/profile", controller.HandleUpdateProfile).Methods("PUT")
}

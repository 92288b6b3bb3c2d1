package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes registers swipe, candidate and match endpoints
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService, matchService *services.MatchService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewSwipeController(swipeService, matchService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()
	swipeRouter.Use(auth)
	swipeRouter.HandleFunc("", controller.HandleSwipe).Methods("POST")
	swipeRouter.HandleFunc("/candidates", controller.HandleGetCandidates).Methods("GET")
	swipeRouter.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
}

package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes registers the notification count endpoints
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService, chatService *services.ChatService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewNotificationController(notificationService, chatService)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.Use(auth)
	notificationRouter.HandleFunc("/counts", controller.HandleGetCounts).Methods("GET")
	notificationRouter.HandleFunc("/messages/read", controller.HandleMarkMessagesRead).Methods("PUT")
}

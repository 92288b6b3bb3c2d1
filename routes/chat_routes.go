package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes registers the messaging endpoints
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(auth)
	chatRouter.HandleFunc("/send", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/conversation/{userId}", controller.HandleGetConversation).Methods("GET")
	chatRouter.HandleFunc("/read/{senderId}", controller.HandleMarkRead).Methods("PUT")
	chatRouter.HandleFunc("/unread", controller.HandleGetUnreadCounts).Methods("GET")
}

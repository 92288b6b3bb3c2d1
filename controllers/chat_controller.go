package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"
	"skillswap_server/utils"

	"github.com/gorilla/mux"
)

// ChatController handles messaging between matched users
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleSendMessage persists a message to a matched user
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ReceiverID  string `json:"receiverId"`
		Content     string `json:"content"`
		MessageType string `json:"messageType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.ReceiverID == "" {
		utils.RespondError(w, http.StatusBadRequest, "receiverId is required")
		return
	}

	message, err := cc.ChatService.SendMessage(r.Context(), middleware.UserID(r), request.ReceiverID, request.Content, request.MessageType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Message sent successfully",
		"data":    message,
	})
}

// HandleGetConversation returns the recent messages with one matched user
func (cc *ChatController) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	otherUserID := mux.Vars(r)["userId"]

	messages, err := cc.ChatService.GetConversation(r.Context(), middleware.UserID(r), otherUserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messages)
}

// HandleMarkRead marks all messages from one sender as read
func (cc *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	senderID := mux.Vars(r)["senderId"]

	if err := cc.ChatService.MarkConversationRead(r.Context(), middleware.UserID(r), senderID); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Messages marked as read"})
}

// HandleGetUnreadCounts returns per-sender unread message counts
func (cc *ChatController) HandleGetUnreadCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := cc.ChatService.UnreadCounts(r.Context(), middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, counts)
}

package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"
	"skillswap_server/utils"
)

// NotificationController serves derived unread/pending counts
type NotificationController struct {
	NotificationService *services.NotificationService
	ChatService         *services.ChatService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notificationService *services.NotificationService, chatService *services.ChatService) *NotificationController {
	return &NotificationController{NotificationService: notificationService, ChatService: chatService}
}

// HandleGetCounts returns the live unread message and pending meeting counts
func (nc *NotificationController) HandleGetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := nc.NotificationService.Counts(r.Context(), middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, counts)
}

// HandleMarkMessagesRead marks one conversation (or all messages) as read
func (nc *NotificationController) HandleMarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChatPartnerID string `json:"chatPartnerId"`
	}
	// an empty body means "mark everything read"
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&request)
	}

	if err := nc.ChatService.MarkConversationRead(r.Context(), middleware.UserID(r), request.ChatPartnerID); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Message notifications marked as read"})
}

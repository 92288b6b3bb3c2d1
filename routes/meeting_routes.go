package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMeetingRoutes registers the meeting lifecycle endpoints
func RegisterMeetingRoutes(r *mux.Router, meetingService *services.MeetingService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewMeetingController(meetingService)

	meetingRouter := r.PathPrefix("/api/meetings").Subrouter()
	meetingRouter.Use(auth)
	meetingRouter.HandleFunc("", controller.HandleCreateMeeting).Methods("POST")
	meetingRouter.HandleFunc("/mine", controller.HandleListMine).Methods("GET")
	meetingRouter.HandleFunc("/{id}/accept", controller.HandleAccept).Methods("PUT")
	meetingRouter.HandleFunc("/{id}/decline", controller.HandleDecline).Methods("PUT")
	meetingRouter.HandleFunc("/{id}/cancel", controller.HandleCancel).Methods("PUT")
	meetingRouter.HandleFunc("/{id}/complete", controller.HandleComplete).Methods("PUT")
}

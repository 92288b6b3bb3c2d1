package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"
	"skillswap_server/utils"

	"github.com/gorilla/mux"
)

// MeetingController handles the meeting request lifecycle
type MeetingController struct {
	MeetingService *services.MeetingService
}

// NewMeetingController creates a new MeetingController instance
func NewMeetingController(meetingService *services.MeetingService) *MeetingController {
	return &MeetingController{MeetingService: meetingService}
}

// HandleCreateMeeting creates a pending meeting request
func (mc *MeetingController) HandleCreateMeeting(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ParticipantID string `json:"participantId"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		SkillToTeach  string `json:"skillToTeach"`
		SkillToLearn  string `json:"skillToLearn"`
		ScheduledDate string `json:"scheduledDate"`
		Duration      int    `json:"duration"`
		MeetingType   string `json:"meetingType"`
		Location      string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.ParticipantID == "" {
		utils.RespondError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	meeting, err := mc.MeetingService.Create(r.Context(), middleware.UserID(r), services.CreateMeetingInput{
		ParticipantID: request.ParticipantID,
		Title:         request.Title,
		Description:   request.Description,
		SkillToTeach:  request.SkillToTeach,
		SkillToLearn:  request.SkillToLearn,
		ScheduledDate: request.ScheduledDate,
		Duration:      request.Duration,
		MeetingType:   request.MeetingType,
		Location:      request.Location,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Meeting request sent successfully",
		"meeting": meeting,
	})
}

// HandleListMine lists the user's meetings, optionally filtered by status
func (mc *MeetingController) HandleListMine(w http.ResponseWriter, r *http.Request) {
	meetings, err := mc.MeetingService.ListMine(r.Context(), middleware.UserID(r), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, meetings)
}

// HandleAccept accepts a pending meeting request
func (mc *MeetingController) HandleAccept(w http.ResponseWriter, r *http.Request) {
	mc.transition(w, r, mc.MeetingService.Accept, "Meeting accepted successfully")
}

// HandleDecline declines a pending meeting request
func (mc *MeetingController) HandleDecline(w http.ResponseWriter, r *http.Request) {
	mc.transition(w, r, mc.MeetingService.Decline, "Meeting declined successfully")
}

// HandleCancel cancels a pending or accepted meeting
func (mc *MeetingController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	mc.transition(w, r, mc.MeetingService.Cancel, "Meeting cancelled successfully")
}

// HandleComplete completes an accepted meeting
func (mc *MeetingController) HandleComplete(w http.ResponseWriter, r *http.Request) {
	mc.transition(w, r, mc.MeetingService.Complete, "Meeting completed successfully")
}

func (mc *MeetingController) transition(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, meetingID, actorID string) (models.Meeting, error),
	successMessage string,
) {
	meetingID := mux.Vars(r)["id"]

	meeting, err := action(r.Context(), meetingID, middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": successMessage,
		"meeting": meeting,
	})
}

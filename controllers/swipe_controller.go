package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/services"
	"skillswap_server/utils"
)

// SwipeController handles swipe decisions, candidate and match listings
type SwipeController struct {
	SwipeService *services.SwipeService
	MatchService *services.MatchService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService, matchService *services.MatchService) *SwipeController {
	return &SwipeController{SwipeService: swipeService, MatchService: matchService}
}

// HandleSwipe records a swipe and reports whether it produced a match
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUserID string `json:"targetUserId"`
		Direction    string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.TargetUserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "targetUserId is required")
		return
	}

	result, err := sc.SwipeService.Swipe(r.Context(), middleware.UserID(r), request.TargetUserID, request.Direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.Matched {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message":     "It's a match! 🎉",
			"isMatch":     true,
			"matchedUser": result.MatchedUser,
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Swiped %s", request.Direction),
		"isMatch": false,
	})
}

// HandleGetCandidates lists the users still available to swipe on
func (sc *SwipeController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := sc.SwipeService.ListCandidates(r.Context(), middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, candidates)
}

// HandleGetMatches lists confirmed and potential matches
func (sc *SwipeController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := sc.MatchService.ListMatches(r.Context(), middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, matches)
}

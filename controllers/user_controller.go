package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"skillswap_server/middleware"
	"skillswap_server/services"
	"skillswap_server/utils"
)

// UserController serves the user directory and profile endpoints
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// HandleGetMe returns the authenticated user's own record
func (uc *UserController) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := uc.UserService.Get(r.Context(), middleware.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

// HandleUpdateProfile applies a partial profile update
func (uc *UserController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name           *string   `json:"name"`
		ProfilePicture *string   `json:"profilePicture"`
		SkillsKnown    *[]string `json:"skillsKnown"`
		SkillsWanted   *[]string `json:"skillsWanted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := uc.UserService.UpdateProfile(r.Context(), middleware.UserID(r), services.ProfileUpdate{
		Name:           request.Name,
		ProfilePicture: request.ProfilePicture,
		SkillsKnown:    request.SkillsKnown,
		SkillsWanted:   request.SkillsWanted,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

// HandleListUsers returns every user's public summary
func (uc *UserController) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.UserService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, users)
}

// HandleFindBySkills returns users knowing any of the requested skills
func (uc *UserController) HandleFindBySkills(w http.ResponseWriter, r *http.Request) {
	skills := r.URL.Query().Get("skills")
	if skills == "" {
		utils.RespondError(w, http.StatusBadRequest, "Skills parameter is required")
		return
	}

	users, err := uc.UserService.FindBySkills(r.Context(), strings.Split(skills, ","))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, users)
}

package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/services"
	"skillswap_server/utils"
)

// AuthController handles registration and login
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// HandleRegister creates a new account and returns a bearer token
func (ac *AuthController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name         string   `json:"name"`
		Email        string   `json:"email"`
		Password     string   `json:"password"`
		SkillsKnown  []string `json:"skillsKnown"`
		SkillsWanted []string `json:"skillsWanted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := ac.AuthService.Register(r.Context(), services.RegisterInput{
		Name:         request.Name,
		Email:        request.Email,
		Password:     request.Password,
		SkillsKnown:  request.SkillsKnown,
		SkillsWanted: request.SkillsWanted,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleLogin verifies a credential and returns a bearer token
func (ac *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := ac.AuthService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

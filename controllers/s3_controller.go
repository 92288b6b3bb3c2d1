package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"skillswap_server/services"
	"skillswap_server/utils"
)

// S3Controller hands out presigned URLs for profile pictures
type S3Controller struct {
	MediaService *services.MediaService
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(mediaService *services.MediaService) *S3Controller {
	return &S3Controller{MediaService: mediaService}
}

// HandleGenerateUploadURL generates a presigned URL for uploading a picture
func (s *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	url, key, err := s.MediaService.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// HandleGenerateReadURL generates a presigned URL for reading a stored picture
func (s *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := s.MediaService.GenerateReadURL(payload.Key)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate read pre-signed URL")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}

package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes registers the profile picture presign endpoints
func RegisterS3Routes(r *mux.Router, mediaService *services.MediaService, auth func(http.Handler) http.Handler) {
	controller := controllers.NewS3Controller(mediaService)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.Use(auth)
	s3Router.HandleFunc("/upload-url", controller.HandleGenerateUploadURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("POST")
}

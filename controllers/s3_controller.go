package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"joinus_server/services"

	log "github.com/sirupsen/logrus"
)

// S3Controller struct
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller initializes the S3 controller
func NewS3Controller(service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: service}
}

// HandleGeneratePresignedURL - Presigned PUT URL for an event photo upload
func (c *S3Controller) HandleGeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "Missing required fields: fileName, fileType"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(context.TODO(), payload.FileName, payload.FileType)
	if err != nil {
		log.Errorf("Failed to generate upload URL: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleGetPresignedReadURL - Presigned GET URL for a stored event photo
func (c *S3Controller) HandleGetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	url, err := c.S3Service.GenerateReadURL(context.TODO(), payload.Key)
	if err != nil {
		log.Errorf("Failed to generate read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

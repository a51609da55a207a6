package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/Nikhil8847/calify/services"

	"github.com/gin-gonic/gin"
)

// POST /api/process-audio (multipart, field "file")
//
// Degraded speech or model backends never surface here as errors: the
// pipeline absorbs them into lower-confidence results. Only a missing upload
// or a storage failure produces an error response.
func ProcessAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audio upload"})
		return
	}
	defer f.Close()

	voiceSvc := services.NewVoiceServiceFromEnv()
	result, err := voiceSvc.ProcessAudio(c.Request.Context(), f, filepath.Ext(fileHeader.Filename))
	if err != nil {
		if errors.Is(err, services.ErrNoAudio) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Audio processing failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/s3"
)

type UploadHandler struct {
	Uploader *s3.Uploader
}

type UploadSignatureRequest struct {
	Data string `json:"data" binding:"required"` // base64 data URI from the signature pad
}

// UploadSignature stores a drawn signature and returns its URL, so records
// can reference it instead of embedding the image.
func (h *UploadHandler) UploadSignature(c *gin.Context) {
	claims := middleware.Claims(c)
	var req UploadSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objectKey := fmt.Sprintf("signatures/%s/%s.png", claims.UserKey, uuid.New().String())
	url, err := h.Uploader.UploadDataURI(c.Request.Context(), req.Data, objectKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

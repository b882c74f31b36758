package handlers

import (
	"net/http"

	"voting-service/internal/adapters/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	minio *storage.MinIOClient
}

func NewUploadHandler(minio *storage.MinIOClient) *UploadHandler {
	return &UploadHandler{minio: minio}
}

// @Summary Upload an image
// @Description Upload an event or candidate image and receive its URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /uploads/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}

	url, err := h.minio.UploadImage(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PhotoController struct {
	Svc *services.PhotoService
}

func NewPhotoController(svc *services.PhotoService) *PhotoController {
	return &PhotoController{Svc: svc}
}

// UploadPhoto takes a multipart form: "photo" (file, required),
// "description" and "weight_at_time" (optional).
func (h *PhotoController) UploadPhoto(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read photo"})
		return
	}
	defer file.Close()

	var weightAtTime *float64
	if w := c.PostForm("weight_at_time"); w != "" {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight_at_time"})
			return
		}
		weightAtTime = &v
	}

	photo, err := h.Svc.Upload(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		c.PostForm("description"),
		weightAtTime,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *PhotoController) ListPhotos(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	photos, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load photos"})
		return
	}

	c.JSON(http.StatusOK, photos)
}

func (h *PhotoController) DeletePhoto(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}

	c.Status(http.StatusNoContent)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

func (h *WorkoutController) LogWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.LogWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logEntry, err := h.Svc.AddLog(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, services.ErrMissingWorkoutType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log workout"})
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

// ListWorkouts returns either a recent slice (default) or an inclusive
// ?from=&to= calendar window.
func (h *WorkoutController) ListWorkouts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err1 := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		to, err2 := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}

		logs, err := h.Svc.ListByDateRange(c.Request.Context(), userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workouts"})
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	logs, err := h.Svc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workouts"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *WorkoutController) DeleteWorkout(c *gin.Context) {
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

	if err := h.Svc.DeleteLog(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete workout"})
		return
	}

	c.Status(http.StatusNoContent)
}

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

func SetGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		GoalType   string `json:"goal_type" binding:"required"`
		GoalValue  string `json:"goal_value" binding:"required"`
		TargetDate string `json:"target_date"` // YYYY-MM-DD, optional
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var targetDate *time.Time
	if input.TargetDate != "" {
		d, err := time.ParseInLocation("2006-01-02", input.TargetDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_date, use YYYY-MM-DD"})
			return
		}
		targetDate = &d
	}

	goal, err := services.SetGoal(userID, input.GoalType, input.GoalValue, targetDate)
	if err != nil {
		if errors.Is(err, services.ErrMissingGoalFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goal"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func ListGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := services.ListGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func DeleteGoal(c *gin.Context) {
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

	if err := services.DeleteGoal(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete goal"})
		return
	}

	c.Status(http.StatusNoContent)
}

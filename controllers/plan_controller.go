package controllers

import (
	"errors"
	"net/http"

	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
)

func GetPlan(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plan, err := services.GetPlan(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func UpdatePlan(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		PlanType string `json:"plan_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.UpsertPlan(userID, input.PlanType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlanType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/promit1201/fitin-v3-20177/services"
	"github.com/promit1201/fitin-v3-20177/utils"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	Svc *services.InsightsService
}

func NewInsightsController(svc *services.InsightsService) *InsightsController {
	return &InsightsController{Svc: svc}
}

// WeeklySummary covers the Monday-start week containing ?date=
// (default today).
func (h *InsightsController) WeeklySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	at := time.Now()
	if q := c.Query("date"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		at = d
	}

	summary, err := h.Svc.WeeklySummary(c.Request.Context(), userID, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DailyBreakdown reports totals and macro-target progress for one day;
// ?meal= narrows it to a single meal and its per-meal targets.
func (h *InsightsController) DailyBreakdown(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := time.Now()
	if q := c.Query("date"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = d
	}

	breakdown, err := h.Svc.DailyBreakdown(c.Request.Context(), userID, date, c.Query("meal"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build breakdown"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// CalorieTarget derives a daily target from the stored profile;
// ?goal=maintain|cut|bulk (default maintain).
func (h *InsightsController) CalorieTarget(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal := c.DefaultQuery("goal", "maintain")
	if goal != "maintain" && goal != "cut" && goal != "bulk" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal must be maintain, cut or bulk"})
		return
	}

	target, err := h.Svc.CalorieTargetForUser(userID, goal)
	if err != nil {
		if err == utils.ErrImplausibleMetrics {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complete your profile first", "redirect": "/profile-input"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute target"})
		return
	}

	c.JSON(http.StatusOK, target)
}

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

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

func (h *NutritionController) LogMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logEntry, err := h.Svc.AddLog(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMealType),
			errors.Is(err, services.ErrNegativeMacro),
			errors.Is(err, services.ErrMissingFoodName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log meal"})
		}
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

// ListLogs returns one calendar day of logs; ?date=YYYY-MM-DD, today by
// default.
func (h *NutritionController) ListLogs(c *gin.Context) {
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

	logs, err := h.Svc.ListByDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *NutritionController) ListRecent(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	logs, err := h.Svc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *NutritionController) DeleteLog(c *gin.Context) {
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
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete log"})
		return
	}

	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
)

func ToggleRestDay(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		RestDate string `json:"rest_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.RestDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rest_date, use YYYY-MM-DD"})
		return
	}

	isRestDay, err := services.ToggleRestDay(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle rest day"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rest_date": input.RestDate, "is_rest_day": isRestDay})
}

// ListRestDays returns the inclusive ?from=&to= window, defaulting to
// the current month.
func ListRestDays(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	if q := c.Query("from"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = d
	}
	if q := c.Query("to"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = d
	}

	days, err := services.ListRestDays(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load rest days"})
		return
	}

	c.JSON(http.StatusOK, days)
}

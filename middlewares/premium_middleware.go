package middlewares

import (
	"net/http"

	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
)

// PremiumGate admits only users on a paid plan with height and weight
// on file. The "redirect" field tells the client which page to send the
// user to, mirroring the redirect checks the web app performs.
func PremiumGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		plan, err := services.GetPlan(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not load plan"})
			return
		}
		if plan.PlanType != "paid" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "premium plan required",
				"redirect": "/premium",
			})
			return
		}

		profile, err := services.GetProfile(userID)
		if err != nil || !services.HasBodyMetrics(profile) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "complete your profile first",
				"redirect": "/profile-input",
			})
			return
		}

		c.Next()
	}
}

package routes

import (
	"github.com/promit1201/fitin-v3-20177/controllers"
	"github.com/promit1201/fitin-v3-20177/middlewares"
	"github.com/promit1201/fitin-v3-20177/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, photoSvc *services.PhotoService) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	services.InitEventDeps(hub)

	nutritionSvc := services.NewNutritionService(db)
	workoutSvc := services.NewWorkoutService(db)
	insightsSvc := services.NewInsightsService(db, nutritionSvc, workoutSvc)

	nutritionCtl := controllers.NewNutritionController(nutritionSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	insightsCtl := controllers.NewInsightsController(insightsSvc)
	photoCtl := controllers.NewPhotoController(photoSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/plan", controllers.GetPlan)
		user.PUT("/plan", controllers.UpdatePlan)

		user.POST("/nutrition-logs", nutritionCtl.LogMeal)
		user.GET("/nutrition-logs", nutritionCtl.ListLogs)
		user.GET("/nutrition-logs/recent", nutritionCtl.ListRecent)
		user.DELETE("/nutrition-logs/:id", nutritionCtl.DeleteLog)

		user.POST("/workout-logs", workoutCtl.LogWorkout)
		user.GET("/workout-logs", workoutCtl.ListWorkouts)
		user.DELETE("/workout-logs/:id", workoutCtl.DeleteWorkout)

		user.POST("/goals", controllers.SetGoal)
		user.GET("/goals", controllers.ListGoals)
		user.DELETE("/goals/:id", controllers.DeleteGoal)

		user.POST("/rest-days/toggle", controllers.ToggleRestDay)
		user.GET("/rest-days", controllers.ListRestDays)

		user.GET("/insights/weekly", insightsCtl.WeeklySummary)
		user.GET("/insights/daily", insightsCtl.DailyBreakdown)

		user.GET("/events", realtimeCtl.EventsWS)
	}

	// Premium routes: paid plan + complete body metrics
	premium := r.Group("/premium")
	premium.Use(middlewares.AuthMiddleware(), middlewares.PremiumGate())
	{
		premium.POST("/progress-photos", photoCtl.UploadPhoto)
		premium.GET("/progress-photos", photoCtl.ListPhotos)
		premium.DELETE("/progress-photos/:id", photoCtl.DeletePhoto)

		premium.GET("/calorie-target", insightsCtl.CalorieTarget)
	}

	return r
}

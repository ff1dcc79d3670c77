package routes

import (
	"github.com/DragianXOG/diet-app/controllers"
	"github.com/DragianXOG/diet-app/middlewares"
	"github.com/DragianXOG/diet-app/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/intake", controllers.GetIntake)
		api.POST("/intake", controllers.UpsertIntake)
		api.POST("/intake/rationalize", controllers.RationalizePlan)

		api.POST("/plans/generate", controllers.GeneratePlan)
		api.GET("/plans", controllers.ListPlans)
		api.GET("/plans/:start", controllers.GetPlan)

		api.GET("/meals", controllers.ListMeals)
		api.POST("/meals", controllers.CreateMeals)

		api.POST("/workouts/generate", controllers.GenerateWorkouts)
		api.GET("/workouts", controllers.ListWorkouts)
		api.PATCH("/workouts/exercises/:id", controllers.UpdateWorkoutExercise)

		api.GET("/groceries", controllers.ListGroceryItems)
		api.POST("/groceries", controllers.AddGroceryItem)
		api.PATCH("/groceries/:id", controllers.ToggleGroceryItem)
		api.POST("/groceries/sync_from_meals", controllers.SyncGroceries)
		api.GET("/groceries/price_preview", controllers.PreviewGroceryPrices)
		api.POST("/groceries/price_assign", controllers.AssignGroceryPrices)

		api.GET("/trackers/weight", controllers.ListWeights)
		api.POST("/trackers/weight", controllers.AddWeight)
		api.GET("/trackers/glucose", controllers.ListGlucose)
		api.POST("/trackers/glucose", controllers.AddGlucose)

		api.GET("/checklists/meals", controllers.ListMealChecks)
		api.POST("/checklists/meals", controllers.CheckMeal)
		api.GET("/checklists/summary", controllers.ChecklistSummary)

		api.GET("/alerts", controllers.ListAlerts)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/realtime", rc.AlertsWS)
	}

	return r
}

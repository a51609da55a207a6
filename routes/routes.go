package routes

import (
    "github.com/Nikhil8847/calify/controllers"
    "github.com/Nikhil8847/calify/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    r.GET("/", controllers.HealthCheck)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected API routes
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/food-items", controllers.ListFoods)

        api.GET("/entries", controllers.ListEntries)
        api.POST("/entries", controllers.CreateEntry)
        api.GET("/entries/:id", controllers.GetEntry)
        api.PUT("/entries/:id", controllers.UpdateEntry)
        api.DELETE("/entries/:id", controllers.DeleteEntry)

        api.GET("/goals", controllers.GetGoals)
        api.PUT("/goals", controllers.UpdateGoals)

        api.GET("/summary", controllers.DailySummary)

        api.POST("/process-audio", controllers.ProcessAudio)
    }

    // Dev helpers
    dev := r.Group("/dev")
    {
        dev.POST("/seed-foods", controllers.SeedFoods)
    }

    return r
}

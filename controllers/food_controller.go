package controllers

import (
    "net/http"

    "github.com/Nikhil8847/calify/services"
    "github.com/gin-gonic/gin"
)

// GET /api/food-items?search=apple
func ListFoods(c *gin.Context) {
    foodSvc := services.NewFoodService()
    foods, err := foodSvc.List(c.Query("search"))
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, foods)
}

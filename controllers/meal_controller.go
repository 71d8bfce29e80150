package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/services"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

// GET /meals/?email=a@x.com
func (mc *MealController) ListMeals(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email parameter is required"})
		return
	}

	meals, err := mc.Meals.ListMealsByEmail(c.Request.Context(), email)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to list meals", err)
		return
	}

	out := make([]services.MealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, services.NewMealResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// GET /meals/:id/
func (mc *MealController) GetMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := mc.Meals.GetMeal(c.Request.Context(), currentUserID(c), id)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to get meal", err)
		return
	}
	c.JSON(http.StatusOK, services.NewMealResponse(*meal))
}

// DELETE /meals/:id/
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	err := mc.Meals.DeleteMeal(c.Request.Context(), currentUserID(c), id)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to delete meal", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func mealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return 0, false
	}
	return uint(id), true
}

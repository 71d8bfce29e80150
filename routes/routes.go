package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/controllers"
	"github.com/5hjiwoo/foodrecommend/middlewares"
	"github.com/5hjiwoo/foodrecommend/services"
)

type Deps struct {
	Users    *services.UserService
	Meals    *services.MealService
	Images   *services.ImageService
	Food     *services.FoodService
	Realtime *services.RealtimeHub

	JWTSecret   []byte
	CORSOrigins []string
	MediaRoot   string // served under /media when set
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(d.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = d.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.MediaRoot != "" {
		r.Static("/media", d.MediaRoot)
	}

	authCtl := controllers.NewAuthController(d.Users)
	imageCtl := controllers.NewImageController(d.Images)
	mealCtl := controllers.NewMealController(d.Meals)
	foodCtl := controllers.NewFoodController(d.Food)
	rtCtl := controllers.NewRealtimeController(d.Realtime, d.CORSOrigins)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.JWTSecret, d.Users))
	{
		api.POST("/upload-image/", imageCtl.UploadImage)
		api.GET("/food-images/", imageCtl.ListFoodImages)

		api.GET("/meals/", mealCtl.ListMeals)
		api.GET("/meals/:id/", mealCtl.GetMeal)
		api.DELETE("/meals/:id/", mealCtl.DeleteMeal)

		api.POST("/similar-foods/", foodCtl.SimilarFoods)
		api.POST("/extract-meal/", foodCtl.ExtractMeal)
		api.POST("/recognize-food/", foodCtl.RecognizeFood)
		api.DELETE("/account/", authCtl.DeleteAccount)
	}

	r.GET("/ws/meals", middlewares.WSAuthMiddleware(d.JWTSecret, d.Users), rtCtl.MealsWS)

	return r
}

package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/5hjiwoo/foodrecommend/services"
)

const invalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

type FoodController struct {
	Food *services.FoodService
}

func NewFoodController(food *services.FoodService) *FoodController {
	return &FoodController{Food: food}
}

// FoodImageForm is the accepted shape of a food image upload.
type FoodImageForm struct {
	Image *multipart.FileHeader `form:"image" binding:"required"`
}

// validationErrors renders binding failures as field -> messages.
func validationErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"non_field_errors": []string{err.Error()}}
	}
	out := gin.H{}
	for _, fe := range verrs {
		msg := "This field is invalid."
		if fe.Tag() == "required" {
			msg = "No file was submitted."
		}
		out[strings.ToLower(fe.Field())] = []string{msg}
	}
	return out
}

// POST /similar-foods/  multipart: image
func (fc *FoodController) SimilarFoods(c *gin.Context) {
	var form FoodImageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}
	data, err := readFile(form.Image)
	if uploadError(c, err) {
		return
	}

	out, err := fc.Food.SimilarFoods(c.Request.Context(), currentUserID(c), form.Image.Filename, data)
	if errors.Is(err, services.ErrNotAnImage) {
		c.JSON(http.StatusBadRequest, gin.H{"image": []string{invalidImageMessage}})
		return
	}
	if err != nil {
		internalError(c, "Similar food generation failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /extract-meal/  multipart: image, date (YYYY-MM-DD)
func (fc *FoodController) ExtractMeal(c *gin.Context) {
	data, _, err := formImage(c)
	if errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Image file is required."})
		return
	}
	if uploadError(c, err) {
		return
	}

	date, err := time.Parse(services.DateLayout, c.PostForm("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"date": []string{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}})
		return
	}

	ex, err := fc.Food.ExtractMeal(c.Request.Context(), currentUserID(c), date, data)
	if errors.Is(err, services.ErrInvalidMealType) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not determine meal type from image"})
		return
	}
	if err != nil {
		internalError(c, "Meal extraction failed", err)
		return
	}
	c.JSON(http.StatusCreated, ex)
}

// POST /recognize-food/  multipart: image
func (fc *FoodController) RecognizeFood(c *gin.Context) {
	data, _, err := formImage(c)
	if errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if uploadError(c, err) {
		return
	}

	labels, err := fc.Food.Recognize(c.Request.Context(), data)
	if errors.Is(err, services.ErrRecognitionDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		internalError(c, "Food recognition failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

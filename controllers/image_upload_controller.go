package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5hjiwoo/foodrecommend/services"
)

type ImageController struct {
	Images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{Images: images}
}

// POST /upload-image/  multipart: image
func (ic *ImageController) UploadImage(c *gin.Context) {
	data, filename, err := formImage(c)
	if errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if uploadError(c, err) {
		return
	}

	url, err := ic.Images.Upload(c.Request.Context(), filename, data)
	if err != nil {
		internalError(c, "Upload failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}

type foodImageResponse struct {
	ID        uint   `json:"id"`
	Image     string `json:"image"`
	UserID    uint   `json:"user"`
	CreatedAt string `json:"created_at"`
}

// GET /food-images/
func (ic *ImageController) ListFoodImages(c *gin.Context) {
	images, err := ic.Images.ListFoodImages(c.Request.Context(), currentUserID(c))
	if err != nil {
		internalError(c, "Failed to list food images", err)
		return
	}
	out := make([]foodImageResponse, 0, len(images))
	for i := range images {
		out = append(out, foodImageResponse{
			ID:        images[i].ID,
			Image:     ic.Images.URL(&images[i]),
			UserID:    images[i].UserID,
			CreatedAt: images[i].CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z"),
		})
	}
	c.JSON(http.StatusOK, out)
}

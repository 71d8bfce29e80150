package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/5hjiwoo/foodrecommend/models"
	"github.com/5hjiwoo/foodrecommend/utils"
)

const foodImagesPrefix = "food_images"

type ImageService struct {
	db      *gorm.DB
	storage utils.Storage
}

func NewImageService(db *gorm.DB, storage utils.Storage) *ImageService {
	return &ImageService{db: db, storage: storage}
}

// Upload stores the bytes as-is and returns their public URL.
func (s *ImageService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	contentType, _ := utils.DetectImage(data)
	key := utils.ObjectKey("", filename, data)
	if err := s.storage.Save(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return s.storage.URL(key), nil
}

// CreateFoodImage stores an image owned by userID and records it.
func (s *ImageService) CreateFoodImage(ctx context.Context, userID uint, filename string, data []byte) (*models.FoodImage, error) {
	contentType, ok := utils.DetectImage(data)
	if !ok {
		return nil, ErrNotAnImage
	}
	key := utils.ObjectKey(foodImagesPrefix, filename, data)
	if err := s.storage.Save(ctx, key, contentType, data); err != nil {
		return nil, fmt.Errorf("save food image: %w", err)
	}

	img := &models.FoodImage{Image: key, UserID: userID}
	if err := s.db.WithContext(ctx).Create(img).Error; err != nil {
		return nil, fmt.Errorf("create food image: %w", err)
	}
	return img, nil
}

func (s *ImageService) URL(img *models.FoodImage) string {
	return s.storage.URL(img.Image)
}

func (s *ImageService) ListFoodImages(ctx context.Context, userID uint) ([]models.FoodImage, error) {
	images := []models.FoodImage{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("list food images: %w", err)
	}
	return images, nil
}

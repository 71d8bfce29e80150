package services

import (
	"context"
	"fmt"
	"time"

	"github.com/5hjiwoo/foodrecommend/logger"
	"github.com/5hjiwoo/foodrecommend/utils"
)

// FoodService runs the enrichment flows on top of images and meals.
type FoodService struct {
	enricher Enricher
	images   *ImageService
	meals    *MealService
	rek      *RekognitionService // nil when recognition is disabled
	notifier MealNotifier
}

func NewFoodService(enricher Enricher, images *ImageService, meals *MealService, rek *RekognitionService, notifier MealNotifier) *FoodService {
	return &FoodService{
		enricher: enricher,
		images:   images,
		meals:    meals,
		rek:      rek,
		notifier: notifier,
	}
}

// SimilarFoods records the upload for userID and returns the generated
// images untouched.
func (s *FoodService) SimilarFoods(ctx context.Context, userID uint, filename string, image []byte) ([]GeneratedImage, error) {
	img, err := s.images.CreateFoodImage(ctx, userID, filename, image)
	if err != nil {
		return nil, err
	}
	logger.Info("Food image stored", "food_image_id", img.ID, "user_id", userID)

	out, err := s.enricher.GenerateSimilar(ctx, image, filename)
	if err != nil {
		return nil, fmt.Errorf("generate similar foods: %w", err)
	}
	return out, nil
}

// ExtractMeal derives a meal from the image and saves it for userID on date.
func (s *FoodService) ExtractMeal(ctx context.Context, userID uint, date time.Time, image []byte) (*MealExtraction, error) {
	contentType, _ := utils.DetectImage(image)
	ex, err := s.enricher.ExtractMeal(ctx, image, contentType)
	if err != nil {
		return nil, fmt.Errorf("extract meal: %w", err)
	}

	meal, err := s.meals.AddMeal(ctx, userID, ex.MealType, date, []MealItemRequest{{
		FoodName: ex.FoodName,
		Calories: ex.Calories,
		Carbs:    ex.Carbs,
		Protein:  ex.Protein,
		Fat:      ex.Fat,
	}})
	if err != nil {
		return nil, err
	}
	logger.Info("Meal extracted", "meal_id", meal.ID, "user_id", userID, "meal_type", meal.MealType)

	emitMealCreated(s.notifier, userID, NewMealResponse(*meal))
	return ex, nil
}

// Recognize returns Rekognition labels for the image.
func (s *FoodService) Recognize(ctx context.Context, image []byte) ([]string, error) {
	if s.rek == nil {
		return nil, ErrRecognitionDisabled
	}
	return s.rek.RecognizeLabels(ctx, image)
}

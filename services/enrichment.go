package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

const (
	similarFoodsPrompt = "Generate images of Indonesian and Korean foods similar to the uploaded image."
	similarFoodsCount  = 2
	similarFoodsSize   = openai.CreateImageSize1024x1024

	extractMealPrompt = `Extract the food name, meal time, and nutrition information from this image.
Reply with a JSON object of the form {"results":[{"food_name":string,"meal_type":"breakfast"|"lunch"|"dinner","calories":number,"carbs":number,"protein":number,"fat":number}]} containing exactly one result.`
)

var ErrMalformedExtraction = errors.New("extraction response is not valid JSON")

// GeneratedImage is one entry of the image capability's result list, passed
// through to clients unchanged.
type GeneratedImage = openai.ImageResponseDataInner

// Enricher derives food data from raw image bytes.
type Enricher interface {
	GenerateSimilar(ctx context.Context, image []byte, filename string) ([]GeneratedImage, error)
	ExtractMeal(ctx context.Context, image []byte, contentType string) (*MealExtraction, error)
}

// MealExtraction is the first extracted result. Absent fields stay at their
// zero value.
type MealExtraction struct {
	FoodName string  `json:"food_name"`
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// ParseMealExtraction reads the first record of a JSON extraction reply.
// Both {"results":[{...}]} and a bare {...} record are accepted.
func ParseMealExtraction(raw string) (*MealExtraction, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	if !gjson.Valid(raw) {
		return nil, ErrMalformedExtraction
	}

	rec := gjson.Get(raw, "results.0")
	if !rec.Exists() {
		rec = gjson.Parse(raw)
		if rec.IsArray() {
			rec = rec.Get("0")
		}
	}

	return &MealExtraction{
		FoodName: rec.Get("food_name").String(),
		MealType: strings.ToLower(strings.TrimSpace(rec.Get("meal_type").String())),
		Calories: rec.Get("calories").Float(),
		Carbs:    rec.Get("carbs").Float(),
		Protein:  rec.Get("protein").Float(),
		Fat:      rec.Get("fat").Float(),
	}, nil
}

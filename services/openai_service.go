package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"

	"github.com/5hjiwoo/foodrecommend/logger"
)

type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // optional, e.g. for a proxy
	ChatModel  string
	ImageModel string
}

// OpenAIEnricher talks to the OpenAI images and chat completion APIs.
type OpenAIEnricher struct {
	client     *openai.Client
	chatModel  string
	imageModel string
}

func NewOpenAIEnricher(cfg OpenAIConfig) *OpenAIEnricher {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &OpenAIEnricher{
		client:     openai.NewClientWithConfig(oc),
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
	}
}

// GenerateSimilar asks for images of similar dishes from two fixed cuisines,
// using the upload as the source image.
func (e *OpenAIEnricher) GenerateSimilar(ctx context.Context, image []byte, filename string) ([]GeneratedImage, error) {
	// the images edit endpoint takes a named file upload
	f, err := os.CreateTemp("", "food-*"+filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write(image); err != nil {
		return nil, fmt.Errorf("write temp image: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind temp image: %w", err)
	}

	resp, err := e.client.CreateEditImage(ctx, openai.ImageEditRequest{
		Image:          f,
		Prompt:         similarFoodsPrompt,
		Model:          e.imageModel,
		N:              similarFoodsCount,
		Size:           similarFoodsSize,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image edit: %w", err)
	}
	logger.Debug("Similar foods generated", "count", len(resp.Data))
	return resp.Data, nil
}

func (e *OpenAIEnricher) ExtractMeal(ctx context.Context, image []byte, contentType string) (*MealExtraction, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: extractMealPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
						URL:    dataURI,
						Detail: openai.ImageURLDetailAuto,
					}},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		N: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion: no choices returned")
	}
	return ParseMealExtraction(resp.Choices[0].Message.Content)
}

package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// LabelDetector is the subset of the Rekognition client in use.
type LabelDetector interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionService struct {
	client LabelDetector
}

func NewRekognitionService(ctx context.Context, region string) (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for Rekognition: %w", err)
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

func NewRekognitionServiceWithClient(client LabelDetector) *RekognitionService {
	return &RekognitionService{client: client}
}

// RecognizeLabels returns the top labels for raw image bytes.
func (r *RekognitionService) RecognizeLabels(ctx context.Context, image []byte) ([]string, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, fmt.Errorf("detect labels: %w", err)
	}

	labels := make([]string, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}

package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/models"
	"github.com/shivas758/yamkar4.1-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"gorm.io/gorm"
)

type PhotoService struct {
	db  *gorm.DB
	rek *rekognition.Client
}

func NewPhotoService(db *gorm.DB) (*PhotoService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &PhotoService{db: db, rek: rekognition.NewFromConfig(cfg)}, nil
}

// SaveMeterReading uploads the meter photo to the bucket, screens it
// for labels, and stores the reading row. Label screening is
// best-effort: a rekognition failure is logged, not surfaced.
func (s *PhotoService) SaveMeterReading(ctx context.Context, userID, farmerID uint, reading float64, photoBase64 string) (*models.MeterReading, error) {
	url, err := utils.UploadBase64Image(photoBase64, "meter-photos")
	if err != nil {
		return nil, err
	}

	labels, err := s.recognizeLabels(ctx, photoBase64)
	if err != nil {
		log.Printf("meter photo label screening failed: %v", err)
	}

	row := models.MeterReading{
		FarmerID:   farmerID,
		UserID:     userID,
		PhotoURL:   url,
		Reading:    reading,
		Labels:     strings.Join(labels, ","),
		CapturedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByFarmer returns readings newest first.
func (s *PhotoService) ListByFarmer(ctx context.Context, farmerID uint) ([]models.MeterReading, error) {
	var rows []models.MeterReading
	err := s.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("captured_at DESC").
		Find(&rows).Error
	return rows, err
}

// recognizeLabels returns the top labels for a base64-encoded image.
func (s *PhotoService) recognizeLabels(ctx context.Context, base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := s.rek.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

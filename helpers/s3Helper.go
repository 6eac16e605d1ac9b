package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang-exercisebackend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SnapshotTimeFormat is used in snapshot file names.
const SnapshotTimeFormat = "20060102T150405Z"

// ObjectPutter is the part of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type SpacesConfig struct {
	Key      string
	Secret   string
	Endpoint string
	Region   string
	Bucket   string
}

// SnapshotUploader writes exercise snapshots to an S3-compatible bucket.
type SnapshotUploader struct {
	client ObjectPutter
	bucket string
	now    func() time.Time
}

func NewSnapshotUploader(client ObjectPutter, bucket string) *SnapshotUploader {
	return &SnapshotUploader{client: client, bucket: bucket, now: time.Now}
}

// NewS3Client builds an S3 client with static credentials, pointed at a
// custom endpoint when one is configured (e.g. DigitalOcean Spaces).
func NewS3Client(ctx context.Context, cfg SpacesConfig) (*s3.Client, error) {
	s3Cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(s3Cfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	log.Print("S3 client created")
	return client, nil
}

// NewSnapshot wraps the exercises with the export time.
func NewSnapshot(exercises []models.Exercise, at time.Time) models.ExerciseSnapshot {
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	return models.ExerciseSnapshot{
		ExportedAt: at.UTC().Format(time.RFC3339),
		Count:      len(exercises),
		Exercises:  exercises,
	}
}

// SnapshotFileName is the attachment and object name for a snapshot taken at t.
func SnapshotFileName(t time.Time) string {
	return fmt.Sprintf("exercises-%s.json", t.UTC().Format(SnapshotTimeFormat))
}

// Upload stores the exercises under exports/ and returns the object key.
func (u *SnapshotUploader) Upload(ctx context.Context, exercises []models.Exercise) (string, error) {
	at := u.now()
	body, err := json.Marshal(NewSnapshot(exercises, at))
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	key := "exports/" + SnapshotFileName(at)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		ACL:         "private",
	})
	if err != nil {
		return "", fmt.Errorf("uploading snapshot %s: %w", key, err)
	}
	return key, nil
}

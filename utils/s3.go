package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// ArchiveEnabled reports whether voice-clip archival is configured.
func ArchiveEnabled() bool {
	return s3Client != nil && os.Getenv("S3_BUCKET") != ""
}

// ArchiveAudioToS3 copies a staged voice clip to the configured bucket under
// voice-uploads/. Best-effort: callers log the error instead of failing the
// request over an archival hiccup.
func ArchiveAudioToS3(path string) (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	if s3Client == nil || bucket == "" {
		return "", fmt.Errorf("S3 archive not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open staged audio: %w", err)
	}
	defer f.Close()

	key := fmt.Sprintf("voice-uploads/%s-%s", time.Now().Format("20060102"), uuid.NewString())
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("audio/wav"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}

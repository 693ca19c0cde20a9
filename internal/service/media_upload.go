package service

import (
	"context"
	"fmt"
	"io"
	"time"

	a "therapyhq/practice-api/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const minMultipartSize = 12 << 20

// MediaUploader pushes session attachments to object storage and hands
// back the public URL to persist on the media record
type MediaUploader struct {
	S3 *a.S3Client
}

func NewMediaUploader(s *a.S3Client) *MediaUploader {
	return &MediaUploader{S3: s}
}

// Do streams body to the bucket under a random key and returns the object
// URL. Large attachments switch to multipart upload.
func (u *MediaUploader) Do(body io.Reader, size int64, contentType string) (string, error) {
	key, err := gonanoid.New(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate object key, %w", err)
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(time.Minute))
	defer cancel()

	objectInput := &s3.PutObjectInput{
		Bucket:        u.S3.Bucket,
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}

	if size > minMultipartSize {
		uploader := manager.NewUploader(u.S3.C, func(u *manager.Uploader) {
			u.Concurrency = 5
			u.PartSize = 6 << 20
		})

		if _, err := uploader.Upload(ctx, objectInput); err != nil {
			return "", fmt.Errorf("failed to upload attachment, %w", err)
		}
	} else {
		if _, err := u.S3.C.PutObject(ctx, objectInput); err != nil {
			return "", fmt.Errorf("failed to upload attachment, %w", err)
		}
	}

	zap.L().Debug("Uploaded media attachment", zap.String("key", key), zap.Int64("size", size))

	return fmt.Sprintf("s3://%s/%s", *u.S3.Bucket, key), nil
}

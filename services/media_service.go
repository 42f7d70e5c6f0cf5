package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MediaService hands out presigned S3 URLs for avatar uploads. It is
// optional infrastructure: with no bucket configured the routes are not
// registered at all.
type MediaService struct {
	Client *s3.Client
	Bucket string
}

// NewMediaService loads the default AWS config and returns a media
// service bound to bucket.
func NewMediaService(ctx context.Context, bucket, region string) (*MediaService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

// PresignAvatarUpload generates a presigned PUT URL for a new avatar
// object under the user's prefix. The key never repeats, so an upload
// can't clobber a previous avatar.
func (ms *MediaService) PresignAvatarUpload(ctx context.Context, userID, contentType string) (string, string, error) {
	key := fmt.Sprintf("avatars/%s/%s", userID, uuid.NewString())
	presigner := s3.NewPresignClient(ms.Client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign avatar upload: %w", err)
	}
	return req.URL, key, nil
}

// PresignAvatarRead generates a presigned GET URL for an avatar key.
func (ms *MediaService) PresignAvatarRead(ctx context.Context, key string) (string, error) {
	presigner := s3.NewPresignClient(ms.Client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign avatar read: %w", err)
	}
	return req.URL, nil
}

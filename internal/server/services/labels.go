// Package services holds server-side services that sit beside the store,
// currently the S3-backed label image storage.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/cellarkeeper/internal/server/config"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// LabelService issues presigned S3 URLs for bottle label images.
type LabelService struct {
	bottles store.BottleStore
	config  *sc.Config
	now     func() time.Time
}

func NewLabelService(bottles store.BottleStore, config *sc.Config) *LabelService {
	return &LabelService{bottles: bottles, config: config, now: time.Now}
}

// labelKey groups images by owner and upload date, e.g.
// labels/u1/2025/03/01/<bottle>-<uuid>.
func (s *LabelService) labelKey(ownerID, bottleID string) string {
	d := s.now().UTC()
	return fmt.Sprintf("labels/%s/%04d/%02d/%02d/%s-%s", ownerID, d.Year(), d.Month(), d.Day(), bottleID, uuid.NewString())
}

func (s *LabelService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// UploadURL returns a fresh object key for the bottle's label and a
// presigned PUT URL for it. The bottle must exist.
func (s *LabelService) UploadURL(ctx context.Context, bottleID string) (string, string, error) {
	b, err := s.bottles.GetBottle(ctx, bottleID)
	if err != nil {
		return "", "", err
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := s.labelKey(b.OwnerID, b.ID)

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.LabelURLTTL))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

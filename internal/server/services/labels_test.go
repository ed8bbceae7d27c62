package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	sc "github.com/dmitrijs2005/cellarkeeper/internal/server/config"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/store/memory"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "labels",
		LabelURLTTL:    10 * time.Minute,
	}
}

// stubS3 replaces the AWS seams for the duration of the test.
func stubS3(t *testing.T, put func(in *s3.PutObjectInput, opts s3.PresignOptions) (*v4.PresignedHTTPRequest, error)) *string {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	var endpoint string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		endpoint = aws.ToString(o.BaseEndpoint)
		assert.True(t, o.UsePathStyle)
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		require.NotNil(t, c)
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var o s3.PresignOptions
		for _, fn := range optFns {
			fn(&o)
		}
		return put(in, o)
	}
	return &endpoint
}

func seedBottle(t *testing.T, st *memory.Store) models.Bottle {
	t.Helper()
	ctx := context.Background()
	c, err := st.CreateCabinet(ctx, models.Cabinet{
		OwnerID: "u1", Name: "Kitchen", Type: models.CabinetTypeCabinet,
		Dimensions: models.Dimensions{Rows: 1, Columns: 1, Depth: 1},
	})
	require.NoError(t, err)
	b, err := st.CreateBottle(ctx, models.Bottle{
		OwnerID: "u1", CabinetID: c.ID,
		Details: models.Details{Name: "Chablis", Type: models.WineTypeWhite},
	})
	require.NoError(t, err)
	return b
}

func TestUploadURL(t *testing.T) {
	st := memory.New()
	b := seedBottle(t, st)

	var gotBucket, gotKey string
	var gotTTL time.Duration
	endpoint := stubS3(t, func(in *s3.PutObjectInput, o s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey, gotTTL = aws.ToString(in.Bucket), aws.ToString(in.Key), o.Expires
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/labels/" + gotKey + "?X-Amz-Signature=abc"}, nil
	})

	svc := NewLabelService(st, testConfig())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	key, url, err := svc.UploadURL(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", *endpoint)
	assert.Equal(t, "labels", gotBucket)
	assert.Equal(t, key, gotKey)
	assert.Equal(t, 10*time.Minute, gotTTL)
	assert.True(t, strings.HasPrefix(key, "labels/u1/2025/03/01/"+b.ID+"-"), key)
	assert.Contains(t, url, "X-Amz-Signature")
}

func TestUploadURL_UnknownBottle(t *testing.T) {
	stubS3(t, func(*s3.PutObjectInput, s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
		t.Fatal("presign must not be called")
		return nil, nil
	})

	_, _, err := NewLabelService(memory.New(), testConfig()).UploadURL(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUploadURL_Errors(t *testing.T) {
	st := memory.New()
	b := seedBottle(t, st)
	svc := NewLabelService(st, testConfig())

	stubS3(t, func(*s3.PutObjectInput, s3.PresignOptions) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	})
	_, _, err := svc.UploadURL(context.Background(), b.ID)
	assert.EqualError(t, err, "presign-fail")

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, _, err = svc.UploadURL(context.Background(), b.ID)
	assert.EqualError(t, err, "load-fail")
}

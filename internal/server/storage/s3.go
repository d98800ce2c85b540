package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/server/models"
)

// Test seams, in the style used for the other AWS-facing code.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3API is the subset of the S3 client used by the store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config carries the settings for the S3-compatible backend.
type S3Config struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Store persists uploads as objects "<projectUUID>/<slug>.<ext>" inside a
// single bucket. Manifest links keep the same bucket-relative shape as the
// local backend.
type S3Store struct {
	client s3API
	bucket string
}

// NewS3Store builds an S3 client for the configured endpoint (MinIO or AWS)
// with static credentials.
func NewS3Store(ctx context.Context, c S3Config) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.RootUser,
			c.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Store{client: client, bucket: c.Bucket}, nil
}

// CreateBucket is a no-op: object keys need no directory, and the bucket
// itself is provisioned out of band.
func (s *S3Store) CreateBucket(_ context.Context, _ string) error {
	return nil
}

func (s *S3Store) Store(ctx context.Context, projectUUID string, file models.IngestedFile) (*models.StoredFile, error) {
	name, err := objectName(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file.TempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open spooled file: %w", err)
	}
	defer f.Close()

	key := projectUUID + "/" + name
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentType:   aws.String(file.MimeType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}

	_ = os.Remove(file.TempPath)

	return &models.StoredFile{
		Bytes:            file.Size,
		OriginalFilename: file.OriginalFilename,
		Link:             "/" + key,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, projectUUID, filename string) error {
	sanitized := sanitizeFilename(filename)
	if sanitized == "" || sanitized == "." || sanitized == ".." {
		return common.ErrorNotFound
	}
	key := projectUUID + "/" + sanitized

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("failed to stat object: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

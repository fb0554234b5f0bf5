package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ ImageStore = (*S3Store)(nil)

// objectPutter is the part of *s3.Client the store needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config points at an S3 compatible bucket such as Cloudflare R2
type S3Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	Region        string
	MaxBytes      int64
}

// S3Store uploads images to a bucket and returns their public URL
type S3Store struct {
	client   objectPutter
	bucket   string
	baseURL  string
	prefix   string
	maxBytes int64
}

// NewS3Store builds an S3 client from cfg
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("s3 public base url is required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg), nil
}

func newS3Store(client objectPutter, cfg S3Config) *S3Store {
	return &S3Store{
		client:   client,
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		prefix:   "invoices",
		maxBytes: cfg.MaxBytes,
	}
}

// Put uploads the image under invoices/<uuid><ext> and returns its URL
func (s *S3Store) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	up, err := ReadUpload(r, contentType, s.maxBytes)
	if err != nil {
		return "", err
	}

	key := path.Join(s.prefix, uuid.NewString()+up.MIME.Extension())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(up.Data),
		ContentType:   aws.String(up.MIME.String()),
		ContentLength: aws.Int64(int64(len(up.Data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}

	log.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(up.Data),
		"type":  up.MIME.String(),
	}).Info("Invoice image uploaded")
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

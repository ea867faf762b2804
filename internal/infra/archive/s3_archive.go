package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/gamers-hub/internal/config"
	"github.com/BruksfildServices01/gamers-hub/internal/models"
)

// PutObjectAPI is the slice of the S3 client the archiver needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver keeps a JSON copy of every confirmed booking.
type S3Archiver struct {
	api    PutObjectAPI
	bucket string
	prefix string
}

func NewS3Archiver(api PutObjectAPI, bucket, prefix string) *S3Archiver {
	return &S3Archiver{api: api, bucket: bucket, prefix: prefix}
}

// NewS3Client builds a client from static keys. A custom endpoint switches
// to path-style addressing for S3-compatible stores.
func NewS3Client(cfg config.ArchiveConfig) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// Key is bookings/<date>/<reference>.json under the configured prefix.
func (a *S3Archiver) Key(b models.Booking) string {
	return path.Join(a.prefix, b.Date, b.Reference+".json")
}

func (a *S3Archiver) Archive(ctx context.Context, b models.Booking) error {
	body, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "encode booking")
	}

	_, err = a.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.Key(b)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrapf(err, "put %s", a.Key(b))
	}
	return nil
}

// Package fsxs3 implements fsx.FileSystem on top of an S3 bucket.
package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx"
)

type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem stores objects under prefix in bucket.
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3FileSystem) key(p string) *string {
	return aws.String(path.Join(s.prefix, p))
}

func (s *S3FileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(p),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fsx.ErrIO(err).WithDetail("key", *s.key(p))
	}
	return nil
}

func (s *S3FileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	stream, err := s.ReadFileStream(ctx, p)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fsx.ErrIO(err).WithDetail("key", *s.key(p))
	}
	return data, nil
}

func (s *S3FileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(p),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fsx.ErrFileNotFound().WithDetail("key", *s.key(p))
		}
		return nil, fsx.ErrIO(err).WithDetail("key", *s.key(p))
	}
	return out.Body, nil
}

func (s *S3FileSystem) DeleteFile(ctx context.Context, p string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(p),
	})
	if err != nil {
		return fsx.ErrIO(err).WithDetail("key", *s.key(p))
	}
	return nil
}

func (s *S3FileSystem) Exists(ctx context.Context, p string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(p),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fsx.ErrIO(err).WithDetail("key", *s.key(p))
	}
	return true, nil
}

func (s *S3FileSystem) Join(parts ...string) string {
	return path.Join(parts...)
}

package dataset

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

// S3Client is the S3 API surface the store uses.
// *s3.Client from aws-sdk-go-v2 satisfies it.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Store stores datasets as S3 objects under prefix/workspace/path.
// Content hashes are S3 ETags, so hash comparison never downloads content.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := dataset.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "datasets/")
type S3Store struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed dataset store.
// The prefix may be empty; a trailing slash is added when missing.
func NewS3Store(client S3Client, bucket, prefix string) *S3Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(workspace, path string) string {
	return s.prefix + workspace + "/" + path
}

// Read downloads the dataset content.
func (s *S3Store) Read(ctx context.Context, workspace, path string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(workspace, path)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, errors.New("E301").WithDetail(workspace + "/" + path)
		}
		return nil, errors.FromError(err, "E301")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write uploads the dataset content.
func (s *S3Store) Write(ctx context.Context, workspace, path string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(workspace, path)),
		Body:   bytes.NewReader(data),
	})
	return err
}

// Delete removes the dataset object. S3 deletes are idempotent.
func (s *S3Store) Delete(ctx context.Context, workspace, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(workspace, path)),
	})
	return err
}

// Hashes lists the workspace's objects and returns their ETags by path.
func (s *S3Store) Hashes(ctx context.Context, workspace string) (map[string]string, error) {
	wsPrefix := s.prefix + workspace + "/"
	out := make(map[string]string)

	var continuation *string
	for {
		page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(wsPrefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			path := strings.TrimPrefix(aws.ToString(obj.Key), wsPrefix)
			etag := strings.Trim(aws.ToString(obj.ETag), `"`)
			out[path] = etag
		}
		if page.NextContinuationToken == nil {
			return out, nil
		}
		continuation = page.NextContinuationToken
	}
}

// Close implements Store. The S3 client holds no resources to release.
func (s *S3Store) Close() error {
	return nil
}

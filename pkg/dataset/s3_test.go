package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 is an in-memory S3Client covering the calls S3Store makes.
type fakeS3 struct {
	objects  map[string][]byte
	pageSize int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) etag(data []byte) string {
	return fmt.Sprintf("%q", ContentHash(data))
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader(data)),
		ETag: aws.String(f.etag(data)),
	}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{ETag: aws.String(f.etag(data))}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	prefix := aws.ToString(in.Prefix)

	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		for i, key := range keys {
			if key > aws.ToString(in.ContinuationToken) {
				start = i
				break
			}
		}
	}

	size := f.pageSize
	if size <= 0 {
		size = len(keys)
	}
	end := start + size
	if end > len(keys) {
		end = len(keys)
	}

	out := &s3.ListObjectsV2Output{}
	for _, key := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{
			Key:  aws.String(key),
			ETag: aws.String(f.etag(f.objects[key])),
		})
	}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(keys[end-1])
	}
	return out, nil
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("read write delete", func(t *testing.T) {
		client := newFakeS3()
		store := NewS3Store(client, "bucket", "datasets")

		if err := store.Write(ctx, "ws", "sales.ds", []byte("content")); err != nil {
			t.Fatal(err)
		}
		if _, ok := client.objects["datasets/ws/sales.ds"]; !ok {
			t.Fatalf("object landed at the wrong key: %v", keysOf(client.objects))
		}

		got, err := store.Read(ctx, "ws", "sales.ds")
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "content" {
			t.Fatalf("Read = %q", got)
		}

		if err := store.Delete(ctx, "ws", "sales.ds"); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Read(ctx, "ws", "sales.ds"); !IsNotFound(err) {
			t.Fatalf("read after delete: %v, want not-found", err)
		}

		// Deleting again is fine.
		if err := store.Delete(ctx, "ws", "sales.ds"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("missing object maps to not found", func(t *testing.T) {
		store := NewS3Store(newFakeS3(), "bucket", "")
		_, err := store.Read(ctx, "ws", "absent.ds")
		if !IsNotFound(err) {
			t.Fatalf("err = %v, want not-found", err)
		}
	})

	t.Run("hashes lists only the workspace and trims etag quotes", func(t *testing.T) {
		client := newFakeS3()
		store := NewS3Store(client, "bucket", "datasets/")

		if err := store.Write(ctx, "ws", "a.ds", []byte("aa")); err != nil {
			t.Fatal(err)
		}
		if err := store.Write(ctx, "ws", "b.ds", []byte("bb")); err != nil {
			t.Fatal(err)
		}
		if err := store.Write(ctx, "other", "c.ds", []byte("cc")); err != nil {
			t.Fatal(err)
		}

		hashes, err := store.Hashes(ctx, "ws")
		if err != nil {
			t.Fatal(err)
		}
		if len(hashes) != 2 {
			t.Fatalf("Hashes = %v, want 2 entries", hashes)
		}
		if hashes["a.ds"] != ContentHash([]byte("aa")) {
			t.Fatalf("etag not trimmed: %q", hashes["a.ds"])
		}
	})

	t.Run("hashes follows continuation tokens", func(t *testing.T) {
		client := newFakeS3()
		client.pageSize = 2
		store := NewS3Store(client, "bucket", "")

		for i := 0; i < 5; i++ {
			path := fmt.Sprintf("d%d.ds", i)
			if err := store.Write(ctx, "ws", path, []byte(path)); err != nil {
				t.Fatal(err)
			}
		}

		hashes, err := store.Hashes(ctx, "ws")
		if err != nil {
			t.Fatal(err)
		}
		if len(hashes) != 5 {
			t.Fatalf("Hashes = %v, want 5 entries", hashes)
		}
	})
}

func keysOf(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

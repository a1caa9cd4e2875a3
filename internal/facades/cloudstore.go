package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/imagevault/image-service/internal/logger"
)

// UploadResult carries the handles returned by a successful remote upload.
type UploadResult struct {
	URL      string // Public URL of the stored object
	ObjectID string // Object key, used later for deletion
}

// CloudStoreFacade implements the remote object store over any S3-compatible
// backend (MinIO, ArvanCloud, AWS S3). Every call is bounded by the
// configured timeout; a timed-out call is indistinguishable from any other
// remote failure to callers.
type CloudStoreFacade struct {
	client     *minio.Client
	bucket     string
	publicBase string
	timeout    time.Duration
}

// NewCloudStoreFacade creates the MinIO client, ensures the bucket exists
// with a public-read policy, and returns a ready-to-use facade.
func NewCloudStoreFacade(endpoint, accessKey, secretKey, bucket, publicBase string, useSSL bool, timeout time.Duration) (*CloudStoreFacade, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		logger.Log.Infow("created bucket", "bucket", bucket)
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &CloudStoreFacade{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		timeout:    timeout,
	}, nil
}

// Upload stores the decoded image bytes under a fresh object key and returns
// the public URL and object id.
func (f *CloudStoreFacade) Upload(ctx context.Context, data []byte) (*UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	objectID := uuid.NewString() + ".jpg"

	_, err := f.client.PutObject(ctx, f.bucket, objectID, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		logger.Log.Errorw("remote upload failed", "object_id", objectID, "error", err)
		return nil, fmt.Errorf("put object %q: %w", objectID, err)
	}

	return &UploadResult{
		URL:      f.publicBase + "/" + objectID,
		ObjectID: objectID,
	}, nil
}

// Delete removes the object with the given id from the bucket.
func (f *CloudStoreFacade) Delete(ctx context.Context, objectID string) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := f.client.RemoveObject(ctx, f.bucket, objectID, minio.RemoveObjectOptions{}); err != nil {
		logger.Log.Errorw("remote delete failed", "object_id", objectID, "error", err)
		return fmt.Errorf("remove object %q: %w", objectID, err)
	}
	return nil
}

// publicReadPolicy returns an S3 bucket policy JSON allowing anonymous GET
// on all objects in the bucket.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"profile-sync/core/profile"
	"profile-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the snapshot as a single object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	key    string
	region string
}

// NewObjectStore returns a store for bucket/key. region is used when the bucket
// has to be created.
func NewObjectStore(client storage.Client, bucket, key, region string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, key: key, region: region}
}

// Location returns the object URL.
func (s *ObjectStore) Location() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Load downloads and decodes the snapshot. A missing bucket or object is an
// empty store. Transport errors are returned as-is: they say nothing about the
// stored content, and treating them as empty would reissue every identifier.
func (s *ObjectStore) Load(ctx context.Context) ([]profile.Record, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.Location(), err)
	}
	defer obj.Close()

	// minio reports a missing object on first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.Location(), err)
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Location(), err)
	}
	return records, nil
}

// Save uploads the snapshot, creating the bucket when it does not exist yet.
func (s *ObjectStore) Save(ctx context.Context, records []profile.Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("creating bucket %s: %w", s.bucket, err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.Location(), err)
	}
	return nil
}

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that inventories and profile snapshots can
// live in AWS S3 or a self-hosted MinIO instance instead of the local disk.
//
// # Client Interface
//
// The Client interface exposes only the operations the sync needs, which keeps
// the mock in core/storage/mocks small:
//
//   - BucketExists / MakeBucket: ensure the snapshot bucket is present before writing.
//   - PutObject: replace a profile snapshot in one request.
//   - GetObject: read an inventory document or the previous snapshot.
//
// IsNotFound distinguishes "object absent" from real failures.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, "inventories", "devices.yaml", minio.GetObjectOptions{})
package storage

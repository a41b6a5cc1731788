// Package storage provides read access to puzzle inputs kept in object storage.
//
// It wraps the MinIO Go client behind a small interface so that input loading
// can be tested without a running server. Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the input bucket.
//   - GetObject: Retrieves an input file as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "day03.txt", minio.GetObjectOptions{})
package storage

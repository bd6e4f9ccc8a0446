// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the bucket asset
// source needs. This supports both AWS S3 and self-hosted MinIO instances and
// keeps storage mockable in tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket (see EnsureBucket).
//   - GetObject: Retrieves an asset as a stream.
//   - ListObjects: Lists the assets under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	if err := storage.EnsureBucket(ctx, client, "assets"); err != nil {
//	    return err
//	}
package storage

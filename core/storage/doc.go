// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering what the
// upload and integrity features need. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the upload bucket.
//   - PutObject: upload content (with size and options).
//   - ListObjects: list objects under a prefix.
//   - RemoveObject: delete an uploaded object.
//
// Config.ObjectURL turns an object name into the public URL stored on catalog rows.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage

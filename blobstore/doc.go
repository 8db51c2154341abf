// Package blobstore provides read access to region datasets stored locally
// or in object storage.
//
// BlobStore is the interface for opening immutable data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
// Stores that can fetch a whole object more efficiently than a single range
// read (for example with parallel part downloads) may also implement Fetcher;
// ReadAll prefers it.
package blobstore

// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	regions, err := dataset.Load(ctx, store, "county_centroids.json.zst")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Parallel multi-part downloads for whole-object fetches
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints and path-style addressing for S3-compatible services
package s3

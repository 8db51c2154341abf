// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for optimal compatibility with MinIO
// and other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "geo",
//	    minio.WithCredentials("minioadmin", "minioadmin"),
//	    minio.WithPrefix("datasets/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	regions, err := dataset.Load(ctx, store, "county_centroids.json")
//
// Without WithCredentials, credentials are read from MINIO_ACCESS_KEY /
// MINIO_SECRET_KEY and then from the AWS environment variables.
package minio

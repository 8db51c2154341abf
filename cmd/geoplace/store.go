package main

import (
	"context"

	"github.com/hupe1980/geoplace/blobstore"
	miniostore "github.com/hupe1980/geoplace/blobstore/minio"
	s3store "github.com/hupe1980/geoplace/blobstore/s3"
)

func (a *app) openStore(ctx context.Context) (blobstore.BlobStore, error) {
	cfg := a.cfg

	switch cfg.source {
	case "s3":
		opts := []s3store.Option{s3store.WithPrefix(cfg.prefix)}
		if cfg.region != "" {
			opts = append(opts, s3store.WithRegion(cfg.region))
		}
		if cfg.endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(cfg.endpoint), s3store.WithPathStyle())
		}
		return s3store.New(ctx, cfg.bucket, opts...)
	case "minio":
		opts := []miniostore.Option{miniostore.WithPrefix(cfg.prefix)}
		if cfg.region != "" {
			opts = append(opts, miniostore.WithRegion(cfg.region))
		}
		if cfg.secure {
			opts = append(opts, miniostore.WithSecure())
		}
		return miniostore.New(cfg.endpoint, cfg.bucket, opts...)
	default:
		return blobstore.NewLocalStore(""), nil
	}
}

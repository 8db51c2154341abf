package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/geoplace/blobstore"
	"github.com/hupe1980/geoplace/codec"
	"github.com/hupe1980/geoplace/model"
)

type options struct {
	codec       codec.Codec
	format      Format
	compression Compression
	filter      *StateFilter
	logger      *slog.Logger
}

// Option configures Load and Decode.
type Option func(*options)

// WithCodec sets the JSON codec used for record datasets.
// Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithFormat forces the dataset format instead of detecting it.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithCompression forces the blob compression instead of detecting it.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithFilter drops regions whose state the filter rejects.
func WithFilter(f *StateFilter) Option {
	return func(o *options) { o.filter = f }
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:  codec.Default,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Load reads the named blob from store and returns its regions, filtered and
// indexed by position.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) ([]model.Region, error) {
	o := applyOptions(optFns)
	start := time.Now()

	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", name, err)
	}

	compression := o.compression
	if compression == CompressionAuto {
		compression = DetectCompression(name, data)
	}

	raw, err := decompress(data, compression)
	if err != nil {
		return nil, err
	}

	regions, total, err := decodeAndFilter(raw, o)
	if err != nil {
		return nil, err
	}

	o.logger.DebugContext(ctx, "dataset loaded",
		"name", name,
		"size", humanize.IBytes(uint64(len(data))),
		"compression", compression.String(),
		"records", total,
		"regions", len(regions),
		"duration", time.Since(start),
	)

	return regions, nil
}

// Decode parses an uncompressed dataset held in memory. Filtering and
// reindexing are applied exactly as in Load.
func Decode(data []byte, optFns ...Option) ([]model.Region, error) {
	regions, _, err := decodeAndFilter(data, applyOptions(optFns))
	return regions, err
}

func decodeAndFilter(data []byte, o options) ([]model.Region, int, error) {
	regions, err := decode(data, o.format, o.codec)
	if err != nil {
		return nil, 0, err
	}
	total := len(regions)

	if o.filter != nil {
		regions = o.filter.Apply(regions)
	}
	model.Reindex(regions)

	return regions, total, nil
}

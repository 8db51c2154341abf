package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/geoplace"
	"github.com/hupe1980/geoplace/codec"
	"github.com/hupe1980/geoplace/dataset"
	"github.com/spf13/pflag"
)

const envPrefix = "GEOPLACE_"

// config holds the flags shared by all subcommands.
type config struct {
	data     string
	source   string
	bucket   string
	prefix   string
	endpoint string
	region   string
	secure   bool

	format    string
	codec     string
	allStates bool

	workers     int
	chunkSize   int
	sequential  bool
	direct      bool
	memoryLimit string

	logLevel    string
	logFormat   string
	trace       bool
	metricsAddr string
	output      string
}

func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.data, "data", "public/data/county_centroids.json", "dataset path or object key (.zst/.lz4 are decompressed)")
	fs.StringVar(&c.source, "source", "local", "dataset source: local, s3 or minio")
	fs.StringVar(&c.bucket, "bucket", "", "bucket for s3/minio sources")
	fs.StringVar(&c.prefix, "prefix", "", "key prefix for s3/minio sources")
	fs.StringVar(&c.endpoint, "endpoint", "", "custom endpoint for s3/minio sources")
	fs.StringVar(&c.region, "region", "", "bucket region for s3/minio sources")
	fs.BoolVar(&c.secure, "secure", false, "use HTTPS for the minio source")

	fs.StringVar(&c.format, "format", "auto", "dataset format: auto, records or geojson")
	fs.StringVar(&c.codec, "codec", codec.Default.Name(), "JSON codec: "+strings.Join(codec.Names(), " or "))
	fs.BoolVar(&c.allStates, "all-states", false, "keep Alaska, Hawaii and territories")

	fs.IntVar(&c.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.IntVar(&c.chunkSize, "chunk-size", geoplace.DefaultChunkSize, "candidates evaluated per chunk")
	fs.BoolVar(&c.sequential, "sequential", false, "evaluate candidates on a single goroutine")
	fs.BoolVar(&c.direct, "direct", false, "score without the distance cache")
	fs.StringVar(&c.memoryLimit, "memory-limit", "", "cap for cache and chunk memory, e.g. 2GiB (empty = unlimited)")

	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&c.trace, "trace", false, "export trace spans to stderr")
	fs.StringVar(&c.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	fs.StringVarP(&c.output, "output", "o", "text", "output format: text or json")
}

// applyEnv sets every flag that was not given on the command line from its
// GEOPLACE_* environment variable.
func applyEnv(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(key); ok {
			if setErr := fs.Set(f.Name, v); setErr != nil {
				err = fmt.Errorf("%s: %w", key, setErr)
			}
		}
	})
	return err
}

func (c *config) validate() error {
	switch c.source {
	case "local":
	case "s3", "minio":
		if c.bucket == "" {
			return fmt.Errorf("--bucket is required for source %q", c.source)
		}
		if c.source == "minio" && c.endpoint == "" {
			return fmt.Errorf("--endpoint is required for source %q", c.source)
		}
	default:
		return fmt.Errorf("unknown source %q", c.source)
	}

	if _, err := c.datasetFormat(); err != nil {
		return err
	}
	if _, ok := codec.ByName(c.codec); !ok {
		return fmt.Errorf("unknown codec %q (want one of %s)", c.codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := c.memoryLimitBytes(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.logFormat)
	}
	switch c.output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.output)
	}
	return nil
}

func (c *config) datasetFormat() (dataset.Format, error) {
	switch c.format {
	case "auto":
		return dataset.FormatAuto, nil
	case "records":
		return dataset.FormatRecords, nil
	case "geojson":
		return dataset.FormatGeoJSON, nil
	default:
		return 0, fmt.Errorf("unknown dataset format %q", c.format)
	}
}

func (c *config) memoryLimitBytes() (int64, error) {
	if c.memoryLimit == "" {
		return 0, nil
	}
	v, err := humanize.ParseBytes(c.memoryLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", c.memoryLimit, err)
	}
	if v > 1<<62 {
		return 0, fmt.Errorf("memory limit %q too large", c.memoryLimit)
	}
	return int64(v), nil
}

func (c *config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.logLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.logLevel)
	}
	return l, nil
}

func (c *config) datasetOptions(logger *geoplace.Logger) []dataset.Option {
	format, _ := c.datasetFormat()
	cd, _ := codec.ByName(c.codec)

	opts := []dataset.Option{
		dataset.WithFormat(format),
		dataset.WithCodec(cd),
		dataset.WithLogger(logger.Logger),
	}
	if !c.allStates {
		opts = append(opts, dataset.WithFilter(dataset.Mainland()))
	}
	return opts
}

func (c *config) placerOptions() []geoplace.Option {
	limit, _ := c.memoryLimitBytes()

	opts := []geoplace.Option{
		geoplace.WithWorkers(c.workers),
		geoplace.WithChunkSize(c.chunkSize),
		geoplace.WithMemoryLimit(limit),
	}
	if c.sequential {
		opts = append(opts, geoplace.WithStrategy(geoplace.Sequential))
	} else {
		opts = append(opts, geoplace.WithStrategy(geoplace.Parallel))
	}
	if c.direct {
		opts = append(opts, geoplace.WithDirectScoring())
	}
	return opts
}

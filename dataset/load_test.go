package dataset

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hupe1980/geoplace/blobstore"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func lz4Compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	raw := []byte(recordsJSON)

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "counties.json", raw))
	require.NoError(t, store.Put(ctx, "counties.json.zst", zstdCompress(t, raw)))
	require.NoError(t, store.Put(ctx, "counties.json.lz4", lz4Compress(t, raw)))
	require.NoError(t, store.Put(ctx, "counties.bin", zstdCompress(t, raw)))
	require.NoError(t, store.Put(ctx, "counties.geojson", []byte(featuresJSON)))

	want, err := Decode(raw, WithFilter(Mainland()))
	require.NoError(t, err)

	for _, name := range []string{"counties.json", "counties.json.zst", "counties.json.lz4", "counties.bin"} {
		t.Run(name, func(t *testing.T) {
			regions, err := Load(ctx, store, name, WithFilter(Mainland()))
			require.NoError(t, err)
			assert.Equal(t, want, regions)
		})
	}

	t.Run("GeoJSON", func(t *testing.T) {
		regions, err := Load(ctx, store, "counties.geojson")
		require.NoError(t, err)
		assert.Len(t, regions, 3)
	})

	t.Run("ForcedCompressionMismatch", func(t *testing.T) {
		_, err := Load(ctx, store, "counties.json", WithCompression(CompressionZSTD))
		assert.Error(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := Load(ctx, store, "missing.json")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Logging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := Load(ctx, store, "counties.json.zst", WithLogger(logger), WithFilter(Mainland()))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"msg":"dataset loaded"`)
		assert.Contains(t, buf.String(), `"compression":"zstd"`)
		assert.Contains(t, buf.String(), `"records":4`)
		assert.Contains(t, buf.String(), `"regions":2`)
	})
}

func TestLoadLocal(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "data/county_centroids.json", []byte(recordsJSON)))

	regions, err := Load(ctx, store, "data/county_centroids.json", WithFormat(FormatRecords))
	require.NoError(t, err)
	assert.Len(t, regions, 4)
}

func TestDetectCompression(t *testing.T) {
	assert.Equal(t, CompressionZSTD, DetectCompression("a.json.zst", nil))
	assert.Equal(t, CompressionLZ4, DetectCompression("a.json.lz4", nil))
	assert.Equal(t, CompressionNone, DetectCompression("a.json", []byte("[")))
	assert.Equal(t, CompressionZSTD, DetectCompression("a", zstdMagic))
	assert.Equal(t, CompressionLZ4, DetectCompression("a", lz4Magic))
	assert.Equal(t, "zstd", CompressionZSTD.String())
}

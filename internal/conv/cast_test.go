package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64ToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Int64ToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Int64ToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Int64ToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Int64ToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestInt64ToUint8(t *testing.T) {
	got, err := Int64ToUint8(56)
	assert.NoError(t, err)
	assert.Equal(t, uint8(56), got)

	_, err = Int64ToUint8(256)
	assert.Error(t, err)

	_, err = Int64ToUint8(-2)
	assert.Error(t, err)
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.Error(t, err)
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name    string
		factors []int64
		want    int64
		ok      bool
	}{
		{"empty", nil, 1, true},
		{"cache bytes", []int64{3100, 3100, 8}, 76_880_000, true},
		{"zero", []int64{0, math.MaxInt64}, 0, true},
		{"negative", []int64{-1, 2}, 0, false},
		{"overflow", []int64{math.MaxInt64 / 2, 3}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulInt64(tt.factors...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

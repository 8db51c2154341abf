//go:build windows

package blobstore

import "os"

// mapping holds a file read fully into memory.
type mapping struct {
	data []byte
}

func openMapping(path string) (*mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &mapping{data: data}, nil
}

func (m *mapping) Close() error {
	if m != nil {
		m.data = nil
	}
	return nil
}

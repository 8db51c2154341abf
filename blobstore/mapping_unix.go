//go:build !windows

package blobstore

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// mapping is a read-only memory-mapped file.
type mapping struct {
	data   []byte
	f      *os.File
	mapped bool
}

func openMapping(path string) (*mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &mapping{f: f}, nil
	}
	if size < 0 || int64(int(size)) != size {
		_ = f.Close()
		return nil, errors.New("blobstore: file too large to map")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &mapping{data: data, f: f, mapped: true}, nil
}

// Close unmaps the memory and closes the underlying file.
func (m *mapping) Close() error {
	if m == nil {
		return nil
	}
	var err error
	if m.mapped {
		err = unix.Munmap(m.data)
		m.mapped = false
	}
	m.data = nil
	if m.f != nil {
		if closeErr := m.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		m.f = nil
	}
	return err
}

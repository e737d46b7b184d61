// Package dataset reads and writes the memory-mapped int64 files the bench
// tool uses as reproducible search inputs.
//
// A file is a fixed header, the values as little-endian int64s, and a footer
// carrying an xxHash64 of the values region.
package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	seekerrors "github.com/tamirms/seek/errors"
)

// Dataset is a read-only view of a dataset file.
//
// Read methods are safe for concurrent use. Close must not run concurrently
// with them, and slices returned by Values are invalid after Close.
type Dataset struct {
	mmap   mmap.MMap
	data   []byte
	header *header
	closed atomic.Bool
}

// Open memory-maps the dataset file at path and validates its header.
// The checksum is only checked by Verify.
func Open(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dataset file: %w", err)
	}
	size := stat.Size()
	if size < headerSize+footerSize {
		return nil, seekerrors.ErrTruncatedFile
	}

	fadviseSequential(int(file.Fd()), 0, size)

	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dataset file: %w", err)
	}

	d := &Dataset{mmap: mm, data: []byte(mm)}
	if err := d.init(); err != nil {
		return nil, errors.Join(err, d.Close())
	}
	return d, nil
}

func (d *Dataset) init() error {
	hdr, err := decodeHeader(d.data[:headerSize])
	if err != nil {
		return err
	}

	// Guard the size computation against a Count that overflows it.
	maxCount := uint64(len(d.data)-headerSize-footerSize) / valueSize
	if hdr.Count > maxCount {
		return seekerrors.ErrTruncatedFile
	}
	if fileSize(hdr.Count) != uint64(len(d.data)) {
		return seekerrors.ErrCorruptedDataset
	}

	d.header = hdr
	return nil
}

// Len returns the number of values.
func (d *Dataset) Len() int { return int(d.header.Count) }

// Sorted reports whether the values were ascending when written.
func (d *Dataset) Sorted() bool { return d.header.sorted() }

// Values returns the values region as a slice backed by the mapping, or nil
// after Close. The returned slice must not be modified.
//
// The mapping holds little-endian values, so on a big-endian host Values
// returns a decoded copy instead.
func (d *Dataset) Values() []int64 {
	if d.closed.Load() || d.header.Count == 0 {
		return nil
	}
	if !nativeLittleEndian {
		out := make([]int64, d.Len())
		for i := range out {
			out[i] = d.at(i)
		}
		return out
	}
	// The mapping is page-aligned and the header is 32 bytes, so the
	// region is 8-byte aligned.
	return unsafe.Slice((*int64)(unsafe.Pointer(&d.data[headerSize])), d.Len())
}

// At returns the value at position i.
func (d *Dataset) At(i int) (int64, error) {
	if d.closed.Load() {
		return 0, seekerrors.ErrDatasetClosed
	}
	if i < 0 || i >= d.Len() {
		return 0, fmt.Errorf("dataset: index %d out of range [0,%d)", i, d.Len())
	}
	return d.at(i), nil
}

func (d *Dataset) at(i int) int64 {
	off := headerSize + i*valueSize
	return int64(binary.LittleEndian.Uint64(d.data[off : off+valueSize]))
}

// Verify checks the values region against the footer checksum.
func (d *Dataset) Verify() error {
	if d.closed.Load() {
		return seekerrors.ErrDatasetClosed
	}

	ftr, err := decodeFooter(d.data[len(d.data)-footerSize:])
	if err != nil {
		return err
	}

	region := d.data[headerSize : len(d.data)-footerSize]
	if xxhash.Sum64(region) != ftr.ValuesHash {
		return seekerrors.ErrChecksumFailed
	}
	return nil
}

// Close unmaps the file. Calling Close more than once is safe.
func (d *Dataset) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	if d.mmap != nil {
		return d.mmap.Unmap()
	}
	return nil
}

var nativeLittleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

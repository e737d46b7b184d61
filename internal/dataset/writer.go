package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
)

// Write stores values at path, replacing any existing file.
//
// The file is pre-allocated and memory-mapped, values are encoded straight
// into the mapping while the checksum is computed, and the header and footer
// are written last.
func Write(path string, values []int64) (err error) {
	size := fileSize(uint64(len(values)))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close dataset file: %w", cerr)
		}
	}()

	// Reserve blocks up front so a full disk fails here instead of as SIGBUS.
	if err := fallocateFile(file, int64(size)); err != nil {
		return fmt.Errorf("allocate dataset file: %w", err)
	}

	mm, err := mmap.MapRegion(file, int(size), mmap.RDWR, 0, 0)
	if err != nil {
		return fmt.Errorf("mmap dataset file: %w", err)
	}
	data := []byte(mm)

	region := data[headerSize : headerSize+len(values)*valueSize]
	prefaultRegion(region)

	for i, v := range values {
		binary.LittleEndian.PutUint64(region[i*valueSize:], uint64(v))
	}

	hdr := header{
		Magic:   magic,
		Version: version,
		Count:   uint64(len(values)),
	}
	if slices.IsSorted(values) {
		hdr.Flags |= flagSorted
	}
	hdr.encodeTo(data[:headerSize])

	ftr := footer{ValuesHash: xxhash.Sum64(region)}
	ftr.encodeTo(data[len(data)-footerSize:])

	if err := mm.Flush(); err != nil {
		return errors.Join(fmt.Errorf("mmap flush failed: %w", err), mm.Unmap())
	}
	if err := mm.Unmap(); err != nil {
		return fmt.Errorf("mmap unmap failed: %w", err)
	}
	return nil
}

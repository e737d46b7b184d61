package dataset

import (
	"encoding/binary"

	seekerrors "github.com/tamirms/seek/errors"
)

const (
	// magic is "SKDS" in little-endian.
	magic = uint32(0x53444B53)

	version = uint16(0x0001)

	headerSize = 32
	footerSize = 16
	valueSize  = 8

	// flagSorted marks a values region in ascending order.
	flagSorted = uint16(1 << 0)

	knownFlags = flagSorted
)

// header is the 32-byte file header.
//
// Layout:
//
//	Offset  Size  Field     Type
//	0       4     Magic     0x53444B53 ("SKDS")
//	4       2     Version   0x0001
//	6       2     Flags     uint16_le (bit 0 = sorted ascending)
//	8       8     Count     uint64_le
//	16      16    Reserved  [16]byte (zero)
type header struct {
	Magic    uint32
	Version  uint16
	Flags    uint16
	Count    uint64
	Reserved [16]byte
}

func (h *header) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.Flags)
	binary.LittleEndian.PutUint64(buf[8:16], h.Count)
	copy(buf[16:32], h.Reserved[:])
}

// decodeHeader parses a 32-byte header.
func decodeHeader(buf []byte) (*header, error) {
	if len(buf) < headerSize {
		return nil, seekerrors.ErrTruncatedFile
	}

	h := &header{
		Magic:   binary.LittleEndian.Uint32(buf[0:4]),
		Version: binary.LittleEndian.Uint16(buf[4:6]),
		Flags:   binary.LittleEndian.Uint16(buf[6:8]),
		Count:   binary.LittleEndian.Uint64(buf[8:16]),
	}
	copy(h.Reserved[:], buf[16:32])

	if h.Magic != magic {
		return nil, seekerrors.ErrInvalidMagic
	}
	if h.Version != version {
		return nil, seekerrors.ErrInvalidVersion
	}
	if h.Flags&^knownFlags != 0 {
		return nil, seekerrors.ErrCorruptedDataset
	}

	return h, nil
}

func (h *header) sorted() bool { return h.Flags&flagSorted != 0 }

// footer is the 16-byte file footer.
//
//	Offset  Size  Field       Type
//	0       8     ValuesHash  uint64_le (xxHash64 of the values region)
//	8       8     Reserved    [8]byte (zero)
type footer struct {
	ValuesHash uint64
	Reserved   [8]byte
}

func (f *footer) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], f.ValuesHash)
	copy(buf[8:16], f.Reserved[:])
}

func decodeFooter(buf []byte) (*footer, error) {
	if len(buf) < footerSize {
		return nil, seekerrors.ErrTruncatedFile
	}
	f := &footer{ValuesHash: binary.LittleEndian.Uint64(buf[0:8])}
	copy(f.Reserved[:], buf[8:16])
	return f, nil
}

// fileSize returns the exact size of a file holding n values.
func fileSize(n uint64) uint64 {
	return headerSize + n*valueSize + footerSize
}

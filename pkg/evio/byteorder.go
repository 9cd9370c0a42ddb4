package evio

import "encoding/binary"

// Order is the byte order elected for a file, threaded explicitly into
// every decoder call rather than carried as a process-wide flag.
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) bo() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o Order) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// bounds checks [off, off+n) against len(b), returning a Truncated
// FormatError if the range escapes the mapping.
func checkBounds(b []byte, off, n int64) error {
	if off < 0 || n < 0 || off+n > int64(len(b)) {
		return newErr(KindTruncated, off, "range exceeds mapped length")
	}
	return nil
}

func readU16(b []byte, off int64, order Order) (uint16, error) {
	if err := checkBounds(b, off, 2); err != nil {
		return 0, err
	}
	return order.bo().Uint16(b[off : off+2]), nil
}

func readU32(b []byte, off int64, order Order) (uint32, error) {
	if err := checkBounds(b, off, 4); err != nil {
		return 0, err
	}
	return order.bo().Uint32(b[off : off+4]), nil
}

func readU64(b []byte, off int64, order Order) (uint64, error) {
	if err := checkBounds(b, off, 8); err != nil {
		return 0, err
	}
	return order.bo().Uint64(b[off : off+8]), nil
}

// readBitfield extracts bits [lo, hi) (lo inclusive, hi exclusive,
// counting from the least-significant bit) of an already host-ordered
// word.
func readBitfield(word uint32, lo, hi uint) uint32 {
	width := hi - lo
	mask := uint32(1)<<width - 1
	return (word >> lo) & mask
}

func readBitfield64(word uint64, lo, hi uint) uint64 {
	width := hi - lo
	mask := uint64(1)<<width - 1
	return (word >> lo) & mask
}

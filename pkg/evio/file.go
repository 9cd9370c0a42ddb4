package evio

import (
	"os"

	"golang.org/x/sys/unix"
)

// File is one opened EVIO/HIPO v6 container: an immutable view over a
// read-only mapping, created on Open and released on Close. Multiple
// readers may share a File concurrently provided they do not mutate any
// opt-in per-node children cache.
type File struct {
	data    []byte
	mmapped bool
	header  *FileHeader

	records    []recordSlot
	recordsErr error
	scanned    bool
}

type recordSlot struct {
	offset int64
}

// Open memory-maps path read-only and parses its file header. The
// returned File must be closed to release the mapping; the file
// descriptor itself is closed before Open returns.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIoErr(err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, wrapIoErr(err)
	}
	size := stat.Size()
	if size <= 0 {
		return nil, newErr(KindTruncated, 0, "empty file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		ef, perr := newFile(data, true)
		if perr != nil {
			_ = unix.Munmap(data)
			return nil, perr
		}
		return ef, nil
	}

	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, 0); err != nil {
		return nil, wrapIoErr(err)
	}
	return newFile(buf, false)
}

// OpenBytes parses an already-in-memory byte range without mapping a
// file, for callers that already hold the bytes (e.g. tests, or a
// buffer read from a non-seekable stream).
func OpenBytes(data []byte) (*File, error) {
	return newFile(data, false)
}

func newFile(data []byte, mmapped bool) (*File, error) {
	hdr, err := parseFileHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.userHeaderEnd() > int64(len(data)) {
		return nil, newErr(KindTruncated, hdr.userHeaderEnd(), "user header exceeds mapped length")
	}
	return &File{data: data, mmapped: mmapped, header: hdr}, nil
}

// RawBytes returns the raw byte range [start, end) of the underlying
// mapping, for diagnostic display (e.g. a CLI hex dump) that bypasses
// the decoder layers entirely.
func (f *File) RawBytes(start, end int64) ([]byte, error) {
	if err := checkBounds(f.data, start, end-start); err != nil {
		return nil, err
	}
	return f.data[start:end], nil
}

// Close releases the mapping. Subsequent use of the File or anything
// derived from it is invalid.
func (f *File) Close() error {
	if f == nil || f.data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.data)
	}
	f.data = nil
	f.header = nil
	f.records = nil
	return err
}

// Header returns the parsed file header.
func (f *File) Header() *FileHeader { return f.header }

// Order returns the elected byte order for this file.
func (f *File) Order() Order { return f.header.Order }

// UserHeaderBytes returns the raw byte range of the file-level user
// header, or nil if empty.
func (f *File) UserHeaderBytes() []byte {
	start := f.header.indexArrayEnd()
	end := start + int64(f.header.UserHeaderLength)
	if f.header.UserHeaderLength == 0 || end > int64(len(f.data)) {
		return nil
	}
	return f.data[start:end]
}

// DictionaryBytes returns the XML dictionary's raw bytes if present,
// carried in the leading bank of the file-level user header (design
// note "Dictionary and first-event placement"). The core does not
// parse the XML; it is a convenience decoder's job downstream.
func (f *File) DictionaryBytes() []byte {
	if !f.header.HasDictionary {
		return nil
	}
	blob := f.UserHeaderBytes()
	if blob == nil {
		return nil
	}
	span, err := bankFullSpan(blob, 0, f.header.Order)
	if err != nil || span > int64(len(blob)) {
		return nil
	}
	return blob[:span]
}

// FirstEventBytes returns the first event's raw bytes if present,
// carried as the bank immediately following the dictionary (if any) in
// the file-level user header.
func (f *File) FirstEventBytes() []byte {
	if !f.header.HasFirstEvent {
		return nil
	}
	blob := f.UserHeaderBytes()
	if blob == nil {
		return nil
	}
	off := int64(0)
	if f.header.HasDictionary {
		span, err := bankFullSpan(blob, 0, f.header.Order)
		if err != nil {
			return nil
		}
		off = span
	}
	span, err := bankFullSpan(blob, off, f.header.Order)
	if err != nil || off+span > int64(len(blob)) {
		return nil
	}
	return blob[off : off+span]
}

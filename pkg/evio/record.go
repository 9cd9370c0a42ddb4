package evio

// Record is one parsed record within a File: header, event-length
// index, and payload bounds. The RecordHeader is parsed when the Record
// is built and kept on it; the event-length index is parsed on first
// use and memoized on the same Record. File.Record and File.Records
// build a new Record, parsing its header again, on every call.
type Record struct {
	file       *File
	Offset     int64
	Header     *RecordHeader
	eventIndex []uint32 // memoized byte length per event
}

func (f *File) recordAt(offset int64) (*Record, error) {
	hdr, err := parseRecordHeader(f.data, offset, f.header.Order)
	if err != nil {
		return nil, err
	}
	return &Record{file: f, Offset: offset, Header: hdr}, nil
}

func (r *Record) totalLen() int64     { return int64(r.Header.RecordLengthWords) * 4 }
func (r *Record) end() int64          { return r.Offset + r.totalLen() }
func (r *Record) headerEnd() int64    { return r.Offset + int64(r.Header.HeaderLengthWords)*4 }
func (r *Record) indexEnd() int64     { return r.headerEnd() + int64(r.Header.IndexArrayLength) }
func (r *Record) userHeaderEnd() int64 {
	return r.indexEnd() + int64(r.Header.UserHeaderLength) + int64(r.Header.Pad1)
}
func (r *Record) eventRegionStart() int64 { return r.userHeaderEnd() }
func (r *Record) eventRegionEnd() int64   { return r.end() }

// IsTrailer reports whether this record's header-kind marks it as the
// file's trailer.
func (r *Record) IsTrailer() bool { return r.Header.isTrailer() }

// IsLast reports the record header's last-record bit.
func (r *Record) IsLast() bool { return r.Header.IsLast }

// CompressionType returns the record's compression-type code
// (0 none, 1 lz4-fast, 2 lz4-best, 3 gzip).
func (r *Record) CompressionType() uint8 { return r.Header.CompressionType }

// EventCount returns the number of events this record's header
// declares, independent of whether the event-length index has been
// parsed yet.
func (r *Record) EventCount() int { return int(r.Header.EventCount) }

// UserHeaderBytes returns the raw byte range of the record-level user
// header, or nil if empty.
func (r *Record) UserHeaderBytes() []byte {
	start := r.indexEnd()
	end := start + int64(r.Header.UserHeaderLength)
	if r.Header.UserHeaderLength == 0 || end > int64(len(r.file.data)) {
		return nil
	}
	return r.file.data[start:end]
}

// eventLengthIndex parses and memoizes the event-length index: one
// uint32 byte-length per event, immediately following the record
// header.
func (r *Record) eventLengthIndex() ([]uint32, error) {
	if r.eventIndex != nil {
		return r.eventIndex, nil
	}
	if r.IsTrailer() {
		// A trailer's "event index" is actually a file-wide record
		// index (see probeLengthIndex); it is not a per-event length
		// list and must not be consumed as one.
		return nil, newErr(KindCorruption, r.headerEnd(), "trailer record has no event-length index")
	}
	n := int64(r.Header.EventCount)
	want := n * 4
	if int64(r.Header.IndexArrayLength) != want {
		return nil, newErr(KindCorruption, r.headerEnd(), "event-length index size does not match event count")
	}
	out := make([]uint32, n)
	for i := int64(0); i < n; i++ {
		v, err := readU32(r.file.data, r.headerEnd()+i*4, r.file.header.Order)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	var sum int64
	for _, v := range out {
		sum += int64(v)
	}
	if sum+int64(r.Header.Pad2) != r.eventRegionEnd()-r.eventRegionStart() {
		return nil, newErr(KindCorruption, r.eventRegionStart(), "event index sum + pad2 does not tile event region")
	}
	r.eventIndex = out
	return out, nil
}

// Event returns the i'th event in this record.
func (r *Record) Event(i int) (*Event, error) {
	if r.CompressionType() != 0 {
		return nil, newErr(KindUnsupportedCompression, r.Offset, "")
	}
	idx, err := r.eventLengthIndex()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(idx) {
		return nil, newErr(KindOutOfRange, r.Offset, "event index out of range")
	}
	off := r.eventRegionStart()
	for j := 0; j < i; j++ {
		off += int64(idx[j])
	}
	return &Event{record: r, Offset: off, Length: int64(idx[i])}, nil
}

// Events returns an iterator over this record's events in order.
func (r *Record) Events() func(yield func(*Event, error) bool) {
	return func(yield func(*Event, error) bool) {
		idx, err := r.eventLengthIndex()
		if err != nil {
			yield(nil, err)
			return
		}
		off := r.eventRegionStart()
		for i, l := range idx {
			ev := &Event{record: r, Offset: off, Length: int64(l)}
			if !yield(ev, nil) {
				return
			}
			off += int64(l)
			_ = i
		}
	}
}

// lengthIndexShape describes how a raw index-array byte range decodes:
// either one record-length-words entry per record, or (length_words,
// event_count) pairs.
type lengthIndexShape int

const (
	shapePlain lengthIndexShape = iota
	shapePairs
)

// probeLengthIndex decodes a file-header or trailer index array into a
// list of record lengths in words, per the probing rule decided in
// DESIGN.md: a byte length that is a multiple of 8 decodes as (length,
// event_count) pairs; a byte length that is a multiple of 4 (but not 8)
// decodes as plain per-record lengths; anything else is Corruption.
func probeLengthIndex(data []byte, off int64, byteLen uint32, order Order) ([]uint32, lengthIndexShape, error) {
	if byteLen%8 == 0 && byteLen > 0 {
		n := int64(byteLen) / 8
		out := make([]uint32, n)
		for i := int64(0); i < n; i++ {
			v, err := readU32(data, off+i*8, order)
			if err != nil {
				return nil, shapePairs, err
			}
			out[i] = v
		}
		return out, shapePairs, nil
	}
	if byteLen%4 == 0 && byteLen > 0 {
		n := int64(byteLen) / 4
		out := make([]uint32, n)
		for i := int64(0); i < n; i++ {
			v, err := readU32(data, off+i*4, order)
			if err != nil {
				return nil, shapePlain, err
			}
			out[i] = v
		}
		return out, shapePlain, nil
	}
	return nil, shapePlain, newErr(KindCorruption, off, "index array byte length fits neither plain nor paired interpretation")
}

// ensureScanned discovers record offsets in priority order (file index,
// then trailer index, then a linear scan) and memoizes the result.
func (f *File) ensureScanned() error {
	if f.scanned {
		return f.recordsErr
	}
	f.scanned = true

	first := f.header.userHeaderEnd()

	var fromFileIndex []int64
	var fromTrailerIndex []int64

	if f.header.IndexArrayLength > 0 {
		lens, _, err := probeLengthIndex(f.data, f.header.headerEnd(), f.header.IndexArrayLength, f.header.Order)
		if err != nil {
			f.recordsErr = err
			return err
		}
		fromFileIndex = offsetsFromLengths(first, lens)
	}

	if f.header.TrailerHasIndex && f.header.TrailerPosition != 0 {
		trailerHdr, err := parseRecordHeader(f.data, int64(f.header.TrailerPosition), f.header.Order)
		if err == nil && trailerHdr.IndexArrayLength > 0 {
			idxOff := int64(f.header.TrailerPosition) + int64(trailerHdr.HeaderLengthWords)*4
			lens, _, err := probeLengthIndex(f.data, idxOff, trailerHdr.IndexArrayLength, f.header.Order)
			if err != nil {
				f.recordsErr = err
				return err
			}
			fromTrailerIndex = offsetsFromLengths(first, lens)
		}
	}

	switch {
	case fromFileIndex != nil && fromTrailerIndex != nil:
		if !int64SlicesEqual(fromFileIndex, fromTrailerIndex) {
			f.recordsErr = newErr(KindCorruption, first, "file index and trailer index disagree")
			return f.recordsErr
		}
		f.setRecordOffsets(fromFileIndex)
	case fromFileIndex != nil:
		f.setRecordOffsets(fromFileIndex)
	case fromTrailerIndex != nil:
		f.setRecordOffsets(fromTrailerIndex)
	default:
		offsets, err := f.linearScanRecords(first)
		if err != nil {
			f.recordsErr = err
			return err
		}
		f.setRecordOffsets(offsets)
	}
	return nil
}

func offsetsFromLengths(start int64, lengthsWords []uint32) []int64 {
	out := make([]int64, len(lengthsWords))
	off := start
	for i, l := range lengthsWords {
		out[i] = off
		off += int64(l) * 4
	}
	return out
}

func int64SlicesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (f *File) setRecordOffsets(offsets []int64) {
	f.records = make([]recordSlot, len(offsets))
	for i, o := range offsets {
		f.records[i] = recordSlot{offset: o}
	}
}

func (f *File) linearScanRecords(start int64) ([]int64, error) {
	var offsets []int64
	off := start
	for off < int64(len(f.data)) {
		hdr, err := parseRecordHeader(f.data, off, f.header.Order)
		if err != nil {
			return offsets, err
		}
		offsets = append(offsets, off)
		if hdr.IsLast {
			break
		}
		step := int64(hdr.RecordLengthWords) * 4
		if step <= 0 {
			return offsets, newErr(KindCorruption, off, "non-positive record length during linear scan")
		}
		off += step
	}
	return offsets, nil
}

// RecordCount returns the number of records discovered in the file.
func (f *File) RecordCount() (int, error) {
	if err := f.ensureScanned(); err != nil {
		return 0, err
	}
	return len(f.records), nil
}

// Record returns the i'th record, decoding its header on each call.
func (f *File) Record(i int) (*Record, error) {
	if err := f.ensureScanned(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(f.records) {
		return nil, newErr(KindOutOfRange, 0, "record index out of range")
	}
	return f.recordAt(f.records[i].offset)
}

// Records returns an iterator over all records in order. A parse error
// for record i is surfaced once and terminates the iteration; records
// before i remain individually accessible via Record(i).
func (f *File) Records() func(yield func(*Record, error) bool) {
	return func(yield func(*Record, error) bool) {
		if err := f.ensureScanned(); err != nil {
			yield(nil, err)
			return
		}
		for _, slot := range f.records {
			rec, err := f.recordAt(slot.offset)
			if !yield(rec, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

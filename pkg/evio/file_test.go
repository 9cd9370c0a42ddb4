package evio

import (
	"encoding/binary"
	"testing"
)

func TestFileSingleEmptyRecord(t *testing.T) {
	t.Parallel()
	bo := binary.LittleEndian

	fh := buildFileHeader(bo, fileHeaderOpts{recordCount: 1})
	buf := append(fh, make([]byte, 56)...)
	buildRecordHeader(bo, buf, len(fh), recordHeaderOpts{
		recordLengthWords: 14,
		isLast:            true,
	})

	f, err := OpenBytes(buf)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer f.Close()

	n, err := f.RecordCount()
	if err != nil {
		t.Fatalf("RecordCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
	r, err := f.Record(0)
	if err != nil {
		t.Fatalf("Record(0): %v", err)
	}
	if r.EventCount() != 0 || !r.IsLast() {
		t.Fatalf("unexpected record: events=%d isLast=%v", r.EventCount(), r.IsLast())
	}

	seen := 0
	for range r.Events() {
		seen++
	}
	if seen != 0 {
		t.Fatalf("expected zero events, saw %d", seen)
	}
}

func TestFileEmptyTrailer(t *testing.T) {
	t.Parallel()
	bo := binary.LittleEndian

	fh := buildFileHeader(bo, fileHeaderOpts{recordCount: 0})
	buf := append(fh, make([]byte, 56)...)
	buildRecordHeader(bo, buf, len(fh), recordHeaderOpts{
		recordLengthWords: 14,
		isLast:            true,
		kind:              uint32(RecordKindEvioTrailer),
	})

	f, err := OpenBytes(buf)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer f.Close()

	n, err := f.RecordCount()
	if err != nil {
		t.Fatalf("RecordCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected the trailer itself as 1 discovered record, got %d", n)
	}
	r, err := f.Record(0)
	if err != nil {
		t.Fatalf("Record(0): %v", err)
	}
	if !r.IsTrailer() {
		t.Fatalf("expected trailer record")
	}
}

// TestFileTrailerIndexRecordCount builds a file with no file-level index
// but a trailer carrying a 142-entry (length, event_count) pair index,
// and checks record discovery reads record_count straight from it
// without a linear scan.
func TestFileTrailerIndexRecordCount(t *testing.T) {
	t.Parallel()
	bo := binary.LittleEndian

	const n = 142
	const wordsPerRecord = 14

	headerBytes := uint64(len(buildFileHeader(bo, fileHeaderOpts{})))
	fh := buildFileHeader(bo, fileHeaderOpts{
		recordCount:     n,
		trailerHasIndex: true,
		trailerPosition: headerBytes + uint64(n*wordsPerRecord*4),
	})

	recordsRegion := make([]byte, n*wordsPerRecord*4)
	trailerIndex := make([]byte, n*8)
	for i := 0; i < n; i++ {
		bo.PutUint32(trailerIndex[i*8:], wordsPerRecord)
		bo.PutUint32(trailerIndex[i*8+4:], 0)
	}
	trailerHeader := make([]byte, 56)
	buildRecordHeader(bo, trailerHeader, 0, recordHeaderOpts{
		recordLengthWords: uint32(56+len(trailerIndex)) / 4,
		isLast:            true,
		kind:              uint32(RecordKindEvioTrailer),
		indexArrayLength:  uint32(len(trailerIndex)),
	})

	buf := append(fh, recordsRegion...)
	buf = append(buf, trailerHeader...)
	buf = append(buf, trailerIndex...)

	f, err := OpenBytes(buf)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer f.Close()

	count, err := f.RecordCount()
	if err != nil {
		t.Fatalf("RecordCount: %v", err)
	}
	if count != n {
		t.Fatalf("expected %d records, got %d", n, count)
	}
}

func TestFileCompressedRecordHeaderStillReadable(t *testing.T) {
	t.Parallel()
	bo := binary.LittleEndian

	fh := buildFileHeader(bo, fileHeaderOpts{recordCount: 1})
	buf := append(fh, make([]byte, 56)...)
	buildRecordHeader(bo, buf, len(fh), recordHeaderOpts{
		recordLengthWords: 14,
		isLast:            true,
		compressionType:   1,
		eventCount:        3,
	})

	f, err := OpenBytes(buf)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer f.Close()

	r, err := f.Record(0)
	if err != nil {
		t.Fatalf("Record(0): %v", err)
	}
	if r.CompressionType() != 1 || r.EventCount() != 3 {
		t.Fatalf("header fields: compression=%d events=%d", r.CompressionType(), r.EventCount())
	}
	if _, err := r.Event(0); err == nil {
		t.Fatalf("expected event access on a compressed record to fail")
	}
}

// TestFileWorkedExampleEvent wires the spec §2/§8 three-level worked
// example bank in as a single event in a single record, end to end
// through File/Record/Event/Node.
func TestFileWorkedExampleEvent(t *testing.T) {
	t.Parallel()
	bo := binary.BigEndian

	root := make([]byte, 88)
	bo.PutUint32(root[0:], 21)
	bo.PutUint32(root[4:], 0xff601001)
	bo.PutUint32(root[8:], 7)
	bo.PutUint32(root[12:], 0x00010100)
	for i := 0; i < 6; i++ {
		bo.PutUint32(root[16+i*4:], uint32(i+1))
	}
	bo.PutUint32(root[40:], 11)
	bo.PutUint32(root[44:], 0x00021000)
	bo.PutUint32(root[48:], 9)
	bo.PutUint32(root[52:], 0xff302011)

	fh := buildFileHeader(bo, fileHeaderOpts{recordCount: 1})
	recHdr := make([]byte, 56)
	eventIndex := make([]byte, 4)
	bo.PutUint32(eventIndex, uint32(len(root)))
	buildRecordHeader(bo, recHdr, 0, recordHeaderOpts{
		recordLengthWords: uint32(56+4+len(root)) / 4,
		eventCount:        1,
		indexArrayLength:  4,
		isLast:            true,
	})

	buf := append(fh, recHdr...)
	buf = append(buf, eventIndex...)
	buf = append(buf, root...)

	f, err := OpenBytes(buf)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer f.Close()

	r, err := f.Record(0)
	if err != nil {
		t.Fatalf("Record(0): %v", err)
	}
	ev, err := r.Event(0)
	if err != nil {
		t.Fatalf("Event(0): %v", err)
	}
	node, err := ev.Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if node.Tag != 0xff60 || node.Num != 1 {
		t.Fatalf("unexpected root node: %+v", node)
	}
	children, err := node.Children()
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
}

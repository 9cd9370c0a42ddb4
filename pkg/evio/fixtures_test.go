package evio

import "encoding/binary"

// fileHeaderOpts assembles a minimal, spec-valid 14-word file header for
// tests. Zero-valued fields are the library's defaults (no dictionary,
// no first event, no trailer index, no user header).
type fileHeaderOpts struct {
	headerLenWords  uint32
	recordCount     uint32
	indexLen        uint32
	version         uint32
	hasDictionary   bool
	hasFirstEvent   bool
	trailerHasIndex bool
	userHeaderPad   uint32
	headerKind      uint32
	userHeaderLen   uint32
	userRegister    uint64
	trailerPosition uint64
	badMagic        bool
}

func buildFileHeader(bo binary.ByteOrder, o fileHeaderOpts) []byte {
	if o.headerLenWords == 0 {
		o.headerLenWords = 14
	}
	if o.version == 0 {
		o.version = SupportedVersion
	}
	if o.headerKind == 0 {
		o.headerKind = uint32(HeaderKindEvioFile)
	}

	fixedWords := int(o.headerLenWords)
	if fixedWords < 14 {
		fixedWords = 14
	}
	total := fixedWords*4 + int(o.indexLen) + int(o.userHeaderLen) + int(o.userHeaderPad)
	buf := make([]byte, total)

	bo.PutUint32(buf[0:], 1)                 // file type id
	bo.PutUint32(buf[4:], 1)                 // file number
	bo.PutUint32(buf[8:], o.headerLenWords)  // header length words
	bo.PutUint32(buf[12:], o.recordCount)    // record count
	bo.PutUint32(buf[16:], o.indexLen)       // index array length

	var bitInfo uint32
	bitInfo |= o.version & 0xff
	if o.hasDictionary {
		bitInfo |= 1 << 8
	}
	if o.hasFirstEvent {
		bitInfo |= 1 << 9
	}
	if o.trailerHasIndex {
		bitInfo |= 1 << 10
	}
	bitInfo |= (o.userHeaderPad & 0x3) << 20
	bitInfo |= (o.headerKind & 0xf) << 28
	bo.PutUint32(buf[20:], bitInfo)

	bo.PutUint32(buf[24:], o.userHeaderLen)

	magic := MagicWord
	if o.badMagic {
		magic = 0xdeadbeef
	}
	bo.PutUint32(buf[28:], magic)

	bo.PutUint64(buf[32:], o.userRegister)
	bo.PutUint64(buf[40:], o.trailerPosition)
	bo.PutUint32(buf[48:], 0) // user int 1
	bo.PutUint32(buf[52:], 0) // user int 2

	return buf
}

type recordHeaderOpts struct {
	recordLengthWords uint32
	recordNumber      uint32
	headerLengthWords uint32
	eventCount        uint32
	indexArrayLength  uint32
	version           uint32
	hasDictionary     bool
	isLast            bool
	eventType         uint32
	hasFirstEvent     bool
	pad1              uint32
	pad2              uint32
	pad3              uint32
	kind              uint32
	userHeaderLength  uint32
	uncompressedLen   uint32
	compressionType   uint32
	compressedLen     uint32
	badMagic          bool
}

func buildRecordHeader(bo binary.ByteOrder, buf []byte, base int, o recordHeaderOpts) {
	if o.headerLengthWords == 0 {
		o.headerLengthWords = 14
	}
	if o.version == 0 {
		o.version = SupportedVersion
	}

	bo.PutUint32(buf[base+0:], o.recordLengthWords)
	bo.PutUint32(buf[base+4:], o.recordNumber)
	bo.PutUint32(buf[base+8:], o.headerLengthWords)
	bo.PutUint32(buf[base+12:], o.eventCount)
	bo.PutUint32(buf[base+16:], o.indexArrayLength)

	var bitInfo uint32
	bitInfo |= o.version & 0xff
	if o.hasDictionary {
		bitInfo |= 1 << 8
	}
	if o.isLast {
		bitInfo |= 1 << 9
	}
	bitInfo |= (o.eventType & 0xf) << 10
	if o.hasFirstEvent {
		bitInfo |= 1 << 14
	}
	bitInfo |= (o.pad1 & 0x3) << 20
	bitInfo |= (o.pad2 & 0x3) << 22
	bitInfo |= (o.pad3 & 0x3) << 24
	bitInfo |= (o.kind & 0xf) << 28
	bo.PutUint32(buf[base+20:], bitInfo)

	bo.PutUint32(buf[base+24:], o.userHeaderLength)

	magic := MagicWord
	if o.badMagic {
		magic = 0xdeadbeef
	}
	bo.PutUint32(buf[base+28:], magic)

	bo.PutUint32(buf[base+32:], o.uncompressedLen)
	bo.PutUint32(buf[base+36:], (o.compressionType&0xf)<<28|(o.compressedLen&0x0fffffff))
	bo.PutUint64(buf[base+40:], 0)
	bo.PutUint64(buf[base+48:], 0)
}

func buildBankHeader(bo binary.ByteOrder, lengthWords, tag, pad, ctype, num uint32) []byte {
	buf := make([]byte, 8)
	bo.PutUint32(buf[0:], lengthWords)
	info := (tag&0xffff)<<16 | (pad&0x3)<<14 | (ctype&0x3f)<<8 | (num & 0xff)
	bo.PutUint32(buf[4:], info)
	return buf
}

func buildSegmentHeader(bo binary.ByteOrder, tag, pad, ctype, length uint32) []byte {
	buf := make([]byte, 4)
	word := (tag&0xff)<<24 | (pad&0x3)<<22 | (ctype&0x3f)<<16 | (length & 0xffff)
	bo.PutUint32(buf[0:], word)
	return buf
}

func buildTagsegmentHeader(bo binary.ByteOrder, tag, ctype, length uint32) []byte {
	buf := make([]byte, 4)
	word := (tag&0xfff)<<20 | (ctype&0xf)<<16 | (length & 0xffff)
	bo.PutUint32(buf[0:], word)
	return buf
}

package evio

// MagicWord is the endian-detection and corruption-check constant
// shared by the file header (word 7) and every record header (word 7).
const MagicWord uint32 = 0xc0da0100

// HeaderKind identifies the file/record framing dialect carried in the
// top nibble of the bit-info-and-version word.
type HeaderKind int

const (
	HeaderKindEvioFile     HeaderKind = 1
	HeaderKindEvioExtended HeaderKind = 2
	HeaderKindHipoFile     HeaderKind = 5
	HeaderKindHipoExtended HeaderKind = 6
)

func validFileHeaderKind(k uint32) bool {
	switch HeaderKind(k) {
	case HeaderKindEvioFile, HeaderKindEvioExtended, HeaderKindHipoFile, HeaderKindHipoExtended:
		return true
	default:
		return false
	}
}

// SupportedVersion is the only format version the v1 core decodes.
const SupportedVersion = 6

// FileHeader is the parsed, immutable 14-word file header.
type FileHeader struct {
	Order             Order
	FileTypeID        uint32
	FileNumber        uint32
	HeaderLengthWords uint32
	RecordCount       uint32
	IndexArrayLength  uint32
	Version           uint8
	HasDictionary     bool
	HasFirstEvent     bool
	TrailerHasIndex   bool
	UserHeaderPad     uint8
	HeaderKind        HeaderKind
	UserHeaderLength  uint32
	UserRegister      uint64
	TrailerPosition   uint64
	UserInt1          uint32
	UserInt2          uint32
}

// headerEnd returns the byte offset immediately after the fixed header
// words, honoring a HeaderLengthWords larger than 14 (the documented
// but unimplemented extended header).
func (h *FileHeader) headerEnd() int64 {
	return int64(h.HeaderLengthWords) * 4
}

// indexArrayEnd is the byte offset after the file header's index array.
func (h *FileHeader) indexArrayEnd() int64 {
	return h.headerEnd() + int64(h.IndexArrayLength)
}

// userHeaderEnd is the byte offset after the file header's user header,
// including the bits-20-21 padding count.
func (h *FileHeader) userHeaderEnd() int64 {
	return h.indexArrayEnd() + int64(h.UserHeaderLength) + int64(h.UserHeaderPad)
}

// electOrder reads the magic word at byte offset 28 (word 7) in both
// byte orders and returns whichever matches MagicWord.
func electOrder(b []byte) (Order, error) {
	if err := checkBounds(b, 28, 4); err != nil {
		return LittleEndian, newErr(KindTruncated, 0, "file too short for header")
	}
	if le, err := readU32(b, 28, LittleEndian); err == nil && le == MagicWord {
		return LittleEndian, nil
	}
	if be, err := readU32(b, 28, BigEndian); err == nil && be == MagicWord {
		return BigEndian, nil
	}
	return LittleEndian, newErr(KindBadMagic, 28, "file header magic matches neither byte order")
}

func parseFileHeader(b []byte) (*FileHeader, error) {
	order, err := electOrder(b)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, 8)
	for i := range words {
		w, err := readU32(b, int64(i*4), order)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	bitInfo := words[5]
	version := uint8(readBitfield(bitInfo, 0, 8))
	if version != SupportedVersion {
		return nil, newErr(KindUnsupportedVersion, 20, "")
	}
	headerKindCode := readBitfield(bitInfo, 28, 32)
	if !validFileHeaderKind(headerKindCode) {
		return nil, newErr(KindBadHeader, 20, "unrecognized header-kind code")
	}

	headerLenWords := words[2]
	if headerLenWords < 14 {
		return nil, newErr(KindBadHeader, 8, "header-length-words below minimum of 14")
	}

	userReg, err := readU64(b, 32, order)
	if err != nil {
		return nil, err
	}
	trailerPos, err := readU64(b, 40, order)
	if err != nil {
		return nil, err
	}
	userInt1, err := readU32(b, 48, order)
	if err != nil {
		return nil, err
	}
	userInt2, err := readU32(b, 52, order)
	if err != nil {
		return nil, err
	}

	return &FileHeader{
		Order:             order,
		FileTypeID:        words[0],
		FileNumber:        words[1],
		HeaderLengthWords: headerLenWords,
		RecordCount:       words[3],
		IndexArrayLength:  words[4],
		Version:           version,
		HasDictionary:     readBitfield(bitInfo, 8, 9) != 0,
		HasFirstEvent:     readBitfield(bitInfo, 9, 10) != 0,
		TrailerHasIndex:   readBitfield(bitInfo, 10, 11) != 0,
		UserHeaderPad:     uint8(readBitfield(bitInfo, 20, 22)),
		HeaderKind:        HeaderKind(headerKindCode),
		UserHeaderLength:  words[6],
		UserRegister:      userReg,
		TrailerPosition:   trailerPos,
		UserInt1:          userInt1,
		UserInt2:          userInt2,
	}, nil
}

// Summary renders the header as a generic key/value bag for text or
// JSON display, mirroring cmd/gguf_inspect's printKey/formatValue
// approach to displaying a parsed header (see DESIGN.md).
func (h *FileHeader) Summary() map[string]any {
	return map[string]any{
		"byte_order":         h.Order.String(),
		"version":            h.Version,
		"header_kind":        int(h.HeaderKind),
		"record_count":       h.RecordCount,
		"has_dictionary":     h.HasDictionary,
		"has_first_event":    h.HasFirstEvent,
		"trailer_has_index":  h.TrailerHasIndex,
		"user_header_length": h.UserHeaderLength,
		"trailer_position":   h.TrailerPosition,
		"index_array_length": h.IndexArrayLength,
	}
}

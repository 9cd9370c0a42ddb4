package evio

// RecordHeaderKind identifies whether a record header frames an
// ordinary record or the file's trailer, in either evio or hipo dialect.
type RecordHeaderKind int

const (
	RecordKindEvio        RecordHeaderKind = 0
	RecordKindEvioTrailer RecordHeaderKind = 3
	RecordKindHipo        RecordHeaderKind = 4
	RecordKindHipoTrailer RecordHeaderKind = 7
)

func (k RecordHeaderKind) isTrailer() bool {
	return k == RecordKindEvioTrailer || k == RecordKindHipoTrailer
}

func validRecordHeaderKind(k uint32) bool {
	switch RecordHeaderKind(k) {
	case RecordKindEvio, RecordKindEvioTrailer, RecordKindHipo, RecordKindHipoTrailer:
		return true
	default:
		return false
	}
}

// RecordHeader is the parsed, immutable 14-word record header.
type RecordHeader struct {
	RecordLengthWords         uint32
	RecordNumber              uint32
	HeaderLengthWords         uint32
	EventCount                uint32
	IndexArrayLength          uint32
	Version                   uint8
	HasDictionary             bool
	IsLast                    bool
	EventType                 uint8
	HasFirstEvent             bool
	Pad1                      uint8
	Pad2                      uint8
	Pad3                      uint8
	Kind                      RecordHeaderKind
	UserHeaderLength          uint32
	UncompressedDataLength    uint32
	CompressionType           uint8
	CompressedDataLengthWords uint32
	UserRegister1             uint64
	UserRegister2             uint64
}

func (h *RecordHeader) isTrailer() bool {
	return h.Kind.isTrailer()
}

func parseRecordHeader(b []byte, base int64, order Order) (*RecordHeader, error) {
	word := func(i int64) (uint32, error) { return readU32(b, base+i*4, order) }

	recLen, err := word(0)
	if err != nil {
		return nil, err
	}
	recNum, err := word(1)
	if err != nil {
		return nil, err
	}
	hdrLen, err := word(2)
	if err != nil {
		return nil, err
	}
	if hdrLen < 14 {
		return nil, newErr(KindBadHeader, base+8, "record header-length-words below minimum of 14")
	}
	evCount, err := word(3)
	if err != nil {
		return nil, err
	}
	idxLen, err := word(4)
	if err != nil {
		return nil, err
	}
	bitInfo, err := word(5)
	if err != nil {
		return nil, err
	}
	userHdrLen, err := word(6)
	if err != nil {
		return nil, err
	}
	magic, err := word(7)
	if err != nil {
		return nil, err
	}
	if magic != MagicWord {
		return nil, newErr(KindCorruption, base+28, "record header magic mismatch")
	}
	uncompLen, err := word(8)
	if err != nil {
		return nil, err
	}
	compWord, err := word(9)
	if err != nil {
		return nil, err
	}
	reg1, err := readU64(b, base+40, order)
	if err != nil {
		return nil, err
	}
	reg2, err := readU64(b, base+48, order)
	if err != nil {
		return nil, err
	}

	version := uint8(readBitfield(bitInfo, 0, 8))
	if version != SupportedVersion {
		return nil, newErr(KindUnsupportedVersion, base+20, "")
	}
	kindCode := readBitfield(bitInfo, 28, 32)
	if !validRecordHeaderKind(kindCode) {
		return nil, newErr(KindBadHeader, base+20, "unrecognized record header-kind code")
	}

	return &RecordHeader{
		RecordLengthWords:         recLen,
		RecordNumber:              recNum,
		HeaderLengthWords:         hdrLen,
		EventCount:                evCount,
		IndexArrayLength:          idxLen,
		Version:                   version,
		HasDictionary:             readBitfield(bitInfo, 8, 9) != 0,
		IsLast:                    readBitfield(bitInfo, 9, 10) != 0,
		EventType:                 uint8(readBitfield(bitInfo, 10, 14)),
		HasFirstEvent:             readBitfield(bitInfo, 14, 15) != 0,
		Pad1:                      uint8(readBitfield(bitInfo, 20, 22)),
		Pad2:                      uint8(readBitfield(bitInfo, 22, 24)),
		Pad3:                      uint8(readBitfield(bitInfo, 24, 26)),
		Kind:                      RecordHeaderKind(kindCode),
		UserHeaderLength:          userHdrLen,
		UncompressedDataLength:    uncompLen,
		CompressionType:           uint8(readBitfield(compWord, 28, 32)),
		CompressedDataLengthWords: readBitfield(compWord, 0, 28),
		UserRegister1:             reg1,
		UserRegister2:             reg2,
	}, nil
}

package evio

import "math"

// ContentType is the 4/6-bit type code packed into a container header,
// determining how a leaf's bytes are retyped or how a container's
// children are shaped. Any new code is added only to the table below.
type ContentType uint8

const (
	TypeUnknown32    ContentType = 0x0
	TypeUint32       ContentType = 0x1
	TypeFloat32      ContentType = 0x2
	TypeStringArray  ContentType = 0x3
	TypeInt16        ContentType = 0x4
	TypeUint16       ContentType = 0x5
	TypeInt8         ContentType = 0x6
	TypeUint8        ContentType = 0x7
	TypeFloat64      ContentType = 0x8
	TypeInt64        ContentType = 0x9
	TypeUint64       ContentType = 0xa
	TypeInt32        ContentType = 0xb
	TypeTagsegment   ContentType = 0xc
	TypeSegment      ContentType = 0xd
	TypeBank         ContentType = 0xe
	TypeComposite    ContentType = 0xf
	TypeBankAlias    ContentType = 0x10
	TypeSegmentAlias ContentType = 0x20

	// Composite-descriptor-only codes; illegal as a top-level content
	// type.
	typeHollerit ContentType = 0x21
	typeN        ContentType = 0x22
	typeSmallN   ContentType = 0x23
	typeM        ContentType = 0x24
)

func (t ContentType) String() string {
	switch t {
	case TypeUnknown32:
		return "unknown32"
	case TypeUint32:
		return "uint32"
	case TypeFloat32:
		return "float32"
	case TypeStringArray:
		return "string"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeFloat64:
		return "float64"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeInt32:
		return "int32"
	case TypeTagsegment:
		return "tagsegment"
	case TypeSegment:
		return "segment"
	case TypeBank:
		return "bank"
	case TypeComposite:
		return "composite"
	case TypeBankAlias:
		return "bank-alias"
	case TypeSegmentAlias:
		return "segment-alias"
	default:
		return "unknown"
	}
}

// dtypeInfo is the per-leaf-type entry of the single content-type
// dispatch table: any new content code is added to the table only.
type dtypeInfo struct {
	elemSize int
	signed   bool
	isFloat  bool
	swap     bool // false only for TypeUnknown32 (surfaced verbatim)
}

var leafDtypes = map[ContentType]dtypeInfo{
	TypeUnknown32: {elemSize: 4, signed: false, swap: false},
	TypeUint32:    {elemSize: 4, signed: false, swap: true},
	TypeFloat32:   {elemSize: 4, isFloat: true, swap: true},
	TypeInt16:     {elemSize: 2, signed: true, swap: true},
	TypeUint16:    {elemSize: 2, signed: false, swap: true},
	TypeInt8:      {elemSize: 1, signed: true, swap: true},
	TypeUint8:     {elemSize: 1, signed: false, swap: true},
	TypeFloat64:   {elemSize: 8, isFloat: true, swap: true},
	TypeInt64:     {elemSize: 8, signed: true, swap: true},
	TypeUint64:    {elemSize: 8, signed: false, swap: true},
	TypeInt32:     {elemSize: 4, signed: true, swap: true},
}

// childShapeFor reports how a container's children are framed, per the
// declared content type of the container itself: a BANK-of-banks
// contains BANKs, a BANK-of-segments contains SEGMENTs, and so on.
func childShapeFor(t ContentType) (NodeKind, bool) {
	switch t {
	case TypeBank, TypeBankAlias:
		return NodeBank, true
	case TypeSegment, TypeSegmentAlias:
		return NodeSegment, true
	case TypeTagsegment:
		return NodeTagsegment, true
	default:
		return 0, false
	}
}

func isComposite(t ContentType) bool { return t == TypeComposite }

// is8or16BitPrimitive reports whether pad trimming applies to this
// leaf's data length.
func is8or16BitPrimitive(t ContentType) bool {
	switch t {
	case TypeInt16, TypeUint16, TypeInt8, TypeUint8:
		return true
	default:
		return false
	}
}

// TypedView is the zero-copy (dtype, byte-range, byte-order) tuple for a
// leaf node's payload: no bytes are copied or swapped. Data is borrowed
// from the node's backing slice and must not be retained past the
// node's owning File being closed.
type TypedView struct {
	ContentType ContentType
	Data        []byte
	Order       Order
}

// AsTypedSlice returns this leaf's payload as a zero-copy (dtype,
// byte-range, byte-order) tuple. Call DecodeTypedSlice to materialize a
// byte-order-normalized Go slice; that step copies.
func (n *Node) AsTypedSlice() (TypedView, error) {
	if n.ContentType != TypeStringArray && n.ContentType != TypeUnknown32 {
		if _, ok := leafDtypes[n.ContentType]; !ok {
			return TypedView{}, newErr(KindBadComposite, n.Offset, "node content type has no typed-slice decoding")
		}
	}
	return TypedView{ContentType: n.ContentType, Data: n.Payload(), Order: n.order}, nil
}

// DecodeTypedSlice materializes a leaf node's payload as a Go slice of
// its declared element type, swapped to host byte order. TypeUnknown32
// is the one exception: its words are surfaced as raw bytes, verbatim,
// never swapped. This is a convenience decode step, not a zero-copy one
// — see AsTypedSlice for the zero-copy tuple this is built from.
func (n *Node) DecodeTypedSlice() (any, error) {
	if n.ContentType == TypeStringArray {
		return n.AsStrings()
	}
	if n.ContentType == TypeUnknown32 {
		return n.Payload(), nil
	}
	info, ok := leafDtypes[n.ContentType]
	if !ok {
		return nil, newErr(KindBadComposite, n.Offset, "node content type has no typed-slice decoding")
	}
	payload := n.Payload()
	if len(payload)%info.elemSize != 0 {
		return nil, newErr(KindCorruption, n.DataOffset, "leaf payload length not a multiple of element size")
	}
	count := len(payload) / info.elemSize

	switch n.ContentType {
	case TypeFloat32:
		out := make([]float32, count)
		for i := 0; i < count; i++ {
			v, err := readU32(payload, int64(i)*4, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = math.Float32frombits(v)
		}
		return out, nil
	case TypeFloat64:
		out := make([]float64, count)
		for i := 0; i < count; i++ {
			v, err := readU64(payload, int64(i)*8, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = math.Float64frombits(v)
		}
		return out, nil
	case TypeInt32:
		out := make([]int32, count)
		for i := 0; i < count; i++ {
			v, err := readU32(payload, int64(i)*4, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = int32(v)
		}
		return out, nil
	case TypeUint32:
		out := make([]uint32, count)
		for i := 0; i < count; i++ {
			v, err := readU32(payload, int64(i)*4, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeInt64:
		out := make([]int64, count)
		for i := 0; i < count; i++ {
			v, err := readU64(payload, int64(i)*8, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = int64(v)
		}
		return out, nil
	case TypeUint64:
		out := make([]uint64, count)
		for i := 0; i < count; i++ {
			v, err := readU64(payload, int64(i)*8, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeInt16:
		out := make([]int16, count)
		for i := 0; i < count; i++ {
			v, err := readU16(payload, int64(i)*2, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = int16(v)
		}
		return out, nil
	case TypeUint16:
		out := make([]uint16, count)
		for i := 0; i < count; i++ {
			v, err := readU16(payload, int64(i)*2, n.order)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeInt8:
		out := make([]int8, count)
		for i := 0; i < count; i++ {
			out[i] = int8(payload[i])
		}
		return out, nil
	case TypeUint8:
		out := make([]uint8, count)
		copy(out, payload)
		return out, nil
	default:
		return nil, newErr(KindBadComposite, n.Offset, "node content type has no typed-slice decoding")
	}
}

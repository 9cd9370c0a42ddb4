package evio

// NodeKind identifies which of the three header shapes framed a Node:
// BANK (2-word header), SEGMENT or TAGSEGMENT (1-word header each).
type NodeKind int

const (
	NodeBank NodeKind = iota
	NodeSegment
	NodeTagsegment
)

func (k NodeKind) String() string {
	switch k {
	case NodeBank:
		return "bank"
	case NodeSegment:
		return "segment"
	case NodeTagsegment:
		return "tagsegment"
	default:
		return "unknown"
	}
}

// Node is the uniform node of the event tree: a BANK, SEGMENT, or
// TAGSEGMENT header together with its payload bounds. Children are
// computed on demand from the payload and are not cached; a caller
// walking the same subtree repeatedly should hold on to the returned
// slice itself.
type Node struct {
	data  []byte
	order Order

	Shape NodeKind
	// Offset is the byte offset of this node's header, relative to the
	// start of data.
	Offset      int64
	HeaderWords int64

	Tag         uint32
	ContentType ContentType
	Num         uint8 // BANK only; 0 for SEGMENT/TAGSEGMENT
	Pad         uint8 // BANK/SEGMENT only; always 0 for TAGSEGMENT

	PayloadWords uint32
	DataOffset   int64
	DataLength   int64
}

// fullSpan is the total number of bytes this node occupies, header
// through padded payload end.
func (n *Node) fullSpan() int64 {
	return n.HeaderWords*4 + int64(n.PayloadWords)*4
}

// IsContainer reports whether this node's declared content type makes
// it a container of further nodes.
func (n *Node) IsContainer() bool {
	_, ok := childShapeFor(n.ContentType)
	return ok
}

// IsComposite reports whether this node's declared content type is the
// composite mini-format (0xf).
func (n *Node) IsComposite() bool { return isComposite(n.ContentType) }

// IsLeaf reports whether this node is neither a container nor
// composite — a plain typed array of primitive values or strings.
func (n *Node) IsLeaf() bool { return !n.IsContainer() && !n.IsComposite() }

// Payload returns this node's raw data bytes, trimmed of any trailing
// pad bytes for 8/16-bit primitive leaves.
func (n *Node) Payload() []byte {
	return n.data[n.DataOffset : n.DataOffset+n.DataLength]
}

// Order returns the byte order this node's payload was parsed with.
func (n *Node) Order() Order { return n.order }

func dataLengthFor(payloadWords uint32, pad uint8, shape NodeKind, ct ContentType) int64 {
	bytes := int64(payloadWords) * 4
	if shape != NodeTagsegment && is8or16BitPrimitive(ct) {
		bytes -= int64(pad)
	}
	return bytes
}

// parseBankHeader decodes the 2-word BANK header at offset:
// word0 = length (words, exclusive of word0 itself);
// word1 = tag:16 | pad:2 | type:6 | num:8.
func parseBankHeader(data []byte, offset int64, order Order) (lengthWords, tag uint32, pad uint8, ct ContentType, num uint8, err error) {
	w0, err := readU32(data, offset, order)
	if err != nil {
		return
	}
	w1, err := readU32(data, offset+4, order)
	if err != nil {
		return
	}
	lengthWords = w0
	tag = readBitfield(w1, 16, 32)
	pad = uint8(readBitfield(w1, 14, 16))
	ct = ContentType(readBitfield(w1, 8, 14))
	num = uint8(readBitfield(w1, 0, 8))
	return
}

// parseSegmentHeader decodes the 1-word SEGMENT header at offset:
// tag:8 | pad:2 | type:6 | length:16.
func parseSegmentHeader(data []byte, offset int64, order Order) (payloadWords, tag uint32, pad uint8, ct ContentType, err error) {
	w0, err := readU32(data, offset, order)
	if err != nil {
		return
	}
	tag = readBitfield(w0, 24, 32)
	pad = uint8(readBitfield(w0, 22, 24))
	ct = ContentType(readBitfield(w0, 16, 22))
	payloadWords = readBitfield(w0, 0, 16)
	return
}

// parseTagsegmentHeader decodes the 1-word TAGSEGMENT header at offset:
// tag:12 | type:4 | length:16. TAGSEGMENT has no pad field.
func parseTagsegmentHeader(data []byte, offset int64, order Order) (payloadWords, tag uint32, ct ContentType, err error) {
	w0, err := readU32(data, offset, order)
	if err != nil {
		return
	}
	tag = readBitfield(w0, 20, 32)
	ct = ContentType(readBitfield(w0, 16, 20))
	payloadWords = readBitfield(w0, 0, 16)
	return
}

// parseBankNode parses a BANK-shaped node at offset.
func parseBankNode(data []byte, offset int64, order Order) (*Node, error) {
	if err := checkBounds(data, offset, 8); err != nil {
		return nil, err
	}
	lengthWords, tag, pad, ct, num, err := parseBankHeader(data, offset, order)
	if err != nil {
		return nil, err
	}
	if lengthWords < 1 {
		return nil, newErr(KindBadHeader, offset, "bank length word below minimum of 1")
	}
	payloadWords := lengthWords - 1
	dataOff := offset + 8
	dataLen := dataLengthFor(payloadWords, pad, NodeBank, ct)
	if err := checkBounds(data, dataOff, int64(payloadWords)*4); err != nil {
		return nil, err
	}
	return &Node{
		data: data, order: order,
		Shape: NodeBank, Offset: offset, HeaderWords: 2,
		Tag: tag, ContentType: ct, Num: num, Pad: pad,
		PayloadWords: payloadWords, DataOffset: dataOff, DataLength: dataLen,
	}, nil
}

// parseSegmentNode parses a SEGMENT-shaped node at offset.
func parseSegmentNode(data []byte, offset int64, order Order) (*Node, error) {
	if err := checkBounds(data, offset, 4); err != nil {
		return nil, err
	}
	payloadWords, tag, pad, ct, err := parseSegmentHeader(data, offset, order)
	if err != nil {
		return nil, err
	}
	dataOff := offset + 4
	dataLen := dataLengthFor(payloadWords, pad, NodeSegment, ct)
	if err := checkBounds(data, dataOff, int64(payloadWords)*4); err != nil {
		return nil, err
	}
	return &Node{
		data: data, order: order,
		Shape: NodeSegment, Offset: offset, HeaderWords: 1,
		Tag: tag, ContentType: ct, Num: 0, Pad: pad,
		PayloadWords: payloadWords, DataOffset: dataOff, DataLength: dataLen,
	}, nil
}

// parseTagsegmentNode parses a TAGSEGMENT-shaped node at offset.
func parseTagsegmentNode(data []byte, offset int64, order Order) (*Node, error) {
	if err := checkBounds(data, offset, 4); err != nil {
		return nil, err
	}
	payloadWords, tag, ct, err := parseTagsegmentHeader(data, offset, order)
	if err != nil {
		return nil, err
	}
	dataOff := offset + 4
	dataLen := dataLengthFor(payloadWords, 0, NodeTagsegment, ct)
	if err := checkBounds(data, dataOff, int64(payloadWords)*4); err != nil {
		return nil, err
	}
	return &Node{
		data: data, order: order,
		Shape: NodeTagsegment, Offset: offset, HeaderWords: 1,
		Tag: tag, ContentType: ct, Num: 0, Pad: 0,
		PayloadWords: payloadWords, DataOffset: dataOff, DataLength: dataLen,
	}, nil
}

// parseNode dispatches to the header parser for shape.
func parseNode(data []byte, offset int64, order Order, shape NodeKind) (*Node, error) {
	switch shape {
	case NodeBank:
		return parseBankNode(data, offset, order)
	case NodeSegment:
		return parseSegmentNode(data, offset, order)
	case NodeTagsegment:
		return parseTagsegmentNode(data, offset, order)
	default:
		return nil, newErr(KindBadHeader, offset, "unknown node shape")
	}
}

// bankFullSpan reads just enough of a BANK header at offset to report
// its full byte span, without constructing a Node. Used to walk
// self-describing BANKs packed back-to-back with no external index
// (the file-level dictionary and first-event blobs).
func bankFullSpan(data []byte, offset int64, order Order) (int64, error) {
	if err := checkBounds(data, offset, 4); err != nil {
		return 0, err
	}
	lengthWords, err := readU32(data, offset, order)
	if err != nil {
		return 0, err
	}
	return (int64(lengthWords) + 1) * 4, nil
}

// Children parses and returns this node's child nodes, or nil if this
// node is not a container. The child header shape is determined by
// this node's own declared content type: a BANK whose content type is
// BANK contains BANK children, and so on for SEGMENT/TAGSEGMENT.
func (n *Node) Children() ([]*Node, error) {
	shape, ok := childShapeFor(n.ContentType)
	if !ok {
		return nil, nil
	}
	end := n.DataOffset + int64(n.PayloadWords)*4
	var out []*Node
	off := n.DataOffset
	for off < end {
		child, err := parseNode(n.data, off, n.order, shape)
		if err != nil {
			return nil, err
		}
		span := child.fullSpan()
		if off+span > end {
			return nil, newErr(KindCorruption, off, "child node overshoots parent payload")
		}
		out = append(out, child)
		off += span
	}
	return out, nil
}

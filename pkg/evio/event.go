package evio

// Event is a single top-level container bank within a record's
// payload. Its root is always a BANK — never a SEGMENT or TAGSEGMENT.
type Event struct {
	record *Record
	Offset int64
	Length int64 // bytes, from the record's event-length index
}

// Root parses and returns this event's top-level BANK node.
func (e *Event) Root() (*Node, error) {
	data := e.record.file.data
	if err := checkBounds(data, e.Offset, e.Length); err != nil {
		return nil, err
	}
	node, err := parseBankNode(data, e.Offset, e.record.file.header.Order)
	if err != nil {
		return nil, err
	}
	if node.fullSpan() != e.Length {
		return nil, newErr(KindCorruption, e.Offset, "event root bank span does not match event-length index entry")
	}
	return node, nil
}

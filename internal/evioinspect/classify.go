// Package evioinspect is a thin convenience layer over pkg/evio for the
// evio CLI: tag classification, hex dumps, and map-shaped summaries
// suitable for text or JSON display. It parses nothing of its own —
// every byte it touches is reached through a *evio.File.
package evioinspect

// ClassifyTag returns an advisory name for well-known ROC tag
// conventions. It never affects decoding; evio.Node.Tag always returns
// the raw 16-bit value unmodified. Unrecognized tags return "".
func ClassifyTag(tag uint16) string {
	if tag == 0x10c0 {
		return "RocTimeSliceBank"
	}
	if tag&0xff00 != 0xff00 {
		return ""
	}
	low := tag & 0x00ff
	switch {
	case low == 0x30:
		return "RocTimeSliceBank"
	case low == 0x31:
		return "PhysicsEvent"
	case low&0x10 == 0x10:
		return "RocRawDataRecord"
	default:
		return ""
	}
}

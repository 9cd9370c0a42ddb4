package evio

import "bytes"

// AsStrings decodes a string-array leaf (content type 0x3): strings are
// NUL-separated, and the array as a whole is terminated by a run of
// one or more 0x04 bytes used to pad the array out to a 4-byte
// boundary. A leaf with no trailing 0x04 run is an
// older single-string encoding; it decodes as one string with at most
// one trailing NUL trimmed, and is accepted without error.
func (n *Node) AsStrings() ([]string, error) {
	if n.ContentType != TypeStringArray {
		return nil, newErr(KindBadComposite, n.Offset, "node content type is not a string array")
	}
	strs, _ := splitStringArray(n.Payload())
	return strs, nil
}

// splitStringArray implements the decode rule above. The bool result
// reports whether a 0x04 terminator run was found.
func splitStringArray(payload []byte) ([]string, bool) {
	i := len(payload)
	for i > 0 && payload[i-1] == 0x04 {
		i--
	}
	hadTerminator := i < len(payload)
	stripped := payload[:i]

	if !hadTerminator {
		s := stripped
		if len(s) > 0 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return []string{string(s)}, false
	}

	parts := bytes.Split(stripped, []byte{0})
	if len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out, true
}

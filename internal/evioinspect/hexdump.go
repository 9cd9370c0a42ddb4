package evioinspect

import "fmt"

// HexDump renders data in the line/hex/ascii layout used by the dump
// and hex CLI subcommands, grouping chunkSize bytes per line split
// into two halves (grounded on pyevio's utils.make_hex_dump).
func HexDump(data []byte, chunkSize int, title string) string {
	if chunkSize <= 0 {
		chunkSize = 16
	}
	half := chunkSize / 2

	var out []byte
	if title != "" {
		out = append(out, fmt.Sprintf("--- %s ---\n", title)...)
	}
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		sub1, sub2 := chunk, []byte(nil)
		if len(chunk) > half {
			sub1, sub2 = chunk[:half], chunk[half:]
		}
		hex1 := hexJoin(sub1)
		hex2 := hexJoin(sub2)
		ascii := make([]byte, len(chunk))
		for j, b := range chunk {
			if b >= 32 && b < 127 {
				ascii[j] = b
			} else {
				ascii[j] = '.'
			}
		}
		out = append(out, fmt.Sprintf("%4d[%04x]   %s  %s    %s\n", i/chunkSize, i, hex1, hex2, ascii)...)
	}
	return string(out)
}

func hexJoin(b []byte) string {
	out := make([]byte, 0, len(b)*3)
	for i, v := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("%02x", v)...)
	}
	return string(out)
}

package evioinspect

import (
	"fmt"
	"strings"

	"github.com/clasdaq/evio/pkg/evio"
)

// FileSummary renders a file's header plus record count as a
// display-ready key/value bag (grounded on cmd/gguf_inspect's
// printKey/formatValue convention, see DESIGN.md).
func FileSummary(f *evio.File) (map[string]any, error) {
	n, err := f.RecordCount()
	if err != nil {
		return nil, err
	}
	s := f.Header().Summary()
	s["record_count_discovered"] = n
	return s, nil
}

// RecordSummary renders one record's header as a key/value bag.
func RecordSummary(r *evio.Record) map[string]any {
	return map[string]any{
		"offset":           fmt.Sprintf("0x%x", r.Offset),
		"is_trailer":       r.IsTrailer(),
		"is_last":          r.IsLast(),
		"event_count":      r.EventCount(),
		"compression_type": r.CompressionType(),
	}
}

// NodeSummary renders one node's header fields, including the
// advisory tag classification, as a key/value bag.
func NodeSummary(n *evio.Node) map[string]any {
	s := map[string]any{
		"offset":       fmt.Sprintf("0x%x", n.Offset),
		"shape":        n.Shape.String(),
		"tag":          fmt.Sprintf("0x%x", n.Tag),
		"tag_name":     ClassifyTag(uint16(n.Tag)),
		"content_type": n.ContentType.String(),
		"num":          n.Num,
		"pad":          n.Pad,
		"data_length":  n.DataLength,
		"is_container": n.IsContainer(),
		"is_composite": n.IsComposite(),
	}
	if !n.IsContainer() {
		if v, err := leafPreview(n); err == nil {
			s["value"] = v
		}
	}
	return s
}

// leafPreview decodes a non-container node's payload for display: a
// composite's decoded items, a string array's strings, or a typed
// slice for every other leaf content type. Unlike pkg/evio's zero-copy
// accessors, this materializes values — exactly what a human- or
// JSON-facing preview needs.
func leafPreview(n *evio.Node) (any, error) {
	if n.IsComposite() {
		return n.DecodeComposite()
	}
	if n.ContentType == evio.TypeStringArray {
		return n.AsStrings()
	}
	return n.DecodeTypedSlice()
}

// RenderTree walks a node and its children (recursively, lazily via
// Node.Children) into an indented text tree for the dump/debug CLI
// subcommands.
func RenderTree(n *evio.Node, depth int) (string, error) {
	var b strings.Builder
	if err := renderNode(&b, n, depth); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderNode(b *strings.Builder, n *evio.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	name := ClassifyTag(uint16(n.Tag))
	if name != "" {
		name = " (" + name + ")"
	}
	fmt.Fprintf(b, "%s%s tag=0x%x%s type=%s num=%d bytes=%d\n",
		indent, n.Shape, n.Tag, name, n.ContentType, n.Num, n.DataLength)

	if !n.IsContainer() {
		if v, err := leafPreview(n); err == nil {
			fmt.Fprintf(b, "%s  %v\n", indent, v)
		}
		return nil
	}
	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := renderNode(b, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

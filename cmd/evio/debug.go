package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/pkg/evio"
)

func debugCmd() *cli.Command {
	return &cli.Command{
		Name:  "debug",
		Usage: "Show low-level header bitfields for a record and (optionally) one event",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Required: true, Usage: "File path"},
			&cli.IntFlag{Name: "record", Aliases: []string{"r"}, Required: true, Usage: "Record index"},
			&cli.IntFlag{Name: "event", Aliases: []string{"e"}, Value: -1, Usage: "Event index within the record (-1 scans all)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := evio.Open(cmd.String("path"))
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := f.Record(int(cmd.Int("record")))
			if err != nil {
				return err
			}
			h := r.Header

			result := map[string]any{
				"record_length_words":          h.RecordLengthWords,
				"record_number":                h.RecordNumber,
				"header_length_words":          h.HeaderLengthWords,
				"event_count":                  h.EventCount,
				"index_array_length":           h.IndexArrayLength,
				"version":                      h.Version,
				"has_dictionary":               h.HasDictionary,
				"is_last":                      h.IsLast,
				"event_type":                   h.EventType,
				"has_first_event":              h.HasFirstEvent,
				"kind":                         int(h.Kind),
				"user_header_length":           h.UserHeaderLength,
				"uncompressed_data_length":     h.UncompressedDataLength,
				"compression_type":             h.CompressionType,
				"compressed_data_length_words": h.CompressedDataLengthWords,
			}

			var trees []string
			eventIdx := int(cmd.Int("event"))
			if !r.IsTrailer() {
				if eventIdx >= 0 {
					ev, err := r.Event(eventIdx)
					if err != nil {
						return err
					}
					root, err := ev.Root()
					if err != nil {
						return err
					}
					tree, err := evioinspect.RenderTree(root, 0)
					if err != nil {
						return err
					}
					trees = append(trees, tree)
				} else {
					for ev, err := range r.Events() {
						if err != nil {
							return err
						}
						root, err := ev.Root()
						if err != nil {
							trees = append(trees, err.Error())
							continue
						}
						tree, err := evioinspect.RenderTree(root, 0)
						if err != nil {
							return err
						}
						trees = append(trees, tree)
					}
				}
			}
			result["events"] = trees

			return printResult(cmd, result, func() {
				printf("record %d header fields:\n", cmd.Int("record"))
				for _, k := range []string{"record_length_words", "record_number", "header_length_words", "event_count", "index_array_length", "version", "has_dictionary", "is_last", "event_type", "has_first_event", "kind", "user_header_length", "uncompressed_data_length", "compression_type", "compressed_data_length_words"} {
					printf("  %-28s %v\n", k, result[k])
				}
				for i, t := range trees {
					n := i
					if eventIdx >= 0 {
						n = eventIdx
					}
					printf("\nevent %d:\n%s\n", n, t)
				}
			})
		},
	}
}

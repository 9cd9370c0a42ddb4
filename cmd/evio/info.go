package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/internal/logger"
	"github.com/clasdaq/evio/pkg/evio"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show file header and record-table summary",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("missing <path>", 2)
			}
			log := logger.FromContext(ctx)

			f, err := evio.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			log.Debug("opened file", "path", path, "order", f.Order().String())

			summary, err := evioinspect.FileSummary(f)
			if err != nil {
				return err
			}
			n, err := f.RecordCount()
			if err != nil {
				return err
			}

			return printResult(cmd, summary, func() {
				printf("file: %s\n", path)
				for _, k := range []string{"byte_order", "version", "header_kind", "record_count", "record_count_discovered", "has_dictionary", "has_first_event", "trailer_has_index", "user_header_length", "trailer_position", "index_array_length"} {
					printf("  %-24s %v\n", k, summary[k])
				}
				printf("\nrecords:\n")
				shown := min(n, 15)
				for i := 0; i < shown; i++ {
					r, err := f.Record(i)
					if err != nil {
						printf("  %3d  error: %v\n", i, err)
						continue
					}
					printf("  %3d  offset=0x%x  len_words=%d  events=%d  trailer=%v  last=%v\n",
						i, r.Offset, r.Header.RecordLengthWords, r.EventCount(), r.IsTrailer(), r.IsLast())
				}
				if n > shown {
					printf("  ... (%d more)\n", n-shown)
				}
			})
		},
	}
}

package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/internal/logger"
	"github.com/clasdaq/evio/pkg/evio"
)

func recordsCmd() *cli.Command {
	return &cli.Command{
		Name:      "records",
		Usage:     "List every record's header fields",
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

			n, err := f.RecordCount()
			if err != nil {
				return err
			}

			var rows []map[string]any
			for i := 0; i < n; i++ {
				r, err := f.Record(i)
				if err != nil {
					return err
				}
				log.Debug("record scanned", "index", i, "offset", r.Offset, "events", r.EventCount())
				rows = append(rows, evioinspect.RecordSummary(r))
			}

			return printResult(cmd, rows, func() {
				for i, row := range rows {
					printf("%4d  offset=%-10v trailer=%-5v last=%-5v events=%-4v compression=%v\n",
						i, row["offset"], row["is_trailer"], row["is_last"], row["event_count"], row["compression_type"])
				}
			})
		},
	}
}

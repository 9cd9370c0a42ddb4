package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/pkg/evio"
)

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Inspect one record's structure in detail",
		ArgsUsage: "<path> <record>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "hexdump", Usage: "Also hex-dump the record header"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Get(0) == "" || args.Get(1) == "" {
				return cli.Exit("usage: evio dump <path> <record>", 2)
			}
			idx, err := parseIndexArg(args.Get(1))
			if err != nil {
				return err
			}

			f, err := evio.Open(args.Get(0))
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := f.Record(idx)
			if err != nil {
				return err
			}

			result := evioinspect.RecordSummary(r)
			var hexText string
			if cmd.Bool("hexdump") {
				headerEnd := r.Offset + int64(r.Header.HeaderLengthWords)*4
				raw, err := f.RawBytes(r.Offset, headerEnd)
				if err != nil {
					return err
				}
				hexText = evioinspect.HexDump(raw, 16, "Record Header")
				result["header_hexdump"] = hexText
			}

			var eventTrees []string
			if !r.IsTrailer() {
				for ev, err := range r.Events() {
					if err != nil {
						return err
					}
					root, err := ev.Root()
					if err != nil {
						eventTrees = append(eventTrees, err.Error())
						continue
					}
					tree, err := evioinspect.RenderTree(root, 0)
					if err != nil {
						return err
					}
					eventTrees = append(eventTrees, tree)
				}
			}
			result["events"] = eventTrees

			return printResult(cmd, result, func() {
				printf("record %d: offset=%v trailer=%v last=%v events=%v compression=%v\n",
					idx, result["offset"], result["is_trailer"], result["is_last"], result["event_count"], result["compression_type"])
				if hexText != "" {
					printf("\n%s\n", hexText)
				}
				for i, t := range eventTrees {
					printf("\nevent %d:\n%s\n", i, t)
				}
			})
		},
	}
}

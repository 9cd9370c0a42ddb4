package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/pkg/evio"
)

func hexCmd(cfg Config) *cli.Command {
	chunk := cfg.HexChunk
	if chunk <= 0 {
		chunk = 16
	}
	return &cli.Command{
		Name:      "hex",
		Usage:     "Hex-dump a raw byte range of the file",
		ArgsUsage: "<path> [offset] [length]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "chunk", Value: chunk, Usage: "Bytes per displayed line"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Get(0) == "" {
				return cli.Exit("usage: evio hex <path> [offset] [length]", 2)
			}
			f, err := evio.Open(args.Get(0))
			if err != nil {
				return err
			}
			defer f.Close()

			offset := int64(0)
			length := int64(256)
			if args.Get(1) != "" {
				v, err := parseIndexArg(args.Get(1))
				if err != nil {
					return err
				}
				offset = int64(v)
			}
			if args.Get(2) != "" {
				v, err := parseIndexArg(args.Get(2))
				if err != nil {
					return err
				}
				length = int64(v)
			}

			raw, err := f.RawBytes(offset, offset+length)
			if err != nil {
				return err
			}
			dump := evioinspect.HexDump(raw, int(cmd.Int("chunk")), "")

			return printResult(cmd, map[string]any{"offset": offset, "length": length, "hexdump": dump}, func() {
				printf("%s", dump)
			})
		},
	}
}

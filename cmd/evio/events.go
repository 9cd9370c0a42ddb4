package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/evioinspect"
	"github.com/clasdaq/evio/pkg/evio"
)

func eventsCmd() *cli.Command {
	return &cli.Command{
		Name:      "events",
		Usage:     "List a record's events and print each one's root-node tree",
		ArgsUsage: "<path> <record>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			path := args.Get(0)
			if path == "" || args.Get(1) == "" {
				return cli.Exit("usage: evio events <path> <record>", 2)
			}
			f, err := evio.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			idx, err := parseIndexArg(args.Get(1))
			if err != nil {
				return err
			}
			r, err := f.Record(idx)
			if err != nil {
				return err
			}
			if r.IsTrailer() {
				return cli.Exit("record is the trailer; it has no events", 1)
			}

			var trees []string
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

			return printResult(cmd, trees, func() {
				for i, t := range trees {
					printf("event %d:\n%s\n", i, t)
				}
			})
		},
	}
}

// cmd/evio/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/internal/logger"
)

func main() {
	cfg := LoadConfig()

	app := &cli.Command{
		Name:  "evio",
		Usage: "Inspect EVIO/HIPO v6 container files",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Emit structured JSON instead of text"},
			&cli.StringFlag{Name: "log-level", Usage: "debug|info|warn|error", Value: firstNonEmpty(cfg.LogLevel, "info")},
			&cli.StringFlag{Name: "log-format", Usage: "pretty|json", Value: firstNonEmpty(cfg.LogFormat, "pretty")},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := logger.ParseLevel(cmd.String("log-level"))
			var log logger.Logger
			if cmd.String("log-format") == "json" {
				log = logger.JSON(os.Stderr, level)
			} else {
				log = logger.Pretty(os.Stderr, level)
			}
			runID := uuid.NewString()
			log = log.With("run_id", runID)
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(),
			recordsCmd(),
			eventsCmd(),
			dumpCmd(),
			hexCmd(cfg),
			debugCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeForErr(err))
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/clasdaq/evio/pkg/evio"
)

func parseIndexArg(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, cli.Exit("invalid index: "+s, 2)
	}
	return v, nil
}

// printResult emits v as indented JSON when --json is set, otherwise
// calls text to print the human-readable rendering.
func printResult(cmd *cli.Command, v any, text func()) error {
	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// exitCoder matches cli.Exit's return type structurally rather than by
// importing its exact interface name, so a usage error built with
// cli.Exit(message, code) keeps the code it was given.
type exitCoder interface {
	ExitCode() int
}

// exitCodeForErr maps a subcommand's terminal error to the CLI's
// exit-code table: 0 success, 2 usage error, 3 file-open/io error, 4
// format error, 5 unsupported feature. A usage error already carries
// its own code via cli.Exit, so that takes precedence over the
// *evio.FormatError mapping; anything neither kind defaults to 1.
func exitCodeForErr(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	var fe *evio.FormatError
	if !errors.As(err, &fe) {
		return 1
	}
	switch fe.Kind {
	case evio.KindIo:
		return 3
	case evio.KindUnsupportedCompression:
		return 5
	default:
		return 4
	}
}

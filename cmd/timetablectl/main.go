package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/shadowforce78/TimeTableLib/cmd"
)

var version = "(unknown)"

func main() {
	cmd.Version = version

	app := cli.App{
		Name:    "timetablectl",
		Usage:   "Renders weekly timetables onto a slot grid",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the YAML configuration",
			},
		},
		Commands: []cli.Command{
			cmd.Render,
			cmd.List,
			cmd.Serve,
			cmd.Snapshot,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := cli.App{
		Name:    "treetool",
		Usage:   "informal CLI tool for binary tree algorithms (build, rebalance, serialize, prune, etc)",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"TREETOOL_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "json",
				Usage:   "output results as JSON instead of text",
				EnvVars: []string{"TREETOOL_JSON"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logger := configLogger(cctx, cctx.App.ErrWriter)
			logger.Debug("treetool starting", "version", versioninfo.Short())
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdShow,
		cmdInsert,
		cmdRebalance,
		cmdSerialize,
		cmdLCA,
		cmdVertical,
		cmdPrune,
		cmdGen,
		cmdDemo,
	}
	return &app
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "lazytree",
		Usage:   "replay operations against a lazy-deletion binary search tree",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LAZYTREE_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text or json)",
				Value:   "text",
				EnvVars: []string{"LAZYTREE_LOG_FORMAT"},
			},
		},
		Before: configLogging,
	}
	app.Commands = []*cli.Command{
		cmdRun,
		cmdDemo,
	}
	return app.Run(args)
}

func configLogging(cctx *cli.Context) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch cctx.String("log-format") {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return errors.Errorf("unknown log format %q", cctx.String("log-format"))
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "replay an operation script (use - for stdin)",
	ArgsUsage: "<script>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "keys",
			Usage:   "key type of the tree (int or string)",
			Value:   "int",
			EnvVars: []string{"LAZYTREE_KEYS"},
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the tree shape once the script finishes",
		},
	},
	Action: runReplay,
}

func runReplay(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return errors.New("need a script path as an argument")
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	log := slog.Default().With("script", path)
	return replayScript(r, cctx.String("keys"), cctx.App.Writer, log, cctx.Bool("dump"))
}

const demoScript = `
# build, tombstone and collect
insert 10 5 15
size
remove 5
size
contains 5
hard
soft
dump
gc
size
hard
min
max
height
`

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "walk through lazy deletion and garbage collection on a small tree",
	Action: func(cctx *cli.Context) error {
		return replayScript(strings.NewReader(demoScript), "int", cctx.App.Writer, slog.Default(), true)
	},
}

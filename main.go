package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/kcwebb/taskline/internal/commands"
	"github.com/kcwebb/taskline/internal/core/config"
	"github.com/kcwebb/taskline/internal/core/styles"
	"github.com/kcwebb/taskline/internal/data/stores"
	"github.com/kcwebb/taskline/internal/taskline"
	"github.com/kcwebb/taskline/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &taskline.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "taskline",
		Usage:     "Manage a todo list for the length of one sitting",
		UsageText: "taskline [global options] [command]",
		Description: `Taskline is a single-user console todo manager. Tasks live in memory
for the duration of the run and are gone when the process exits.

Run 'taskline' with no arguments to open the interactive menu.
Run 'taskline batch' to apply a JSON script of operations.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKLINE_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("TASKLINE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKLINE_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			level := flags.LogLevel
			if level == "" {
				level = cfg.LogLevel
			}

			logger, closer, err := logutils.New(level, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Apply configured theme (validation ensures the name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = *taskline.NewApp(stores.NewTaskStore(), cfg, logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags, app)

	root = commands.NewBatchCmd(flags, app).Register(root)

	// Open the interactive menu when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskline --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

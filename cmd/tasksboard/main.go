package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/evanschultz/tasksboard/internal/adapters/storage/sqlite"
	"github.com/evanschultz/tasksboard/internal/app"
	"github.com/evanschultz/tasksboard/internal/config"
	"github.com/evanschultz/tasksboard/internal/domain"
	"github.com/evanschultz/tasksboard/internal/markdown"
	"github.com/evanschultz/tasksboard/internal/platform"
	"github.com/evanschultz/tasksboard/internal/tui"
	"github.com/spf13/cobra"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// main handles main.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	appName    string
	devMode    bool
}

// run builds the command tree and executes it through fang.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return fang.Execute(ctx, root, fang.WithVersion(version), fang.WithoutManpage())
}

// newRootCommand wires the root TUI command and its subcommands.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{appName: platform.DefaultAppName}
	defaultDevMode := version == "dev"
	if envDev, ok := parseBoolEnv("TASKSBOARD_DEV_MODE"); ok {
		defaultDevMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("TASKSBOARD_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:   "tasksboard",
		Short: "A terminal task board",
		Long:  "tasksboard organizes tasks into lists and lists into boards. Board state lives in memory for one session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), *opts, cmd.ErrOrStderr())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config TOML")
	flags.StringVar(&opts.appName, "app", opts.appName, "application name for config/log path resolution")
	flags.BoolVar(&opts.devMode, "dev", defaultDevMode, "use dev mode paths (<app>-dev)")

	root.AddCommand(newPathsCommand(opts), newShowCommand(opts))
	return root
}

// newPathsCommand prints resolved runtime paths.
func newPathsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := resolvePaths(*opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "app: %s\n", opts.appName)
			_, _ = fmt.Fprintf(out, "dev_mode: %t\n", opts.devMode)
			_, _ = fmt.Fprintf(out, "config: %s\n", resolveConfigPath(*opts, paths))
			_, _ = fmt.Fprintf(out, "data_dir: %s\n", paths.DataDir)
			_, _ = fmt.Fprintf(out, "log_dir: %s\n", paths.LogDir)
			return nil
		},
	}
}

// newShowCommand prints the initial board as markdown.
func newShowCommand(opts *rootOptions) *cobra.Command {
	var (
		plain bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the starting board as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := resolvePaths(*opts)
			if err != nil {
				return err
			}
			configPath := resolveConfigPath(*opts, paths)
			cfg, err := config.Load(configPath, config.Default())
			if err != nil {
				return fmt.Errorf("load config %q: %w", configPath, err)
			}
			board, ok := newStore(cfg).ActiveBoard()
			if !ok {
				return fmt.Errorf("no active board")
			}
			md := app.BoardMarkdown(board, cfg.Board.ShowCompletedCount)
			if !plain {
				var renderer markdown.Renderer
				md, err = renderer.Render(md, width)
				if err != nil {
					return fmt.Errorf("render board markdown: %w", err)
				}
				md += "\n"
			}
			_, err = io.WriteString(cmd.OutOrStdout(), md)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for rendered output")
	return cmd
}

// runTUI runs the board program with a session journal attached.
func runTUI(ctx context.Context, opts rootOptions, stderr io.Writer) error {
	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	configPath := resolveConfigPath(opts, paths)
	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}

	logger, err := newRuntimeLogger(stderr, opts.appName, opts.devMode, cfg.Logging, paths.LogDir, time.Now)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while the board is active.
	logger.SetConsoleEnabled(false)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil && logger.shouldLogToSink(logger.consoleSink) {
			_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
		}
	}()

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "log_dir", paths.LogDir)
	logger.Info("configuration loaded", "config_path", configPath, "log_level", cfg.Logging.Level, "seed_sample", cfg.Board.SeedSample)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	journal, err := sqlite.OpenInMemory()
	if err != nil {
		logger.Error("session journal open failed", "err", err)
		return fmt.Errorf("open session journal: %w", err)
	}
	defer func() {
		if closeErr := journal.Close(); closeErr != nil {
			logger.Warn("session journal close failed", "err", closeErr)
		}
	}()
	logger.Info("session journal ready", "session_id", journal.SessionID())

	store := newStore(cfg)
	m := tui.NewModel(
		store,
		tui.WithRuntimeConfig(toTUIRuntimeConfig(cfg)),
		tui.WithJournal(journal),
	)
	logger.Info("starting tui program loop", "boards", len(store.State().Boards))
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	if events, err := journal.ListChangeEvents(ctx, 0); err == nil {
		logger.Info("command flow complete", "command", "tui", "recent_changes", len(events))
	}
	return nil
}

// resolvePaths resolves platform paths for the selected app name and mode.
func resolvePaths(opts rootOptions) (platform.Paths, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return platform.Paths{}, fmt.Errorf("resolve paths: %w", err)
	}
	return paths, nil
}

// resolveConfigPath applies flag, env and platform precedence for the config file.
func resolveConfigPath(opts rootOptions, paths platform.Paths) string {
	if path := strings.TrimSpace(opts.configPath); path != "" {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv("TASKSBOARD_CONFIG")); envPath != "" {
		return envPath
	}
	return paths.ConfigPath
}

// newStore seeds the board store from config. Seed ids and later ids share one sequence.
func newStore(cfg config.Config) *app.Store {
	seq := domain.NewSequence(1)
	var initial app.State
	if cfg.Board.SeedSample {
		initial = app.SampleState(seq.Next)
	} else {
		initial = app.EmptyState(seq.Next)
	}
	return app.NewStore(initial, app.WithIDGenerator(seq.Next))
}

// parseBoolEnv parses input into a normalized form.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// toTUIRuntimeConfig maps persisted config values into runtime model options.
func toTUIRuntimeConfig(cfg config.Config) tui.RuntimeConfig {
	return tui.RuntimeConfig{
		ShowCompletedCount: cfg.Board.ShowCompletedCount,
		SidebarWidth:       cfg.UI.SidebarWidth,
		ShowFooter:         cfg.UI.ShowFooter,
		Keys: tui.KeyConfig{
			AddBoard:    cfg.Keys.AddBoard,
			AddList:     cfg.Keys.AddList,
			AddTask:     cfg.Keys.AddTask,
			Rename:      cfg.Keys.Rename,
			Toggle:      cfg.Keys.Toggle,
			Delete:      cfg.Keys.Delete,
			ListMenu:    cfg.Keys.ListMenu,
			ActivityLog: cfg.Keys.ActivityLog,
			Copy:        cfg.Keys.Copy,
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathantilsley/scatter-flash/internal/config"
	entrydiff "github.com/nathantilsley/scatter-flash/internal/flash/adapters/entry_diff"
	ghclient "github.com/nathantilsley/scatter-flash/internal/flash/adapters/gh_client"
	linediff "github.com/nathantilsley/scatter-flash/internal/flash/adapters/line_diff"
	localfile "github.com/nathantilsley/scatter-flash/internal/flash/adapters/local_file"
	repotree "github.com/nathantilsley/scatter-flash/internal/flash/adapters/repo_tree"
	sourcectrl "github.com/nathantilsley/scatter-flash/internal/flash/adapters/source_ctrl"
	"github.com/nathantilsley/scatter-flash/internal/flash/app"
	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
	"github.com/nathantilsley/scatter-flash/internal/logging"
)

// defaultScatterFile is read when no source argument is given.
const defaultScatterFile = "./MT6781_Android_scatter.xml"

// cli carries the streams and persistent flags shared by all commands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	adjacent   bool
	noColor    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	var watch bool

	root := &cobra.Command{
		Use:   "scatter-flash [scatter-file]",
		Short: "Print fastboot commands for the partitions in a scatter file",
		Long: `Reads a MediaTek scatter file and prints one fastboot flash command per
partition that has an image. Partitions whose file is NONE are skipped,
the first entry wins when a partition repeats, and userdata is never flashed.

The source may be a path, - for standard input, or gh:owner/repo[@ref]:path.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := defaultScatterFile
			if len(args) == 1 {
				source = args[0]
			}
			if watch {
				return c.runWatch(cmd.Context(), source)
			}
			return c.runRender(cmd.Context(), source)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to config file (default "+config.DefaultPath+" if present)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&c.adjacent, "adjacent", false, "require <file_name> to directly follow </partition_name>")
	flags.BoolVar(&c.noColor, "no-color", false, "disable coloured log output")
	root.Flags().BoolVarP(&watch, "watch", "w", false, "re-print the commands whenever the scatter file changes")

	root.AddCommand(c.newDiffCmd(), c.newListCmd())
	return root
}

// setup loads configuration and builds the logger before any command runs.
func (c *cli) setup() error {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && c.configPath == "":
		cfg = config.Default()
	case err != nil:
		return err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.adjacent {
		cfg.Scan.Adjacent = true
	}
	if c.noColor {
		cfg.Log.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logging.New(c.stderr, level, cfg.Log.Color)
	return nil
}

// service wires the adapters selected by the loaded configuration.
func (c *cli) service() (*app.Service, error) {
	gh, err := ghclient.New(ghclient.Options{
		BaseURL:        c.cfg.GitHub.BaseURL,
		Token:          c.cfg.GitHub.Token,
		AppID:          c.cfg.GitHub.AppID,
		InstallationID: c.cfg.GitHub.InstallationID,
		PrivateKeyPath: c.cfg.GitHub.PrivateKeyPath,
	})
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}

	scanner := domain.NewScanner(domain.ScanOptions{Adjacent: c.cfg.Scan.Adjacent})
	return app.New(app.Options{
		Local:        localfile.NewWithStdin(c.stdin),
		GitHub:       sourcectrl.New(gh),
		Tree:         repotree.New(gh),
		Scanner:      scanner,
		Renderer:     domain.NewRenderer(),
		UnifiedDiff:  linediff.New(),
		SemanticDiff: entrydiff.New(scanner),
		Logger:       c.logger,
	}), nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/slider/internal/config"
	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/publish"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┬┌┬┐┌─┐┬─┐
  └─┐│  │ ││├┤ ├┬┘
  └─┘┴─┘┴─┴┘└─┘┴└─
`

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds the state shared by every command.
type cli struct {
	configPath string
	logLevel   string
	logJSON    bool

	logger *slog.Logger

	// newClient builds the object store client used by export.
	newClient func(publish.ClientOptions) publish.ObjectPutter
}

func newCLI() *cli {
	return &cli{
		newClient: func(o publish.ClientOptions) publish.ObjectPutter {
			return publish.NewClient(o)
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slider",
		Short: "Server-rendered slider widget",
		Long: `Slider renders a range slider on the server and keeps it live
over a WebSocket patch stream.

  • serve   the page, the fragment and the live stream
  • render  the slider markup to stdout
  • export  a static page to an S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogger(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to slider.json (default: search from the working directory)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")

	// Add commands
	rootCmd.AddCommand(
		serveCmd(c),
		renderCmd(c),
		exportCmd(c),
		versionCmd(),
	)

	return rootCmd
}

func (c *cli) setupLogger(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return errors.New(errors.CodeInvalidFlags).
			WithDetail(fmt.Sprintf("--log-level %q is not a log level", c.logLevel)).
			WithSuggestion("Use debug, info, warn or error")
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.logJSON {
		c.logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		c.logger = slog.New(slog.NewTextHandler(w, opts))
	}
	slog.SetDefault(c.logger)
	return nil
}

// loadConfig reads --config, or slider.json from the working directory or a
// parent, falling back to the defaults.
func (c *cli) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.LoadFile(c.configPath)
	}
	return config.LoadFromWorkingDir()
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

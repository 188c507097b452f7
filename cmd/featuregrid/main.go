// Command featuregrid serves the feature grid builder and renders or
// exports grids from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "featuregrid",
		Short: "Build marketing feature grids from layouts and cards",
		Long: `featuregrid is a server-driven builder for marketing feature grids.

Pick a layout template and variant, assign a card to every block, and
preview the result live in the browser. Grids can also be rendered to
stdout or exported as static HTML and component source.

Examples:
  featuregrid serve --port 8080
  featuregrid render --layout bento --variant bento-spotlight
  featuregrid export s3://marketing-previews/grids/
  featuregrid catalog --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to featuregrid.json (default: search from the working directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "Print errors without ANSI colors (also set by NO_COLOR)")

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if opts.noColor {
			errors.SetColor(false)
		}
	}

	rootCmd.AddCommand(
		serveCmd(opts),
		renderCmd(opts),
		exportCmd(opts),
		catalogCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// app is the state shared by the commands: configuration, the catalog and
// the card registry.
type app struct {
	cfg    *config.Config
	cat    *catalog.Catalog
	reg    *cards.Registry
	logger *slog.Logger
}

// loadApp loads the configuration and catalog and registers the built-in
// cards. Logs go to logOut.
func loadApp(opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(logOut, cfg)
	slog.SetDefault(logger)

	cat, err := catalog.LoadOrEmbedded(cfg.CatalogPath())
	if err != nil {
		return nil, err
	}

	policy, err := cards.ParseDuplicatePolicy(cfg.Registry.OnDuplicate)
	if err != nil {
		return nil, errors.New("E103").Wrap(err)
	}
	reg, err := catalog.NewRegistry(
		cards.WithDuplicatePolicy(policy),
		cards.WithRegistryLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if err := catalog.DeclareCategories(cat, reg); err != nil {
		return nil, err
	}
	for _, e := range catalog.Missing(cat, reg) {
		logger.Warn("catalog card has no renderer; it will render as a fallback", "card", e.String())
	}

	return &app{cfg: cfg, cat: cat, reg: reg, logger: logger}, nil
}

// resolver returns a resolver over the app's registry.
func (a *app) resolver(observer cards.Observer) *cards.Resolver {
	opts := []cards.ResolverOption{cards.WithLogger(a.logger)}
	if observer != nil {
		opts = append(opts, cards.WithObserver(observer))
	}
	return cards.NewResolver(a.reg, opts...)
}

// newLogger builds the slog handler selected by the log configuration.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

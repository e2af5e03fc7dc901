package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jturek/wikinote"
	"github.com/jturek/wikinote/acquire"
	"github.com/jturek/wikinote/fs"
	"github.com/jturek/wikinote/goquery"
	"github.com/jturek/wikinote/htmltomarkdown"
	wikihttp "github.com/jturek/wikinote/http"
	wikislog "github.com/jturek/wikinote/slog"
	"github.com/jturek/wikinote/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikinote"),
		kong.Description("Fetch a random Wikipedia article and write a structured markdown note"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Load the persisted settings record and layer explicit flags on top.
	settingsPath := cli.Config
	if settingsPath == "" {
		settingsPath = defaultSettingsPath()
	}

	settings, err := yaml.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	cli.apply(&settings)

	if cli.SaveConfig {
		if err := yaml.SaveSettings(settingsPath, settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Fprintf(stdout, "Saved settings to %s\n", settingsPath)
	}

	cfg, err := settings.Config()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := wikihttp.NewClient(
		wikihttp.WithLanguage(settings.Language),
		wikihttp.WithTimeout(cli.Timeout),
	)

	var source wikinote.ArticleSource = client
	if cli.Verbose {
		source = wikislog.NewLoggingSource(client, logger)
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Config:     cfg,
		Source:     source,
		Summaries:  client,
		Extractor:  goquery.NewExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Writer:     fs.NewWriter(settings.Dir),
		Progress:   wikislog.NewProgress(logger),
		RetryDelay: acquire.DefaultRetryDelay,
	}

	cmd := &NoteCmd{
		Preview: cli.Preview,
		Summary: settings.Summary,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong. Pointer
// fields distinguish "flag not given" from an explicit zero so settings
// file values survive unless overridden.
type CLI struct {
	MinHeadings *int          `help:"Minimum number of section headings an article must have."`
	MaxRetries  *int          `help:"Total number of fetch attempts before giving up."`
	Exclude     *string       `help:"Comma-separated heading titles to drop from notes."`
	Dir         *string       `short:"d" help:"Directory to write notes into."`
	Language    *string       `short:"l" help:"Wikipedia language edition, e.g. en or de."`
	Summary     *bool         `help:"Append the article's lead summary to the note."`
	Preview     bool          `short:"p" help:"Print the note to stdout instead of writing a file."`
	Timeout     time.Duration `short:"t" default:"10s" help:"Timeout per network call."`
	Config      string        `help:"Path to the settings file." type:"path"`
	SaveConfig  bool          `help:"Write the effective settings back to the settings file."`
	Verbose     bool          `short:"v" help:"Enable debug logging."`
}

// apply overlays explicitly-set flags onto the settings record.
func (c *CLI) apply(s *yaml.Settings) {
	if c.MinHeadings != nil {
		s.MinHeadings = *c.MinHeadings
	}
	if c.MaxRetries != nil {
		s.MaxRetries = *c.MaxRetries
	}
	if c.Exclude != nil {
		s.Exclusions = *c.Exclude
	}
	if c.Dir != nil {
		s.Dir = *c.Dir
	}
	if c.Language != nil {
		s.Language = *c.Language
	}
	if c.Summary != nil {
		s.Summary = *c.Summary
	}
}

// defaultSettingsPath returns the per-user settings location, falling back
// to the working directory when the user config dir is unavailable.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wikinote.yaml"
	}
	return filepath.Join(dir, "wikinote", "settings.yaml")
}

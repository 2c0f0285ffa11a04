// railway-timeline shows the deployment history of a Railway environment as
// a pan-and-zoom timeline in the terminal.
//
// Deployments come either from the Railway GraphQL API or from an offline
// YAML dataset given with --file. The API token is read from --api-key,
// RAILWAY_API_TOKEN or ~/.railway-timeline/config.json. A .env file in the
// working directory may set RAILWAY_API_TOKEN.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/AnatoleLucet/railway-timeline/internal/app"
	"github.com/AnatoleLucet/railway-timeline/internal/config"
	"github.com/AnatoleLucet/railway-timeline/internal/dataset"
	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/logging"
	"github.com/AnatoleLucet/railway-timeline/internal/railway"
)

var errNoSource = errors.New("no data source: pass --file or set an API token")

// options holds the command-line overrides. Zero values leave the
// configuration untouched.
type options struct {
	file            string
	apiKey          string
	projectID       string
	environmentID   string
	pixelsPerDay    float64
	zoomSensitivity float64
	logFile         string
	help            bool
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv exports the variables of an optional .env file. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func run(args []string, stderr io.Writer) error {
	flagSet, opts := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}
		return err
	}
	if opts.help {
		printHelp(flagSet, stderr)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	cfg, err = applyOptions(cfg, opts)
	if err != nil {
		return err
	}

	// Logs must not reach the terminal the UI is drawn on.
	if opts.logFile != "" {
		closer, err := logging.OpenFile(opts.logFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	} else {
		logging.SetOutput(io.Discard)
	}

	source, watchPath, err := newSource(cfg)
	if err != nil {
		return err
	}

	model, err := app.New(app.Options{Config: cfg, Source: source, WatchPath: watchPath})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

func newFlagSet() (*pflag.FlagSet, *options) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("railway-timeline", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&opts.file, "file", "f", "", "load deployments from a YAML dataset instead of the Railway API")
	flagSet.StringVar(&opts.apiKey, "api-key", "", "Railway API token (default: $"+config.TokenEnv+" or api_key)")
	flagSet.StringVarP(&opts.projectID, "project", "p", "", "Railway project ID (auto-selected when you have one)")
	flagSet.StringVarP(&opts.environmentID, "environment", "e", "", "Railway environment ID (auto-selected when the project has one)")
	flagSet.Float64Var(&opts.pixelsPerDay, "pixels-per-day", 0, "columns per day at 100% zoom")
	flagSet.Float64Var(&opts.zoomSensitivity, "zoom-sensitivity", 0, "ctrl+wheel zoom speed")
	flagSet.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	return flagSet, opts
}

// applyOptions layers flags over the loaded configuration and re-validates
// the result.
func applyOptions(cfg config.Config, opts *options) (config.Config, error) {
	if opts.file != "" {
		cfg.DataFile = opts.file
	}
	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}
	if opts.projectID != "" {
		cfg.ProjectID = opts.projectID
	}
	if opts.environmentID != "" {
		cfg.EnvironmentID = opts.environmentID
	}
	if opts.pixelsPerDay != 0 {
		cfg.PixelsPerDay = opts.pixelsPerDay
	}
	if opts.zoomSensitivity != 0 {
		cfg.ZoomSensitivity = opts.zoomSensitivity
	}
	return config.Normalize(cfg)
}

// newSource picks the dataset file when one is configured and the Railway
// API otherwise. The returned path is watched for changes.
func newSource(cfg config.Config) (deploy.Source, string, error) {
	if cfg.DataFile != "" {
		return dataset.NewFile(cfg.DataFile), cfg.DataFile, nil
	}
	if cfg.APIKey == "" {
		return nil, "", errNoSource
	}
	client, err := railway.NewClient(railway.ClientConfig{Token: cfg.APIKey})
	if err != nil {
		return nil, "", err
	}
	return &railway.Source{
		Client:        client,
		ProjectID:     cfg.ProjectID,
		EnvironmentID: cfg.EnvironmentID,
	}, "", nil
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `railway-timeline: browse Railway deployments on a zoomable timeline.

Usage:
  railway-timeline [flags]

Examples:
  # Use the token from $%s and pick the only project
  railway-timeline

  # Open a specific environment
  railway-timeline --project <id> --environment <id>

  # Browse an offline dataset
  railway-timeline --file deployments.yaml

Settings are read from ~/.railway-timeline/config.json; flags override them.

Flags:
`, config.TokenEnv)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/config"
	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/i18n"
	"github.com/mmcdole/airdate/internal/log"
	"github.com/mmcdole/airdate/internal/query"
	"github.com/mmcdole/airdate/internal/snapshot"
	"github.com/mmcdole/airdate/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configPath string
	initConfig bool
	print      bool
	exportPath string
	importPath string
	reset      bool
	criteria   query.Criteria
	month      int
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/airdate/config.yaml)")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write a default config file and exit")
	flag.BoolVar(&opts.print, "print", false, "print the grouped release list and exit")
	flag.StringVar(&opts.exportPath, "export", "", "write the catalog snapshot to `FILE` (- for stdout)")
	flag.StringVar(&opts.importPath, "import", "", "replace the catalog with the snapshot in `FILE`")
	flag.BoolVar(&opts.reset, "reset", false, "discard the stored catalog and reseed")
	flag.StringVar(&opts.criteria.Search, "search", "", "print mode: title substring")
	flag.IntVar(&opts.month, "month", 0, "print mode: release month (1-12)")
	flag.IntVar(&opts.criteria.Year, "year", 0, "print mode: release year")
	flag.StringVar(&opts.criteria.Studio, "studio", "", "print mode: studio")
	flag.StringVar(&opts.criteria.Genre, "genre", "", "print mode: genre tag")
	flag.Parse()

	if showVersion {
		fmt.Printf("airdate %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.month < 0 || opts.month > 12 {
		return fmt.Errorf("-month must be between 1 and 12, got %d", opts.month)
	}
	opts.criteria.Month = time.Month(opts.month)

	if opts.initConfig {
		return writeDefaultConfig(opts.configPath)
	}

	// Load configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting airdate", "version", Version)

	snapshots, err := snapshot.NewBoltStore(cfg.Storage.Path, cfg.Storage.Key)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	if opts.reset {
		if err := snapshots.Clear(); err != nil {
			snapshots.Close()
			return fmt.Errorf("failed to reset storage: %w", err)
		}
		logger.Info("storage reset")
	}

	store := catalog.NewStore(snapshots, newVerifier(cfg),
		catalog.WithLogger(logger),
		catalog.WithRememberAdmin(cfg.Session.RememberAdmin),
		catalog.WithDefaults(cfg.Language(), cfg.Theme()),
	)
	defer store.Close()

	if err := store.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}

	switch {
	case opts.importPath != "":
		return importSnapshot(store, opts.importPath)
	case opts.exportPath != "":
		return exportSnapshot(store, opts.exportPath)
	case opts.print || !term.IsTerminal(int(os.Stdout.Fd())):
		tr := i18n.New(store.Session().Language)
		return writeListing(os.Stdout, store.List(), opts.criteria, tr)
	}

	// Run the TUI
	p := tea.NewProgram(
		tui.NewModel(store, logger),
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// newVerifier picks the credential check configured for the admin gate
func newVerifier(cfg *config.Config) domain.CredentialVerifier {
	if cfg.Auth.PasswordHash != "" {
		return catalog.NewBcryptVerifier(cfg.Auth.Username, cfg.Auth.PasswordHash)
	}
	return catalog.StaticVerifier{Username: cfg.Auth.Username, Password: cfg.Auth.Password}
}

func writeDefaultConfig(path string) error {
	if path == "" {
		path = filepath.Join(config.DefaultConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := config.Save(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}

func importSnapshot(store *catalog.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := store.Replace(snap); err != nil {
		return err
	}
	fmt.Printf("✓ Imported %d releases\n", len(snap.Releases))
	return nil
}

func exportSnapshot(store *catalog.Store, path string) error {
	data, err := snapshot.Encode(store.Snapshot())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if path != "-" {
		fmt.Fprintf(os.Stderr, "✓ Exported %d releases to %s\n", len(store.List()), path)
	}
	return nil
}

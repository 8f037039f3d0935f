// Package prizeimporter loads JSON prize catalogs into the SQLite prize store.
//
// A catalog names effect types and kingdoms by their English labels and
// gives durations as "instant", "permanent" or a turn count:
//
//	{
//	  "version": 1,
//	  "source": "quests",
//	  "items": [
//	    {
//	      "id": "dragon-hoard",
//	      "effects": [{"type": "Max health", "value": 5, "duration": "permanent"}],
//	      "experience": 120,
//	      "gold": 300,
//	      "items": [7],
//	      "reputations": {"Dwarfs": 4}
//	    }
//	  ]
//	}
package prizeimporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/andaria/internal/platform/cmd"
	"github.com/louisbranch/andaria/internal/services/game/i18n"
	storagesqlite "github.com/louisbranch/andaria/internal/services/game/storage/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/louisbranch/andaria/internal/tools/importer/prizes"

// Config holds configuration for the prize importer.
type Config struct {
	Path   string `env:"PRIZES_CATALOG"`
	DBPath string `env:"PRIZES_DB_PATH" envDefault:"data/prizes.db"`
	Locale string `env:"LOCALE" envDefault:"en-US"`
	DryRun bool   `env:"PRIZES_DRY_RUN"`
}

// ParseConfig reads ANDARIA_ environment defaults, then CLI flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Path, "catalog", cfg.Path, "catalog JSON file or directory of JSON files")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "prize database path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for dry-run descriptions")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "validate and describe without writing to the database")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return Config{}, errors.New("catalog is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "prizes.import")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return errors.New("catalog is required")
	}

	files, err := listCatalogFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no catalog files found in %s", path)
	}

	payloads := make([]catalogPayload, 0, len(files))
	for _, file := range files {
		payload, err := readJSON[catalogPayload](file)
		if err != nil {
			return err
		}
		payloads = append(payloads, *payload)
	}

	entries, err := buildEntries(files, payloads)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("prizes.files", len(files)),
		attribute.Int("prizes.count", len(entries)),
		attribute.Bool("prizes.dry_run", cfg.DryRun),
	)

	if cfg.DryRun {
		printer := i18n.Printer(cfg.Locale)
		for _, entry := range entries {
			if _, err := fmt.Fprintf(out, "%s (%s)\n", entry.ID, entry.Source); err != nil {
				return err
			}
			for _, line := range entry.Prize.Describe(printer) {
				if _, err := fmt.Fprintf(out, "  %s\n", line); err != nil {
					return err
				}
			}
		}
		_, err = fmt.Fprintf(out, "validated %d prize(s) from %d file(s)\n", len(entries), len(files))
		return err
	}

	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open prize store: %w", err)
	}
	defer store.Close()

	if err := upsertPrizes(ctx, store, entries, time.Now().UTC()); err != nil {
		return err
	}
	log.Printf("imported %d prize(s) from %d file(s)", len(entries), len(files))
	_, err = fmt.Fprintf(out, "imported %d prize(s) into %s\n", len(entries), cfg.DBPath)
	return err
}

// listCatalogFiles returns path itself, or the .json files directly inside it
// in name order.
func listCatalogFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func readJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var value T
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &value, nil
}

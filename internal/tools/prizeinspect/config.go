package prizeinspect

import (
	"errors"
	"flag"
	"strings"

	platformcmd "github.com/louisbranch/andaria/internal/platform/cmd"
)

// Config holds configuration for the prize inspector.
type Config struct {
	DBPath string `env:"PRIZES_DB_PATH" envDefault:"data/prizes.db"`
	Locale string `env:"LOCALE" envDefault:"en-US"`

	Filter    string
	PageSize  int
	PageToken string
	All       bool

	ID     string
	Hex    bool
	Delete bool
}

// ParseConfig reads ANDARIA_ environment defaults, then CLI flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "prize database path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for descriptions and errors")
	fs.StringVar(&cfg.Filter, "filter", "", `AIP-160 filter over id, source, gold, experience, effect_count (e.g. "gold > 100")`)
	fs.IntVar(&cfg.PageSize, "page-size", 0, "prizes per page")
	fs.StringVar(&cfg.PageToken, "page-token", "", "continue listing after this token")
	fs.BoolVar(&cfg.All, "all", false, "list every page")
	fs.StringVar(&cfg.ID, "id", "", "show one prize")
	fs.BoolVar(&cfg.Hex, "hex", false, "dump the stored encoding of -id")
	fs.BoolVar(&cfg.Delete, "delete", false, "delete the prize named by -id")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db-path is required")
	}
	id := strings.TrimSpace(c.ID)
	if (c.Hex || c.Delete) && id == "" {
		return errors.New("-hex and -delete require -id")
	}
	if c.Hex && c.Delete {
		return errors.New("-hex and -delete are exclusive")
	}
	if id != "" && (c.Filter != "" || c.PageToken != "" || c.All) {
		return errors.New("-id cannot be combined with listing flags")
	}
	return nil
}

type mode string

const (
	modeList   mode = "list"
	modeShow   mode = "show"
	modeHex    mode = "hex"
	modeDelete mode = "delete"
)

func (c Config) mode() mode {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return modeList
	case c.Hex:
		return modeHex
	case c.Delete:
		return modeDelete
	default:
		return modeShow
	}
}

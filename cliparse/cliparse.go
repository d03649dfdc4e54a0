package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrUsage  = errors.New("usage error")
	ErrConfig = errors.New("configuration error")
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypePgx      = "pgx"
	TypeSQLite   = "sqlite"
)

const DefaultEnvFile = ".env"

type Config struct {
	ScriptPath   string
	DatabaseURL  string
	DatabaseType string
	VerifyTable  string
	EnvFile      string
	Verbose      bool
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	flags := flag.NewFlagSet("sqlapply", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (or DATABASE_URL env)")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type: postgres, pgx or sqlite (or DATABASE_TYPE env)")
	flags.StringVar(&cfg.VerifyTable, "verify", "", "After commit, list this table's columns")
	flags.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Dotenv file loaded before reading env")
	flags.BoolVar(&cfg.Verbose, "v", false, "Debug logging")
	return flags
}

// Usage writes the command synopsis and flag defaults to w.
func Usage(w io.Writer) {
	var cfg Config
	flags := newFlagSet(&cfg)
	flags.SetOutput(w)
	fmt.Fprintln(w, "usage: sqlapply [flags] <file.sql>")
	flags.PrintDefaults()
}

// ParseArgs parses flags and the single script argument, then fills the
// database settings from the environment where flags left them empty.
func ParseArgs(args []string) (Config, error) {
	var cfg Config

	flags := newFlagSet(&cfg)
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch flags.NArg() {
	case 0:
		return Config{}, fmt.Errorf("%w: missing path to .sql file", ErrUsage)
	case 1:
		cfg.ScriptPath = flags.Arg(0)
	default:
		return Config{}, fmt.Errorf("%w: expected one .sql file, got %d arguments", ErrUsage, flags.NArg())
	}
	if strings.TrimSpace(cfg.ScriptPath) == "" {
		return Config{}, fmt.Errorf("%w: empty script path", ErrUsage)
	}

	// Process env wins over the file; godotenv.Load never overrides.
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: load %s: %v", ErrConfig, cfg.EnvFile, err)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("%w: database URL required (use -d or DATABASE_URL env)", ErrConfig)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = TypePostgres
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	switch cfg.DatabaseType {
	case TypePostgres, TypePgx, TypeSQLite:
	default:
		return Config{}, fmt.Errorf("%w: unknown database type %q", ErrConfig, cfg.DatabaseType)
	}

	return cfg, nil
}

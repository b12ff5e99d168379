// Package config resolves the CLI configuration from flags, environment
// (KNAPSACK_*), an optional YAML config file and a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/item"
)

// EnvPrefix prefixes every environment override, e.g. KNAPSACK_FORMAT.
const EnvPrefix = "KNAPSACK"

// Keys shared by flags, env and config file.
const (
	KeyMaxItems    = "max-items"
	KeyMaxCapacity = "max-capacity"
	KeyBound       = "bound"
	KeyDPMemory    = "dp-memory"
	KeyFormat      = "format"
	KeyLogLevel    = "log-level"
	KeyTrace       = "trace"
	KeyOTLP        = "otlp-endpoint"
)

// Sentinel errors returned by Load.
var (
	ErrBadFormat   = errors.New("config: format must be plain, table or json")
	ErrBadLogLevel = errors.New("config: log level must be debug, info, warn or error")
	ErrBadLimits   = errors.New("config: limits must be non-negative")
)

// Config is the resolved CLI configuration.
type Config struct {
	Limits       item.Limits
	Bound        bnb.BoundAlgo
	DPMemory     dp.MemoryMode
	Format       string
	LogLevel     slog.Level
	Trace        bool
	OTLPEndpoint string
}

// RegisterFlags declares every configuration flag on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(KeyMaxItems, item.MaxItems, "Maximum number of items accepted")
	fs.Int(KeyMaxCapacity, item.MaxCapacity, "Maximum capacity accepted")
	fs.String(KeyBound, bnb.FractionalBound.String(), "Branch-and-bound pruning: fractional or none")
	fs.String(KeyDPMemory, dp.FullTable.String(), "DP table storage: full or tworows")
	fs.StringP(KeyFormat, "o", "plain", "Report format: plain, table or json")
	fs.String(KeyLogLevel, "warn", "Log level: debug, info, warn or error")
	fs.Bool(KeyTrace, false, "Print OpenTelemetry spans to stderr")
	fs.String(KeyOTLP, "", "OTLP/HTTP endpoint for traces (overrides --trace)")
}

// New returns a viper instance bound to fs and the environment, reading
// cfgFile when given, else $HOME/.knapsack.yaml if it exists. A .env file in
// the working directory is loaded into the environment first.
func New(fs *pflag.FlagSet, cfgFile string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}

		return v, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".knapsack.yaml")
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	return v, nil
}

// Load resolves and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	var (
		cfg Config
		err error
	)
	cfg.Limits = item.Limits{MaxItems: v.GetInt(KeyMaxItems), MaxCapacity: v.GetInt(KeyMaxCapacity)}
	if cfg.Limits.MaxItems < 0 || cfg.Limits.MaxCapacity < 0 {
		return Config{}, ErrBadLimits
	}
	if cfg.Bound, err = bnb.ParseBoundAlgo(v.GetString(KeyBound)); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyBound, err)
	}
	if cfg.DPMemory, err = dp.ParseMemoryMode(v.GetString(KeyDPMemory)); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyDPMemory, err)
	}

	cfg.Format = strings.ToLower(v.GetString(KeyFormat))
	switch cfg.Format {
	case "":
		cfg.Format = "plain"
	case "plain", "table", "json":
	default:
		return Config{}, ErrBadFormat
	}

	if cfg.LogLevel, err = parseLevel(v.GetString(KeyLogLevel)); err != nil {
		return Config{}, err
	}
	cfg.Trace = v.GetBool(KeyTrace)
	cfg.OTLPEndpoint = v.GetString(KeyOTLP)

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrBadLogLevel
	}
}

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/item"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	v, err := config.New(newFlags(t), "")
	require.NoError(t, err)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, item.DefaultLimits(), cfg.Limits)
	assert.Equal(t, bnb.FractionalBound, cfg.Bound)
	assert.Equal(t, dp.FullTable, cfg.DPMemory)
	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.Trace)
}

func TestLoad_FlagsOverride(t *testing.T) {
	fs := newFlags(t, "--max-items=50", "--max-capacity=50", "--bound=none", "--dp-memory=tworows", "-o", "json", "--log-level=debug", "--trace")
	v, err := config.New(fs, "")
	require.NoError(t, err)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, item.DPLimits(), cfg.Limits)
	assert.Equal(t, bnb.NoBound, cfg.Bound)
	assert.Equal(t, dp.TwoRows, cfg.DPMemory)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.Trace)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KNAPSACK_FORMAT", "table")
	t.Setenv("KNAPSACK_MAX_CAPACITY", "40")

	v, err := config.New(newFlags(t), "")
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, 40, cfg.Limits.MaxCapacity)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nbound: none\n"), 0o600))

	v, err := config.New(newFlags(t), path)
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, bnb.NoBound, cfg.Bound)

	_, err = config.New(newFlags(t), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		key   string
		value any
		want  error
	}{
		{config.KeyFormat, "xml", config.ErrBadFormat},
		{config.KeyLogLevel, "loud", config.ErrBadLogLevel},
		{config.KeyBound, "magic", bnb.ErrUnsupportedBound},
		{config.KeyDPMemory, "sparse", dp.ErrBadMemoryMode},
		{config.KeyMaxItems, -1, config.ErrBadLimits},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.value)
			_, err := config.Load(v)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

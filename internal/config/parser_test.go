package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `default_tip: 15
text_size: accessibility2
locale: de_DE.UTF-8
currency: EUR
log:
  level: debug
  file: /tmp/tipper.log
`

	partialYAML := `currency: GBP
`

	invalidYAML := `default_tip: [1, 0]
`

	unknownKey := `default_tip: 20
tip_options: [5, 10]
`

	badTip := `default_tip: 18
`

	badSize := `text_size: gigantic
`

	badCurrency := `currency: usd
`

	badLevel := `log:
  level: trace
`

	cases := []struct {
		name   string
		input  string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:  "valid configuration is parsed",
			input: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 15, cfg.DefaultTip)
				require.Equal(t, textsize.Accessibility2, cfg.Size())
				require.Equal(t, "de_DE.UTF-8", cfg.Locale)
				require.Equal(t, "EUR", cfg.Currency)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "/tmp/tipper.log", cfg.Log.File)
			},
		},
		{
			name:  "missing keys keep defaults",
			input: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 20, cfg.DefaultTip)
				require.Equal(t, textsize.Large, cfg.Size())
				require.Equal(t, "GBP", cfg.Currency)
				require.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name:  "empty file yields defaults",
			input: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), *cfg)
			},
		},
		{
			name:  "invalid yaml returns parse error",
			input: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tippererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:  "unknown keys are rejected",
			input: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tippererrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "tip_options")
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:  "tip outside the option set",
			input: badTip,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tippererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "default_tip", validationErr.Field)
				require.Contains(t, validationErr.Message, "0 10 15 20 25 30")
				require.EqualValues(t, 18, validationErr.Value)
			},
		},
		{
			name:  "unknown text size",
			input: badSize,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tippererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "text_size", validationErr.Field)
				require.Contains(t, validationErr.Message, "accessibility1")
			},
		},
		{
			name:  "currency must be uppercase iso code",
			input: badCurrency,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tippererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "currency", validationErr.Field)
			},
		},
		{
			name:  "log level must be known",
			input: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tippererrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
				require.Contains(t, validationErr.Message, "debug info warn error")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.input)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := write("valid.toml", `default_tip = 25
text_size = "xLarge"
currency = "CAD"

[log]
level = "warn"
`)
		cfg, err := ParseConfig(path)
		require.NoError(t, err)
		require.Equal(t, 25, cfg.DefaultTip)
		require.Equal(t, textsize.XLarge, cfg.Size())
		require.Equal(t, "CAD", cfg.Currency)
		require.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("syntax error reports line", func(t *testing.T) {
		path := write("broken.toml", "default_tip = 20\ncurrency = \n")
		_, err := ParseConfig(path)

		var parseErr *tippererrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Positive(t, parseErr.Line)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := write("unknown.toml", "default_tip = 20\ntip_options = [5]\n")
		_, err := ParseConfig(path)

		var parseErr *tippererrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Contains(t, err.Error(), "tip_options")
	})

	t.Run("validation still applies", func(t *testing.T) {
		path := write("badtip.toml", "default_tip = 12\n")
		_, err := ParseConfig(path)

		var validationErr *tippererrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "default_tip", validationErr.Field)
	})
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := ParseConfig(path)

	var parseErr *tippererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Source)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeTempConfig(t, "default_tip: 30\n"))
	require.NoError(t, err)
	require.Equal(t, 30, cfg.DefaultTip)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "tipper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

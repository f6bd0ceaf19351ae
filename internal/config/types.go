package config

import (
	"strings"

	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

// Config represents the optional tipper configuration file.
type Config struct {
	// DefaultTip is the percentage selected when the calculator opens.
	DefaultTip int    `yaml:"default_tip" toml:"default_tip" validate:"tip_percentage"`
	TextSize   string `yaml:"text_size,omitempty" toml:"text_size" validate:"omitempty,text_size"`
	// Locale accepts POSIX names ("en_US.UTF-8") as well as BCP 47 tags.
	Locale   string      `yaml:"locale,omitempty" toml:"locale" validate:"omitempty,locale_name"`
	Currency string      `yaml:"currency,omitempty" toml:"currency" validate:"omitempty,iso4217"`
	Log      LogSettings `yaml:"log,omitempty" toml:"log"`
}

// LogSettings configures diagnostics output.
type LogSettings struct {
	Level string `yaml:"level,omitempty" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty" toml:"file"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		DefaultTip: tip.DefaultPercentage,
		TextSize:   textsize.Default.String(),
		Log:        LogSettings{Level: "info"},
	}
}

// Size returns the configured text size, or textsize.Default when unset.
// Validation guarantees a non-empty value parses.
func (c Config) Size() textsize.Size {
	if strings.TrimSpace(c.TextSize) == "" {
		return textsize.Default
	}
	size, err := textsize.Parse(c.TextSize)
	if err != nil {
		return textsize.Default
	}
	return size
}

// Overrides carries command-line values. Nil or empty fields leave the
// file value in place.
type Overrides struct {
	DefaultTip *int
	TextSize   string
	Locale     string
	Currency   string
	LogLevel   string
	LogFile    string
}

// Apply returns a copy of c with the overrides applied.
func (c Config) Apply(o Overrides) Config {
	out := c
	if o.DefaultTip != nil {
		out.DefaultTip = *o.DefaultTip
	}
	if s := strings.TrimSpace(o.TextSize); s != "" {
		out.TextSize = s
	}
	if s := strings.TrimSpace(o.Locale); s != "" {
		out.Locale = s
	}
	if s := strings.TrimSpace(o.Currency); s != "" {
		out.Currency = strings.ToUpper(s)
	}
	if s := strings.TrimSpace(o.LogLevel); s != "" {
		out.Log.Level = s
	}
	if s := strings.TrimSpace(o.LogFile); s != "" {
		out.Log.File = s
	}
	return out
}

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tipper/internal/config"
	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/logger"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
)

// lookupEnv is swapped out by tests.
var lookupEnv = os.LookupEnv

type settings struct {
	Config   config.Config
	Locale   locale.Resolution
	TextSize textsize.Source
	Changed  map[string]string
}

// loadSettings merges defaults, the config file and flags, in that order of
// increasing precedence, and resolves the locale.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (settings, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return settings{}, err
	}

	changed := changedFlags(cmd)
	merged := cfg.Apply(flags.overrides(changed))
	if err := config.ValidateConfig(&merged); err != nil {
		return settings{}, err
	}

	resolution := locale.Resolve(locale.Options{
		Locale:   merged.Locale,
		Currency: merged.Currency,
		Lookup:   lookupEnv,
	})

	// An explicit flag pins the size; otherwise the environment may change
	// it while the calculator is open.
	env := textsize.NewEnvSource(merged.Size())
	env.Lookup = lookupEnv
	var source textsize.Source = env
	if _, ok := changed["text-size"]; ok {
		source = textsize.Static(merged.Size())
	}

	return settings{
		Config:   merged,
		Locale:   resolution,
		TextSize: source,
		Changed:  changed,
	}, nil
}

func newLogger(cfg config.Config, w io.Writer, component string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: true,
		Writer:        w,
		Component:     component,
	})
}

// logSettings records where each setting came from.
func logSettings(log *logger.Logger, s settings) {
	log.Debug("settings resolved",
		"locale", s.Locale.Formatter.Tag().String(),
		"locale_source", s.Locale.Source,
		"currency", s.Locale.Formatter.Currency().String(),
		"text_size", s.TextSize.Current().String(),
		"default_tip", s.Config.DefaultTip,
	)
	if len(s.Changed) > 0 {
		fields := make([]any, 0, len(s.Changed)*2)
		for name, value := range s.Changed {
			fields = append(fields, name, value)
		}
		log.Debug("flags set", fields...)
	}
	if s.Locale.CurrencyFallback {
		log.Warn("no currency for locale, using fallback", "currency", locale.FallbackCurrency.String())
	}
}

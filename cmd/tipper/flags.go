package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/tipper/internal/config"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

type rootFlags struct {
	configPath string
	textSize   textsize.Size
	locale     string
	currency   string
	tip        int
	verbose    bool
	logFile    string
}

func (f *rootFlags) register(flags *pflag.FlagSet) {
	f.textSize = textsize.Default
	f.tip = tip.DefaultPercentage

	flags.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	flags.Var((*textSizeValue)(&f.textSize), "text-size", "Text size preference (xSmall ... accessibility5)")
	flags.StringVar(&f.locale, "locale", "", "Locale used to format amounts, e.g. en_US or de-DE")
	flags.StringVar(&f.currency, "currency", "", "ISO 4217 currency code, e.g. EUR")
	flags.IntVarP(&f.tip, "tip", "t", tip.DefaultPercentage, "Tip percentage (0, 10, 15, 20, 25 or 30)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
}

// overrides turns the flags the user actually set into config overrides.
func (f *rootFlags) overrides(changed map[string]string) config.Overrides {
	var o config.Overrides
	if _, ok := changed["tip"]; ok {
		value := f.tip
		o.DefaultTip = &value
	}
	if _, ok := changed["text-size"]; ok {
		o.TextSize = f.textSize.String()
	}
	o.Locale = changed["locale"]
	o.Currency = changed["currency"]
	o.LogFile = changed["log-file"]
	if f.verbose {
		o.LogLevel = "debug"
	}
	return o
}

// changedFlags returns the flags set on the command line.
func changedFlags(cmd *cobra.Command) map[string]string {
	flags := make(map[string]string)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			flags[f.Name] = f.Value.String()
		}
	})
	return flags
}

// textSizeValue lets pflag parse text size names directly.
type textSizeValue textsize.Size

func (v *textSizeValue) String() string {
	return textsize.Size(*v).String()
}

func (v *textSizeValue) Set(s string) error {
	size, err := textsize.Parse(s)
	if err != nil {
		return err
	}
	*v = textSizeValue(size)
	return nil
}

func (v *textSizeValue) Type() string {
	return "size"
}

// Package locale resolves the active locale and formats money for it.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FallbackCurrency is used whenever no currency can be derived.
var FallbackCurrency = currency.USD

// FallbackTag is used when no usable locale is configured.
var FallbackTag = language.AmericanEnglish

// envKeys are consulted in POSIX precedence order.
var envKeys = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// Formatter renders amounts as currency in a fixed locale.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale and currency.
func NewFormatter(tag language.Tag, unit currency.Unit) Formatter {
	return Formatter{tag: tag, unit: unit, printer: message.NewPrinter(tag)}
}

// DefaultFormatter formats US dollars for American English.
func DefaultFormatter() Formatter {
	return NewFormatter(FallbackTag, FallbackCurrency)
}

// Tag returns the locale used for number formatting.
func (f Formatter) Tag() language.Tag {
	return f.ensure().tag
}

// Currency returns the currency unit amounts are rendered in.
func (f Formatter) Currency() currency.Unit {
	return f.ensure().unit
}

// Format renders amount with the currency symbol, e.g. "$ 120.00".
func (f Formatter) Format(amount float64) string {
	g := f.ensure()
	return g.printer.Sprint(currency.Symbol(g.unit.Amount(amount)))
}

// Symbol returns the currency symbol alone, e.g. "$".
func (f Formatter) Symbol() string {
	g := f.ensure()
	return g.printer.Sprint(currency.Symbol(g.unit))
}

// ensure fills in the fallbacks for a zero Formatter.
func (f Formatter) ensure() Formatter {
	if f.tag == language.Und {
		f.tag = FallbackTag
		f.printer = nil
	}
	if f.unit == (currency.Unit{}) {
		f.unit = FallbackCurrency
	}
	if f.printer == nil {
		f.printer = message.NewPrinter(f.tag)
	}
	return f
}

// Options override detection. Empty fields fall through to the environment.
type Options struct {
	Locale   string
	Currency string
	Lookup   func(string) (string, bool)
}

// Resolution records the outcome of Resolve.
type Resolution struct {
	Formatter Formatter
	// Source names where the locale came from: "config", an environment
	// variable name, or "default".
	Source string
	// CurrencyFallback is true when the currency could not be derived and
	// FallbackCurrency was used.
	CurrencyFallback bool
}

// Resolve determines the active locale and currency. It never fails: an
// unusable locale falls back to FallbackTag and an unknown currency to
// FallbackCurrency.
func Resolve(opts Options) Resolution {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	res := Resolution{Source: "default"}
	tag := FallbackTag

	if parsed, ok := ParseTag(opts.Locale); ok {
		tag = parsed
		res.Source = "config"
	} else {
		for _, key := range envKeys {
			value, ok := lookup(key)
			if !ok || strings.TrimSpace(value) == "" {
				continue
			}
			// The first non-empty variable wins even if it is unusable,
			// matching how the C library picks LC_* values.
			if parsed, ok := ParseTag(value); ok {
				tag = parsed
				res.Source = key
			}
			break
		}
	}

	unit, ok := currencyFor(tag, opts.Currency)
	if !ok {
		unit = FallbackCurrency
		res.CurrencyFallback = true
	}

	res.Formatter = NewFormatter(tag, unit)
	return res
}

func currencyFor(tag language.Tag, override string) (currency.Unit, bool) {
	if code := strings.TrimSpace(override); code != "" {
		if unit, err := currency.ParseISO(code); err == nil && unit != (currency.Unit{}) {
			return unit, true
		}
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No || unit == (currency.Unit{}) {
		return currency.Unit{}, false
	}
	return unit, true
}

// ParseTag converts a POSIX locale name such as "en_US.UTF-8" or a BCP 47
// tag such as "de-CH" into a language tag. "C", "POSIX" and blank names are
// rejected.
func ParseTag(name string) (language.Tag, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToUpper(name) {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

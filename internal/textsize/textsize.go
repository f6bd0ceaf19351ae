// Package textsize models the user's preferred text scale, the terminal
// stand-in for a system-wide dynamic type setting.
package textsize

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"

	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

// Size is an ordered text scale. Larger values mean larger text.
type Size int

const (
	XSmall Size = iota
	Small
	Medium
	Large
	XLarge
	XXLarge
	XXXLarge
	Accessibility1
	Accessibility2
	Accessibility3
	Accessibility4
	Accessibility5
)

// Default is the scale used when nothing else is configured.
const Default = Large

// AccessibilityThreshold is the first accessibility size. Layouts switch to
// a scrollable container at or above it.
const AccessibilityThreshold = Accessibility1

// EnvKey is the environment variable read by EnvSource.
const EnvKey = "TIPPER_TEXT_SIZE"

var names = [...]string{
	"xSmall",
	"small",
	"medium",
	"large",
	"xLarge",
	"xxLarge",
	"xxxLarge",
	"accessibility1",
	"accessibility2",
	"accessibility3",
	"accessibility4",
	"accessibility5",
}

// All returns every size from smallest to largest.
func All() []Size {
	out := make([]Size, len(names))
	for i := range names {
		out[i] = Size(i)
	}
	return out
}

// Names returns the canonical names of every size.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

func (s Size) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return names[s]
}

// Valid reports whether s is on the scale.
func (s Size) Valid() bool {
	return s >= XSmall && s <= Accessibility5
}

// IsAccessibility reports whether s is one of the accessibility sizes.
func (s Size) IsAccessibility() bool {
	return s >= AccessibilityThreshold
}

// Parse resolves a size name. Matching ignores case, hyphens, underscores
// and spaces, so "x-small", "XSMALL" and "Accessibility 3" all resolve.
func Parse(name string) (Size, error) {
	key := normalize(name)
	if key == "" {
		return Default, tippererrors.NewValueError("text_size", name, tippererrors.ErrUnknownTextSize)
	}
	for i, candidate := range names {
		if normalize(candidate) == key {
			return Size(i), nil
		}
	}
	err := tippererrors.ErrUnknownTextSize
	if suggestion, ok := Suggest(name); ok {
		err = fmt.Errorf("%w, did you mean %q?", err, suggestion)
	}
	return Default, tippererrors.NewValueError("text_size", name, err)
}

// maxSuggestDistance bounds how far a typo may be from a known name.
const maxSuggestDistance = 3

// Suggest returns the known name closest to name, if any is close enough.
func Suggest(name string) (string, bool) {
	key := normalize(name)
	if key == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range names {
		dist := levenshtein.ComputeDistance(key, normalize(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, best != ""
}

func normalize(name string) string {
	replacer := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(replacer.Replace(strings.TrimSpace(name)))
}

// Source supplies the current preference. Callers poll it once per render.
type Source interface {
	Current() Size
}

// Static is a Source that never changes.
type Static Size

// Current implements Source.
func (s Static) Current() Size {
	return Size(s)
}

// EnvSource reads the preference from an environment variable on every call
// so that a change is picked up by the next render.
type EnvSource struct {
	Key      string
	Fallback Size
	Lookup   func(string) (string, bool)
}

// NewEnvSource returns an EnvSource reading EnvKey from the process environment.
func NewEnvSource(fallback Size) EnvSource {
	return EnvSource{Key: EnvKey, Fallback: fallback, Lookup: os.LookupEnv}
}

// Current implements Source. Missing or unparseable values yield Fallback.
func (e EnvSource) Current() Size {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	key := e.Key
	if key == "" {
		key = EnvKey
	}
	value, ok := lookup(key)
	if !ok {
		return e.Fallback
	}
	size, err := Parse(value)
	if err != nil {
		return e.Fallback
	}
	return size
}

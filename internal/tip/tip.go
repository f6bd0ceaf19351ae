package tip

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

// DefaultPercentage is the selection a fresh calculator starts with.
const DefaultPercentage = 20

// warmThreshold is the lowest percentage rendered green.
const warmThreshold = 15

var percentages = [...]int{0, 10, 15, 20, 25, 30}

// Percentages returns the selectable tip percentages in display order.
func Percentages() []int {
	out := make([]int, len(percentages))
	copy(out, percentages[:])
	return out
}

// IsSupported reports whether p is one of the selectable percentages.
func IsSupported(p int) bool {
	return IndexOf(p) >= 0
}

// IndexOf returns the position of p in Percentages, or -1.
func IndexOf(p int) int {
	for i, candidate := range percentages {
		if candidate == p {
			return i
		}
	}
	return -1
}

// PercentageAt returns the percentage at index i, clamped to the option range.
func PercentageAt(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(percentages) {
		i = len(percentages) - 1
	}
	return percentages[i]
}

// Label renders a percentage the way the selector shows it.
func Label(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Color classifies how generous a tip is.
type Color int

const (
	// ColorRed marks a check with no tip.
	ColorRed Color = iota
	// ColorOrange marks a tip below the customary range.
	ColorOrange
	// ColorGreen marks a customary or generous tip.
	ColorGreen
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}

// ColorFor returns the display color for a tip percentage.
func ColorFor(percent int) Color {
	switch {
	case percent <= 0:
		return ColorRed
	case percent < warmThreshold:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// Bill is a check amount paired with the chosen tip percentage. Totals are
// derived on every call and never stored.
type Bill struct {
	Amount     float64
	Percentage int
}

// NewBill validates its inputs and returns the resulting Bill.
func NewBill(amount float64, percentage int) (Bill, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Bill{}, tippererrors.NewValueError("amount", amount, fmt.Errorf("amount must be a finite number"))
	}
	if amount < 0 {
		return Bill{}, tippererrors.NewValueError("amount", amount, tippererrors.ErrNegativeAmount)
	}
	if !IsSupported(percentage) {
		return Bill{}, tippererrors.NewValueError("tip", percentage, tippererrors.ErrUnsupportedPercentage)
	}
	return Bill{Amount: amount, Percentage: percentage}, nil
}

// TipTotal is Amount * Percentage / 100.
func (b Bill) TipTotal() float64 {
	return b.Amount * float64(b.Percentage) / 100
}

// CheckTotal is Amount plus TipTotal.
func (b Bill) CheckTotal() float64 {
	return b.Amount + b.TipTotal()
}

// Color is the display color for the bill's tip percentage.
func (b Bill) Color() Color {
	return ColorFor(b.Percentage)
}

// ParseAmount converts text typed into the amount field into a value. Blank
// input is zero. Negative values are clamped to zero since the field has no
// way to enter a sign.
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "." {
		return 0, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("amount %q is not a finite number", text)
	}
	if value < 0 {
		return 0, nil
	}
	return value, nil
}

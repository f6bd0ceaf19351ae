package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tipper/internal/config"
	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
	"github.com/alexisbeaulieu97/tipper/internal/tui/components"
)

type calcOptions struct {
	amount float64
	json   bool
}

// calcInput is checked by the shared validator before any arithmetic.
type calcInput struct {
	Amount float64 `validate:"gte=0"`
	Tip    int     `validate:"tip_percentage"`
}

type calcResult struct {
	Amount        float64         `json:"amount"`
	TipPercentage int             `json:"tip_percentage"`
	Tip           float64         `json:"tip"`
	Total         float64         `json:"total"`
	Color         string          `json:"color"`
	Currency      string          `json:"currency"`
	Locale        string          `json:"locale"`
	Formatted     formattedResult `json:"formatted"`
}

type formattedResult struct {
	Amount string `json:"amount"`
	Tip    string `json:"tip"`
	Total  string `json:"total"`
}

func newCalcCmd(root *rootFlags) *cobra.Command {
	opts := calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the tip and total for an amount without the interactive screen",
		Example: `  tipper calc --amount 100
  tipper calc --amount 48.20 --tip 15 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, root, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.amount, "amount", "a", 0, "Check amount")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runCalc(cmd *cobra.Command, root *rootFlags, opts calcOptions) error {
	s, err := loadSettings(cmd, root)
	if err != nil {
		return err
	}

	log, err := newLogger(s.Config, cmd.ErrOrStderr(), "calc")
	if err != nil {
		return err
	}
	logSettings(log, s)

	input := calcInput{Amount: opts.amount, Tip: s.Config.DefaultTip}
	if err := config.Validate(input); err != nil {
		log.Error(err, "invalid calculation input")
		return err
	}

	bill, err := tip.NewBill(input.Amount, input.Tip)
	if err != nil {
		log.Error(err, "invalid calculation input")
		return err
	}

	result := newCalcResult(bill, s.Locale.Formatter)
	log.WithFields(map[string]any{
		"amount":         bill.Amount,
		"tip_percentage": bill.Percentage,
	}).Debug("calculated", "tip", result.Tip, "total", result.Total, "color", result.Color)

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeCalcText(out, result, bill.Color())
}

func newCalcResult(bill tip.Bill, format locale.Formatter) calcResult {
	return calcResult{
		Amount:        bill.Amount,
		TipPercentage: bill.Percentage,
		Tip:           bill.TipTotal(),
		Total:         bill.CheckTotal(),
		Color:         bill.Color().String(),
		Currency:      format.Currency().String(),
		Locale:        format.Tag().String(),
		Formatted: formattedResult{
			Amount: format.Format(bill.Amount),
			Tip:    format.Format(bill.TipTotal()),
			Total:  format.Format(bill.CheckTotal()),
		},
	}
}

func writeCalcText(w io.Writer, r calcResult, color tip.Color) error {
	renderer := lipgloss.NewRenderer(w)
	if !colorEnabled(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	total := renderer.NewStyle().Bold(true).Foreground(components.TerminalColor(color)).Render(r.Formatted.Total)

	_, err := fmt.Fprintf(w, "Amount: %s\nTip:    %s (%s)\nTotal:  %s\n",
		r.Formatted.Amount, r.Formatted.Tip, tip.Label(r.TipPercentage), total)
	return err
}

// colorEnabled reports whether w is a terminal that should receive colors.
func colorEnabled(w io.Writer) bool {
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

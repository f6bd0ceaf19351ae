package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tipper/internal/logger"
	"github.com/alexisbeaulieu97/tipper/internal/tui"
)

// runProgram runs the calculator; tests replace it to avoid a terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tipper",
		Short: "Tipper works out the tip and total for a check",
		Long: `Tipper opens an interactive calculator: enter the check amount, pick a tip
percentage and read the tip and total formatted for your locale.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculator(cmd, flags)
		},
	}

	flags.register(cmd.PersistentFlags())

	cmd.AddCommand(newCalcCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runCalculator(cmd *cobra.Command, flags *rootFlags) error {
	s, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	// The calculator owns the terminal, so logs only go to a file.
	log := logger.Discard()
	if path := s.Config.Log.File; path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()

		log, err = newLogger(s.Config, file, "tui")
		if err != nil {
			return err
		}
	}
	logSettings(log, s)

	model := tui.NewModel(tui.Options{
		DefaultTip: s.Config.DefaultTip,
		TextSize:   s.TextSize,
		Formatter:  s.Locale.Formatter,
		Logger:     log,
	})

	if err := runProgram(model); err != nil {
		log.Error(err, "calculator failed")
		return fmt.Errorf("run calculator: %w", err)
	}

	log.Info("calculator closed")
	return nil
}

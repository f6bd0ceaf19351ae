package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/logger"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxCardWidth  = 60
	meterWidth    = 30
)

// Options configures a Model.
type Options struct {
	DefaultTip int
	TextSize   textsize.Source
	Formatter  locale.Formatter
	Logger     *logger.Logger
}

// Model is the Bubble Tea model for the calculator screen.
type Model struct {
	state     State
	textSize  textsize.Source
	formatter locale.Formatter
	log       *logger.Logger

	amount   components.AmountInput
	selector components.TipSelector
	total    components.TotalDisplay
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width    int
	height   int
	quitting bool
}

// NewModel constructs the calculator model.
func NewModel(opts Options) Model {
	source := opts.TextSize
	if source == nil {
		source = textsize.Static(textsize.Default)
	}

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = viewport.KeyMap{}

	return Model{
		state:     NewState(opts.DefaultTip),
		textSize:  source,
		formatter: opts.Formatter,
		log:       opts.Logger,
		amount:    components.NewAmountInput(opts.Formatter.Symbol()),
		selector:  components.NewTipSelector(meterWidth),
		total:     components.NewTotalDisplay(),
		viewport:  vp,
		help:      help.New(),
		keys:      newKeyMap(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current calculator state.
func (m Model) State() State {
	return m.state
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

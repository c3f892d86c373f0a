package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// helpHeight is the number of rows below the playfield used by the help line.
const helpHeight = 1

// Game is the simulation driven by the platform loop.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configure the platform loop.
type Options struct {
	Keys       *KeyMapper
	Background string // Playfield background color, e.g. "#66B2FF"
	Logger     *log.Logger
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	renderer   *Renderer
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates the model. A zero seed is replaced by the current time.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyMapper(defaultBindings())
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       opts.Keys,
		help:       h,
		renderer:   NewRenderer(opts.Background),
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
	}
}

func playfieldHeight(screenH int) int {
	return core.Max(screenH-helpHeight, 1)
}

// Init starts the first session and the frame ticker.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update routes input, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action or quits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.queue(action)
	return m, nil
}

// handleMouse processes mouse buttons and the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.queue(m.keys.MapMouse(msg))
	return m, nil
}

// queue records an action for the next tick. Restart only counts after
// game over.
func (m Model) queue(action core.Action) {
	if action == core.ActionRestart && !m.gameState.GameOver {
		return
	}
	m.inputFrame.Set(action)
}

// handleResize processes window resize events. The playfield is scaled to
// the new size; the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame, or restarts the session if asked to after
// game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Score != prev.Score {
		m.logger.Info("score", "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View draws the playfield with the help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse buttons and wheel
	)

	_, err := p.Run()
	return err
}

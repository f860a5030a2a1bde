package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zam-dot/scrollkit/internal/clipboard"
	"github.com/zam-dot/scrollkit/internal/codegen"
	"github.com/zam-dot/scrollkit/internal/scrollbar"
	"github.com/zam-dot/scrollkit/internal/state"
)

// ============================================================================
// MESSAGE TYPES
// ============================================================================

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	ok     bool
	format codegen.Format
}

// exportedMsg is sent after an export file has been written.
type exportedMsg struct {
	path string
	size int
	err  error
}

// previewOpenedMsg is sent after the preview page was handed to the browser.
type previewOpenedMsg struct {
	path string
	err  error
}

// tipMsg rotates the tip on the Styles tab. It never touches the config.
type tipMsg struct{}

const tipInterval = 5 * time.Second

func tipTick() tea.Cmd {
	return tea.Tick(tipInterval, func(time.Time) tea.Msg { return tipMsg{} })
}

// ============================================================================
// LIST ITEMS
// ============================================================================

// presetItem adapts a catalog preset to the bubbles list.
type presetItem struct {
	preset scrollbar.Preset
	active bool
}

func (i presetItem) FilterValue() string { return i.preset.Name }

func (i presetItem) Title() string {
	title := i.preset.Icon + " " + i.preset.Name
	if i.active {
		title += " ✓"
	}
	return title
}

func (i presetItem) Description() string { return i.preset.Description }

// tweakItem adapts a style tweak to the bubbles list.
type tweakItem struct {
	tweak scrollbar.Tweak
}

func (i tweakItem) FilterValue() string { return i.tweak.Name }
func (i tweakItem) Title() string       { return i.tweak.Name }
func (i tweakItem) Description() string { return i.tweak.Description }

// ============================================================================
// MAIN APPLICATION MODEL
// ============================================================================

// model is the Bubble Tea model. The scrollbar configuration itself lives in
// the store; everything here is presentation state.
type model struct {
	// Collaborators wired in by run
	store       *state.Store      // live configuration, notifies subscribers on change
	copier      *clipboard.Copier // clipboard with terminal fallback
	logger      *zap.Logger       // file logger, the terminal belongs to the UI
	config      Config            // application settings (dirs, theme)
	styles      styles            // lipgloss styles for the resolved theme
	dark        bool              // picks the glamour style for the code view
	previewPath string            // preview page opened with "p"

	// Navigation
	activeTab tab
	field     int            // selected row on the Controls tab
	format    codegen.Format // format shown on the Code tab
	tip       int            // index into tips, advanced by tipMsg

	// UI components
	colorInput textinput.Model // edits a color field
	cssInput   textarea.Model  // edits custom CSS
	presetList list.Model      // preset catalog, the matching entry is checked
	tweakList  list.Model      // one-shot style tweaks
	viewport   viewport.Model  // highlighted export code

	// Status line; statusErr switches it to the error style
	status    string
	statusErr bool

	// Terminal state
	ready  bool // set after the first WindowSizeMsg sizes the viewport
	width  int
	height int
}

// initialModel builds the components. The caller subscribes onConfigChange
// and calls store.Notify before running the program.
func initialModel(store *state.Store, copier *clipboard.Copier, logger *zap.Logger, config Config, isDark bool) *model {
	ti := textinput.New()
	ti.Placeholder = "#94a3b8, rgba(0, 0, 0, 0.3), transparent..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ti.Blur()

	ta := textarea.New()
	ta.Placeholder = "Extra CSS appended after the scrollbar rules"
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Blur()

	presetList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	presetList.Title = "Presets (ENTER to apply)"
	presetList.SetShowStatusBar(false)
	presetList.SetFilteringEnabled(false)

	tweaks := scrollbar.Tweaks()
	tweakItems := make([]list.Item, len(tweaks))
	for i, t := range tweaks {
		tweakItems[i] = tweakItem{tweak: t}
	}
	tweakList := list.New(tweakItems, list.NewDefaultDelegate(), 0, 0)
	tweakList.Title = "Style tweaks (ENTER to apply, E to edit custom CSS)"
	tweakList.SetShowStatusBar(false)
	tweakList.SetFilteringEnabled(false)
	tweakList.SetShowHelp(false)

	m := &model{
		store:       store,
		copier:      copier,
		logger:      logger,
		config:      config,
		styles:      newStyles(isDark),
		dark:        isDark,
		previewPath: config.PreviewPath(),
		format:      codegen.CSS,
		colorInput:  ti,
		cssInput:    ta,
		presetList:  presetList,
		tweakList:   tweakList,
	}
	m.refreshPresets()
	return m
}

// ============================================================================
// BUBBLE TEA LIFECYCLE METHODS
// ============================================================================

// Init starts the tip rotation.
func (m *model) Init() tea.Cmd {
	return tipTick()
}

// Update routes messages to the handlers in handlers.go.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tipMsg:
		m.tip = (m.tip + 1) % len(tips)
		return m, tipTick()

	case copiedMsg:
		if msg.ok {
			m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.format.Label()))
		} else {
			m.setError("Could not copy to clipboard")
		}
		return m, nil

	case exportedMsg:
		return m.handleExported(msg)

	case previewOpenedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Could not open preview: %v", msg.err))
		} else {
			m.setStatus("Opened " + msg.path)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards non-key messages (cursor blink and friends) to
// whichever component is active.
func (m *model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.colorInput.Focused():
		m.colorInput, cmd = m.colorInput.Update(msg)
	case m.cssInput.Focused():
		m.cssInput, cmd = m.cssInput.Update(msg)
	case m.activeTab == tabCode:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// onConfigChange is subscribed to the store; it keeps derived views current.
func (m *model) onConfigChange(scrollbar.Config) {
	m.refreshPresets()
	if m.ready {
		m.refreshCode()
	}
}

// refreshPresets rebuilds the list items so the check mark follows the
// live configuration.
func (m *model) refreshPresets() {
	match, ok := m.store.Preset()
	presets := scrollbar.Presets()
	items := make([]list.Item, len(presets))
	for i, p := range presets {
		items[i] = presetItem{preset: p, active: ok && match.Name == p.Name}
	}
	m.presetList.SetItems(items)
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setError(s string) {
	m.status = s
	m.statusErr = true
}

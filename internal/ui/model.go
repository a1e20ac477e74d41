package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GriffinCanCode/FileExplorer/internal/domain/explorer"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// prompt is what the text input is currently collecting
type prompt int

const (
	promptNone prompt = iota
	promptSearch
	promptNewFolder
	promptRename
	promptCopy
	promptConfirmDelete
)

var sortCycle = []explorer.SortField{
	explorer.SortByName,
	explorer.SortBySize,
	explorer.SortByModified,
	explorer.SortByType,
}

// Internal messages
type stateMsg explorer.State
type actionDoneMsg struct{}

// Model is the bubbletea model of the explorer
type Model struct {
	ctx    context.Context
	engine *explorer.Engine
	states <-chan explorer.State

	state   explorer.State
	visible []types.FileEntry
	cursor  int

	prompt  prompt
	target  types.FileEntry
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width, height int
	startPath     string
	now           func() time.Time
}

// StateFeed returns an engine observer and the channel it feeds. States are
// dropped when the UI falls behind; the model rereads the engine after
// every action anyway.
func StateFeed(buffer int) (explorer.Observer, <-chan explorer.State) {
	ch := make(chan explorer.State, buffer)
	return func(s explorer.State) {
		select {
		case ch <- s:
		default:
		}
	}, ch
}

// NewModel creates the model. startPath may be empty to open the home
// directory.
func NewModel(ctx context.Context, engine *explorer.Engine, states <-chan explorer.State, startPath string) Model {
	ti := textinput.New()
	ti.CharLimit = 255

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		engine:    engine,
		states:    states,
		input:     ti,
		spinner:   sp,
		help:      help.New(),
		keys:      defaultKeyMap(),
		startPath: startPath,
		now:       time.Now,
	}
	m.sync(engine.State())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	start := func(ctx context.Context) {
		if m.startPath != "" {
			m.engine.NavigateTo(ctx, m.startPath)
			return
		}
		m.engine.Initialize(ctx)
	}
	return tea.Batch(m.spinner.Tick, m.run(start), listenForStates(m.states))
}

func listenForStates(states <-chan explorer.State) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg(s)
	}
}

// run executes an engine action off the update loop
func (m Model) run(action func(context.Context)) tea.Cmd {
	// one trace per keypress groups an action with its refresh in the bridge logs
	ctx := tracing.WithTraceID(m.ctx, tracing.NewTraceID())
	return func() tea.Msg {
		action(ctx)
		return actionDoneMsg{}
	}
}

// sync adopts s and keeps the cursor inside the visible entries
func (m *Model) sync(s explorer.State) {
	pathChanged := s.CurrentPath != m.state.CurrentPath
	m.state = s
	m.visible = explorer.FilterAndSort(s.Clone().Items, s.SearchQuery, s.SortField, s.SortOrder)
	if pathChanged {
		m.cursor = 0
	}
	m.cursor = max(0, min(m.cursor, len(m.visible)-1))
}

func (m Model) current() (types.FileEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return types.FileEntry{}, false
	}
	return m.visible[m.cursor], true
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.sync(explorer.State(msg))
		return m, listenForStates(m.states)

	case actionDoneMsg:
		m.sync(m.engine.State())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePrompt(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.engine
	item, hasItem := m.current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Open):
		if hasItem {
			return m, m.run(func(ctx context.Context) { e.OpenItem(ctx, item) })
		}
	case key.Matches(msg, m.keys.Parent):
		return m, m.run(e.NavigateUp)
	case key.Matches(msg, m.keys.Back):
		return m, m.run(e.NavigateBack)
	case key.Matches(msg, m.keys.Forward):
		return m, m.run(e.NavigateForward)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.run(e.Refresh)
	case key.Matches(msg, m.keys.Home):
		return m, m.run(e.NavigateToHome)
	case key.Matches(msg, m.keys.Desktop):
		return m, m.run(e.NavigateToDesktop)
	case key.Matches(msg, m.keys.Docs):
		return m, m.run(e.NavigateToDocuments)
	case key.Matches(msg, m.keys.Downloads):
		return m, m.run(e.NavigateToDownloads)

	case key.Matches(msg, m.keys.Toggle):
		if hasItem {
			e.Select(item, true)
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		}
	case key.Matches(msg, m.keys.All):
		e.SelectAll()
	case key.Matches(msg, m.keys.Clear):
		if m.state.SearchQuery != "" {
			e.SetSearchQuery("")
		} else {
			e.ClearSelection()
		}
	case key.Matches(msg, m.keys.Reveal):
		if hasItem {
			return m, m.run(func(ctx context.Context) { e.ShowInFolder(ctx, item) })
		}

	case key.Matches(msg, m.keys.Sort):
		e.SetSorting(nextSortField(m.state.SortField))
	case key.Matches(msg, m.keys.Order):
		e.SetSorting(m.state.SortField, m.state.SortOrder.Toggle())
	case key.Matches(msg, m.keys.View):
		if m.state.ViewMode == explorer.ViewGrid {
			e.SetViewMode(explorer.ViewList)
		} else {
			e.SetViewMode(explorer.ViewGrid)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Search):
		return m.openPrompt(promptSearch, "search: ", m.state.SearchQuery)
	case key.Matches(msg, m.keys.NewFolder):
		return m.openPrompt(promptNewFolder, "new folder: ", "")
	case key.Matches(msg, m.keys.Rename):
		if hasItem {
			m.target = item
			return m.openPrompt(promptRename, "rename to: ", item.Name)
		}
	case key.Matches(msg, m.keys.Copy):
		if len(m.selection()) > 0 {
			// the current directory would copy every item onto itself
			dest, _ := paths.Parent(m.state.CurrentPath)
			return m.openPrompt(promptCopy, "copy to: ", dest)
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.selection()) > 0 {
			m.prompt = promptConfirmDelete
		}
	}

	m.sync(e.State())
	return m, nil
}

// selection makes the entry under the cursor the selection when nothing is
// selected, so single-item actions need no extra keystroke
func (m Model) selection() []types.FileEntry {
	if len(m.state.Selected) > 0 {
		return m.state.Selected
	}
	if item, ok := m.current(); ok {
		m.engine.Select(item, false)
		return []types.FileEntry{item}
	}
	return nil
}

func (m Model) openPrompt(p prompt, label, value string) (tea.Model, tea.Cmd) {
	m.prompt = p
	m.input.Prompt = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closePrompt() Model {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.engine

	if m.prompt == promptConfirmDelete {
		m = m.closePrompt()
		if msg.String() == "y" || msg.String() == "Y" {
			return m, m.run(e.DeleteSelected)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		if m.prompt == promptSearch {
			e.SetSearchQuery("")
		}
		m = m.closePrompt()
		m.sync(e.State())
		return m, nil

	case tea.KeyEnter:
		value, p, target := m.input.Value(), m.prompt, m.target
		m = m.closePrompt()
		switch p {
		case promptSearch:
			e.SetSearchQuery(value)
			m.sync(e.State())
			return m, nil
		case promptNewFolder:
			return m, m.run(func(ctx context.Context) { e.CreateFolder(ctx, value) })
		case promptRename:
			return m, m.run(func(ctx context.Context) { e.Rename(ctx, target, value) })
		case promptCopy:
			return m, m.run(func(ctx context.Context) { e.CopySelected(ctx, value) })
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.prompt == promptSearch {
		// filter as you type
		e.SetSearchQuery(m.input.Value())
		m.sync(e.State())
	}
	return m, cmd
}

func nextSortField(current explorer.SortField) explorer.SortField {
	for i, f := range sortCycle {
		if f == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return explorer.SortByName
}

// Run starts the program on the terminal and blocks until the user quits
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D2EF4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	statsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F25D94"))
)

// menuOption adapts an engine menu item to the bubbles list.
type menuOption struct {
	number int
	label  string
}

func (o menuOption) Title() string       { return fmt.Sprintf("%d. %s", o.number, o.label) }
func (o menuOption) Description() string { return "" }
func (o menuOption) FilterValue() string { return o.label }

type gameModel struct {
	sess      *session.Session
	textInput textinput.Model
	viewport  viewport.Model
	menu      list.Model

	logContent string
	stats      *engine.StatsEvent
	combat     *engine.CombatUpdateEvent
	profile    string
	width      int
	height     int
	showMenu   bool
}

func newGameModel(sess *session.Session, profile string) gameModel {
	ti := textinput.New()
	ti.Placeholder = "Pick an option by number..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60

	vp := viewport.New(0, 0)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	menu := list.New([]list.Item{}, delegate, 50, 7)
	menu.SetShowTitle(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	m := gameModel{
		sess:      sess,
		textInput: ti,
		viewport:  vp,
		menu:      menu,
		profile:   profile,
	}
	m.consume(sess.Start())
	return m
}

func (m *gameModel) Init() tea.Cmd {
	return textinput.Blink
}

// consume folds a batch of engine events into the display state.
func (m *gameModel) consume(events []engine.Event) {
	for _, evt := range events {
		switch e := evt.(type) {
		case *engine.ClearEvent:
			m.logContent = ""
		case *engine.DialogueEvent:
			m.logContent += e.Message() + "\n"
		case *engine.PromptEvent:
			m.logContent += e.Prompt + "\n"
			m.textInput.Placeholder = "Type your answer..."
			m.showMenu = false
		case *engine.MenuEvent:
			if e.Title != "" {
				m.logContent += e.Title + "\n"
			}
			var items []list.Item
			for i, item := range e.Items {
				items = append(items, menuOption{number: i + 1, label: item.Label})
			}
			m.menu.SetItems(items)
			m.menu.ResetSelected()
			m.textInput.Placeholder = "Pick an option by number..."
			m.showMenu = true
		case *engine.StatsEvent:
			m.stats = e
		case *engine.CombatUpdateEvent:
			m.combat = e
		case *engine.StateEvent:
			if e.Phase != engine.PhaseCombat {
				m.combat = nil
			}
		}
	}
	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
}

func (m *gameModel) submit(val string) {
	m.logContent += fmt.Sprintf("\n> %s\n", val)
	events, err := m.sess.Dispatch(val)
	if err != nil {
		m.logContent += fmt.Sprintf("%v\n", err)
		m.viewport.SetContent(m.logContent)
		m.viewport.GotoBottom()
		return
	}
	m.consume(events)
}

func (m *gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp, tea.KeyDown:
			if m.showMenu {
				m.menu, lsCmd = m.menu.Update(msg)
			}

		case tea.KeyTab:
			if m.showMenu {
				if o, ok := m.menu.SelectedItem().(menuOption); ok {
					m.textInput.SetValue(fmt.Sprintf("%d", o.number))
					m.textInput.SetCursor(len(m.textInput.Value()))
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}
			if val == "" && m.showMenu {
				if o, ok := m.menu.SelectedItem().(menuOption); ok {
					val = fmt.Sprintf("%d", o.number)
				}
			}
			if val != "" {
				m.textInput.SetValue("")
				m.submit(val)
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.menu.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	// Size the log viewport around the fixed chrome.
	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	statsH := lipgloss.Height(m.renderStats())
	inputH := 1
	menuH := 0
	if m.showMenu {
		count := len(m.menu.Items())
		if count > 7 {
			count = 7
		}
		m.menu.SetHeight(count)
		menuH = count + 2 // menu box borders
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))

	m.viewport.Height = m.height - titleH - statsH - inputH - menuH - infoH - 4
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *gameModel) renderStats() string {
	if m.stats == nil {
		return statsBoxStyle.Width(m.width - 4).Render("No explorer yet. Start a new game.")
	}

	s := m.stats
	line := fmt.Sprintf("%s  HP %d/%d  Gold %d  Level %d (%d XP)",
		s.Name, s.HP, s.MaxHP, s.Gold, s.Level, s.XP)
	if s.Depth > 0 {
		line += fmt.Sprintf("  Depth %d", s.Depth)
	} else {
		line += "  In town"
	}
	if m.combat != nil {
		line += fmt.Sprintf("\n%s  HP %d/%d", m.combat.MonsterName, m.combat.MonsterHP, m.combat.MonsterMaxHP)
	}
	return statsBoxStyle.Width(m.width - 4).Render(line)
}

func (m *gameModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" Labyrinth Explorer | %s ", m.profile))
	statsBox := m.renderStats()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showMenu {
		inputArea = fmt.Sprintf("%s\n%s", menuBoxStyle.Render(m.menu.View()), m.textInput.View())
	} else {
		inputArea = m.textInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		statsBox,
		logBox,
		inputArea,
		infoStyle.Render("(esc to quit, up/down to browse options, enter to choose)"),
	)
}

// RunTUI opens the full-screen terminal client over a session.
func RunTUI(sess *session.Session, profile string) error {
	m := newGameModel(sess, profile)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kenken729/daily-todo-tracker/internal/ui"
	"github.com/kenken729/daily-todo-tracker/pkg/export"
	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/task"
)

const (
	headerHeight = 3
	footerHeight = 1
)

type mode int

const (
	modeNormal mode = iota
	modeContent
	modeDue
	modeOwners
	modeEdit
	modeEditDue
)

const (
	tabPending = iota
	tabCompleted
	tabExport
)

// row is one rendered board line: a person header (id empty) or a task.
type row struct {
	person roster.Person
	id     task.ID
}

type app struct {
	mode mode

	viewport viewport.Model
	input    textinput.Model
	tabs     ui.Tabs

	ros   roster.Roster
	store task.StoreManager

	draft  task.Draft
	errmsg string

	rows   []row
	cursor int
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func runTUI() error {
	r := roster.Default()
	store, err := openStore(r, time.Now())
	if err != nil {
		return err
	}

	i := textinput.NewModel()
	i.Prompt = ""
	i.Width = 40

	a := &app{
		input:    i,
		viewport: viewport.Model{},
		tabs:     ui.NewTabs([]string{"待辦", "已完成", "文字清單"}),
		ros:      r,
		store:    store,
	}
	a.updateRows()

	p := tea.NewProgram(a)
	p.EnterAltScreen()
	defer p.ExitAltScreen()
	p.EnableMouseAllMotion()
	defer p.DisableMouseAllMotion()

	return p.Start()
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		verticalMargins := headerHeight + footerHeight
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargins
		m.tabs.Width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeNormal
			m.errmsg = ""
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNormal:
		m.normalKey(msg)
	default:
		if msg.Type == tea.KeyEnter {
			m.submitInput()
		} else {
			m.input, cmd = m.input.Update(msg)
		}
	}
	return cmd
}

func (m *app) normalKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "alt+1":
		m.setTab(tabPending)
	case "alt+2":
		m.setTab(tabCompleted)
	case "alt+3":
		m.setTab(tabExport)
	case "tab":
		m.setTab((m.tabs.Value() + 1) % 3)
	case "g":
		m.setCursor(0)
	case "G":
		m.setCursor(len(m.rows))
	case "j":
		if m.tabs.Value() == tabExport {
			m.viewport.YOffset++
		} else {
			m.moveCursor(1)
		}
	case "k":
		if m.tabs.Value() == tabExport {
			m.viewport.YOffset = max(m.viewport.YOffset-1, 0)
		} else {
			m.moveCursor(-1)
		}
	case "o":
		m.errmsg = ""
		m.draft = task.Draft{}
		m.prompt(modeContent, "內容：", "")
	case " ", "t":
		if id := m.atCursor(); id != "" {
			check(m.store.ToggleComplete(id))
			m.updateRows()
		}
	case "x", tea.KeyDelete.String():
		if id := m.atCursor(); id != "" {
			check(m.store.Remove(id))
			m.updateRows()
		}
	case "i":
		if id := m.atCursor(); id != "" {
			t, _ := m.store.Get(id)
			m.prompt(modeEdit, "內容：", t.Content)
		}
	case "d":
		if id := m.atCursor(); id != "" {
			t, _ := m.store.Get(id)
			m.prompt(modeEditDue, "截止日：", t.Due.Format("2006-01-02"))
		}
	case "c":
		if m.tabs.Value() == tabCompleted && m.cursor < len(m.rows) {
			check(m.store.RemoveCompletedFor(m.rows[m.cursor].person))
			m.updateRows()
		}
	}
}

func (m *app) prompt(mode mode, prompt, value string) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.SetCursor(len(value))
	m.input.Focus()
}

// submitInput advances the add flow (content → due → owners) or applies an
// edit. Validation failures keep the input open with an error message.
func (m *app) submitInput() {
	value := strings.TrimSpace(m.input.Value())
	switch m.mode {
	case modeContent:
		m.draft.Content = value
		m.prompt(modeDue, "截止日（空白＝今天）：", "")
	case modeDue:
		if value != "" {
			due, err := time.ParseInLocation("2006-01-02", value, time.Local)
			if err != nil {
				m.errmsg = "日期格式：2006-01-02"
				return
			}
			m.draft.Due = due
		}
		m.prompt(modeOwners, "負責人（可用空白分隔、可選群組）：", "")
	case modeOwners:
		m.draft.Owners = strings.Fields(value)
		tasks, err := m.draft.Materialize(m.ros, time.Now())
		if err != nil {
			m.errmsg = err.Error()
			return
		}
		check(m.store.Add(tasks...))
		m.mode = modeNormal
		m.errmsg = ""
		m.updateRows()
	case modeEdit:
		if id := m.atCursor(); id != "" && value != "" {
			check(m.store.SetContent(id, value))
		}
		m.mode = modeNormal
		m.updateRows()
	case modeEditDue:
		due, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			m.errmsg = "日期格式：2006-01-02"
			return
		}
		if id := m.atCursor(); id != "" {
			check(m.store.SetDue(id, due))
		}
		m.mode = modeNormal
		m.errmsg = ""
		m.updateRows()
	}
}

func (m *app) setTab(i int) {
	m.tabs.Set(i)
	m.updateRows()
	m.setCursor(0)
}

// updateRows rebuilds the visible board rows from the store.
func (m *app) updateRows() {
	all := m.store.All()
	pending := 0
	for _, t := range all {
		if !t.Completed {
			pending++
		}
	}
	m.tabs.Info = fmt.Sprintf("%d 待辦", pending)

	board := task.PendingByPerson(all, m.ros.People)
	if m.tabs.Value() == tabCompleted {
		board = task.CompletedByPerson(all, m.ros.People)
	}
	rows := []row{}
	if m.tabs.Value() != tabExport {
		for _, p := range m.ros.People {
			tasks := board[p]
			if len(tasks) == 0 {
				continue
			}
			rows = append(rows, row{person: p})
			for _, t := range tasks {
				rows = append(rows, row{person: p, id: t.ID})
			}
		}
	}
	m.rows = rows
	m.setCursor(m.cursor)
}

func (m app) atCursor() task.ID {
	if m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].id
}

// moveCursor steps over header rows so the cursor always rests on a task.
func (m *app) moveCursor(inc int) {
	i := m.cursor + inc
	for i >= 0 && i < len(m.rows) {
		if m.rows[i].id != "" {
			m.setCursor(i)
			return
		}
		i += inc
	}
}

func (m *app) setCursor(value int) {
	size := len(m.rows)
	m.cursor = clamp(value, 0, max(size-1, 0))
	if size == 0 {
		return
	}
	// land on a task row, not a header
	for m.cursor < size-1 && m.rows[m.cursor].id == "" {
		m.cursor++
	}

	linesBeforeCursor := 0
	for _, r := range m.rows[:m.cursor] {
		linesBeforeCursor += rowHeight(r)
	}
	if linesBeforeCursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = linesBeforeCursor + rowHeight(m.rows[m.cursor]) - m.viewport.Height
	}
	if linesBeforeCursor <= m.viewport.YOffset {
		m.viewport.YOffset = linesBeforeCursor
	}
}

// headers take an extra blank line to separate people
func rowHeight(r row) int {
	if r.id == "" {
		return 2
	}
	return 1
}

func (m *app) render() {
	if m.tabs.Value() == tabExport {
		m.viewport.SetContent(export.Digest(m.ros, m.store.All(), time.Now()))
		return
	}
	m.viewport.SetContent(m.viewRows())
}

func (m app) viewRows() string {
	now := time.Now()
	s := ""
	for i, r := range m.rows {
		if r.id == "" {
			s += "\n" + ui.PersonHeader.Render("👤 "+string(r.person)) + "\n"
			continue
		}
		t, ok := m.store.Get(r.id)
		if !ok {
			continue
		}
		title := ui.Title(t)
		if i == m.cursor {
			title = title.Copy().Background(ui.Faded)
		}
		s += ui.Icon(t)
		switch {
		case (m.mode == modeEdit || m.mode == modeEditDue) && i == m.cursor:
			s += m.input.View()
		default:
			s += title.Render(t.Content)
			s += ui.RenderDates(t, now)
		}
		s += "\n"
	}
	if len(m.rows) == 0 {
		s = "\n  （沒有工作，按 o 新增）\n"
	}
	return s
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	statusline := ""
	switch m.mode {
	case modeContent, modeDue, modeOwners:
		statusline = m.input.View()
	}
	if m.errmsg != "" {
		statusline += " " + ui.ErrText.Render(m.errmsg)
	}
	return m.tabs.View() + m.viewport.View() + "\n" + statusline
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

// Package tui is the terminal chapter browser
package tui

import (
	"context"
	"strings"

	"biblia/internal/core/browser"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusList focus = iota
	focusFilter
	focusPassage
)

// passageMsg carries a finished retrieval back to the event loop
type passageMsg struct{ outcome browser.Outcome }

// Options tune the initial screen
type Options struct {
	// Book is a deep link; the book starts expanded and under the cursor
	Book string
	// Restore reopens the last selected chapter
	Restore bool
}

// Model is the bubbletea model. All browser mutations happen in Update
type Model struct {
	ctx context.Context
	b   *browser.Browser

	filter   textinput.Model
	passage  viewport.Model
	st       styles
	items    []item
	cursor   int
	offset   int
	focus    focus
	width    int
	height   int
	pending  *browser.Ticket
	notFound string
}

// New builds the model; deep link and restore are applied right away so the
// first frame already shows them
func New(ctx context.Context, b *browser.Browser, opt Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Buscar livro..."
	ti.Prompt = "/ "
	ti.CharLimit = 40
	ti.Width = 30

	m := Model{
		ctx:     ctx,
		b:       b,
		filter:  ti,
		passage: viewport.New(40, 10),
		st:      defaultStyles(),
		width:   100,
		height:  30,
	}

	if opt.Restore {
		if t, ok := b.Restore(ctx); ok {
			m.pending = &t
		}
	}
	if opt.Book != "" && !b.Reveal(opt.Book) {
		m.notFound = opt.Book
	}

	m.rebuild()
	switch {
	case opt.Book != "" && m.notFound == "":
		m.focusBook(opt.Book)
	case m.pending != nil:
		m.focusChapter(m.pending.BookID, m.pending.Chapter)
	}
	m.layout()
	m.refreshPassage()
	m.syncOffset()
	return m
}

// Init starts the restored retrieval, if any
func (m Model) Init() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	return m.fetch(*m.pending)
}

func (m Model) fetch(t browser.Ticket) tea.Cmd {
	ctx, b := m.ctx, m.b
	return func() tea.Msg { return passageMsg{outcome: b.Fetch(ctx, t)} }
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncOffset()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refreshPassage()
		return m, nil

	case passageMsg:
		m.pending = nil
		if m.b.Apply(msg.outcome) {
			m.refreshPassage()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.focus {
		case focusFilter:
			return m.updateFilter(msg)
		case focusPassage:
			return m.updatePassage(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.SetValue("")
		m.applyQuery()
		m.filter.Blur()
		m.focus = focusList
		return m, nil
	case tea.KeyEnter, tea.KeyTab:
		m.filter.Blur()
		m.focus = focusList
		return m, nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyQuery()
	}
	return m, cmd
}

func (m *Model) applyQuery() {
	m.b.SetQuery(m.filter.Value())
	m.cursor, m.offset = 0, 0
	m.rebuild()
}

func (m Model) updatePassage(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "esc":
		m.focus = focusList
		return m, nil
	case "q":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.passage, cmd = m.passage.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusFilter
		cmd := m.filter.Focus()
		return m, cmd
	case "tab":
		m.focus = focusPassage
		return m, nil
	case "up", "k":
		m.move(-1, true)
	case "down", "j":
		m.move(1, true)
	case "left", "h":
		m.move(-1, false)
	case "right", "l":
		m.move(1, false)
	case "home", "g":
		m.cursor = 0
		m.skipHeaders(1)
	case "end", "G":
		m.cursor = len(m.items) - 1
		m.skipHeaders(-1)
	case "enter", " ":
		return m.activate()
	}
	return m, nil
}

// activate toggles the book or opens the chapter under the cursor
func (m Model) activate() (Model, tea.Cmd) {
	it, ok := m.current()
	if !ok {
		return m, nil
	}
	switch it.kind {
	case kindBook:
		m.b.Toggle(it.book.ID)
		m.rebuild()
		m.focusBook(it.book.ID)
		return m, nil
	case kindChapter:
		t, err := m.b.Select(m.ctx, it.book.ID, it.chapter)
		if err != nil {
			return m, nil
		}
		m.refreshPassage()
		return m, m.fetch(t)
	}
	return m, nil
}

func (m Model) current() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item{}, false
	}
	return m.items[m.cursor], true
}

// move steps the cursor; vertical moves jump a grid row inside chapters
func (m *Model) move(dir int, vertical bool) {
	if len(m.items) == 0 {
		return
	}
	if it, ok := m.current(); ok && vertical && it.kind == kindChapter {
		target := m.cursor + dir*gridCols
		if target >= 0 && target < len(m.items) {
			if t := m.items[target]; t.kind == kindChapter && t.book.ID == it.book.ID {
				m.cursor = target
				return
			}
		}
	}
	next := m.cursor + dir
	for next >= 0 && next < len(m.items) && !m.items[next].selectable() {
		next += dir
	}
	if next >= 0 && next < len(m.items) {
		m.cursor = next
	}
}

func (m *Model) skipHeaders(dir int) {
	for m.cursor >= 0 && m.cursor < len(m.items) && !m.items[m.cursor].selectable() {
		m.cursor += dir
	}
	if m.cursor < 0 || m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

func (m *Model) rebuild() {
	m.items = buildItems(m.b)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.skipHeaders(1)
}

func (m *Model) focusBook(id string) {
	for i, it := range m.items {
		if it.kind == kindBook && it.book.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) focusChapter(id string, n int) {
	for i, it := range m.items {
		if it.kind == kindChapter && it.book.ID == id && it.chapter == n {
			m.cursor = i
			return
		}
	}
	m.focusBook(id)
}

func (m Model) listWidth() int {
	if m.width < 80 {
		return m.width
	}
	return 44
}

func (m Model) bodyHeight() int {
	h := m.height - 5
	if m.b.NoMatch() || m.notFound != "" {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) layout() {
	w := m.width - m.listWidth() - 4
	h := m.bodyHeight() - 3
	if m.width < 80 {
		w = m.width - 4
		h = m.bodyHeight() / 2
	}
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.passage.Width, m.passage.Height = w, h
}

const msgRetryHint = "Tente novamente em instantes."

func (m *Model) refreshPassage() {
	p := m.b.Panel()
	text := p.Text
	if p.State == browser.PanelIdle {
		text = "Escolha um capítulo para começar."
	}
	body := lipgloss.NewStyle().Width(m.passage.Width).Render(text)
	if p.State == browser.PanelFailed {
		body = m.st.failed.Render(body)
		if p.Retryable {
			body += "\n" + m.st.notice.Render(msgRetryHint)
		}
	}
	m.passage.SetContent(body)
	m.passage.GotoTop()
}

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.st.title.Render("Estudos Bíblicos"))
	sb.WriteString("\n")
	sb.WriteString(m.filter.View())
	sb.WriteString("\n")
	if m.notFound != "" {
		sb.WriteString(m.st.notice.Render("Livro não encontrado: " + m.notFound))
		sb.WriteString("\n")
	}
	if m.b.NoMatch() {
		sb.WriteString(m.st.notice.Render("Nenhum livro encontrado, mostrando todos"))
		sb.WriteString("\n")
	}

	list := m.listView()
	pane := m.passageView()
	if m.width < 80 {
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, list, pane))
	} else {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, pane))
	}
	sb.WriteString("\n")
	sb.WriteString(m.st.help.Render(m.helpLine()))
	return sb.String()
}

// listHeight is how many list lines fit on screen
func (m Model) listHeight() int {
	h := m.bodyHeight()
	if m.width < 80 {
		h /= 2
	}
	return h
}

// syncOffset scrolls the list so the cursor stays visible
func (m *Model) syncOffset() {
	_, cursorLine := renderList(m.items, m.cursor, m.b, m.st)
	h := m.listHeight()
	if cursorLine < m.offset {
		m.offset = cursorLine
	}
	if cursorLine >= m.offset+h {
		m.offset = cursorLine - h + 1
	}
}

func (m Model) listView() string {
	lines, _ := renderList(m.items, m.cursor, m.b, m.st)
	end := m.offset + m.listHeight()
	if end > len(lines) {
		end = len(lines)
	}
	start := m.offset
	if start > end {
		start = end
	}
	return lipgloss.NewStyle().Width(m.listWidth()).Render(strings.Join(lines[start:end], "\n"))
}

func (m Model) passageView() string {
	p := m.b.Panel()
	head := "Passagem"
	switch {
	case p.Ref != "":
		head = p.Ref
	case !m.b.Active().IsZero():
		head = browser.Ticket{Selection: m.b.Active()}.Ref()
	}
	return m.st.pane.Render(m.st.paneHead.Render(head) + "\n" + m.passage.View())
}

func (m Model) helpLine() string {
	switch m.focus {
	case focusFilter:
		return "enter confirmar · esc limpar"
	case focusPassage:
		return "↑/↓ rolar · tab voltar · q sair"
	}
	if it, ok := m.current(); ok {
		if s := helpFor(it); s != "" {
			return s + "  ·  / buscar · tab passagem · q sair"
		}
	}
	return "/ buscar · q sair"
}

// Run starts the program on the terminal until the user quits or ctx ends
func Run(ctx context.Context, b *browser.Browser, opt Options, popts ...tea.ProgramOption) error {
	popts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, popts...)
	_, err := tea.NewProgram(New(ctx, b, opt), popts...).Run()
	return err
}

package tui

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/logging"
	"github.com/rshade/mindful/internal/session"
	listview "github.com/rshade/mindful/internal/tui/list"
)

// PageState represents the current state of the page.
type PageState int

const (
	// PageStateBrowsing is the scrolling page with no overlay.
	PageStateBrowsing PageState = iota
	// PageStateDetails shows the details modal for the selected card.
	PageStateDetails
	// PageStateQuitting indicates the program is exiting.
	PageStateQuitting
)

// Default dimensions used until the first WindowSizeMsg.
const (
	pageDefaultWidth  = 100
	pageDefaultHeight = 30
	queryBigStep      = 10
	centerPosition    = 0.5
)

// revealMsg carries a reveal ticket back to the model once its delay passes.
type revealMsg struct {
	ticket session.Ticket
}

// PageOptions configures NewPageModel.
type PageOptions struct {
	// Animate schedules entrance reveals; otherwise everything starts visible.
	Animate bool
	// RevealStep is the per-rank card delay. Zero uses session.CardRevealStep.
	RevealStep time.Duration
	Plain      bool
}

// PageModel is the Bubble Tea model for the full page.
type PageModel struct {
	ctx     context.Context
	content *catalog.Content
	session *session.Session

	state        PageState
	focus        Section
	slider       slider
	tipCursor    int
	pledgeCursor int

	cards    *listview.VirtualListModel[catalog.UsageCategory]
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	renderer *pageRenderer
	offsets  map[Section]int

	animate    bool
	revealStep time.Duration

	width  int
	height int
}

// NewPageModel creates the page for s.
func NewPageModel(ctx context.Context, s *session.Session, opts PageOptions) *PageModel {
	content := s.Content()
	m := &PageModel{
		ctx:        ctx,
		content:    content,
		session:    s,
		state:      PageStateBrowsing,
		focus:      SectionCalculator,
		keys:       newKeyMap(),
		help:       help.New(),
		animate:    opts.Animate,
		revealStep: opts.RevealStep,
		width:      pageDefaultWidth,
		height:     pageDefaultHeight,
	}

	m.renderer = newPageRenderer(content, s, m.width, opts.Plain)
	m.cards = listview.NewVirtualListModel(content.All(), len(content.Categories), m.renderer.width, m.renderer.cardLine)
	m.viewport = viewport.New(m.width, m.height)
	m.viewport.KeyMap = viewport.KeyMap{
		HalfPageUp:   m.keys.ScrollUp,
		HalfPageDown: m.keys.ScrollDown,
	}

	if !m.animate {
		s.RevealAll()
	}
	m.resize(m.width, m.height)
	return m
}

// Init schedules the entrance reveals.
func (m *PageModel) Init() tea.Cmd {
	if !m.animate {
		return nil
	}

	tickets := m.session.ScheduleEntrances(m.revealStep)
	cmds := make([]tea.Cmd, 0, len(tickets))
	for _, t := range tickets {
		cmds = append(cmds, revealAfter(t))
	}

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str("component", "tui").
		Int("scheduled", len(tickets)).
		Msg("entrance reveals scheduled")

	return tea.Batch(cmds...)
}

func revealAfter(t session.Ticket) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return revealMsg{ticket: t}
	})
}

// Update handles messages and updates the model state.
func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case revealMsg:
		if m.session.Reveals().Fire(msg.ticket) {
			m.refresh()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *PageModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// The modal has no actions of its own, so every key dismisses it.
	if m.state == PageStateDetails {
		m.closeDetails()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.setFocus((m.focus + 1) % sectionCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.setFocus((m.focus + sectionCount - 1) % sectionCount)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Close):
		m.closeDetails()
		return m, nil
	}

	m.handleSectionKey(msg)
	m.refresh()
	return m, nil
}

func (m *PageModel) handleSectionKey(msg tea.KeyMsg) {
	switch m.focus {
	case SectionCalculator:
		m.handleCalculatorKey(msg)

	case SectionCards:
		if key.Matches(msg, m.keys.Open) {
			m.openDetails()
			return
		}
		m.cards.HandleKey(msg)

	case SectionTips:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.tipCursor = max(m.tipCursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.tipCursor = min(m.tipCursor+1, len(m.content.Tips)-1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggleTip()
		}

	case SectionPledges:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.pledgeCursor = max(m.pledgeCursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.pledgeCursor = min(m.pledgeCursor+1, len(m.content.Pledges)-1)
		case key.Matches(msg, m.keys.Toggle):
			m.togglePledge()
		}
	}
}

func (m *PageModel) handleCalculatorKey(msg tea.KeyMsg) {
	in := m.session.Input()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.slider = sliderQueries
	case key.Matches(msg, m.keys.Down):
		m.slider = sliderLength
	case key.Matches(msg, m.keys.Left):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Right):
		m.nudge(1)
	case key.Matches(msg, m.keys.BigLeft):
		if m.slider == sliderQueries {
			m.setQueries(in.QueryCount - queryBigStep)
		}
	case key.Matches(msg, m.keys.BigRight):
		if m.slider == sliderQueries {
			m.setQueries(in.QueryCount + queryBigStep)
		}
	case key.Matches(msg, m.keys.Home):
		m.setQueries(greenops.MinQueries)
	case key.Matches(msg, m.keys.End):
		m.setQueries(greenops.MaxQueries)
	}
}

func (m *PageModel) nudge(delta int) {
	in := m.session.Input()
	if m.slider == sliderQueries {
		m.setQueries(in.QueryCount + delta)
		return
	}
	tier := in.LengthTier + greenops.LengthTier(delta)
	tier = min(max(tier, greenops.LengthShort), greenops.LengthLong)
	m.warnOnError(m.session.SetLengthTier(tier), "set_length_tier")
}

// setQueries clamps n to the slider range, as the widget itself would.
func (m *PageModel) setQueries(n int) {
	m.warnOnError(m.session.SetQueryCount(greenops.ClampQueries(n)), "set_query_count")
}

func (m *PageModel) toggleTip() {
	if len(m.content.Tips) == 0 {
		return
	}
	m.warnOnError(m.session.ToggleTip(m.content.Tips[m.tipCursor].Number), "toggle_tip")
}

func (m *PageModel) togglePledge() {
	if len(m.content.Pledges) == 0 {
		return
	}
	_, err := m.session.TogglePledge(m.content.Pledges[m.pledgeCursor].Key)
	m.warnOnError(err, "toggle_pledge")
}

func (m *PageModel) warnOnError(err error, operation string) {
	if err == nil {
		return
	}
	logger := logging.FromContext(m.ctx)
	logger.Warn().
		Str("component", "tui").
		Str("operation", operation).
		Err(err).
		Msg("page update rejected")
}

func (m *PageModel) openDetails() {
	item := m.cards.SelectedItem()
	if item == nil {
		return
	}
	m.session.SelectItem(*item)
	m.state = PageStateDetails

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str("component", "tui").
		Int("rank", item.Rank).
		Msg("details opened")
}

// closeDetails clears the selection. It is safe to call with nothing open.
func (m *PageModel) closeDetails() {
	m.session.ClearSelection()
	m.state = PageStateBrowsing
	m.refresh()
}

func (m *PageModel) quit() (tea.Model, tea.Cmd) {
	m.session.Reveals().CancelAll()
	m.state = PageStateQuitting
	return m, tea.Quit
}

//nolint:exhaustive // Only left-button presses matter.
func (m *PageModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state == PageStateDetails {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.insideModal(msg.X, msg.Y) {
			m.closeDetails()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// insideModal reports whether the cell x,y falls on the centered modal box.
func (m *PageModel) insideModal(x, y int) bool {
	item, ok := m.session.Selected()
	if !ok {
		return false
	}
	w, h := lipgloss.Size(m.renderer.details(item))
	left := placeOffset(m.width, w)
	top := placeOffset(m.height, h)
	return x >= left && x < left+w && y >= top && y < top+h
}

// placeOffset mirrors how lipgloss.Place centers a block of size within total.
func placeOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * centerPosition))
}

func (m *PageModel) setFocus(s Section) {
	m.focus = s
	m.refresh()
	m.viewport.SetYOffset(m.offsets[s])
}

func (m *PageModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.renderer.width = contentWidth(width)
	m.cards.SetSize(m.renderer.width, len(m.content.Categories))
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-lipgloss.Height(m.help.View(m.keys)), 1)
	m.refresh()
}

func (m *PageModel) refresh() {
	page, offsets := m.renderer.render(pageFocus{
		active:  true,
		section: m.focus,
		slider:  m.slider,
		cards:   m.cards,
		tip:     m.tipCursor,
		pledge:  m.pledgeCursor,
	})
	m.offsets = offsets
	m.viewport.SetContent(page)
}

// View renders the current view.
func (m *PageModel) View() string {
	switch m.state {
	case PageStateQuitting:
		return ""
	case PageStateDetails:
		if item, ok := m.session.Selected(); ok {
			box := m.renderer.details(item) + "\n" + m.help.ShortHelpView([]key.Binding{m.keys.Close})
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
	case PageStateBrowsing:
	}

	return m.viewport.View() + "\n" + m.help.View(m.keys)
}

// State returns the page state.
func (m *PageModel) State() PageState {
	return m.state
}

// Focus returns the section receiving keys.
func (m *PageModel) Focus() Section {
	return m.focus
}

// Session returns the underlying view state.
func (m *PageModel) Session() *session.Session {
	return m.session
}

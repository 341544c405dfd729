package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
)

func newTestPage(t *testing.T, animate bool) *PageModel {
	t.Helper()
	s := session.NewSession(catalog.Default())
	m := NewPageModel(context.Background(), s, PageOptions{Animate: animate, Plain: true})
	require.NotNil(t, m)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *PageModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	right    = tea.KeyMsg{Type: tea.KeyRight}
)

func TestNewPageModel_StaticReveal(t *testing.T) {
	m := newTestPage(t, false)

	assert.Nil(t, m.Init())
	assert.Equal(t, PageStateBrowsing, m.State())
	assert.Equal(t, SectionCalculator, m.Focus())
	for _, cat := range catalog.All() {
		assert.True(t, m.Session().Reveals().Visible(cat.RevealID()))
	}
	assert.Contains(t, m.View(), "The Weight of Intelligence")
}

func TestPageModel_InitSchedulesReveals(t *testing.T) {
	m := newTestPage(t, true)

	assert.False(t, m.Session().Reveals().Visible("card-1"))
	require.NotNil(t, m.Init())
	assert.True(t, m.Session().Reveals().Pending("card-1"))
	assert.True(t, m.Session().Reveals().Pending(catalog.EnergyBarRevealID(0)))
}

func TestPageModel_RevealMessages(t *testing.T) {
	m := newTestPage(t, true)
	board := m.Session().Reveals()

	first, ok := board.Schedule("card-1", 0)
	require.True(t, ok)
	press(m, revealMsg{ticket: first})
	assert.True(t, board.Visible("card-1"))

	late, ok := board.Schedule("card-2", 0)
	require.True(t, ok)

	cmd := press(m, keyRunes("q"))
	assert.Equal(t, PageStateQuitting, m.State())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	press(m, revealMsg{ticket: late})
	assert.False(t, board.Visible("card-2"), "ticks arriving after teardown are ignored")
}

func TestPageModel_FocusCycle(t *testing.T) {
	m := newTestPage(t, false)

	want := []Section{SectionCards, SectionTips, SectionPledges, SectionCalculator}
	for _, s := range want {
		press(m, tab)
		assert.Equal(t, s, m.Focus())
	}

	press(m, shiftTab)
	assert.Equal(t, SectionPledges, m.Focus())
}

func TestPageModel_CalculatorSliders(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.Msg
		wantCount int
		wantTier  greenops.LengthTier
	}{
		{name: "right", keys: []tea.Msg{right}, wantCount: 11, wantTier: greenops.LengthMedium},
		{name: "left", keys: []tea.Msg{left, left}, wantCount: 8, wantTier: greenops.LengthMedium},
		{name: "pgup adds ten", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyPgUp}}, wantCount: 20, wantTier: greenops.LengthMedium},
		{name: "end clamps high", keys: []tea.Msg{keyRunes("G"), right, right}, wantCount: 100, wantTier: greenops.LengthMedium},
		{name: "home clamps low", keys: []tea.Msg{keyRunes("g"), left}, wantCount: 1, wantTier: greenops.LengthMedium},
		{name: "pgdown clamps low", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyPgDown}}, wantCount: 1, wantTier: greenops.LengthMedium},
		{name: "tier up clamps", keys: []tea.Msg{down, right, right, right}, wantCount: 10, wantTier: greenops.LengthLong},
		{name: "tier down clamps", keys: []tea.Msg{down, left, left, left}, wantCount: 10, wantTier: greenops.LengthShort},
		{name: "back to queries", keys: []tea.Msg{down, up, right}, wantCount: 11, wantTier: greenops.LengthMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPage(t, false)
			press(m, tt.keys...)
			in := m.Session().Input()
			assert.Equal(t, tt.wantCount, in.QueryCount)
			assert.Equal(t, tt.wantTier, in.LengthTier)
		})
	}
}

func TestPageModel_CalculatorUpdatesView(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tea.WindowSizeMsg{Width: 120, Height: 200})
	assert.Contains(t, m.View(), "50g")

	for range 90 {
		press(m, right)
	}
	press(m, down, right)
	assert.Contains(t, m.View(), "750g")
}

func TestPageModel_DetailsModal(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tab, down, enter)

	require.Equal(t, PageStateDetails, m.State())
	sel, ok := m.Session().Selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Rank)
	assert.Contains(t, m.View(), "What it involves:")

	press(m, keyRunes("x"))
	assert.Equal(t, PageStateBrowsing, m.State())
	_, ok = m.Session().Selected()
	assert.False(t, ok)

	// Closing again is a no-op.
	m.closeDetails()
	assert.Equal(t, PageStateBrowsing, m.State())
}

func TestPageModel_DetailsCloseKeys(t *testing.T) {
	for name, k := range map[string]tea.KeyMsg{
		"esc":       esc,
		"x":         keyRunes("x"),
		"other key": keyRunes("a"),
		"enter":     enter,
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestPage(t, false)
			press(m, tab, enter)
			require.Equal(t, PageStateDetails, m.State())

			press(m, k)
			assert.Equal(t, PageStateBrowsing, m.State())
			_, ok := m.Session().Selected()
			assert.False(t, ok)
		})
	}
}

func TestPageModel_DetailsShowsCloseHint(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tab, enter)
	require.Equal(t, PageStateDetails, m.State())
	assert.Contains(t, m.View(), "esc/x")
}

func TestPageModel_CloseKeyWhileBrowsing(t *testing.T) {
	for name, k := range map[string]tea.KeyMsg{
		"esc": esc,
		"x":   keyRunes("x"),
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestPage(t, false)
			press(m, tab, down)
			before := m.cards.Selected()

			press(m, k)
			assert.Equal(t, PageStateBrowsing, m.State())
			assert.Equal(t, SectionCards, m.Focus())
			assert.Equal(t, before, m.cards.Selected())
			_, ok := m.Session().Selected()
			assert.False(t, ok)
		})
	}
}

func TestPageModel_DetailsMouse(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tea.WindowSizeMsg{Width: 160, Height: 80}, tab, enter)
	require.Equal(t, PageStateDetails, m.State())

	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	press(m, click(80, 40))
	assert.Equal(t, PageStateDetails, m.State(), "click inside the box keeps it open")

	press(m, click(0, 0))
	assert.Equal(t, PageStateBrowsing, m.State())
}

func TestPageModel_Tips(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tab, tab)
	require.Equal(t, SectionTips, m.Focus())

	press(m, enter)
	assert.True(t, m.Session().TipExpanded(1))

	press(m, down, space)
	assert.True(t, m.Session().TipExpanded(2))

	press(m, up, enter)
	assert.False(t, m.Session().TipExpanded(1))
	assert.True(t, m.Session().TipExpanded(2))
}

func TestPageModel_Pledges(t *testing.T) {
	m := newTestPage(t, false)
	press(m, shiftTab)
	require.Equal(t, SectionPledges, m.Focus())

	press(m, space)
	pledges := m.Session().Pledges()
	assert.True(t, pledges[catalog.PledgeBatch])
	assert.Equal(t, 1, pledges.Count())

	press(m, down, enter)
	pledges = m.Session().Pledges()
	assert.True(t, pledges[catalog.PledgeSpecific])
	assert.True(t, pledges[catalog.PledgeBatch])

	press(m, up, space)
	pledges = m.Session().Pledges()
	assert.False(t, pledges[catalog.PledgeBatch])
	assert.Equal(t, 1, pledges.Count())
}

func TestPageModel_HelpToggle(t *testing.T) {
	m := newTestPage(t, false)
	assert.False(t, m.help.ShowAll)
	press(m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestPageModel_ForceQuitFromModal(t *testing.T) {
	m := newTestPage(t, false)
	press(m, tab, enter)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, PageStateQuitting, m.State())
	require.NotNil(t, cmd)
}

func TestPlaceOffset(t *testing.T) {
	assert.Equal(t, 0, placeOffset(10, 20))
	assert.Equal(t, 5, placeOffset(20, 10))
	assert.Equal(t, 3, placeOffset(15, 10))
}

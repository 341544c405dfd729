package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/catalog"
)

func TestRevealBoard_Lifecycle(t *testing.T) {
	b := NewRevealBoard()
	assert.Equal(t, Hidden, b.State("card-1"))

	ticket, ok := b.Schedule("card-1", 100*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, ticket.Delay)
	assert.True(t, b.Pending("card-1"))
	assert.False(t, b.Visible("card-1"))

	assert.True(t, b.Fire(ticket))
	assert.True(t, b.Visible("card-1"))
	assert.False(t, b.Pending("card-1"))

	// Visible is terminal.
	_, ok = b.Schedule("card-1", time.Millisecond)
	assert.False(t, ok)
	assert.False(t, b.Fire(ticket), "a ticket fires once")
	assert.True(t, b.Visible("card-1"))
}

func TestRevealBoard_DuplicateScheduleIgnored(t *testing.T) {
	b := NewRevealBoard()
	_, ok := b.Schedule("tile", time.Second)
	require.True(t, ok)
	_, ok = b.Schedule("tile", time.Millisecond)
	assert.False(t, ok)
}

func TestRevealBoard_CancelSuppressesTransition(t *testing.T) {
	b := NewRevealBoard()
	ticket, ok := b.Schedule("card-2", 200*time.Millisecond)
	require.True(t, ok)

	b.Cancel("card-2")
	assert.False(t, b.Fire(ticket))
	assert.Equal(t, Hidden, b.State("card-2"))

	// A new ticket after cancel is honoured; the stale one is not.
	fresh, ok := b.Schedule("card-2", 200*time.Millisecond)
	require.True(t, ok)
	assert.False(t, b.Fire(ticket))
	assert.True(t, b.Fire(fresh))
}

func TestRevealBoard_CancelAllOnTeardown(t *testing.T) {
	b := NewRevealBoard()
	t1, _ := b.Schedule("a", time.Millisecond)
	t2, _ := b.Schedule("b", time.Millisecond)

	b.CancelAll()

	assert.False(t, b.Fire(t1))
	assert.False(t, b.Fire(t2))
	assert.False(t, b.Visible("a"))
	_, ok := b.Schedule("c", time.Millisecond)
	assert.False(t, ok, "closed board accepts no new work")
}

func TestRevealBoard_UnknownTicket(t *testing.T) {
	b := NewRevealBoard()
	assert.False(t, b.Fire(Ticket{ID: "nope"}))
	b.Cancel("nope")
}

func TestScheduleEntrances(t *testing.T) {
	content := catalog.Default()
	s := NewSession(content)

	tickets := s.ScheduleEntrances(0)
	require.Len(t, tickets, len(content.Comparisons)+len(content.EnergyBars)+len(content.Categories))

	delays := make(map[string]time.Duration, len(tickets))
	for _, tk := range tickets {
		delays[tk.ID] = tk.Delay
	}
	assert.Equal(t, 100*time.Millisecond, delays["card-1"])
	assert.Equal(t, 1100*time.Millisecond, delays["card-11"])
	assert.Equal(t, ComparisonRevealDelay, delays["comparison-0"])
	assert.Equal(t, 500*time.Millisecond, delays["energy-0"])
	assert.Equal(t, 1300*time.Millisecond, delays["energy-4"])

	// A second call schedules nothing new.
	assert.Empty(t, s.ScheduleEntrances(0))
}

func TestRevealAll(t *testing.T) {
	s := NewSession(catalog.Default())
	s.ScheduleEntrances(0)
	s.RevealAll()

	for _, cat := range catalog.All() {
		assert.True(t, s.Reveals().Visible(cat.RevealID()))
	}
	assert.True(t, s.Reveals().Visible(catalog.EnergyBarRevealID(2)))
}

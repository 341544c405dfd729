package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders the item at index. selected marks the cursor row and
// focused reports whether the list currently receives keys.
type RenderFunc[T any] func(index int, item T, selected, focused bool) string

// VirtualListModel is a scrolling list that renders only its visible window.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int
	offset   int // first visible index
	height   int
	width    int
	focused  bool
}

// NewVirtualListModel creates a list showing height rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.follow()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on navigation keys. Other messages are ignored.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m.handleKeyMsg(msg)
	}
	return m, nil
}

// HandleKey applies a navigation key and reports whether it moved the cursor.
func (m *VirtualListModel[T]) HandleKey(msg tea.KeyMsg) bool {
	before := m.selected
	m.handleKeyMsg(msg)
	return before != m.selected
}

//nolint:exhaustive // Only navigation keys are relevant.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			m.SetSelected(m.selected + 1)
		case "k":
			m.SetSelected(m.selected - 1)
		case "g":
			m.SetSelected(0)
		case "G":
			m.SetSelected(len(m.items) - 1)
		}
	}
}

// follow scrolls the window the minimum amount needed to show the cursor.
func (m *VirtualListModel[T]) follow() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
	if maxOffset := len(m.items) - m.height; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// View renders the visible window, one item per line.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var b strings.Builder
	for i := m.offset; i < m.VisibleTo(); i++ {
		if i > m.offset {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderFunc(i, m.items[i], i == m.selected, m.focused))
	}
	return b.String()
}

// SetItems replaces the items and clamps the cursor.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetFocused marks whether the list receives keys; it only affects rendering.
func (m *VirtualListModel[T]) SetFocused(focused bool) {
	m.focused = focused
}

// SetSize changes the viewport.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.follow()
}

// ItemCount returns the number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamped to the item range.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.follow()
}

// VisibleFrom returns the first visible index.
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.offset
}

// VisibleTo returns the index after the last visible item.
func (m *VirtualListModel[T]) VisibleTo() int {
	return min(m.offset+m.height, len(m.items))
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or nil when empty.
func (m *VirtualListModel[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

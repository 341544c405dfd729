// Package listview provides a cursor-driven list for Bubble Tea models.
//
// Only the rows inside the viewport are rendered; the window follows the
// cursor so the selected row is always on screen. Navigation covers up/down,
// j/k, pgup/pgdn and home/end.
package listview

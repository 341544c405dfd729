package tui

import (
	"fmt"
	"io"

	"github.com/rshade/mindful/internal/session"
)

// StaticOptions configures RenderStaticPage.
type StaticOptions struct {
	Width int
	Plain bool
}

// RenderStaticPage writes the whole page to w with every entrance visible.
// The calculator, pledges and any selected card come from s; s itself is not
// modified.
func RenderStaticPage(w io.Writer, s *session.Session, opts StaticOptions) error {
	snapshot := s.Clone()
	snapshot.RevealAll()

	width := opts.Width
	if width <= 0 {
		width = pageDefaultWidth
	}

	r := newPageRenderer(snapshot.Content(), snapshot, width, opts.Plain)
	page, _ := r.render(pageFocus{})
	if _, err := fmt.Fprintln(w, page); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

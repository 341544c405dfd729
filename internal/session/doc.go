// Package session owns the ephemeral interaction state of one page view.
//
// A Session holds the calculator position, the selected usage category shown
// in the details overlay, the pledge checkboxes, expanded tips and the reveal
// board that sequences entrance transitions. Nothing is persisted; a new page
// view starts from NewSession.
//
// Sessions are not safe for concurrent use. All mutation happens on the UI
// event loop (the bubbletea Update loop, or a single HTTP request).
package session

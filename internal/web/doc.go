// Package web serves the page as HTML and exposes the calculator and catalog
// as JSON.
//
// The HTML page keeps no server-side state. Every interaction is a link or a
// GET form whose query string carries the session (see session.FromValues),
// so the page works without JavaScript. Entrance animations are plain CSS
// with per-element delays.
package web

// Package catalog holds the page's editorial content.
//
// The content is compiled into the binary from content.yaml and parsed once
// at first use. It is read-only: every accessor returns copies, and there are
// no mutation operations. Embedded content that fails validation is a
// programming error and panics on load.
package catalog

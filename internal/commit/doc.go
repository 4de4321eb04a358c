// Package commit defines the commit type vocabulary and renders the
// structured commit message produced by the interactive commit flow.
package commit

// Package prompt provides the interactive primitives for the commit flow:
// yes/no confirmation, single-line text input, fuzzy-filtered selection,
// multi-selection, and an external-editor prompt for long-form sections.
//
// All prompts run their Bubbletea program on stderr so stdout stays clean,
// and report cancellation (ctrl+c / esc) explicitly so callers can abort
// the whole flow instead of committing half-answered data.
package prompt

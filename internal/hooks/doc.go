// Package hooks defines the static hook catalog: for every supported
// language ecosystem, the ordered list of external tool invocations the
// health check runs. The catalog is versioned data, not logic; adding an
// ecosystem means adding a table entry here and a profile in the stack
// package, nothing else.
package hooks

// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// breath shells out to the tools it orchestrates (git, hg, cargo, npm, go,
// ...) rather than linking against libraries. This keeps the behavior
// identical to what the user gets on their own terminal and picks up their
// configuration (credential helpers, tool config files) for free.
//
// Three execution styles are provided:
//
//   - [Capture] runs a tool and keeps stdout and stderr in separate
//     buffers, reporting the exit status as data. Used by the health check
//     where a failing tool is a result, not an error.
//   - [RunContext] and [OutputContext] treat a non-zero exit as an error
//     and fold the tool's stderr into the error message.
//   - [Interactive] hands the terminal to the child, for passthrough
//     commands like status and diff.
package cmd

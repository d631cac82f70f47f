// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution and OSExecutableFinder for search-path lookups,
// and defines the abstractions autosync uses to run the git binary in a
// testable manner.
package execshell

// Package applog configures the process-wide zerolog.Logger used for
// diagnostics and debug-only invariant assertions (spec.md §7 "Recovery:
// ... Intermediate assertions ... are debug-only").
package applog

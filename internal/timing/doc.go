// Package timing implements the process-wide wall-clock accumulator behind
// the ldrawing CLI's --time flag (spec.md §5, §6): four independent stage
// durations, not on the critical path.
package timing

// Package engine runs a complete resolution: it validates the explicit
// inputs, parses the target, and derives the link plan, compiler flags and
// header list in one call. It never reads the process environment; callers
// assemble Inputs from configuration.
package engine

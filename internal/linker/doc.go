// Package linker derives the link plan for a target: which library search
// directories to add and which libraries to link, statically or dynamically,
// for the core SDK and each enabled feature module. The dispatch is a table
// of platform families whose predicates never overlap.
package linker

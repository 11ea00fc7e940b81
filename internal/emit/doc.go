// Package emit renders a resolution for the tool that consumes it: cargo
// build-script directives, a cgo preamble, YAML, JSON or a text summary.
// Files are written under an advisory lock so concurrent builds sharing an
// output directory never observe a partial file.
package emit

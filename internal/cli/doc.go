// Package cli defines the Cobra command tree for the fmodlink CLI. Each file
// in this package registers one top-level command (resolve, emit, doctor,
// etc.) with the root command. Commands delegate resolution to
// internal/engine and only handle flags, configuration and output.
package cli

// Package sdkerr defines the error kinds shared by the resolver packages.
// Every kind is fatal for a build: callers wrap them with context and match
// them with errors.Is, never retry.
package sdkerr

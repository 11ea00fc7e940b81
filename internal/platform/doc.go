// Package platform parses target triples into a closed set of architecture,
// vendor, operating system and environment values. Alias spellings
// (aarch64/arm64, x86_64/amd64, darwin/macosx) normalise to the same value, so
// everything downstream only ever sees one representation per target.
package platform

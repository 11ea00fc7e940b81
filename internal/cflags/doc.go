// Package cflags builds the ordered compiler argument list (include
// directories and preprocessor defines) handed to a binding generator.
package cflags

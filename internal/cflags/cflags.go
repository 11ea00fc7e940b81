package cflags

import (
	"unicode/utf8"

	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

// webDefines are always passed for the emscripten target so the headers
// declare exported symbols with attributes instead of dllexport.
var webDefines = []string{"DLL_EXPORTS", "F_USE_ATTRIBUTE"}

// Set is an ordered list of compiler arguments.
type Set []string

// Resolve returns -I flags for core, the extra include directories and each
// enabled module, followed by one -D per enabled module. The order only
// depends on the inputs.
func Resolve(sdkRoot string, t platform.Triple, features sdk.FeatureSet, extraIncludes []string) (Set, error) {
	var dirs []string
	dirs = append(dirs, sdk.Core.IncludeDir(sdkRoot))
	dirs = append(dirs, extraIncludes...)

	var defines []string
	for _, f := range features {
		m, ok := sdk.ModuleFor(f)
		if !ok {
			continue
		}
		dirs = append(dirs, m.IncludeDir(sdkRoot))
		if m.Define != "" {
			defines = append(defines, m.Define)
		}
	}
	if t.IsWeb() {
		defines = append(defines, webDefines...)
	}

	set := make(Set, 0, len(dirs)+len(defines))
	for _, dir := range dirs {
		if !utf8.ValidString(dir) {
			return nil, sdkerr.BadPath("include dir", dir)
		}
		set = append(set, "-I"+dir)
	}
	for _, def := range defines {
		set = append(set, "-D"+def)
	}
	return set, nil
}

// IncludeDirs returns the directories of the -I flags in order.
func (s Set) IncludeDirs() []string {
	var dirs []string
	for _, f := range s {
		if len(f) > 2 && f[:2] == "-I" {
			dirs = append(dirs, f[2:])
		}
	}
	return dirs
}

// Defines returns the macros of the -D flags in order.
func (s Set) Defines() []string {
	var defs []string
	for _, f := range s {
		if len(f) > 2 && f[:2] == "-D" {
			defs = append(defs, f[2:])
		}
	}
	return defs
}

// Headers returns the SDK headers a binding generator should include for
// the given features.
func Headers(features sdk.FeatureSet) []string {
	var headers []string
	for _, m := range features.Modules() {
		headers = append(headers, m.Headers...)
	}
	return headers
}

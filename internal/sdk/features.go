package sdk

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/judemille/fmodlink/internal/sdkerr"
)

// Feature is an optional SDK module.
type Feature string

const (
	// FeatureFSBank is the bank conversion library.
	FeatureFSBank Feature = "fsbank"
	// FeatureStudio is the extended Studio runtime built on top of core.
	FeatureStudio Feature = "studio"
)

// AllFeatures lists every optional feature in canonical order.
var AllFeatures = []Feature{FeatureFSBank, FeatureStudio}

// FeatureSet is an ordered, duplicate-free set of features.
type FeatureSet []Feature

// ParseFeatures validates feature names and returns them in canonical order.
// Empty names are ignored so comma-split input with trailing commas works.
func ParseFeatures(names []string) (FeatureSet, error) {
	want := make(map[Feature]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		f := Feature(n)
		if !f.Valid() {
			return nil, sdkerr.Unsupported(fmt.Sprintf("feature %q", n), "unknown feature (known: %s)", strings.Join(FeatureNames(), ", "))
		}
		want[f] = true
	}

	set := make(FeatureSet, 0, len(want))
	for _, f := range AllFeatures {
		if want[f] {
			set = append(set, f)
		}
	}
	return set, nil
}

// NewFeatureSet builds a set from already-validated features.
func NewFeatureSet(features ...Feature) FeatureSet {
	set := make(FeatureSet, 0, len(features))
	for _, f := range AllFeatures {
		for _, g := range features {
			if f == g {
				set = append(set, f)
				break
			}
		}
	}
	return set
}

// FeatureNames returns the names of every known feature.
func FeatureNames() []string {
	names := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		names[i] = string(f)
	}
	return names
}

// Valid reports whether f is a known feature.
func (f Feature) Valid() bool {
	for _, g := range AllFeatures {
		if f == g {
			return true
		}
	}
	return false
}

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	for _, g := range s {
		if g == f {
			return true
		}
	}
	return false
}

// Strings returns the feature names in set order.
func (s FeatureSet) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = string(f)
	}
	return out
}

// Module is one API directory of the SDK (api/<dir>).
type Module struct {
	Dir     string
	Feature Feature
	Define  string
	Headers []string
}

var (
	// Core is always linked.
	Core = Module{
		Dir: "core",
		Headers: []string{
			"fmod.h",
			"fmod_codec.h",
			"fmod_dsp.h",
			"fmod_dsp_effects.h",
			"fmod_errors.h",
			"fmod_output.h",
		},
	}
	// FSBank is enabled by FeatureFSBank.
	FSBank = Module{
		Dir:     "fsbank",
		Feature: FeatureFSBank,
		Define:  "_BINDGEN_FSBANK_",
		Headers: []string{"fsbank.h", "fsbank_errors.h"},
	}
	// Studio is enabled by FeatureStudio.
	Studio = Module{
		Dir:     "studio",
		Feature: FeatureStudio,
		Define:  "_BINDGEN_STUDIO_",
		Headers: []string{"fmod_studio.h"},
	}
)

// ModuleFor returns the module enabled by f.
func ModuleFor(f Feature) (Module, bool) {
	switch f {
	case FeatureFSBank:
		return FSBank, true
	case FeatureStudio:
		return Studio, true
	}
	return Module{}, false
}

// Modules returns core followed by the modules enabled by the set.
func (s FeatureSet) Modules() []Module {
	mods := []Module{Core}
	for _, f := range s {
		if m, ok := ModuleFor(f); ok {
			mods = append(mods, m)
		}
	}
	return mods
}

// Stem returns the library name of the module before any suffixes.
func (m Module) Stem(base string) string {
	switch m.Dir {
	case "studio":
		return base + "studio"
	case "fsbank":
		return "fsbank"
	}
	return base
}

// LibDir returns <root>/api/<module>/lib.
func (m Module) LibDir(root string) string {
	return filepath.Join(root, "api", m.Dir, "lib")
}

// IncludeDir returns <root>/api/<module>/inc.
func (m Module) IncludeDir(root string) string {
	return filepath.Join(root, "api", m.Dir, "inc")
}

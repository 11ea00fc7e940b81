package sdk

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/judemille/fmodlink/internal/sdkerr"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		input []string
		want  []string
	}{
		{nil, []string{}},
		{[]string{"studio"}, []string{"studio"}},
		{[]string{"studio", "fsbank"}, []string{"fsbank", "studio"}},
		{[]string{" Studio ", "studio", ""}, []string{"studio"}},
	}

	for _, tt := range tests {
		got, err := ParseFeatures(tt.input)
		if err != nil {
			t.Errorf("ParseFeatures(%v) error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got.Strings(), tt.want) {
			t.Errorf("ParseFeatures(%v) = %v, want %v", tt.input, got.Strings(), tt.want)
		}
	}
}

func TestParseFeaturesUnknown(t *testing.T) {
	_, err := ParseFeatures([]string{"studio", "reverb"})
	if err == nil {
		t.Fatal("expected error for unknown feature")
	}
	if !errors.Is(err, sdkerr.ErrUnsupportedConfiguration) {
		t.Errorf("expected ErrUnsupportedConfiguration, got %v", err)
	}
}

func TestFeatureSetModules(t *testing.T) {
	set := NewFeatureSet(FeatureStudio, FeatureFSBank)
	mods := set.Modules()
	var dirs []string
	for _, m := range mods {
		dirs = append(dirs, m.Dir)
	}
	if !reflect.DeepEqual(dirs, []string{"core", "fsbank", "studio"}) {
		t.Errorf("Modules() dirs = %v", dirs)
	}
	if !set.Has(FeatureStudio) || !set.Has(FeatureFSBank) {
		t.Error("expected both features in set")
	}
	if NewFeatureSet().Has(FeatureStudio) {
		t.Error("empty set should not contain studio")
	}
}

func TestModuleNames(t *testing.T) {
	root := filepath.Join("sdk", "root")
	tests := []struct {
		mod    Module
		stem   string
		libDir string
		incDir string
	}{
		{Core, "mylib", filepath.Join(root, "api", "core", "lib"), filepath.Join(root, "api", "core", "inc")},
		{Studio, "mylibstudio", filepath.Join(root, "api", "studio", "lib"), filepath.Join(root, "api", "studio", "inc")},
		{FSBank, "fsbank", filepath.Join(root, "api", "fsbank", "lib"), filepath.Join(root, "api", "fsbank", "inc")},
	}

	for _, tt := range tests {
		t.Run(tt.mod.Dir, func(t *testing.T) {
			if got := tt.mod.Stem("mylib"); got != tt.stem {
				t.Errorf("Stem = %q, want %q", got, tt.stem)
			}
			if got := tt.mod.LibDir(root); got != tt.libDir {
				t.Errorf("LibDir = %q, want %q", got, tt.libDir)
			}
			if got := tt.mod.IncludeDir(root); got != tt.incDir {
				t.Errorf("IncludeDir = %q, want %q", got, tt.incDir)
			}
		})
	}
}

package cflags

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

const root = "/opt/fmod"

func inc(module string) string {
	return "-I" + filepath.Join(root, "api", module, "inc")
}

func TestResolve(t *testing.T) {
	linux := platform.MustParse("x86_64-unknown-linux-gnu")
	web := platform.MustParse("wasm32-unknown-emscripten")

	tests := []struct {
		name     string
		triple   platform.Triple
		features sdk.FeatureSet
		extra    []string
		want     Set
	}{
		{"core only", linux, nil, nil, Set{inc("core")}},
		{"studio", linux, sdk.NewFeatureSet(sdk.FeatureStudio), nil, Set{inc("core"), inc("studio"), "-D_BINDGEN_STUDIO_"}},
		{
			"all features",
			linux,
			sdk.NewFeatureSet(sdk.FeatureStudio, sdk.FeatureFSBank),
			nil,
			Set{inc("core"), inc("fsbank"), inc("studio"), "-D_BINDGEN_FSBANK_", "-D_BINDGEN_STUDIO_"},
		},
		{"extra includes", linux, nil, []string{"/usr/include/extra"}, Set{inc("core"), "-I/usr/include/extra"}},
		{"web core", web, nil, nil, Set{inc("core"), "-DDLL_EXPORTS", "-DF_USE_ATTRIBUTE"}},
		{
			"web studio",
			web,
			sdk.NewFeatureSet(sdk.FeatureStudio),
			nil,
			Set{inc("core"), inc("studio"), "-D_BINDGEN_STUDIO_", "-DDLL_EXPORTS", "-DF_USE_ATTRIBUTE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(root, tt.triple, tt.features, tt.extra)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	features := sdk.NewFeatureSet(sdk.FeatureFSBank, sdk.FeatureStudio)
	for _, tr := range platform.Known() {
		a, _ := Resolve(root, tr, features, nil)
		b, _ := Resolve(root, tr, features, nil)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: flags differ between calls", tr)
		}
	}
}

func TestResolveBadPath(t *testing.T) {
	_, err := Resolve("/opt/\xff\xfe", platform.MustParse("x86_64-unknown-linux-gnu"), nil, nil)
	if !errors.Is(err, sdkerr.ErrPathEncoding) {
		t.Errorf("expected ErrPathEncoding, got %v", err)
	}

	_, err = Resolve(root, platform.MustParse("x86_64-unknown-linux-gnu"), nil, []string{"bad\xff"})
	if !errors.Is(err, sdkerr.ErrPathEncoding) {
		t.Errorf("expected ErrPathEncoding for extra include, got %v", err)
	}
}

func TestSetAccessors(t *testing.T) {
	s := Set{"-I/a", "-I/b", "-DX", "-DY"}
	if got := s.IncludeDirs(); !reflect.DeepEqual(got, []string{"/a", "/b"}) {
		t.Errorf("IncludeDirs = %v", got)
	}
	if got := s.Defines(); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Errorf("Defines = %v", got)
	}
}

func TestHeaders(t *testing.T) {
	got := Headers(sdk.NewFeatureSet(sdk.FeatureStudio))
	want := []string{"fmod.h", "fmod_codec.h", "fmod_dsp.h", "fmod_dsp_effects.h", "fmod_errors.h", "fmod_output.h", "fmod_studio.h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Headers = %v, want %v", got, want)
	}
}

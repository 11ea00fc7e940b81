package platform

import (
	"errors"
	"testing"

	"github.com/judemille/fmodlink/internal/sdkerr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Triple
	}{
		{"x86_64-unknown-linux-gnu", Triple{ArchX86_64, VendorUnknown, OSLinux, EnvGNU, false}},
		{"i686-unknown-linux-gnu", Triple{ArchX86, VendorUnknown, OSLinux, EnvGNU, false}},
		{"armv7-unknown-linux-gnueabihf", Triple{ArchARMv7, VendorUnknown, OSLinux, EnvGNUEABIHF, false}},
		{"x86_64-pc-windows-msvc", Triple{ArchX86_64, VendorPC, OSWindows, EnvMSVC, false}},
		{"i686-pc-windows-gnu", Triple{ArchX86, VendorPC, OSWindows, EnvGNU, false}},
		{"thumbv7a-uwp-windows-msvc", Triple{ArchARMv7, VendorUWP, OSWindows, EnvMSVC, false}},
		{"aarch64-apple-darwin", Triple{ArchAarch64, VendorApple, OSMacOS, EnvNone, false}},
		{"arm64-apple-macosx", Triple{ArchAarch64, VendorApple, OSMacOS, EnvNone, false}},
		{"aarch64-linux-android", Triple{ArchAarch64, VendorUnknown, OSLinux, EnvAndroid, false}},
		{"armv7-linux-androideabi", Triple{ArchARMv7, VendorUnknown, OSLinux, EnvAndroidEABI, false}},
		{"aarch64-apple-ios", Triple{ArchAarch64, VendorApple, OSIOS, EnvNone, false}},
		{"arm64e-apple-ios", Triple{ArchAarch64, VendorApple, OSIOS, EnvNone, false}},
		{"aarch64-apple-ios-sim", Triple{ArchAarch64, VendorApple, OSIOS, EnvSim, true}},
		{"x86_64-apple-ios", Triple{ArchX86_64, VendorApple, OSIOS, EnvNone, true}},
		{"aarch64-apple-tvos-sim", Triple{ArchAarch64, VendorApple, OSTVOS, EnvSim, true}},
		{"wasm32-unknown-emscripten", Triple{ArchWasm32, VendorUnknown, OSEmscripten, EnvNone, false}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	inputs := []string{
		"",
		"x86_64",
		"mips-unknown-linux-gnu",
		"x86_64-unknown-linux",
		"x86_64-linux-gnu",
		"x86_64-unknown-linux-musl",
		"x86_64-unknown-freebsd",
		"wasm32-unknown-unknown",
		"x86_64-unknown-emscripten",
		"x86_64-unknown-linux-gnueabihf",
		"x86_64-linux-androideabi",
		"x86_64-apple-windows-msvc",
		"x86_64-pc-windows",
		"aarch64-apple-darwin-gnu",
		"aarch64-apple-ios-sim-extra",
		"arm64e-unknown-linux-gnu",
		"aarch64-unknown-ios",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, expected error", in)
			}
			if !errors.Is(err, sdkerr.ErrUnrecognizedTriple) {
				t.Errorf("Parse(%q) error %v is not ErrUnrecognizedTriple", in, err)
			}
		})
	}
}

func TestParseAliasesAreIdentical(t *testing.T) {
	pairs := [][2]string{
		{"aarch64-apple-darwin", "arm64-apple-darwin"},
		{"aarch64-apple-darwin", "arm64-apple-macosx"},
		{"aarch64-unknown-linux-gnu", "arm64-unknown-linux-gnu"},
		{"x86_64-unknown-linux-gnu", "amd64-unknown-linux-gnu"},
		{"i686-pc-windows-msvc", "i386-pc-windows-msvc"},
		{"aarch64-apple-ios", "arm64e-apple-ios"},
		{"armv7-uwp-windows-msvc", "thumbv7a-uwp-windows-msvc"},
	}

	for _, p := range pairs {
		a, b := MustParse(p[0]), MustParse(p[1])
		if a != b {
			t.Errorf("%s parsed to %+v, %s parsed to %+v", p[0], a, p[1], b)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range knownTriples {
		got := MustParse(s).String()
		if got != s {
			t.Errorf("MustParse(%q).String() = %q", s, got)
		}
	}
}

func TestKnown(t *testing.T) {
	known := Known()
	if len(known) != len(knownTriples) {
		t.Fatalf("Known() returned %d triples, want %d", len(known), len(knownTriples))
	}
	seen := make(map[Triple]bool)
	for _, tr := range known {
		if seen[tr] {
			t.Errorf("duplicate known triple %s", tr)
		}
		seen[tr] = true
	}
}

func TestFromGo(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm", "armv7-unknown-linux-gnueabihf"},
		{"windows", "386", "i686-pc-windows-msvc"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"android", "arm64", "aarch64-linux-android"},
		{"ios", "arm64", "aarch64-apple-ios"},
	}

	for _, tt := range tests {
		got, err := FromGo(tt.goos, tt.goarch)
		if err != nil {
			t.Errorf("FromGo(%s, %s) error: %v", tt.goos, tt.goarch, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("FromGo(%s, %s) = %s, want %s", tt.goos, tt.goarch, got, tt.want)
		}
	}

	if _, err := FromGo("plan9", "amd64"); err == nil {
		t.Error("expected error for plan9")
	}
	if _, err := FromGo("linux", "mips"); err == nil {
		t.Error("expected error for mips")
	}
}

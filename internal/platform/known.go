package platform

import (
	"fmt"
	"runtime"
)

// knownTriples lists every target the SDK ships libraries for, in the
// canonical spelling Triple.String produces.
var knownTriples = []string{
	"i686-unknown-linux-gnu",
	"x86_64-unknown-linux-gnu",
	"arm-unknown-linux-gnueabihf",
	"armv7-unknown-linux-gnueabihf",
	"aarch64-unknown-linux-gnu",
	"i686-pc-windows-msvc",
	"x86_64-pc-windows-msvc",
	"i686-pc-windows-gnu",
	"x86_64-pc-windows-gnu",
	"i686-uwp-windows-msvc",
	"x86_64-uwp-windows-msvc",
	"armv7-uwp-windows-msvc",
	"x86_64-apple-darwin",
	"aarch64-apple-darwin",
	"armv7-linux-androideabi",
	"aarch64-linux-android",
	"i686-linux-android",
	"x86_64-linux-android",
	"aarch64-apple-ios",
	"aarch64-apple-ios-sim",
	"x86_64-apple-ios",
	"aarch64-apple-tvos",
	"aarch64-apple-tvos-sim",
	"x86_64-apple-tvos",
	"wasm32-unknown-emscripten",
}

// Known returns every supported triple in a stable order.
func Known() []Triple {
	out := make([]Triple, 0, len(knownTriples))
	for _, s := range knownTriples {
		out = append(out, MustParse(s))
	}
	return out
}

// Host returns the triple for the platform this binary runs on.
func Host() (Triple, error) {
	return FromGo(runtime.GOOS, runtime.GOARCH)
}

// FromGo maps a GOOS/GOARCH pair to the equivalent target triple.
func FromGo(goos, goarch string) (Triple, error) {
	var arch string
	switch goarch {
	case "386":
		arch = "i686"
	case "amd64":
		arch = "x86_64"
	case "arm":
		arch = "armv7"
	case "arm64":
		arch = "aarch64"
	case "wasm":
		arch = "wasm32"
	default:
		return Triple{}, fmt.Errorf("no target triple for GOARCH %q", goarch)
	}

	var s string
	switch goos {
	case "linux":
		if arch == "armv7" {
			s = arch + "-unknown-linux-gnueabihf"
		} else {
			s = arch + "-unknown-linux-gnu"
		}
	case "windows":
		s = arch + "-pc-windows-msvc"
	case "darwin":
		s = arch + "-apple-darwin"
	case "android":
		if arch == "armv7" {
			s = arch + "-linux-androideabi"
		} else {
			s = arch + "-linux-android"
		}
	case "ios":
		s = arch + "-apple-ios"
	case "js":
		s = arch + "-unknown-emscripten"
	default:
		return Triple{}, fmt.Errorf("no target triple for GOOS %q", goos)
	}
	return Parse(s)
}

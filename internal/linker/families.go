package linker

import (
	"fmt"

	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

// family is one branch of the platform dispatch. The match predicates must
// be mutually exclusive; familyFor refuses to pick when two claim a target.
type family struct {
	name    string
	match   func(platform.Triple) bool
	resolve func(*resolution) error
}

var families = []family{
	{name: "web", match: isWeb, resolve: resolveWeb},
	{name: "windows", match: isWindows, resolve: resolveWindows},
	{name: "macos", match: isMacOS, resolve: resolveMacOS},
	{name: "linux", match: isLinuxDesktop, resolve: resolveLinux},
	{name: "android", match: platform.Triple.IsAndroid, resolve: resolveAndroid},
	{name: "apple-mobile", match: isAppleMobile, resolve: resolveAppleMobile},
}

// familyFor returns the single family that handles t.
func familyFor(t platform.Triple) (family, error) {
	var matched []family
	for _, f := range families {
		if f.match(t) {
			matched = append(matched, f)
		}
	}
	switch len(matched) {
	case 0:
		return family{}, sdkerr.Unsupported(t.String(), "no platform family handles this target")
	case 1:
		return matched[0], nil
	default:
		return family{}, fmt.Errorf("internal error: families %s and %s both match %s", matched[0].name, matched[1].name, t)
	}
}

func isWeb(t platform.Triple) bool {
	return t.OS == platform.OSEmscripten && t.Arch == platform.ArchWasm32
}

func isWindows(t platform.Triple) bool {
	return t.OS == platform.OSWindows
}

func isMacOS(t platform.Triple) bool {
	return t.OS == platform.OSMacOS
}

func isLinuxDesktop(t platform.Triple) bool {
	if t.OS != platform.OSLinux {
		return false
	}
	switch t.Env {
	case platform.EnvGNU, platform.EnvGNUEABI, platform.EnvGNUEABIHF:
		return true
	}
	return false
}

func isAppleMobile(t platform.Triple) bool {
	return t.OS == platform.OSIOS || t.OS == platform.OSTVOS
}

// resolveWeb links the prebuilt emscripten archive by exact file name. The
// studio archive already contains core, so only one archive is linked.
func resolveWeb(r *resolution) error {
	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		return r.unsupportedFeature(sdk.FeatureFSBank)
	}
	m := sdk.Core
	if r.cfg.Features.Has(sdk.FeatureStudio) {
		m = sdk.Studio
	}
	r.add(m, r.libDir(m, "upstream", "w32"), StaticVerbatim, r.stem(m)+"_wasm.a")
	return nil
}

// resolveWindows handles both desktop (pc) and UWP targets. Desktop import
// libraries carry a _vc infix, UWP ones do not, except fsbank which always does.
func resolveWindows(r *resolution) error {
	uwp := r.triple.Vendor == platform.VendorUWP

	var sub string
	switch r.triple.Arch {
	case platform.ArchX86:
		sub = "x86"
	case platform.ArchX86_64:
		sub = "x64"
	case platform.ArchARMv7:
		if !uwp {
			return r.unsupportedArch("windows")
		}
		sub = "arm"
	default:
		return r.unsupportedArch("windows")
	}

	infix := "_vc"
	if uwp {
		infix = ""
	}

	r.add(sdk.Core, r.libDir(sdk.Core, sub), Dynamic, r.stem(sdk.Core)+infix)

	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		if uwp || r.triple.Env != platform.EnvMSVC || r.triple.Arch == platform.ArchARMv7 {
			return r.unsupportedFeature(sdk.FeatureFSBank)
		}
		// No logging build of fsbank ships for Windows, so the debug
		// suffix is never applied here.
		if r.cfg.DebugLogging {
			r.note("fsbank has no logging build on windows; linking the release library")
		}
		dir := r.libDir(sdk.FSBank, sub)
		r.add(sdk.FSBank, dir, Dynamic, sdk.FSBank.Stem(r.cfg.LibraryBaseName)+"_vc")
		vorbis := "libfsbvorbis"
		if r.triple.Arch == platform.ArchX86_64 {
			vorbis = "libfsbvorbis64"
		}
		r.add(sdk.FSBank, dir, Dynamic, vorbis)
		r.add(sdk.FSBank, dir, Dynamic, "opus")
	}

	if r.cfg.Features.Has(sdk.FeatureStudio) {
		r.add(sdk.Studio, r.libDir(sdk.Studio, sub), Dynamic, r.stem(sdk.Studio)+infix)
	}
	return nil
}

// resolveMacOS links universal dylibs that live directly in lib/.
func resolveMacOS(r *resolution) error {
	switch r.triple.Arch {
	case platform.ArchX86_64, platform.ArchAarch64:
	default:
		return r.unsupportedArch("macos")
	}

	r.add(sdk.Core, r.libDir(sdk.Core), Dynamic, r.stem(sdk.Core))
	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		addFSBankDesktop(r, r.libDir(sdk.FSBank))
	}
	if r.cfg.Features.Has(sdk.FeatureStudio) {
		r.add(sdk.Studio, r.libDir(sdk.Studio), Dynamic, r.stem(sdk.Studio))
	}
	return nil
}

func resolveLinux(r *resolution) error {
	var sub string
	switch r.triple.Arch {
	case platform.ArchX86:
		sub = "x86"
	case platform.ArchX86_64:
		sub = "x86_64"
	case platform.ArchARM, platform.ArchARMv7:
		sub = "arm"
	case platform.ArchAarch64:
		sub = "arm64"
	default:
		return r.unsupportedArch("linux")
	}

	r.add(sdk.Core, r.libDir(sdk.Core, sub), Dynamic, r.stem(sdk.Core))
	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		if r.triple.Arch != platform.ArchX86 && r.triple.Arch != platform.ArchX86_64 {
			return r.unsupportedFeature(sdk.FeatureFSBank)
		}
		addFSBankDesktop(r, r.libDir(sdk.FSBank, sub))
	}
	if r.cfg.Features.Has(sdk.FeatureStudio) {
		r.add(sdk.Studio, r.libDir(sdk.Studio, sub), Dynamic, r.stem(sdk.Studio))
	}
	return nil
}

func addFSBankDesktop(r *resolution, dir string) {
	r.add(sdk.FSBank, dir, Dynamic, r.stem(sdk.FSBank))
	r.add(sdk.FSBank, dir, Dynamic, "fsbvorbis")
	r.add(sdk.FSBank, dir, Dynamic, "opus")
}

// resolveAndroid uses the NDK ABI directory names.
func resolveAndroid(r *resolution) error {
	var abi string
	switch r.triple.Arch {
	case platform.ArchX86:
		abi = "x86"
	case platform.ArchX86_64:
		abi = "x86_64"
	case platform.ArchARMv7:
		abi = "armeabi-v7a"
	case platform.ArchAarch64:
		abi = "arm64-v8a"
	default:
		return r.unsupportedArch("android")
	}

	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		return r.unsupportedFeature(sdk.FeatureFSBank)
	}
	r.add(sdk.Core, r.libDir(sdk.Core, abi), Dynamic, r.stem(sdk.Core))
	if r.cfg.Features.Has(sdk.FeatureStudio) {
		r.add(sdk.Studio, r.libDir(sdk.Studio, abi), Dynamic, r.stem(sdk.Studio))
	}
	return nil
}

// resolveAppleMobile links the static archives for iOS and tvOS, picking the
// device or simulator build.
func resolveAppleMobile(r *resolution) error {
	if r.cfg.Features.Has(sdk.FeatureFSBank) {
		return r.unsupportedFeature(sdk.FeatureFSBank)
	}

	prefix := "iphone"
	if r.triple.OS == platform.OSTVOS {
		prefix = "appletv"
	}

	var variant string
	switch {
	case r.triple.Simulator && (r.triple.Arch == platform.ArchAarch64 || r.triple.Arch == platform.ArchX86_64):
		variant = prefix + "simulator"
	case !r.triple.Simulator && r.triple.Arch == platform.ArchAarch64:
		variant = prefix + "os"
	default:
		return r.unsupportedArch(r.triple.OS.String())
	}

	r.add(sdk.Core, r.libDir(sdk.Core), Static, r.stem(sdk.Core)+"_"+variant)
	if r.cfg.Features.Has(sdk.FeatureStudio) {
		r.add(sdk.Studio, r.libDir(sdk.Studio), Static, r.stem(sdk.Studio)+"_"+variant)
	}
	return nil
}

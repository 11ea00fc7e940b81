package platform

import (
	"fmt"
	"strings"

	"github.com/judemille/fmodlink/internal/sdkerr"
)

// Arch is a target CPU architecture.
type Arch int

const (
	ArchX86 Arch = iota + 1
	ArchX86_64
	ArchARM
	ArchARMv7
	ArchAarch64
	ArchWasm32
)

// Vendor is the vendor field of a triple.
type Vendor int

const (
	VendorUnknown Vendor = iota + 1
	VendorPC
	VendorApple
	VendorUWP
)

// OS is a target operating system.
type OS int

const (
	OSLinux OS = iota + 1
	OSWindows
	OSMacOS
	OSIOS
	OSTVOS
	OSEmscripten
)

// Env is the environment/ABI field of a triple.
type Env int

const (
	EnvNone Env = iota + 1
	EnvGNU
	EnvGNUEABI
	EnvGNUEABIHF
	EnvMSVC
	EnvAndroid
	EnvAndroidEABI
	EnvSim
)

// Triple is a normalized compilation target.
type Triple struct {
	Arch      Arch
	Vendor    Vendor
	OS        OS
	Env       Env
	Simulator bool
}

var archTokens = map[string]Arch{
	"i386":     ArchX86,
	"i586":     ArchX86,
	"i686":     ArchX86,
	"x86_64":   ArchX86_64,
	"amd64":    ArchX86_64,
	"arm":      ArchARM,
	"armv7":    ArchARMv7,
	"armv7a":   ArchARMv7,
	"thumbv7a": ArchARMv7,
	"aarch64":  ArchAarch64,
	"arm64":    ArchAarch64,
	"arm64e":   ArchAarch64,
	"wasm32":   ArchWasm32,
}

var vendorTokens = map[string]Vendor{
	"unknown": VendorUnknown,
	"pc":      VendorPC,
	"apple":   VendorApple,
	"uwp":     VendorUWP,
}

var osTokens = map[string]OS{
	"linux":      OSLinux,
	"windows":    OSWindows,
	"darwin":     OSMacOS,
	"macos":      OSMacOS,
	"macosx":     OSMacOS,
	"ios":        OSIOS,
	"tvos":       OSTVOS,
	"emscripten": OSEmscripten,
}

var envTokens = map[string]Env{
	"gnu":         EnvGNU,
	"gnueabi":     EnvGNUEABI,
	"gnueabihf":   EnvGNUEABIHF,
	"msvc":        EnvMSVC,
	"android":     EnvAndroid,
	"androideabi": EnvAndroidEABI,
	"sim":         EnvSim,
}

// Parse parses a dash-separated arch[-vendor]-os[-env] triple. Unknown tokens
// and token combinations the SDK never ships for are rejected with
// sdkerr.ErrUnrecognizedTriple; nothing is defaulted.
func Parse(s string) (Triple, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 || len(parts) > 4 {
		return Triple{}, sdkerr.Unrecognized(s, "expected arch-vendor-os[-env]")
	}

	arch, ok := archTokens[parts[0]]
	if !ok {
		return Triple{}, sdkerr.Unrecognized(s, fmt.Sprintf("unknown architecture %q", parts[0]))
	}

	t := Triple{Arch: arch, Vendor: VendorUnknown, Env: EnvNone}
	rest := parts[1:]
	explicitVendor := false
	if v, ok := vendorTokens[rest[0]]; ok {
		t.Vendor = v
		explicitVendor = true
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Triple{}, sdkerr.Unrecognized(s, "missing operating system")
	}

	osv, ok := osTokens[rest[0]]
	if !ok {
		return Triple{}, sdkerr.Unrecognized(s, fmt.Sprintf("unknown operating system %q", rest[0]))
	}
	t.OS = osv
	rest = rest[1:]

	if len(rest) > 1 {
		return Triple{}, sdkerr.Unrecognized(s, "too many components")
	}
	if len(rest) == 1 {
		env, ok := envTokens[rest[0]]
		if !ok {
			return Triple{}, sdkerr.Unrecognized(s, fmt.Sprintf("unknown environment %q", rest[0]))
		}
		t.Env = env
	}

	if err := t.checkShape(parts[0], explicitVendor); err != nil {
		return Triple{}, sdkerr.Unrecognized(s, err.Error())
	}

	if (t.OS == OSIOS || t.OS == OSTVOS) && (t.Env == EnvSim || t.Arch == ArchX86 || t.Arch == ArchX86_64) {
		t.Simulator = true
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tables and tests.
func MustParse(s string) Triple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// checkShape rejects combinations of individually valid tokens that do not
// form a target triple.
func (t Triple) checkShape(archToken string, explicitVendor bool) error {
	arm32 := t.Arch == ArchARM || t.Arch == ArchARMv7

	if archToken == "arm64e" && t.Vendor != VendorApple {
		return fmt.Errorf("arm64e is only valid for apple targets")
	}
	if t.Arch == ArchWasm32 && t.OS != OSEmscripten {
		return fmt.Errorf("wasm32 requires emscripten")
	}

	switch t.OS {
	case OSLinux:
		switch t.Env {
		case EnvGNU:
			if !explicitVendor || t.Vendor != VendorUnknown {
				return fmt.Errorf("linux gnu targets use the unknown vendor")
			}
		case EnvGNUEABI, EnvGNUEABIHF:
			if !arm32 {
				return fmt.Errorf("%s requires a 32-bit arm architecture", t.Env)
			}
			if !explicitVendor || t.Vendor != VendorUnknown {
				return fmt.Errorf("linux gnu targets use the unknown vendor")
			}
		case EnvAndroid:
			if t.Vendor != VendorUnknown {
				return fmt.Errorf("android targets take no vendor")
			}
		case EnvAndroidEABI:
			if !arm32 {
				return fmt.Errorf("androideabi requires a 32-bit arm architecture")
			}
			if t.Vendor != VendorUnknown {
				return fmt.Errorf("android targets take no vendor")
			}
		default:
			return fmt.Errorf("linux requires a gnu or android environment")
		}
	case OSWindows:
		if t.Vendor != VendorPC && t.Vendor != VendorUWP {
			return fmt.Errorf("windows requires the pc or uwp vendor")
		}
		if t.Env != EnvMSVC && t.Env != EnvGNU {
			return fmt.Errorf("windows requires the msvc or gnu environment")
		}
	case OSMacOS:
		if t.Vendor != VendorApple || t.Env != EnvNone {
			return fmt.Errorf("macos targets are arch-apple-darwin")
		}
	case OSIOS, OSTVOS:
		if t.Vendor != VendorApple {
			return fmt.Errorf("%s requires the apple vendor", t.OS)
		}
		if t.Env != EnvNone && t.Env != EnvSim {
			return fmt.Errorf("%s only accepts the sim environment", t.OS)
		}
	case OSEmscripten:
		if t.Arch != ArchWasm32 || t.Vendor != VendorUnknown || !explicitVendor || t.Env != EnvNone {
			return fmt.Errorf("emscripten is only wasm32-unknown-emscripten")
		}
	}
	return nil
}

// String returns the canonical spelling of the triple.
func (t Triple) String() string {
	var b strings.Builder
	b.WriteString(t.Arch.String())
	if !t.IsAndroid() {
		b.WriteByte('-')
		b.WriteString(t.Vendor.String())
	}
	b.WriteByte('-')
	b.WriteString(t.OS.String())
	if t.Env != EnvNone {
		b.WriteByte('-')
		b.WriteString(t.Env.String())
	}
	return b.String()
}

// IsAndroid reports whether the triple targets Android.
func (t Triple) IsAndroid() bool {
	return t.OS == OSLinux && (t.Env == EnvAndroid || t.Env == EnvAndroidEABI)
}

// IsWeb reports whether the triple targets the sandboxed wasm runtime.
func (t Triple) IsWeb() bool {
	return t.OS == OSEmscripten
}

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "i686"
	case ArchX86_64:
		return "x86_64"
	case ArchARM:
		return "arm"
	case ArchARMv7:
		return "armv7"
	case ArchAarch64:
		return "aarch64"
	case ArchWasm32:
		return "wasm32"
	}
	return fmt.Sprintf("Arch(%d)", int(a))
}

func (v Vendor) String() string {
	switch v {
	case VendorUnknown:
		return "unknown"
	case VendorPC:
		return "pc"
	case VendorApple:
		return "apple"
	case VendorUWP:
		return "uwp"
	}
	return fmt.Sprintf("Vendor(%d)", int(v))
}

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSMacOS:
		return "darwin"
	case OSIOS:
		return "ios"
	case OSTVOS:
		return "tvos"
	case OSEmscripten:
		return "emscripten"
	}
	return fmt.Sprintf("OS(%d)", int(o))
}

func (e Env) String() string {
	switch e {
	case EnvNone:
		return ""
	case EnvGNU:
		return "gnu"
	case EnvGNUEABI:
		return "gnueabi"
	case EnvGNUEABIHF:
		return "gnueabihf"
	case EnvMSVC:
		return "msvc"
	case EnvAndroid:
		return "android"
	case EnvAndroidEABI:
		return "androideabi"
	case EnvSim:
		return "sim"
	}
	return fmt.Sprintf("Env(%d)", int(e))
}

// MarshalText lets triples appear as plain strings in YAML and JSON output.
func (t Triple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

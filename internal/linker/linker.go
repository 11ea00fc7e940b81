package linker

import (
	"fmt"
	"path/filepath"

	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

// DefaultLibraryBaseName is the core library name the SDK ships.
const DefaultLibraryBaseName = "fmod"

// debugSuffix marks the logging build of a library.
const debugSuffix = "L"

// Kind is how a library is linked.
type Kind int

const (
	Dynamic Kind = iota
	Static
	StaticVerbatim
)

func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case StaticVerbatim:
		return "static_verbatim"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind by name in YAML and JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// BuildConfig is the caller-supplied part of a resolution.
type BuildConfig struct {
	LibraryBaseName string
	DebugLogging    bool
	Features        sdk.FeatureSet
}

// Directive is one search-path plus library pair.
type Directive struct {
	Module    string `json:"module" yaml:"module"`
	SearchDir string `json:"search_dir" yaml:"search_dir"`
	Kind      Kind   `json:"kind" yaml:"kind"`
	Name      string `json:"name" yaml:"name"`
	Modifier  string `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

// Plan is the ordered set of link directives for one target.
type Plan struct {
	Triple     platform.Triple `json:"triple" yaml:"triple"`
	Directives []Directive     `json:"directives" yaml:"directives"`
	Notes      []string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SearchDirs returns the distinct search directories in directive order.
func (p *Plan) SearchDirs() []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, d := range p.Directives {
		if !seen[d.SearchDir] {
			seen[d.SearchDir] = true
			dirs = append(dirs, d.SearchDir)
		}
	}
	return dirs
}

// Resolve maps a target and build configuration to link directives for an
// SDK rooted at sdkRoot. Exactly one platform family handles each target;
// a target no family claims, or a feature the family does not ship, is
// sdkerr.ErrUnsupportedConfiguration.
func Resolve(t platform.Triple, sdkRoot string, cfg BuildConfig) (*Plan, error) {
	if cfg.LibraryBaseName == "" {
		cfg.LibraryBaseName = DefaultLibraryBaseName
	}

	fam, err := familyFor(t)
	if err != nil {
		return nil, err
	}

	r := &resolution{
		triple: t,
		root:   sdkRoot,
		cfg:    cfg,
		plan:   &Plan{Triple: t},
	}
	if err := fam.resolve(r); err != nil {
		return nil, err
	}
	return r.plan, nil
}

// resolution carries the inputs and the plan being built through a family.
type resolution struct {
	triple platform.Triple
	root   string
	cfg    BuildConfig
	plan   *Plan
}

// stem returns the module library name with the debug suffix applied.
func (r *resolution) stem(m sdk.Module) string {
	name := m.Stem(r.cfg.LibraryBaseName)
	if r.cfg.DebugLogging {
		name += debugSuffix
	}
	return name
}

// libDir returns the module lib directory joined with sub, if any.
func (r *resolution) libDir(m sdk.Module, sub ...string) string {
	return filepath.Join(append([]string{m.LibDir(r.root)}, sub...)...)
}

func (r *resolution) add(m sdk.Module, dir string, kind Kind, name string) {
	d := Directive{
		Module:    m.Dir,
		SearchDir: dir,
		Kind:      kind,
		Name:      name,
	}
	if kind == StaticVerbatim {
		d.Modifier = "+verbatim"
	}
	r.plan.Directives = append(r.plan.Directives, d)
}

func (r *resolution) note(format string, args ...any) {
	r.plan.Notes = append(r.plan.Notes, fmt.Sprintf(format, args...))
}

// unsupportedFeature fails a resolution because f is not shipped for the target.
func (r *resolution) unsupportedFeature(f sdk.Feature) error {
	return sdkerr.Unsupported(fmt.Sprintf("feature %s on %s", f, r.triple), "the SDK does not ship %s for this platform", f)
}

// unsupportedArch fails a resolution because the family has no library
// directory for the architecture.
func (r *resolution) unsupportedArch(family string) error {
	return sdkerr.Unsupported(r.triple.String(), "no %s libraries for architecture %s", family, r.triple.Arch)
}

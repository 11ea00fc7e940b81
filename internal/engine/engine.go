package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/judemille/fmodlink/internal/cflags"
	"github.com/judemille/fmodlink/internal/linker"
	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

// Inputs is everything a resolution depends on.
type Inputs struct {
	Target        string
	SDKRoot       string
	Debug         bool
	Features      []string
	Library       string
	ExtraIncludes []string
}

// Result is the output of a resolution.
type Result struct {
	SDKRoot  string          `json:"sdk_root" yaml:"sdk_root"`
	Triple   platform.Triple `json:"triple" yaml:"triple"`
	Features []string        `json:"features" yaml:"features"`
	Debug    bool            `json:"debug" yaml:"debug"`
	Plan     *linker.Plan    `json:"plan" yaml:"plan"`
	Flags    cflags.Set      `json:"flags" yaml:"flags"`
	Headers  []string        `json:"headers" yaml:"headers"`
}

// Engine resolves Inputs.
type Engine struct {
	log zerolog.Logger
}

// New returns an Engine that reports its decisions to log at debug level.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// Resolve derives the link plan and compiler flags for in.
func (e *Engine) Resolve(in Inputs) (*Result, error) {
	if strings.TrimSpace(in.SDKRoot) == "" {
		return nil, sdkerr.Missing("sdk_root", "point it at the root of the FMOD Engine SDK")
	}
	if strings.TrimSpace(in.Target) == "" {
		return nil, sdkerr.Missing("target", "pass a target triple such as x86_64-unknown-linux-gnu")
	}

	triple, err := platform.Parse(in.Target)
	if err != nil {
		return nil, err
	}
	features, err := sdk.ParseFeatures(in.Features)
	if err != nil {
		return nil, err
	}
	e.log.Debug().
		Str("target", triple.String()).
		Strs("features", features.Strings()).
		Bool("debug", in.Debug).
		Msg("resolving")

	plan, err := linker.Resolve(triple, in.SDKRoot, linker.BuildConfig{
		LibraryBaseName: in.Library,
		DebugLogging:    in.Debug,
		Features:        features,
	})
	if err != nil {
		return nil, err
	}
	for _, d := range plan.Directives {
		if !utf8.ValidString(d.SearchDir) {
			return nil, sdkerr.BadPath("library search dir", d.SearchDir)
		}
		e.log.Debug().
			Str("module", d.Module).
			Str("dir", d.SearchDir).
			Stringer("kind", d.Kind).
			Str("name", d.Name).
			Msg("link directive")
	}
	for _, n := range plan.Notes {
		e.log.Debug().Msg(n)
	}

	flags, err := cflags.Resolve(in.SDKRoot, triple, features, in.ExtraIncludes)
	if err != nil {
		return nil, err
	}
	e.log.Debug().Strs("flags", flags).Msg("compile flags")

	return &Result{
		SDKRoot:  in.SDKRoot,
		Triple:   triple,
		Features: features.Strings(),
		Debug:    in.Debug,
		Plan:     plan,
		Flags:    flags,
		Headers:  cflags.Headers(features),
	}, nil
}

// Resolve runs a resolution without logging.
func Resolve(in Inputs) (*Result, error) {
	return New(zerolog.Nop()).Resolve(in)
}

package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/judemille/fmodlink/internal/engine"
	"github.com/judemille/fmodlink/internal/linker"
)

// Format is an output format for a resolution.
type Format string

const (
	FormatCargo Format = "cargo"
	FormatCgo   Format = "cgo"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatText  Format = "text"
)

// Formats lists every supported format.
var Formats = []Format{FormatCargo, FormatCgo, FormatYAML, FormatJSON, FormatText}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", s, strings.Join(names, ", "))
}

// Options tune rendering.
type Options struct {
	// Package is the Go package name written into cgo output.
	Package string
	// EnvVars are the environment variables cargo output asks to be
	// re-run on.
	EnvVars []string
}

// Render renders res in the given format.
func Render(res *engine.Result, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatCargo:
		return renderCargo(res, opts), nil
	case FormatCgo:
		return renderCgo(res, opts), nil
	case FormatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("marshaling result to yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result to json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatText:
		return renderText(res), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// cargoKind maps a directive kind to the cargo rustc-link-lib kind and modifier.
func cargoKind(d linker.Directive) string {
	kind := "dylib"
	if d.Kind != linker.Dynamic {
		kind = "static"
	}
	if d.Modifier != "" {
		kind += ":" + d.Modifier
	}
	return kind
}

// renderCargo writes build-script directives. A search directive always
// precedes the first library that needs it.
func renderCargo(res *engine.Result, opts Options) []byte {
	var b bytes.Buffer
	for _, v := range opts.EnvVars {
		fmt.Fprintf(&b, "cargo:rerun-if-env-changed=%s\n", v)
	}
	fmt.Fprintf(&b, "cargo:root=%s\n", res.SDKRoot)

	searched := make(map[string]bool)
	for _, d := range res.Plan.Directives {
		if !searched[d.SearchDir] {
			searched[d.SearchDir] = true
			fmt.Fprintf(&b, "cargo:rustc-link-search=%s\n", d.SearchDir)
		}
		fmt.Fprintf(&b, "cargo:rustc-link-lib=%s=%s\n", cargoKind(d), d.Name)
	}
	for _, dir := range res.Flags.IncludeDirs() {
		fmt.Fprintf(&b, "cargo:include=%s\n", dir)
	}
	return b.Bytes()
}

// ldflags converts the plan to linker arguments. Verbatim archives are
// passed by full path since -l would decorate the name.
func ldflags(plan *linker.Plan) []string {
	var flags []string
	searched := make(map[string]bool)
	for _, d := range plan.Directives {
		if d.Kind == linker.StaticVerbatim {
			flags = append(flags, cgoQuote(filepath.Join(d.SearchDir, d.Name)))
			continue
		}
		if !searched[d.SearchDir] {
			searched[d.SearchDir] = true
			flags = append(flags, cgoQuote("-L"+d.SearchDir))
		}
		flags = append(flags, cgoQuote("-l"+d.Name))
	}
	return flags
}

// cgoQuote quotes an argument for a #cgo directive. cgo splits directive
// arguments on whitespace and treats quotes and backslashes specially, so
// SDK paths such as "FMOD Programmers API" or Windows paths need quoting.
func cgoQuote(arg string) string {
	if !strings.ContainsAny(arg, " \t\n\r'\"\\") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range arg {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func cgoQuoteAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = cgoQuote(a)
	}
	return out
}

func renderCgo(res *engine.Result, opts Options) []byte {
	pkg := opts.Package
	if pkg == "" {
		pkg = "fmod"
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by fmodlink. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// #cgo CFLAGS: %s\n", strings.Join(cgoQuoteAll(res.Flags), " "))
	fmt.Fprintf(&b, "// #cgo LDFLAGS: %s\n", strings.Join(ldflags(res.Plan), " "))
	for _, h := range res.Headers {
		fmt.Fprintf(&b, "// #include <%s>\n", h)
	}
	b.WriteString("import \"C\"\n")
	return b.Bytes()
}

func renderText(res *engine.Result) []byte {
	var b bytes.Buffer
	features := "none"
	if len(res.Features) > 0 {
		features = strings.Join(res.Features, ", ")
	}
	fmt.Fprintf(&b, "Target:    %s\n", res.Triple)
	fmt.Fprintf(&b, "SDK root:  %s\n", res.SDKRoot)
	fmt.Fprintf(&b, "Features:  %s\n", features)
	fmt.Fprintf(&b, "Debug:     %t\n", res.Debug)

	b.WriteString("\nLink:\n")
	for _, d := range res.Plan.Directives {
		mod := ""
		if d.Modifier != "" {
			mod = " (" + d.Modifier + ")"
		}
		fmt.Fprintf(&b, "  [%s] %s %s%s\n      in %s\n", d.Module, d.Kind, d.Name, mod, d.SearchDir)
	}

	b.WriteString("\nCompile flags:\n")
	for _, f := range res.Flags {
		fmt.Fprintf(&b, "  %s\n", f)
	}

	if len(res.Plan.Notes) > 0 {
		notes := append([]string(nil), res.Plan.Notes...)
		sort.Strings(notes)
		b.WriteString("\nNotes:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "  %s\n", n)
		}
	}
	return b.Bytes()
}

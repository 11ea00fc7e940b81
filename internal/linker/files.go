package linker

import (
	"os"
	"path/filepath"

	"github.com/judemille/fmodlink/internal/platform"
)

// FileName returns the library file the linker will look for in SearchDir.
func (d Directive) FileName(t platform.Triple) string {
	switch d.Kind {
	case StaticVerbatim:
		return d.Name
	case Static:
		return "lib" + d.Name + ".a"
	}
	switch t.OS {
	case platform.OSWindows:
		return d.Name + ".lib"
	case platform.OSMacOS:
		return "lib" + d.Name + ".dylib"
	}
	return "lib" + d.Name + ".so"
}

// MissingFiles returns the library paths of the plan that do not exist on disk.
func (p *Plan) MissingFiles() []string {
	var missing []string
	for _, d := range p.Directives {
		path := filepath.Join(d.SearchDir, d.FileName(p.Triple))
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

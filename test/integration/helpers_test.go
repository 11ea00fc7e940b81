//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/judemille/fmodlink/internal/config"
)

// sdkVersionHeader declares FMOD 2.02.20.
const sdkVersionHeader = `/* fmod_common.h */
#define FMOD_VERSION    0x00020220
`

// sdkFiles lists the library files each fake SDK ships, per triple.
var sdkFiles = map[string][]string{
	"x86_64-unknown-linux-gnu": {
		"api/core/lib/x86_64/libfmod.so",
		"api/core/lib/x86_64/libfmodL.so",
		"api/studio/lib/x86_64/libfmodstudio.so",
		"api/studio/lib/x86_64/libfmodstudioL.so",
		"api/fsbank/lib/x86_64/libfsbank.so",
		"api/fsbank/lib/x86_64/libfsbvorbis.so",
		"api/fsbank/lib/x86_64/libopus.so",
	},
	"x86_64-pc-windows-msvc": {
		"api/core/lib/x64/fmod_vc.lib",
		"api/studio/lib/x64/fmodstudio_vc.lib",
		"api/fsbank/lib/x64/fsbank_vc.lib",
		"api/fsbank/lib/x64/libfsbvorbis64.lib",
		"api/fsbank/lib/x64/opus.lib",
	},
	"aarch64-apple-ios": {
		"api/core/lib/libfmod_iphoneos.a",
		"api/studio/lib/libfmodstudio_iphoneos.a",
	},
	"wasm32-unknown-emscripten": {
		"api/core/lib/upstream/w32/fmod_wasm.a",
		"api/studio/lib/upstream/w32/fmodstudio_wasm.a",
	},
}

// setupSDK creates a fake SDK tree with headers for every module and the
// library files of the given triple.
func setupSDK(t *testing.T, triple string) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "api", "core", "inc", "fmod_common.h"), sdkVersionHeader)
	writeFile(t, filepath.Join(root, "api", "core", "inc", "fmod.h"), "")
	writeFile(t, filepath.Join(root, "api", "studio", "inc", "fmod_studio.h"), "")
	writeFile(t, filepath.Join(root, "api", "fsbank", "inc", "fsbank.h"), "")

	files, ok := sdkFiles[triple]
	if !ok {
		t.Fatalf("no fake SDK layout for %s", triple)
	}
	for _, rel := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(rel)), "")
	}
	return root
}

// clearEnv unsets every variable that feeds configuration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range config.EnvVars() {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists checks that a file exists at the given path.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

// assertContains checks that s contains every want.
func assertContains(t *testing.T, s string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(s, w) {
			t.Errorf("output missing %q:\n%s", w, s)
		}
	}
}

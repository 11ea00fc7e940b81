//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/judemille/fmodlink/internal/config"
	"github.com/judemille/fmodlink/internal/emit"
	"github.com/judemille/fmodlink/internal/engine"
	"github.com/judemille/fmodlink/internal/manifest"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

// TestFullFlowProjectToCargo covers the build-script path:
// write project file -> load config with env overrides -> resolve -> emit cargo
// -> every planned library exists in the SDK.
func TestFullFlowProjectToCargo(t *testing.T) {
	clearEnv(t)
	root := setupSDK(t, "x86_64-unknown-linux-gnu")
	projectPath := config.FilePath(t.TempDir())

	// Step 1: Write a project file.
	if err := manifest.Save(projectPath, &manifest.Project{
		SDKRoot:  root,
		Target:   "i686-pc-windows-msvc",
		Features: []string{"studio"},
		Format:   "cargo",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Step 2: Build scripts set TARGET and DEBUG, which override the file.
	t.Setenv("TARGET", "x86_64-unknown-linux-gnu")
	t.Setenv("DEBUG", "true")
	cfg, err := config.Load(projectPath)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	// Step 3: Resolve.
	res, err := engine.Resolve(cfg.Inputs())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Triple.String() != "x86_64-unknown-linux-gnu" {
		t.Errorf("triple = %s, env should win over the project file", res.Triple)
	}

	// Step 4: Emit cargo directives.
	out, err := emit.Render(res, emit.FormatCargo, emit.Options{EnvVars: config.EnvVars()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertContains(t, string(out),
		"cargo:rerun-if-env-changed=TARGET\n",
		"cargo:rustc-link-lib=dylib=fmodL\n",
		"cargo:rustc-link-lib=dylib=fmodstudioL\n",
		"cargo:include="+filepath.Join(root, "api", "studio", "inc")+"\n",
	)

	// Step 5: The SDK has every library the plan needs.
	if missing := res.Plan.MissingFiles(); len(missing) != 0 {
		t.Errorf("missing files: %v", missing)
	}
}

// TestFullFlowCgoFile emits a cgo file through the locked writer and checks
// the SDK version against a constraint.
func TestFullFlowCgoFile(t *testing.T) {
	clearEnv(t)
	root := setupSDK(t, "x86_64-pc-windows-msvc")

	res, err := engine.Resolve(engine.Inputs{
		SDKRoot:  root,
		Target:   "x86_64-pc-windows-msvc",
		Features: []string{"fsbank", "studio"},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if missing := res.Plan.MissingFiles(); len(missing) != 0 {
		t.Errorf("missing files: %v", missing)
	}

	out, err := emit.Render(res, emit.FormatCgo, emit.Options{Package: "fmodsys"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	path := filepath.Join(t.TempDir(), "gen", "fmod_cgo.go")
	if err := emit.WriteFile(path, out); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	assertFileExists(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(data),
		"package fmodsys\n",
		"-lfmod_vc",
		"-lfsbank_vc",
		"-llibfsbvorbis64",
		"-lfmodstudio_vc",
		"// #include <fsbank.h>",
	)

	v, err := sdk.DetectVersion(root)
	if err != nil {
		t.Fatalf("DetectVersion: %v", err)
	}
	if err := sdk.CheckVersion(v, "~2.2"); err != nil {
		t.Errorf("CheckVersion: %v", err)
	}
	if err := sdk.CheckVersion(v, ">= 2.3"); !errors.Is(err, sdkerr.ErrSDKVersion) {
		t.Errorf("CheckVersion(>= 2.3) = %v, want ErrSDKVersion", err)
	}
}

// TestAppleAndWebSDKs checks the static layouts against fake SDK trees.
func TestAppleAndWebSDKs(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		triple string
		want   []string
	}{
		{"aarch64-apple-ios", []string{"libfmod_iphoneos.a", "libfmodstudio_iphoneos.a"}},
		{"wasm32-unknown-emscripten", []string{"fmodstudio_wasm.a"}},
	}

	for _, tt := range tests {
		t.Run(tt.triple, func(t *testing.T) {
			root := setupSDK(t, tt.triple)
			res, err := engine.Resolve(engine.Inputs{
				SDKRoot:  root,
				Target:   tt.triple,
				Features: []string{"studio"},
			})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			var got []string
			for _, d := range res.Plan.Directives {
				got = append(got, d.FileName(res.Triple))
			}
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("files = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("files = %v, want %v", got, tt.want)
				}
			}
			if missing := res.Plan.MissingFiles(); len(missing) != 0 {
				t.Errorf("missing files: %v", missing)
			}
		})
	}
}

// TestConfigSetThenResolve edits the project file the way 'config set' does
// and resolves from it.
func TestConfigSetThenResolve(t *testing.T) {
	clearEnv(t)
	root := setupSDK(t, "wasm32-unknown-emscripten")
	projectPath := config.FilePath(t.TempDir())

	cfg, err := config.Load(projectPath)
	if err != nil {
		t.Fatal(err)
	}
	for key, value := range map[string]string{
		config.KeySDKRoot: root,
		config.KeyTarget:  "wasm32-unknown-emscripten",
		config.KeyDebug:   "true",
	} {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}

	result, err := manifest.ValidateFile(projectPath)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Fatalf("config set produced an invalid project file: %+v", result.Issues)
	}

	cfg, err = config.Load(projectPath)
	if err != nil {
		t.Fatal(err)
	}
	res, err := engine.Resolve(cfg.Inputs())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := res.Plan.Directives[0].Name; got != "fmodL_wasm.a" {
		t.Errorf("library = %q, want fmodL_wasm.a", got)
	}
}

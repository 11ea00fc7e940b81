package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/emit"
	"github.com/judemille/fmodlink/internal/manifest"
	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
)

var (
	initForce    bool
	initSDKRoot  string
	initTarget   string
	initFeatures []string
	initFormat   string
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing project file")
	initCmd.Flags().StringVar(&initSDKRoot, "sdk-root", "", "FMOD Engine SDK directory to record")
	initCmd.Flags().StringVar(&initTarget, "target", "", "Target triple to record (default: none, the host is used at run time)")
	initCmd.Flags().StringSliceVar(&initFeatures, "features", nil, "Optional modules to record")
	initCmd.Flags().StringVar(&initFormat, "format", string(emit.FormatCargo), "Default emit format to record")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an fmodlink.yaml project file",
	Long: `Create fmodlink.yaml in the current directory (or at --config) recording
the SDK location, target, features and output format for this project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProject(initSDKRoot, initTarget, initFeatures, initFormat)
		if err != nil {
			return err
		}

		path := cfg.Path()
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("project already initialized: %s exists (use --force to overwrite)", path)
		}
		if err := manifest.Save(path, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Use '%s doctor' to check the SDK installation.\n", rootCmd.Name())
		return nil
	},
}

// newProject validates init inputs and builds the project file contents.
func newProject(sdkRoot, target string, features []string, format string) (*manifest.Project, error) {
	p := &manifest.Project{Library: "fmod"}

	if sdkRoot != "" {
		abs, err := filepath.Abs(sdkRoot)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", sdkRoot, err)
		}
		p.SDKRoot = abs
	}
	if target != "" {
		t, err := platform.Parse(target)
		if err != nil {
			return nil, err
		}
		p.Target = t.String()
	}
	set, err := sdk.ParseFeatures(features)
	if err != nil {
		return nil, err
	}
	p.Features = set.Strings()

	f, err := emit.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	p.Format = string(f)

	if len(p.Features) == 0 {
		p.Features = nil
	}
	return p, nil
}

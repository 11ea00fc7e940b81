package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/config"
	"github.com/judemille/fmodlink/internal/engine"
	"github.com/judemille/fmodlink/internal/manifest"
	"github.com/judemille/fmodlink/internal/sdk"
)

func init() {
	addResolveFlags(doctorCmd)
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the SDK installation against the configured target",
	Long: `Run diagnostic checks: the project file, the SDK directory and version,
the module directories for the requested features, and every library file
the link plan expects to find.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := currentInputs()
		if err != nil {
			return err
		}
		problems := runDoctor(cmd.OutOrStdout(), cfg.Path(), in, cfg.Get(config.KeySDKVersion))
		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

// runDoctor writes one line per check to w and returns the number of failed
// checks. Later checks are skipped when an earlier one makes them moot.
func runDoctor(w io.Writer, projectPath string, in engine.Inputs, constraint string) int {
	problems := 0
	fail := func(format string, a ...any) {
		problems++
		fmt.Fprintln(w, failMsg(format, a...))
	}

	fmt.Fprintln(w, boldStyle.Render("Project"))
	if _, err := os.Stat(projectPath); err != nil {
		fmt.Fprintln(w, warnMsg("no project file at %s", projectPath))
		fmt.Fprintln(w, hint("run 'fmodlink init' to create one"))
	} else if result, err := manifest.ValidateFile(projectPath); err != nil {
		fail("%s: %v", projectPath, err)
	} else if !result.Valid {
		fail("%s does not match the schema", projectPath)
		for _, issue := range result.Issues {
			fmt.Fprintln(w, hint(issue.String()))
		}
	} else {
		fmt.Fprintln(w, okMsg("%s is valid", projectPath))
	}

	fmt.Fprintln(w, boldStyle.Render("SDK"))
	if in.SDKRoot == "" {
		fail("no SDK directory configured")
		fmt.Fprintln(w, hint("set sdk_root, FMODLINK_SDK_ROOT or FMOD_SDK_DIR"))
		return problems
	}
	if err := sdk.CheckRoot(in.SDKRoot); err != nil {
		fail("%v", err)
		return problems
	}
	fmt.Fprintln(w, okMsg("SDK directory %s", in.SDKRoot))

	v, err := sdk.DetectVersion(in.SDKRoot)
	switch {
	case err != nil && constraint != "":
		fail("cannot check version constraint %q: %v", constraint, err)
	case err != nil:
		fmt.Fprintln(w, warnMsg("SDK version unknown: %v", err))
	case constraint != "":
		if err := sdk.CheckVersion(v, constraint); err != nil {
			fail("%v", err)
		} else {
			fmt.Fprintln(w, okMsg("SDK version %s satisfies %s", v, constraint))
		}
	default:
		fmt.Fprintln(w, okMsg("SDK version %s", v))
	}

	fmt.Fprintln(w, boldStyle.Render("Target "+in.Target))
	res, err := engine.Resolve(in)
	if err != nil {
		fail("%v", err)
		return problems
	}
	fmt.Fprintln(w, okMsg("resolved %d link directive(s)", len(res.Plan.Directives)))
	for _, n := range res.Plan.Notes {
		fmt.Fprintln(w, hint(n))
	}

	features, err := sdk.ParseFeatures(in.Features)
	if err != nil {
		fail("%v", err)
		return problems
	}
	for _, dir := range sdk.MissingModules(in.SDKRoot, features) {
		fail("missing module directory %s", dir)
	}
	missing := res.Plan.MissingFiles()
	for _, path := range missing {
		fail("missing library %s", path)
	}
	if len(missing) == 0 {
		fmt.Fprintln(w, okMsg("all library files present"))
	}
	return problems
}

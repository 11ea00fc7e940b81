package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/emit"
)

var resolveOutput string

func init() {
	addResolveFlags(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", string(emit.FormatText), "Output format (text, yaml, json)")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the link plan and compile flags for a target",
	Long: `Resolve the libraries, search directories and compile flags for the
configured SDK, target and features, and print a summary.`,
	Example: `  fmodlink resolve --sdk-root ~/fmod --target aarch64-apple-ios --features studio
  fmodlink resolve -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := emit.ParseFormat(resolveOutput)
		if err != nil {
			return err
		}
		switch format {
		case emit.FormatText, emit.FormatYAML, emit.FormatJSON:
		default:
			return fmt.Errorf("resolve prints text, yaml or json; use 'emit --format %s' for build output", format)
		}

		res, err := resolveCurrent()
		if err != nil {
			return err
		}
		out, err := emit.Render(res, format, emit.Options{})
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagsOneLine  bool
	flagsIncludes bool
)

func init() {
	addResolveFlags(flagsCmd)
	flagsCmd.Flags().BoolVar(&flagsOneLine, "oneline", false, "Print all flags on one line")
	flagsCmd.Flags().BoolVar(&flagsIncludes, "includes-only", false, "Print include directories only, without -I")
	rootCmd.AddCommand(flagsCmd)
}

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print C compiler flags for the FMOD headers",
	Long: `Print the -I and -D flags a C compiler or binding generator needs to
parse the FMOD headers for the configured target and features.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolveCurrent()
		if err != nil {
			return err
		}

		items := []string(res.Flags)
		if flagsIncludes {
			items = res.Flags.IncludeDirs()
		}
		if flagsOneLine {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, " "))
			return nil
		}
		for _, f := range items {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

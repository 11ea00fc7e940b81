package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write project settings",
	Long: `Read and write settings in the project file (fmodlink.yaml).

get and list show the effective value, after environment variables are
applied. List values (features, extra_includes) are comma-separated.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configuration value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := make([][]string, 0, len(config.Keys))
		for _, key := range config.Keys {
			data = append(data, []string{key, cfg.Get(key)})
		}

		table := newTable(cmd.OutOrStdout())
		table.SetHeader([]string{"KEY", "VALUE"})
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}

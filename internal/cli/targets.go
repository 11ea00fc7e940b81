package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/linker"
	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
	"github.com/judemille/fmodlink/internal/sdkerr"
)

var targetsJSON bool

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported target triples",
	Long: `List every target triple with a known SDK layout, how the core library
is linked there, and which optional modules are available.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := targetEntries()
		if err != nil {
			return err
		}
		if targetsJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling targets: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		renderTargets(cmd.OutOrStdout(), entries)
		return nil
	},
}

// targetEntry describes one known triple for display.
type targetEntry struct {
	Triple   string          `json:"triple"`
	Link     string          `json:"link"`
	Library  string          `json:"library"`
	Features map[string]bool `json:"features"`
}

func targetEntries() ([]targetEntry, error) {
	var entries []targetEntry
	for _, t := range platform.Known() {
		plan, err := linker.Resolve(t, "", linker.BuildConfig{})
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", t, err)
		}
		core := plan.Directives[0]

		e := targetEntry{
			Triple:   t.String(),
			Link:     core.Kind.String(),
			Library:  core.FileName(t),
			Features: make(map[string]bool),
		}
		for _, f := range sdk.AllFeatures {
			_, err := linker.Resolve(t, "", linker.BuildConfig{Features: sdk.NewFeatureSet(f)})
			switch {
			case err == nil:
				e.Features[string(f)] = true
			case errors.Is(err, sdkerr.ErrUnsupportedConfiguration):
				e.Features[string(f)] = false
			default:
				return nil, fmt.Errorf("resolving %s with %s: %w", t, f, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func renderTargets(w io.Writer, entries []targetEntry) {
	header := []string{"TRIPLE", "LINK", "LIBRARY"}
	for _, f := range sdk.AllFeatures {
		header = append(header, string(f))
	}

	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{e.Triple, e.Link, e.Library}
		for _, f := range sdk.AllFeatures {
			mark := "-"
			if e.Features[string(f)] {
				mark = "yes"
			}
			row = append(row, mark)
		}
		data = append(data, row)
	}

	table := newTable(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(data)
	table.Render()
}

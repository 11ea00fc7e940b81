package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/config"
	"github.com/judemille/fmodlink/internal/emit"
)

var (
	emitOut     string
	emitPackage string
)

func init() {
	addResolveFlags(emitCmd)
	emitCmd.Flags().String("format", "", "Output format: cargo, cgo, yaml, json or text (default from config, else cargo)")
	emitCmd.Flags().StringVar(&emitOut, "out", "", "Write to this file instead of stdout")
	emitCmd.Flags().StringVar(&emitPackage, "package", "", "Go package name for cgo output (default \"fmod\")")
	rootCmd.AddCommand(emitCmd)
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit build directives for cargo or cgo",
	Long: `Emit the resolution in a format a build consumes.

cargo prints cargo:rustc-link-search / cargo:rustc-link-lib lines for a
build script; cgo writes a Go file whose preamble carries #cgo CFLAGS and
LDFLAGS. With --out the file is replaced atomically under a lock so parallel
builds can share it.`,
	Example: `  # build.rs: Command::new("fmodlink").arg("emit").status()
  fmodlink emit --format cargo
  fmodlink emit --format cgo --package fmodsys --out fmod_cgo.go`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := emit.ParseFormat(cfg.Get(config.KeyFormat))
		if err != nil {
			return err
		}

		res, err := resolveCurrent()
		if err != nil {
			return err
		}

		out, err := emit.Render(res, format, emit.Options{
			Package: emitPackage,
			EnvVars: config.EnvVars(),
		})
		if err != nil {
			return err
		}

		if emitOut == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := emit.WriteFile(emitOut, out); err != nil {
			return fmt.Errorf("writing %s: %w", emitOut, err)
		}
		log.Info().Str("path", emitOut).Str("format", string(format)).Msg("wrote build directives")
		return nil
	},
}

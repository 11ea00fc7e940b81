package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/branding"
	"github.com/judemille/fmodlink/internal/config"
	"github.com/judemille/fmodlink/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configPath string
	verbose    bool

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` works out which FMOD Engine libraries, search paths and
compile flags a build needs for a given target triple, SDK location and
feature set, and prints them for cargo build scripts, cgo or humans.

Inputs come from flags, ` + branding.EnvPrefix() + `_* environment variables (plus FMOD_SDK_DIR,
TARGET and DEBUG as set by build scripts) and the fmodlink.yaml project file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(cmd.ErrOrStderr(), verbose)

		if cmd.Name() == "version" {
			return nil
		}

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		if err := bindFlags(cmd, cfg); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
		log.Debug().Str("path", cfg.Path()).Msg("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Project file (default ./fmodlink.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every resolution decision to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

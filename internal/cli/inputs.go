package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/judemille/fmodlink/internal/config"
	"github.com/judemille/fmodlink/internal/engine"
	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
)

// flagKeys maps resolution flags to configuration keys.
var flagKeys = map[string]string{
	"sdk-root":    config.KeySDKRoot,
	"target":      config.KeyTarget,
	"debug":       config.KeyDebug,
	"features":    config.KeyFeatures,
	"library":     config.KeyLibrary,
	"include":     config.KeyExtraIncludes,
	"format":      config.KeyFormat,
	"sdk-version": config.KeySDKVersion,
}

// addResolveFlags registers the flags shared by every command that runs a
// resolution.
func addResolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("sdk-root", "", "FMOD Engine SDK directory (the one containing api/)")
	f.String("target", "", "Target triple (default: the host)")
	f.Bool("debug", false, "Link the logging (L-suffixed) libraries")
	f.StringSlice("features", nil, "Optional modules to link: "+strings.Join(sdk.FeatureNames(), ", "))
	f.String("library", "", "Library base name (default \"fmod\")")
	f.StringSlice("include", nil, "Extra include directories")
	f.String("sdk-version", "", "Semver constraint the SDK version must satisfy")
}

// bindFlags binds whichever mapped flags cmd defines to the configuration,
// so a flag given on the command line wins over env and file values.
func bindFlags(cmd *cobra.Command, c *config.Config) error {
	for name, key := range flagKeys {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := c.Viper().BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}
	return nil
}

// currentInputs returns the configured inputs, defaulting the target to the
// host platform.
func currentInputs() (engine.Inputs, error) {
	in := cfg.Inputs()
	if in.Target == "" {
		host, err := platform.Host()
		if err != nil {
			return in, fmt.Errorf("no target given and the host is not a supported platform: %w", err)
		}
		in.Target = host.String()
		log.Debug().Str("target", in.Target).Msg("defaulting target to host")
	}
	return in, nil
}

// resolveCurrent runs a resolution with the current configuration and, when
// an SDK version constraint is configured, checks it.
func resolveCurrent() (*engine.Result, error) {
	in, err := currentInputs()
	if err != nil {
		return nil, err
	}
	res, err := engine.New(log).Resolve(in)
	if err != nil {
		return nil, err
	}

	if constraint := cfg.Get(config.KeySDKVersion); constraint != "" {
		v, err := sdk.DetectVersion(res.SDKRoot)
		if err != nil {
			return nil, err
		}
		if err := sdk.CheckVersion(v, constraint); err != nil {
			return nil, err
		}
		log.Debug().Str("version", v.String()).Str("constraint", constraint).Msg("sdk version accepted")
	}
	return res, nil
}

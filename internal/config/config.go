package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/judemille/fmodlink/internal/branding"
	"github.com/judemille/fmodlink/internal/emit"
	"github.com/judemille/fmodlink/internal/engine"
	"github.com/judemille/fmodlink/internal/manifest"
	"github.com/judemille/fmodlink/internal/platform"
	"github.com/judemille/fmodlink/internal/sdk"
)

const fileType = "yaml"

// Keys understood in the project file, the environment and flags.
const (
	KeySDKRoot       = "sdk_root"
	KeyTarget        = "target"
	KeyDebug         = "debug"
	KeyFeatures      = "features"
	KeyLibrary       = "library"
	KeyExtraIncludes = "extra_includes"
	KeyFormat        = "format"
	KeySDKVersion    = "sdk_version"
)

// Keys lists every configuration key.
var Keys = []string{
	KeySDKRoot,
	KeyTarget,
	KeyDebug,
	KeyFeatures,
	KeyLibrary,
	KeyExtraIncludes,
	KeyFormat,
	KeySDKVersion,
}

// legacyEnv are environment variables older build scripts already set. They
// are consulted after the prefixed variable.
var legacyEnv = map[string][]string{
	KeySDKRoot: {"FMOD_SDK_DIR", "FMOD_DIR"},
	KeyTarget:  {"TARGET"},
	KeyDebug:   {"DEBUG"},
}

// Config wraps a viper instance bound to one project file.
type Config struct {
	v    *viper.Viper
	path string
}

// FilePath returns the project file path inside dir (dir/fmodlink.yaml).
func FilePath(dir string) string {
	return filepath.Join(dir, manifest.FileName)
}

// Load reads the project file at path, if it exists, and binds the
// environment. An empty path means fmodlink.yaml in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		path = FilePath(cwd)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, key := range Keys {
		names := append([]string{branding.EnvVar(key)}, legacyEnv[key]...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	v.SetDefault(KeyLibrary, "fmod")
	v.SetDefault(KeyFormat, "cargo")

	if _, err := os.Stat(path); err == nil {
		if _, err := manifest.Load(path); err != nil {
			return nil, err
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return &Config{v: v, path: path}, nil
}

// Viper exposes the underlying instance so commands can bind flags.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// Path returns the project file path.
func (c *Config) Path() string {
	return c.path
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	if isList(key) {
		return strings.Join(c.v.GetStringSlice(key), ",")
	}
	return c.v.GetString(key)
}

// Set checks value for key and writes it to the project file. The file is
// left untouched when the value, or the resulting file, is invalid.
func (c *Config) Set(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(c.path)
	file.SetConfigType(fileType)
	if _, err := os.Stat(c.path); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", c.path, err)
		}
	}
	file.Set(key, parsed)

	data, err := yaml.Marshal(file.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config file: %w", err)
	}
	result, err := manifest.Validate(data)
	if err != nil {
		return err
	}
	if err := result.Err(c.path); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := file.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	c.v.Set(key, parsed)
	return nil
}

// parseValue converts a command-line value to the type stored in the
// project file, normalising targets, features and formats.
func parseValue(key, value string) (any, error) {
	switch key {
	case KeyDebug:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("debug must be true or false, got %q", value)
		}
		return b, nil
	case KeyFeatures:
		set, err := sdk.ParseFeatures(splitList(value))
		if err != nil {
			return nil, err
		}
		return set.Strings(), nil
	case KeyExtraIncludes:
		return splitList(value), nil
	case KeyTarget:
		t, err := platform.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		return t.String(), nil
	case KeyFormat:
		f, err := emit.ParseFormat(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		return string(f), nil
	case KeySDKVersion:
		if _, err := semver.NewConstraint(value); err != nil {
			return nil, fmt.Errorf("invalid sdk_version constraint %q: %w", value, err)
		}
		return value, nil
	case KeySDKRoot, KeyLibrary:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s must not be empty", key)
		}
		return value, nil
	}
	return value, nil
}

// Inputs assembles engine inputs from every configuration source.
func (c *Config) Inputs() engine.Inputs {
	return engine.Inputs{
		Target:        c.v.GetString(KeyTarget),
		SDKRoot:       c.v.GetString(KeySDKRoot),
		Debug:         c.v.GetBool(KeyDebug),
		Features:      splitAll(c.v.GetStringSlice(KeyFeatures)),
		Library:       c.v.GetString(KeyLibrary),
		ExtraIncludes: c.v.GetStringSlice(KeyExtraIncludes),
	}
}

// EnvVars returns every environment variable that can change a resolution.
func EnvVars() []string {
	var names []string
	for _, key := range []string{KeySDKRoot, KeyTarget, KeyDebug, KeyFeatures} {
		names = append(names, branding.EnvVar(key))
		names = append(names, legacyEnv[key]...)
	}
	return names
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func isList(key string) bool {
	return key == KeyFeatures || key == KeyExtraIncludes
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitAll flattens comma-joined entries, which is how list values arrive
// from the environment.
func splitAll(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, splitList(s)...)
	}
	return out
}

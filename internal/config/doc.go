// Package config merges the project file (fmodlink.yaml), FMODLINK_*
// environment variables, the legacy FMOD_SDK_DIR/TARGET/DEBUG variables set
// by build scripts, and command-line flags into engine inputs.
package config

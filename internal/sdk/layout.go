package sdk

import (
	"fmt"
	"os"
)

// CheckRoot verifies that root names an existing directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("sdk directory %s does not exist", root)
		}
		return fmt.Errorf("checking sdk directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("sdk path %s is not a directory", root)
	}
	return nil
}

// MissingModules returns the api/<module> directories absent under root for
// the given feature set.
func MissingModules(root string, features FeatureSet) []string {
	var missing []string
	for _, m := range features.Modules() {
		dir := m.IncludeDir(root)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	return missing
}

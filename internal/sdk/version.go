package sdk

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/judemille/fmodlink/internal/sdkerr"
)

// versionHeader holds the FMOD_VERSION define.
const versionHeader = "fmod_common.h"

// FMOD_VERSION is 0xaaaabbcc where each group holds decimal digits:
// 0x00020220 is 2.02.20.
var versionDefine = regexp.MustCompile(`(?m)^\s*#define\s+FMOD_VERSION\s+0x([0-9a-fA-F]{8})\b`)

// DetectVersion reads the SDK version from api/core/inc/fmod_common.h.
func DetectVersion(root string) (*semver.Version, error) {
	path := filepath.Join(Core.IncludeDir(root), versionHeader)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading version header %s: %w", path, err)
	}
	return ParseVersionHeader(data)
}

// ParseVersionHeader extracts the FMOD_VERSION define from header text.
func ParseVersionHeader(data []byte) (*semver.Version, error) {
	m := versionDefine.FindSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("FMOD_VERSION define not found")
	}
	digits := string(m[1])

	var parts [3]uint64
	for i, group := range []string{digits[0:4], digits[4:6], digits[6:8]} {
		n, err := strconv.ParseUint(group, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("FMOD_VERSION 0x%s is not a decimal-coded version", digits)
		}
		parts[i] = n
	}
	return semver.New(parts[0], parts[1], parts[2], "", ""), nil
}

// CheckVersion verifies v against a semver constraint such as ">= 2.2, < 2.3".
// An empty constraint accepts any version.
func CheckVersion(v *semver.Version, constraint string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing sdk version constraint %q: %w", constraint, err)
	}
	if ok, errs := c.Validate(v); !ok {
		reason := "does not satisfy constraint"
		if len(errs) > 0 {
			reason = errs[0].Error()
		}
		return &sdkerr.Error{
			Op:      "check sdk version",
			Subject: v.String(),
			Err:     fmt.Errorf("%w: %s", sdkerr.ErrSDKVersion, reason),
		}
	}
	return nil
}

package document

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatible reports an error unless version shares the major version
// of FormatVersion. A leading "v" is tolerated.
func CheckCompatible(version string) error {
	current, err := parseSemver(FormatVersion)
	if err != nil {
		return fmt.Errorf("parsing format version %q: %w", FormatVersion, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing document version %q: %w", version, err)
	}

	c, err := semver.NewConstraint(fmt.Sprintf("^%d", current.Major()))
	if err != nil {
		return fmt.Errorf("building version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("document format %s is not compatible with %s", v, current)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// Package naming owns the filename convention shared by theme configs and
// generated UDL files: configs are named markdown.<theme>.config.json and
// produce markdown.<theme>.udl.xml.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	configPrefix = "markdown."
	configSuffix = ".config.json"
	outputSuffix = ".udl.xml"
)

var configPattern = regexp.MustCompile(`^markdown\.(\S+)\.config\.json$`)

// MatchesConvention reports whether filename is a valid theme config name.
// The theme segment must be one or more non-whitespace characters.
func MatchesConvention(filename string) bool {
	return configPattern.MatchString(filename)
}

// ThemeName extracts the theme segment from a config filename. The second
// return value is false when filename violates the convention.
func ThemeName(filename string) (string, bool) {
	match := configPattern.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// OutputFilename derives the generated UDL filename for a theme.
func OutputFilename(theme string) string {
	return configPrefix + theme + outputSuffix
}

// ConfigFilename derives the config filename for a theme. Inverse of
// ThemeName for valid theme names; used by the scaffolder.
func ConfigFilename(theme string) string {
	return configPrefix + theme + configSuffix
}

// ValidateThemeName reports whether theme can appear in a config filename.
func ValidateThemeName(theme string) error {
	if theme == "" {
		return errors.New("naming: theme name is required")
	}
	if strings.ContainsAny(theme, " \t\n\r") {
		return fmt.Errorf("naming: theme name %q must not contain whitespace", theme)
	}
	return nil
}

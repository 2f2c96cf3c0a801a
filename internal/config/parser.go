package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a tour definition from disk, validates it, and applies defaults.
func ParseFile(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, walkthrougherrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a tour definition. path is only used in error messages.
func Parse(path string, data []byte) (*Tour, error) {
	var t Tour
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, walkthrougherrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}

	t.ApplyDefaults()
	return &t, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

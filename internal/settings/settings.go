// Package settings loads the optional .udlgen.yml tool settings file used
// by the CLI to override the default filesystem layout. The library API
// never reads it; callers there pass pipeline.Paths explicitly.
package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Edditoria/markdown-npp/pkg/pipeline"
)

// DefaultFilename is looked up relative to the working directory.
const DefaultFilename = ".udlgen.yml"

type fileSettings struct {
	ConfigDir string `yaml:"config_dir"`
	OutputDir string `yaml:"output_dir"`
	Template  string `yaml:"template"`
}

// Load reads path and overlays any keys it names onto the default paths.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (pipeline.Paths, error) {
	paths := pipeline.DefaultPaths()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return paths, nil
		}
		return pipeline.Paths{}, fmt.Errorf("settings: read %q: %w", path, err)
	}

	var parsed fileSettings
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return pipeline.Paths{}, fmt.Errorf("settings: parse %q: %w", path, err)
	}

	if dir := strings.TrimSpace(parsed.ConfigDir); dir != "" {
		paths.ConfigDir = dir
	}
	if dir := strings.TrimSpace(parsed.OutputDir); dir != "" {
		paths.OutputDir = dir
	}
	if tpl := strings.TrimSpace(parsed.Template); tpl != "" {
		paths.TemplatePath = tpl
	}
	return paths, nil
}

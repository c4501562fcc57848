// Package pipeline enumerates theme config files and drives the
// render-and-write fan-out that turns each into a UDL XML file.
package pipeline

import "path/filepath"

// Paths carries the filesystem layout for one run. It replaces any notion
// of process-wide path state: the enumerator and driver receive it
// explicitly at call time.
type Paths struct {
	// ConfigDir holds markdown.<theme>.config.json inputs.
	ConfigDir string
	// OutputDir receives markdown.<theme>.udl.xml outputs.
	OutputDir string
	// TemplatePath is the single template rendered for every theme.
	TemplatePath string
}

// DefaultPaths returns the layout used by the stock repository checkout.
func DefaultPaths() Paths {
	return Paths{
		ConfigDir:    "config",
		OutputDir:    "udl",
		TemplatePath: filepath.Join("templates", "markdown.udl.xml.tpl"),
	}
}

// WorkItem pairs one config file with its derived output path. Items are
// immutable once built and each run consumes each item exactly once.
type WorkItem struct {
	Theme      string
	ConfigPath string
	OutputPath string
}

// Result reports one work item's outcome. Err is nil on success.
type Result struct {
	Theme      string
	OutputPath string
	Err        error
}

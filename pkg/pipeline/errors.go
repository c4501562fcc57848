package pipeline

import "errors"

// Sentinel errors for each failure kind. Callers distinguish them with
// errors.Is; the wrapped error carries the offending path or theme.
var (
	// ErrConfigDirNotFound means the config directory is missing. Fatal
	// before any work item is built.
	ErrConfigDirNotFound = errors.New("pipeline: config directory not found")

	// ErrBadConfigName means an entry in the config directory violates the
	// markdown.<theme>.config.json convention. The whole enumeration fails;
	// no work item is produced and nothing is written.
	ErrBadConfigName = errors.New("pipeline: config filename violates naming convention")

	// ErrTemplateCompile means the template file is missing or malformed.
	ErrTemplateCompile = errors.New("pipeline: template compile failed")

	// ErrConfigParse means one theme's config file is not valid JSON.
	ErrConfigParse = errors.New("pipeline: config file is not valid JSON")

	// ErrOutputWrite means one theme's output file could not be written.
	ErrOutputWrite = errors.New("pipeline: output write failed")
)

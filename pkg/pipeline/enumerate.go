package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Edditoria/markdown-npp/pkg/naming"
)

// ListWorkItems lists the config directory and pairs every valid config
// filename with its output path, in directory listing order.
//
// Validation is all-or-nothing: a single entry that violates the naming
// convention fails the whole enumeration before any work item is handed to
// the driver. A malformed input aborts the run rather than silently
// skipping one theme.
func ListWorkItems(paths Paths) ([]WorkItem, error) {
	entries, err := os.ReadDir(paths.ConfigDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigDirNotFound, paths.ConfigDir)
		}
		return nil, fmt.Errorf("pipeline: read config directory %q: %w", paths.ConfigDir, err)
	}

	items := make([]WorkItem, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			return nil, fmt.Errorf("%w: %q is a directory", ErrBadConfigName, name)
		}
		theme, ok := naming.ThemeName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadConfigName, name)
		}
		items = append(items, WorkItem{
			Theme:      theme,
			ConfigPath: filepath.Join(paths.ConfigDir, name),
			OutputPath: filepath.Join(paths.OutputDir, naming.OutputFilename(theme)),
		})
	}
	return items, nil
}

// Package markdownnpp generates Notepad++ User Defined Language (UDL) XML
// files for the markdown-npp themes. Each config/markdown.<theme>.config.json
// is rendered through a single shared template into
// udl/markdown.<theme>.udl.xml.
package markdownnpp

import (
	"context"
	"log/slog"

	"github.com/Edditoria/markdown-npp/pkg/pipeline"
	"github.com/Edditoria/markdown-npp/pkg/render"
)

// Paths carries the filesystem layout for one run; alias exported via the
// root package for convenience.
type Paths = pipeline.Paths

// WorkItem pairs one config file with its derived output path.
type WorkItem = pipeline.WorkItem

// Result reports one theme's outcome.
type Result = pipeline.Result

// DefaultPaths returns the stock repository layout.
func DefaultPaths() Paths {
	return pipeline.DefaultPaths()
}

// Generate runs the whole pipeline: enumerate configs, compile the template
// once, render and write every theme concurrently. It is the simplest entry
// point for callers that just want the UDL files on disk.
func Generate(ctx context.Context, paths Paths, options ...pipeline.Option) ([]Result, error) {
	return pipeline.New(paths, options...).Run(ctx)
}

// ListThemes enumerates work items without rendering anything. Useful for
// dry runs and tooling that only needs the theme inventory.
func ListThemes(paths Paths) ([]WorkItem, error) {
	return pipeline.ListWorkItems(paths)
}

// WithEngine injects a custom template engine into Generate.
func WithEngine(engine render.Engine) pipeline.Option {
	return pipeline.WithEngine(engine)
}

// WithLogger sets the logger Generate reports per-theme completions to.
func WithLogger(logger *slog.Logger) pipeline.Option {
	return pipeline.WithLogger(logger)
}

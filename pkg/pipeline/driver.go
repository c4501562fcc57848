package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/Edditoria/markdown-npp/pkg/render"
	"github.com/Edditoria/markdown-npp/pkg/render/pongo"
)

// Option customises the driver configuration.
type Option func(*Driver)

// WithEngine injects a custom template engine.
func WithEngine(engine render.Engine) Option {
	return func(d *Driver) {
		d.engine = engine
	}
}

// WithLogger sets the logger used for per-theme completion reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// Driver coordinates the full pipeline: enumerate config files, compile the
// template once, then render and write every theme concurrently.
type Driver struct {
	paths         Paths
	engine        render.Engine
	logger        *slog.Logger
	initialiseErr error
}

// New constructs a Driver applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(paths Paths, options ...Option) *Driver {
	d := &Driver{paths: paths}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.engine == nil {
		engine, err := pongo.New()
		if err != nil {
			d.initialiseErr = fmt.Errorf("pipeline: initialise engine: %w", err)
		}
		d.engine = engine
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return d
}

// Run executes the pipeline. Enumeration and template compilation fail fast
// before any output is written. Work items are then dispatched all at once;
// completions arrive in no particular order and a failing theme does not
// stop or roll back its siblings. Every item's Result is returned, in work
// item order, together with a joined error if any theme failed.
func (d *Driver) Run(ctx context.Context) ([]Result, error) {
	if ctx == nil {
		return nil, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.initialiseErr; err != nil {
		return nil, err
	}

	items, err := ListWorkItems(d.paths)
	if err != nil {
		return nil, err
	}

	tmpl, err := d.engine.CompileFile(d.paths.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateCompile, err)
	}

	if err := os.MkdirAll(d.paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: create output directory %q: %w", d.paths.OutputDir, err)
	}

	results := make([]Result, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item WorkItem) {
			defer wg.Done()
			results[i] = d.renderWorkItem(item, tmpl)
		}(i, item)
	}
	wg.Wait()

	var failures []error
	for _, result := range results {
		if result.Err != nil {
			d.logger.Error("theme generation failed", "theme", result.Theme, "error", result.Err)
			failures = append(failures, fmt.Errorf("theme %s: %w", result.Theme, result.Err))
			continue
		}
		d.logger.Info("theme generated", "theme", result.Theme, "output", result.OutputPath)
	}

	return results, errors.Join(failures...)
}

// renderWorkItem reads one theme's config, renders it through the shared
// template, and writes the output atomically. A failed write leaves no
// partial output file behind.
func (d *Driver) renderWorkItem(item WorkItem, tmpl render.Template) Result {
	result := Result{Theme: item.Theme, OutputPath: item.OutputPath}

	raw, err := os.ReadFile(item.ConfigPath)
	if err != nil {
		result.Err = fmt.Errorf("pipeline: read config %q: %w", item.ConfigPath, err)
		return result
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		result.Err = fmt.Errorf("%w: %q: %v", ErrConfigParse, item.ConfigPath, err)
		return result
	}

	output, err := tmpl.Render(data)
	if err != nil {
		result.Err = fmt.Errorf("pipeline: render theme %s: %w", item.Theme, err)
		return result
	}

	if err := atomic.WriteFile(item.OutputPath, strings.NewReader(output)); err != nil {
		result.Err = fmt.Errorf("%w: %q: %v", ErrOutputWrite, item.OutputPath, err)
		return result
	}
	return result
}

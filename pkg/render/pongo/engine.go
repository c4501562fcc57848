// Package pongo implements the render.Engine seam on top of a pongo2
// template set.
package pongo

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/Edditoria/markdown-npp/pkg/render"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	filters map[string]func(input any, param any) (any, error)
	globals map[string]any
}

// WithFilters registers template filters when the engine is built.
func WithFilters(filters map[string]func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		if len(filters) == 0 {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]func(input any, param any) (any, error), len(filters))
		}
		for name, fn := range filters {
			cfg.filters[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobals seeds context values available to every render.
func WithGlobals(globals map[string]any) Option {
	return func(cfg *config) {
		if len(globals) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine satisfies render.Engine using a dedicated pongo2 template set.
type Engine struct {
	templateSet *pongo2.TemplateSet
}

var _ render.Engine = (*Engine)(nil)

// New constructs an Engine applying any provided options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("udlgen", pongo2.DefaultLoader),
	}
	registerDefaultFilters()

	for name, fn := range cfg.filters {
		if err := RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}
	if len(cfg.globals) > 0 {
		engine.templateSet.Globals = pongo2.Context(cfg.globals)
	}

	return engine, nil
}

// CompileFile reads the template file's full contents and compiles it once.
func (e *Engine) CompileFile(path string) (render.Template, error) {
	if e == nil || e.templateSet == nil {
		return nil, errors.New("pongo: engine is nil")
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: read template %q: %w", path, err)
	}
	tmpl, err := e.templateSet.FromBytes(source)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse template %q: %w", path, err)
	}
	return &template{tmpl: tmpl}, nil
}

// CompileString compiles template source held in memory.
func (e *Engine) CompileString(source string) (render.Template, error) {
	if e == nil || e.templateSet == nil {
		return nil, errors.New("pongo: engine is nil")
	}
	tmpl, err := e.templateSet.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse template string: %w", err)
	}
	return &template{tmpl: tmpl}, nil
}

type template struct {
	tmpl *pongo2.Template
}

var _ render.Template = (*template)(nil)

// Render executes the compiled template against data. pongo2 templates are
// safe for concurrent execution, so no locking is needed here.
func (t *template) Render(data any) (string, error) {
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data: %w", err)
	}
	out, err := t.tmpl.Execute(viewContext)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template: %w", err)
	}
	return out, nil
}

// RegisterFilter adapts a plain Go filter function to pongo2's filter
// contract. Filters are registered process-wide by pongo2.
func RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		out := make(pongo2.Context, len(v))
		for key, value := range v {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("pongo: unsupported data type %T", data)
	}
}

var registerDefaults sync.Once

func registerDefaultFilters() {
	registerDefaults.Do(func() {
		if !pongo2.FilterExists("hexcolor") {
			_ = pongo2.RegisterFilter("hexcolor", filterHexColor)
		}
	})
}

// filterHexColor strips a leading "#" so configs may use CSS-style color
// values while UDL XML attributes want bare hex digits.
func filterHexColor(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimPrefix(in.String(), "#")), nil
}

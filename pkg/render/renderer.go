// Package render defines the template engine seam the pipeline renders
// through. The production implementation lives in pkg/render/pongo; tests
// can substitute their own.
package render

// Template is a compiled, reusable render function. Implementations must be
// safe for concurrent use: the driver shares one Template across all work
// items.
type Template interface {
	Render(data any) (string, error)
}

// Engine compiles templates. A template is compiled once per run and then
// rendered against arbitrary data objects.
type Engine interface {
	CompileFile(path string) (Template, error)
	CompileString(source string) (Template, error)
}

// Package testsupport builds throwaway generator workspaces for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Edditoria/markdown-npp/pkg/naming"
	"github.com/Edditoria/markdown-npp/pkg/pipeline"
)

// NewWorkspace creates a temp directory laid out like a repository
// checkout: a config dir, an output dir, and a template file holding
// templateSource. Testing helpers fail fast to keep pipeline tests concise.
func NewWorkspace(t *testing.T, templateSource string) pipeline.Paths {
	t.Helper()

	root := t.TempDir()
	paths := pipeline.Paths{
		ConfigDir:    filepath.Join(root, "config"),
		OutputDir:    filepath.Join(root, "udl"),
		TemplatePath: filepath.Join(root, "templates", "markdown.udl.xml.tpl"),
	}

	for _, dir := range []string{paths.ConfigDir, paths.OutputDir, filepath.Dir(paths.TemplatePath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(paths.TemplatePath, []byte(templateSource), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return paths
}

// WriteThemeConfig writes a config file for theme with the given raw JSON
// body and returns its path.
func WriteThemeConfig(t *testing.T, paths pipeline.Paths, theme, body string) string {
	t.Helper()
	return WriteConfigFile(t, paths, naming.ConfigFilename(theme), body)
}

// WriteConfigFile writes an arbitrarily named file into the config dir.
// Used to stage naming-convention violations.
func WriteConfigFile(t *testing.T, paths pipeline.Paths, filename, body string) string {
	t.Helper()

	path := filepath.Join(paths.ConfigDir, filename)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config %s: %v", filename, err)
	}
	return path
}

// ReadOutput returns the generated output for theme, failing the test if it
// does not exist.
func ReadOutput(t *testing.T, paths pipeline.Paths, theme string) string {
	t.Helper()

	path := filepath.Join(paths.OutputDir, naming.OutputFilename(theme))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output for theme %s: %v", theme, err)
	}
	return string(data)
}

// OutputExists reports whether an output file was produced for theme.
func OutputExists(t *testing.T, paths pipeline.Paths, theme string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(paths.OutputDir, naming.OutputFilename(theme)))
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	t.Fatalf("stat output for theme %s: %v", theme, err)
	return false
}

package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Edditoria/markdown-npp/pkg/pipeline"
	"github.com/Edditoria/markdown-npp/pkg/testsupport"
)

func TestListWorkItems(t *testing.T) {
	paths := testsupport.NewWorkspace(t, "unused")
	testsupport.WriteThemeConfig(t, paths, "a", `{}`)
	testsupport.WriteThemeConfig(t, paths, "b", `{}`)

	items, err := pipeline.ListWorkItems(paths)
	if err != nil {
		t.Fatalf("list work items: %v", err)
	}

	want := []pipeline.WorkItem{
		{
			Theme:      "a",
			ConfigPath: filepath.Join(paths.ConfigDir, "markdown.a.config.json"),
			OutputPath: filepath.Join(paths.OutputDir, "markdown.a.udl.xml"),
		},
		{
			Theme:      "b",
			ConfigPath: filepath.Join(paths.ConfigDir, "markdown.b.config.json"),
			OutputPath: filepath.Join(paths.OutputDir, "markdown.b.udl.xml"),
		},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("work items mismatch (-want +got):\n%s", diff)
	}
}

func TestListWorkItemsMissingDirectory(t *testing.T) {
	paths := pipeline.Paths{ConfigDir: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := pipeline.ListWorkItems(paths)
	if !errors.Is(err, pipeline.ErrConfigDirNotFound) {
		t.Fatalf("want ErrConfigDirNotFound, got %v", err)
	}
}

func TestListWorkItemsRejectsBadName(t *testing.T) {
	paths := testsupport.NewWorkspace(t, "unused")
	testsupport.WriteThemeConfig(t, paths, "good", `{}`)
	testsupport.WriteConfigFile(t, paths, "theme.json", `{}`)

	items, err := pipeline.ListWorkItems(paths)
	if !errors.Is(err, pipeline.ErrBadConfigName) {
		t.Fatalf("want ErrBadConfigName, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected zero work items on naming violation, got %d", len(items))
	}
}

func TestListWorkItemsRejectsSubdirectory(t *testing.T) {
	paths := testsupport.NewWorkspace(t, "unused")
	if err := os.Mkdir(filepath.Join(paths.ConfigDir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := pipeline.ListWorkItems(paths)
	if !errors.Is(err, pipeline.ErrBadConfigName) {
		t.Fatalf("want ErrBadConfigName, got %v", err)
	}
}

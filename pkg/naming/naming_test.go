package naming_test

import (
	"testing"

	"github.com/Edditoria/markdown-npp/pkg/naming"
)

func TestMatchesConvention(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
		theme    string
	}{
		{"markdown.a.config.json", true, "a"},
		{"markdown.zenburn.config.json", true, "zenburn"},
		{"markdown.solarized-light.config.json", true, "solarized-light"},
		{"markdown.foo.bar.config.json", true, "foo.bar"},
		{"markdown.config.json", false, ""},
		{"markdown..config.json", false, ""},
		{"theme.json", false, ""},
		{"markdown.a b.config.json", false, ""},
		{"markdown.a.config.json.bak", false, ""},
		{"Markdown.a.config.json", false, ""},
		{"", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			if got := naming.MatchesConvention(tc.filename); got != tc.want {
				t.Fatalf("MatchesConvention(%q) = %v, want %v", tc.filename, got, tc.want)
			}
			theme, ok := naming.ThemeName(tc.filename)
			if ok != tc.want {
				t.Fatalf("ThemeName(%q) ok = %v, want %v", tc.filename, ok, tc.want)
			}
			if theme != tc.theme {
				t.Fatalf("ThemeName(%q) = %q, want %q", tc.filename, theme, tc.theme)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	if got, want := naming.OutputFilename("solarized-light"), "markdown.solarized-light.udl.xml"; got != want {
		t.Fatalf("OutputFilename = %q, want %q", got, want)
	}
}

func TestConfigFilenameRoundTrip(t *testing.T) {
	filename := naming.ConfigFilename("zenburn")
	theme, ok := naming.ThemeName(filename)
	if !ok || theme != "zenburn" {
		t.Fatalf("round trip through %q gave (%q, %v)", filename, theme, ok)
	}
}

func TestValidateThemeName(t *testing.T) {
	if err := naming.ValidateThemeName("solarized-light"); err != nil {
		t.Fatalf("valid theme name rejected: %v", err)
	}
	for _, theme := range []string{"", "two words", "tab\tseparated"} {
		if err := naming.ValidateThemeName(theme); err == nil {
			t.Fatalf("ValidateThemeName(%q) accepted an invalid name", theme)
		}
	}
}

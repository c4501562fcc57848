package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/natefinch/atomic"

	"github.com/Edditoria/markdown-npp/internal/settings"
	"github.com/Edditoria/markdown-npp/pkg/naming"
)

// starterConfig is the skeleton written by `udlgen init`. The key set is a
// contract between config authors and the template, so only the common
// substitution values are pre-filled.
var starterConfig = map[string]any{
	"name":       "",
	"foreground": "000000",
	"background": "FFFFFF",
	"bold":       "0",
	"italic":     "0",
}

func runInit(args []string) error {
	flags := flag.NewFlagSet("init", flag.ExitOnError)
	settingsPath := flags.String("settings", settings.DefaultFilename, "tool settings file (YAML)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	paths, err := settings.Load(*settingsPath)
	if err != nil {
		return err
	}

	var theme string
	prompt := &survey.Input{
		Message: "Theme name:",
		Help:    "Becomes markdown.<name>.config.json; no whitespace allowed.",
	}
	validator := survey.WithValidator(func(answer any) error {
		value, _ := answer.(string)
		return naming.ValidateThemeName(value)
	})
	if err := survey.AskOne(prompt, &theme, validator); err != nil {
		return err
	}

	configPath := filepath.Join(paths.ConfigDir, naming.ConfigFilename(theme))
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		confirm := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", configPath),
		}
		if err := survey.AskOne(confirm, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			return nil
		}
	}

	starter := make(map[string]any, len(starterConfig))
	for key, value := range starterConfig {
		starter[key] = value
	}
	starter["name"] = theme

	payload, err := json.MarshalIndent(starter, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal starter config: %w", err)
	}
	if err := os.MkdirAll(paths.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := atomic.WriteFile(configPath, bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", configPath)
	return nil
}

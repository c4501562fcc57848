package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	markdownnpp "github.com/Edditoria/markdown-npp"
	"github.com/Edditoria/markdown-npp/internal/settings"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init" {
		if err := runInit(os.Args[2:]); err != nil {
			log.Fatalf("Failed to scaffold theme: %v", err)
		}
		return
	}

	configDir := flag.String("config-dir", "", "directory holding markdown.<theme>.config.json files")
	outputDir := flag.String("output-dir", "", "directory receiving markdown.<theme>.udl.xml files")
	template := flag.String("template", "", "UDL template path")
	settingsPath := flag.String("settings", settings.DefaultFilename, "tool settings file (YAML)")
	list := flag.Bool("list", false, "list discovered themes without generating")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	paths, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *configDir != "" {
		paths.ConfigDir = *configDir
	}
	if *outputDir != "" {
		paths.OutputDir = *outputDir
	}
	if *template != "" {
		paths.TemplatePath = *template
	}

	if *list {
		items, err := markdownnpp.ListThemes(paths)
		if err != nil {
			log.Fatalf("Failed to list themes: %v", err)
		}
		for _, item := range items {
			fmt.Printf("%s\t%s\n", item.Theme, item.OutputPath)
		}
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	results, err := markdownnpp.Generate(context.Background(), paths, markdownnpp.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to generate UDL files: %v", err)
	}
	fmt.Printf("✓ Generated %d UDL file(s) → %s\n", len(results), paths.OutputDir)
}

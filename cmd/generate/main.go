package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"psaxe.dev/internal/config"
	"psaxe.dev/internal/page"
	"psaxe.dev/internal/render"
	"psaxe.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("Renders index.html and content.json for static hosting.")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	if err := generate(cfg, outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}

func generate(cfg *config.Config, outputDir string) error {
	content := services.NewDefaultContentService(cfg.ProfileImage)
	renderer, err := render.New(cfg.ProfileImageURL())
	if err != nil {
		return err
	}

	p := page.New(content,
		page.WithRevealThreshold(cfg.RevealThreshold),
		page.WithImageAvailable(cfg.ProfileImageAvailable()),
	)

	fmt.Println("Rendering index.html...")
	html, err := renderer.RenderBytes(p.View())
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), html, 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	fmt.Println("Writing content.json...")
	data, err := json.MarshalIndent(content.Content(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "content.json"), data, 0644); err != nil {
		return fmt.Errorf("write content.json: %w", err)
	}

	fmt.Printf("  Created index.html (%d bytes), content.json (%d projects)\n", len(html), len(content.Projects()))
	return nil
}

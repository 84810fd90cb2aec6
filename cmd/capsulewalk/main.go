package main

import (
	"capsulewalk/internal/config"
	"capsulewalk/internal/game"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	configPath := flag.String("config", "capsulewalk.yaml", "path to the YAML config (missing file uses defaults)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Game: %v", err)
	}
	g.Run()
}

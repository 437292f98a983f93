package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"

	"reelcraft/internal/config"
	"reelcraft/internal/family"
	"reelcraft/internal/pipeline"
	"reelcraft/internal/server"
	"reelcraft/internal/system"
)

func main() {
	// Optional .env next to the binary; absence is not an error.
	_ = godotenv.Load()

	dirs := []string{"input/projects", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Path to a project JSON file (default: newest file in input/projects/)")
	outputPtr := flag.String("output", "", "Path to the manifest (if empty, generated automatically in output/)")
	familyPtr := flag.String("family", envOr("REELCRAFT_FAMILY", family.DefaultFamily), "Template family: "+strings.Join(family.Names(), ", "))
	fpsPtr := flag.Int("fps", 0, "Frame rate (0 = take from the project theme, else 30)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Normalization workers")
	sceneSecPtr := flag.Float64("scene-duration", 0, "Default scene duration in seconds when a scene has none (0 = built-in 5s)")
	placeholderPtr := flag.Bool("placeholder-on-error", false, "Emit a minimum-duration placeholder timeline when the project fails to load")
	servePtr := flag.Bool("serve", false, "Run the HTTP API instead of a one-shot build")
	addrPtr := flag.String("addr", envOr("REELCRAFT_ADDR", ":8080"), "HTTP listen address for -serve")
	statsPtr := flag.Bool("stats", false, "Print host stats after the build")

	flag.Parse()

	cfg := &config.Config{
		InputPath:          *inputPtr,
		OutputPath:         *outputPtr,
		Family:             *familyPtr,
		FPS:                *fpsPtr,
		Workers:            *workersPtr,
		SceneSeconds:       *sceneSecPtr,
		PlaceholderOnError: *placeholderPtr,
		ListenAddr:         *addrPtr,
		ShowStats:          *statsPtr,
	}

	if *servePtr {
		srv := server.New(cfg)
		fmt.Printf("[*] API listening on %s\n", cfg.ListenAddr)
		if err := srv.Router().Run(cfg.ListenAddr); err != nil {
			log.Fatalf("[-] Server error: %v", err)
		}
		return
	}

	if cfg.InputPath == "" {
		latest, err := system.FindLatestProject("input/projects")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a project JSON in input/projects/", err)
		}
		cfg.InputPath = latest
		fmt.Printf("[*] Selected project: %s\n", cfg.InputPath)
	}

	registry, err := family.ForName(cfg.Family)
	if err != nil {
		log.Fatalf("[-] Registry error: %v", err)
	}
	fmt.Printf("[*] Template family: %s (fallback layout: %s)\n", cfg.Family, registry.FallbackKey())

	runner := pipeline.NewRunner(cfg, registry)
	if _, err := runner.Run(context.Background()); err != nil {
		log.Fatalf("[-] Build error: %v", err)
	}

	fmt.Println("[+++] Done")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cse_insight/pkg/core/pipeline"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := flag.String("config", "config/pipeline.yaml", "pipeline configuration file")
	saveDB := flag.Bool("db", false, "mirror cleaned records into Postgres (overrides config)")
	flag.Parse()

	cfg, err := pipeline.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Config %s not loadable (%v), using defaults.\n", *configPath, err)
		cfg = pipeline.DefaultConfig()
	}
	if *saveDB {
		cfg.SaveToDB = true
	}

	orchestrator := pipeline.NewOrchestrator(cfg)
	cleaned, err := orchestrator.Run(context.Background())
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	fmt.Printf("Done: %d cleaned records in %s\n", len(cleaned), cfg.CleanedFile)
	os.Exit(0)
}

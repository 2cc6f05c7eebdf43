package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"cse_insight/pkg/api/financials"
	"cse_insight/pkg/api/query"
	"cse_insight/pkg/core/index"
	"cse_insight/pkg/core/llm"
	"cse_insight/pkg/core/pipeline"
	"cse_insight/pkg/core/rag"
	"cse_insight/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := pipeline.LoadConfig(configPath())
	if err != nil {
		fmt.Printf("Config not loadable (%v), using defaults.\n", err)
		cfg = pipeline.DefaultConfig()
	}

	dataset, err := store.ReadCleaned(cfg.CleanedFile)
	if err != nil {
		fmt.Printf("[FATAL] Cannot load dataset %s: %v\n", cfg.CleanedFile, err)
		fmt.Println("  Run the pipeline first to produce the cleaned dataset.")
		os.Exit(1)
	}
	fmt.Printf("[DATASET] Loaded %d records from %s\n", len(dataset), cfg.CleanedFile)

	financials.InitHandler(dataset)
	http.HandleFunc("/api/financials", financials.HandleFinancials)
	http.HandleFunc("/api/companies", financials.HandleCompanies)

	// The query endpoint needs an embedding index; build it at startup.
	provider, embedder := selectBackends()
	idx := index.NewMemoryIndex()
	fmt.Println("[INDEX] Building semantic index...")
	if err := index.Build(context.Background(), idx, dataset, embedder); err != nil {
		fmt.Printf("[WARNING] Index build failed: %v\n", err)
		fmt.Println("  /api/query will be unavailable.")
	} else {
		fmt.Printf("[INDEX] Indexed %d facts\n", idx.Len())
		query.InitHandler(rag.NewAnswerer(provider, embedder, idx))
	}
	http.HandleFunc("/api/query", query.HandleQuery)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Starting API server on :%s...\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed: %v\n", err)
		os.Exit(1)
	}
}

func configPath() string {
	if path := os.Getenv("PIPELINE_CONFIG"); path != "" {
		return path
	}
	return "config/pipeline.yaml"
}

// selectBackends picks Gemini when an API key is present, otherwise a local
// Ollama server.
func selectBackends() (llm.Provider, index.Embedder) {
	if os.Getenv("GEMINI_API_KEY") != "" {
		fmt.Println("[LLM] Using Gemini")
		return &llm.GeminiProvider{}, &index.GeminiEmbedder{}
	}
	if os.Getenv("DEEPSEEK_API_KEY") != "" {
		// DeepSeek has no embedding endpoint here; pair it with Ollama embeddings.
		fmt.Println("[LLM] Using DeepSeek + Ollama embeddings")
		return &llm.DeepSeekProvider{}, &index.OllamaEmbedder{}
	}
	fmt.Println("[LLM] No API key found, using local Ollama")
	return &llm.OllamaProvider{}, &index.OllamaEmbedder{}
}

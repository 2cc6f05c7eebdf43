// Package index builds and searches the semantic index over the cleaned
// quarterly dataset. One entry is indexed per (company, metric, quarter).
package index

import (
	"context"
	"fmt"
	"os"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"cse_insight/pkg/core/llm"
)

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GeminiEmbedder uses the Gemini embedding models.
type GeminiEmbedder struct {
	Model string // e.g. "text-embedding-004"
}

var _ Embedder = (*GeminiEmbedder)(nil)

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	defer client.Close()

	model := e.Model
	if model == "" {
		model = "text-embedding-004"
	}

	res, err := client.EmbeddingModel(model).EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini returned empty embedding")
	}

	vec := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}

// OllamaEmbedder uses a local Ollama server for embeddings.
type OllamaEmbedder struct {
	Model string // e.g. "nomic-embed-text"

	provider llm.OllamaProvider
}

var _ Embedder = (*OllamaEmbedder)(nil)

func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return e.provider.Embed(ctx, e.Model, text)
}

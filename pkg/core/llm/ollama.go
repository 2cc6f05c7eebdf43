package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
)

// OllamaProvider talks to a local Ollama server, the no-API-key fallback for
// offline use.
type OllamaProvider struct {
	Model string // e.g. "llama3.2"
}

var _ Provider = (*OllamaProvider)(nil)

type OllamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type OllamaGenerateResponse struct {
	Response string `json:"response"`
}

type OllamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type OllamaEmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// OllamaBaseURL returns the server address, honoring OLLAMA_URL.
func OllamaBaseURL() string {
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}

func (p *OllamaProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	model := p.Model
	if model == "" {
		model = "llama3.2"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	reqBody := OllamaGenerateRequest{
		Model:  model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: false,
	}

	body, err := p.post(ctx, OllamaBaseURL()+"/api/generate", reqBody)
	if err != nil {
		return "", err
	}

	var response OllamaGenerateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("OLLAMA_UNMARSHAL_ERROR: %v", err)
	}
	return response.Response, nil
}

// Embed returns the embedding vector for text from the Ollama embeddings
// endpoint.
func (p *OllamaProvider) Embed(ctx context.Context, model string, text string) ([]float64, error) {
	if model == "" {
		model = "nomic-embed-text"
	}

	body, err := p.post(ctx, OllamaBaseURL()+"/api/embeddings", OllamaEmbedRequest{
		Model:  model,
		Prompt: text,
	})
	if err != nil {
		return nil, err
	}

	var response OllamaEmbedResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("OLLAMA_UNMARSHAL_ERROR: %v", err)
	}
	if len(response.Embedding) == 0 {
		return nil, fmt.Errorf("OLLAMA_EMPTY_EMBEDDING: %s", string(body))
	}
	return response.Embedding, nil
}

func (p *OllamaProvider) post(ctx context.Context, url string, reqBody interface{}) ([]byte, error) {
	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("OLLAMA_MARSHAL_ERROR: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("OLLAMA_REQ_CREATE_ERROR: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OLLAMA_API_CALL_ERROR: %v", err)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("OLLAMA_READ_BODY_ERROR: %v", err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("OLLAMA_API_ERROR: status=%d found=%s", res.StatusCode, string(body))
	}
	return body, nil
}

package rag

import (
	"context"
	"fmt"
	"strings"

	"cse_insight/pkg/core/index"
	"cse_insight/pkg/core/llm"
	"cse_insight/pkg/core/utils"
)

// DefaultTopK is the number of facts retrieved per question.
const DefaultTopK = 8

// shortQueryWords is the length below which a query is treated as too terse
// to embed directly and gets expanded first.
const shortQueryWords = 3

// Answer is a generated response plus the facts it was grounded on.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Answerer wires retrieval and generation together.
type Answerer struct {
	Provider llm.Provider
	Embedder index.Embedder
	Index    *index.MemoryIndex
	TopK     int
}

// NewAnswerer creates an answerer with the default retrieval depth.
func NewAnswerer(provider llm.Provider, embedder index.Embedder, idx *index.MemoryIndex) *Answerer {
	return &Answerer{
		Provider: provider,
		Embedder: embedder,
		Index:    idx,
		TopK:     DefaultTopK,
	}
}

// Answer responds to a free-form question about the dataset. Terse queries
// are expanded by the model before retrieval so that "dipd revenue" still
// finds the right facts.
func (a *Answerer) Answer(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("empty question")
	}

	query, err := a.clarify(ctx, question)
	if err != nil {
		return nil, err
	}

	results, err := a.retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	raw, err := a.Provider.GenerateResponse(ctx, answerPrompt(question, results), answerSystemPrompt, nil)
	if err != nil {
		return nil, fmt.Errorf("answer generation failed: %w", err)
	}

	return &Answer{
		Text:    renderableText(raw),
		Sources: sourceTexts(results),
	}, nil
}

// AnswerStructured is like Answer but asks the model for JSON and decodes it
// through the repair chain, so malformed model output still yields a result.
func (a *Answerer) AnswerStructured(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("empty question")
	}

	query, err := a.clarify(ctx, question)
	if err != nil {
		return nil, err
	}

	results, err := a.retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	raw, err := a.Provider.GenerateResponse(ctx, answerPrompt(question, results), structuredAnswerSystemPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("answer generation failed: %w", err)
	}

	var ans Answer
	if _, err := utils.DecodeModelJSON(raw, &ans); err != nil {
		// Model ignored the format; fall back to prose.
		return &Answer{
			Text:    renderableText(raw),
			Sources: sourceTexts(results),
		}, nil
	}
	if len(ans.Sources) == 0 {
		ans.Sources = sourceTexts(results)
	}
	return &ans, nil
}

func (a *Answerer) clarify(ctx context.Context, question string) (string, error) {
	if len(strings.Fields(question)) >= shortQueryWords {
		return question, nil
	}
	expanded, err := a.Provider.GenerateResponse(ctx, clarifyPrompt(question), clarifySystemPrompt, nil)
	if err != nil {
		return "", fmt.Errorf("query clarification failed: %w", err)
	}
	expanded = strings.TrimSpace(expanded)
	if expanded == "" {
		return question, nil
	}
	return expanded, nil
}

func (a *Answerer) retrieve(ctx context.Context, query string) ([]index.SearchResult, error) {
	vec, err := a.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}
	topK := a.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	results, err := a.Index.Search(vec, topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	return results, nil
}

// renderableText strips the model's outer code fences, keeping the raw output
// when stripping leaves nothing renderable.
func renderableText(raw string) string {
	cleaned := utils.CleanMarkdown(raw)
	if !utils.ValidateMarkdown(cleaned) {
		return strings.TrimSpace(raw)
	}
	return cleaned
}

func sourceTexts(results []index.SearchResult) []string {
	texts := make([]string, len(results))
	for i, res := range results {
		texts[i] = res.Entry.Text
	}
	return texts
}

// Package query exposes the RAG question-answering endpoint.
package query

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cse_insight/pkg/core/rag"
)

var answerer *rag.Answerer

// InitHandler installs the answerer used by HandleQuery.
func InitHandler(a *rag.Answerer) {
	answerer = a
}

type QueryRequest struct {
	Question   string `json:"question"`
	Structured bool   `json:"structured"`
}

// HandleQuery serves POST /api/query.
func HandleQuery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if answerer == nil {
		http.Error(w, "query service not initialised", http.StatusServiceUnavailable)
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	fmt.Printf("[QUERY] %q (structured=%v)\n", req.Question, req.Structured)

	answer, err := answerQuestion(r, req)
	if err != nil {
		fmt.Printf("[QUERY] Failed: %v\n", err)
		http.Error(w, fmt.Sprintf("query failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(answer); err != nil {
		fmt.Printf("[QUERY] Failed to encode response: %v\n", err)
	}
}

func answerQuestion(r *http.Request, req QueryRequest) (*rag.Answer, error) {
	if req.Structured {
		return answerer.AnswerStructured(r.Context(), req.Question)
	}
	return answerer.Answer(r.Context(), req.Question)
}

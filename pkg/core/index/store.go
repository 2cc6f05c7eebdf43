package index

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Entry is one indexed fact about a single quarter.
type Entry struct {
	ID      string
	Company string
	Metric  string
	Quarter string // ISO date of the quarter end
	Text    string
	Vector  []float64
}

// SearchResult pairs an entry with its similarity to the query.
type SearchResult struct {
	Entry Entry
	Score float64
}

// MemoryIndex implements vector search over entries held in memory.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		entries: make(map[string]*Entry),
	}
}

// Add stores an entry, assigning an ID when it has none.
func (s *MemoryIndex) Add(entry Entry) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	s.entries[entry.ID] = &entry
	return entry.ID
}

// Len returns the number of indexed entries.
func (s *MemoryIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Search returns the limit entries most similar to the query vector,
// best first. Entries whose vector length differs from the query are skipped.
func (s *MemoryIndex) Search(vector []float64, limit int) ([]SearchResult, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SearchResult, 0, len(s.entries))
	for _, entry := range s.entries {
		if len(entry.Vector) != len(vector) {
			continue
		}
		results = append(results, SearchResult{
			Entry: *entry,
			Score: cosineSimilarity(vector, entry.Vector),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

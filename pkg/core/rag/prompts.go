// Package rag answers natural-language questions about the quarterly dataset
// by retrieving indexed facts and handing them to an LLM.
package rag

import (
	"fmt"
	"strings"

	"cse_insight/pkg/core/index"
)

const clarifySystemPrompt = `You expand terse queries about quarterly financial data into a single full question.
The dataset covers Colombo Stock Exchange companies DIPD (Dipped Products PLC) and REXP (Richard Pieris Exports PLC).
Metrics available: Revenue, COGS, Gross Profit, Operating Expenses, Operating Income, Net Income, all in Rs.'000.
Respond with the expanded question only, no preamble.`

const answerSystemPrompt = `You are a financial data assistant for Colombo Stock Exchange quarterly reports.
Answer strictly from the facts provided in the context. All values are in thousands of rupees (Rs.'000).
If the context does not contain the answer, say so; never invent figures.`

const structuredAnswerSystemPrompt = `You are a financial data assistant for Colombo Stock Exchange quarterly reports.
Answer strictly from the facts provided in the context. All values are in thousands of rupees (Rs.'000).
Respond with a JSON object: {"answer": "<prose answer>", "sources": ["<fact used>", ...]}.
If the context does not contain the answer, set "answer" accordingly and "sources" to [].`

func clarifyPrompt(question string) string {
	return fmt.Sprintf("Expand this query: %q", question)
}

func answerPrompt(question string, results []index.SearchResult) string {
	return fmt.Sprintf("Context:\n%s\nQuestion: %s", contextBlock(results), question)
}

// contextBlock renders retrieved facts as a numbered list for the prompt.
func contextBlock(results []index.SearchResult) string {
	var b strings.Builder
	for i, res := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, res.Entry.Text)
	}
	if b.Len() == 0 {
		b.WriteString("(no matching facts)\n")
	}
	return b.String()
}

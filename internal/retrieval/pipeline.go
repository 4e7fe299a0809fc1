package retrieval

import (
	"fmt"
	"strings"
	"time"

	"aiforall/internal/domain"
)

const (
	// contextThreshold is the score a document needs to count as answering the query.
	contextThreshold = 0.2

	answerPrefix    = "Based on the retrieved documents, "
	noContextAnswer = "No relevant documents were found in the knowledge base for this question."

	promptWithContext    = "Use the following context to answer the question.\n\nContext:\n%s\n\nQuestion: %s\n\nAnswer:"
	promptWithoutContext = "Question: %s\n\nAnswer (no context available):"
)

// Stage is one entry of the pipeline timing breakdown.
type Stage struct {
	Name        string
	Description string
	Duration    time.Duration
}

// PipelineResult is everything produced by one simulated RAG run.
type PipelineResult struct {
	Query           string
	QueryTokens     []string
	Retrieved       []domain.RetrievalResult
	Context         string
	AugmentedPrompt string
	HasContext      bool
	Answer          string
	Elapsed         time.Duration
	Stages          []Stage
}

// stageShares splits the measured total across the five stages. The split is
// fixed, not measured per stage.
var stageShares = []struct {
	name  string
	share float64
}{
	{"Tokenize query", 0.10},
	{"Retrieve documents", 0.30},
	{"Build context", 0.10},
	{"Augment prompt", 0.10},
	{"Generate answer", 0.40},
}

// RunPipeline tokenizes query, retrieves the topK documents, assembles the
// context and augmented prompt and produces a canned answer from the best
// document.
func (r *Retriever) RunPipeline(query string, topK int) PipelineResult {
	start := time.Now()

	queryTokens := Tokenize(query)
	retrieved := r.retrieve(queryTokens, topK)

	var parts []string
	relevant := 0
	hasContext := false
	for _, res := range retrieved {
		if res.Score > 0 {
			relevant++
			parts = append(parts, fmt.Sprintf("[%s]: %s", res.Document.Title, res.Document.Content))
		}
		if res.Score > contextThreshold {
			hasContext = true
		}
	}
	context := strings.Join(parts, "\n\n")

	prompt := fmt.Sprintf(promptWithoutContext, query)
	if context != "" {
		prompt = fmt.Sprintf(promptWithContext, context, query)
	}

	answer := noContextAnswer
	if hasContext {
		answer = answerPrefix + leadSentences(retrieved[0].Document.Content, 2)
	}

	elapsed := time.Since(start)
	descriptions := []string{
		fmt.Sprintf("Extracted %d tokens", len(queryTokens)),
		fmt.Sprintf("%d relevant documents", relevant),
		fmt.Sprintf("%d characters of context", len(context)),
		"Query and context combined",
		"LLM generates with context",
	}
	stages := make([]Stage, len(stageShares))
	for i, s := range stageShares {
		stages[i] = Stage{
			Name:        s.name,
			Description: descriptions[i],
			Duration:    time.Duration(float64(elapsed) * s.share),
		}
	}

	return PipelineResult{
		Query:           query,
		QueryTokens:     queryTokens,
		Retrieved:       retrieved,
		Context:         context,
		AugmentedPrompt: prompt,
		HasContext:      hasContext,
		Answer:          answer,
		Elapsed:         elapsed,
		Stages:          stages,
	}
}

// leadSentences returns the first n ". "-separated sentences of text,
// terminated with a period.
func leadSentences(text string, n int) string {
	sentences := strings.Split(text, ". ")
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, ". ") + "."
}

// PipelineStep describes one conceptual stage of a RAG system.
type PipelineStep struct {
	Name        string
	Description string
}

// PipelineSteps is the conceptual RAG flow, for display.
var PipelineSteps = []PipelineStep{
	{"User Query", "The user's question"},
	{"Embedding", "Turns the query into a vector"},
	{"Vector Search", "Finds similar documents"},
	{"Top-K Docs", "Keeps the K most relevant"},
	{"Augmented Prompt", "Query plus document context"},
	{"LLM Generation", "Generates an answer with context"},
	{"Answer", "A grounded response"},
}

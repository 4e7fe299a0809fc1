package retrieval

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"aiforall/internal/corpus/memory"
	"aiforall/internal/domain"
)

func newTestRetriever() *Retriever {
	return NewRetriever(memory.NewReferenceStorage())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Olá, Mundo! Programação é ótimo.", []string{"olá", "mundo", "programação", "ótimo"}},
		{"a an the cat", []string{"the", "cat"}},
		{"cat Cat CAT!", []string{"cat"}},
		{"Node.js and GPT-4", []string{"nodejs", "and", "gpt4"}},
		{"Über", []string{"ber"}},
		{"", []string{}},
		{"   ...  ", []string{}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		query []string
		doc   []string
		want  float64
	}{
		{"empty query", nil, []string{"anything"}, 0},
		{"empty doc", []string{"cat"}, nil, 0},
		{"doc contains query", []string{"learn"}, []string{"learning"}, 1},
		{"query contains doc", []string{"learning"}, []string{"learn"}, 1},
		{"partial", []string{"cat", "dog"}, []string{"category"}, 0.5},
		{"no double count", []string{"cat"}, []string{"cat", "cats", "category"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.query, tt.doc); got != tt.want {
				t.Errorf("Similarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetrieveMachineLearning(t *testing.T) {
	got := newTestRetriever().Retrieve("machine learning", 3)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	found := false
	for _, r := range got {
		if r.Document.ID == 3 {
			found = true
			if r.Score != 1.0 {
				t.Errorf("Machine Learning scored %v, want 1.0", r.Score)
			}
		}
	}
	if !found {
		t.Fatalf("Machine Learning not in top 3: %+v", got)
	}
	// Python Basics also mentions machine learning and comes first in the corpus.
	if got[0].Document.ID != 1 || got[1].Document.ID != 3 {
		t.Errorf("top two = %d, %d; want 1, 3", got[0].Document.ID, got[1].Document.ID)
	}
}

func TestRetrieveEmptyQuery(t *testing.T) {
	got := newTestRetriever().Retrieve("", 3)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for i, r := range got {
		if r.Score != 0 {
			t.Errorf("result %d scored %v, want 0", i, r.Score)
		}
		if r.Document.ID != i+1 {
			t.Errorf("result %d is document %d, want %d", i, r.Document.ID, i+1)
		}
	}
}

func TestRetrieveOrdering(t *testing.T) {
	r := newTestRetriever()
	queries := []string{"deep learning transformers", "embeddings vetores", "llm gpt", "dados", "python javascript web", "ia", "rede neural attention"}
	for _, q := range queries {
		got := r.Retrieve(q, 12)
		if len(got) != 12 {
			t.Fatalf("%q: got %d results, want 12", q, len(got))
		}
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Score < cur.Score {
				t.Errorf("%q: score increases at %d (%v < %v)", q, i, prev.Score, cur.Score)
			}
			if prev.Score == cur.Score && prev.Document.ID > cur.Document.ID {
				t.Errorf("%q: tie at %d broke corpus order (%d before %d)", q, i, prev.Document.ID, cur.Document.ID)
			}
		}
		for _, res := range got {
			if res.Score < 0 || res.Score > 1 {
				t.Errorf("%q: score %v outside [0,1]", q, res.Score)
			}
		}
	}
}

func TestRetrieveTopK(t *testing.T) {
	r := newTestRetriever()
	if got := len(r.Retrieve("ia", 0)); got != DefaultTopK {
		t.Errorf("topK=0 returned %d results, want %d", got, DefaultTopK)
	}
	if got := len(r.Retrieve("ia", 100)); got != 12 {
		t.Errorf("topK=100 returned %d results, want 12", got)
	}
}

func TestRetrieveCustomStore(t *testing.T) {
	docs := []domain.Document{
		{ID: 7, Title: "Zeta", Content: "golang channels", Tags: []string{"go"}},
		{ID: 2, Title: "Alpha", Content: "golang goroutines", Tags: []string{"concurrency"}},
	}
	got := NewRetriever(memory.NewStorage(docs)).Retrieve("golang", 5)
	if len(got) != 2 || got[0].Document.ID != 7 || got[1].Document.ID != 2 {
		t.Fatalf("tie order = %+v, want store order 7, 2", got)
	}
}

func TestRunPipelineWithContext(t *testing.T) {
	r := newTestRetriever()
	res := r.RunPipeline("machine learning", 3)

	if !reflect.DeepEqual(res.QueryTokens, []string{"machine", "learning"}) {
		t.Errorf("QueryTokens = %q", res.QueryTokens)
	}
	if !res.HasContext {
		t.Error("HasContext = false, want true")
	}
	parts := strings.Split(res.Context, "\n\n")
	if len(parts) != 3 {
		t.Fatalf("context has %d parts, want 3: %q", len(parts), res.Context)
	}
	if !strings.HasPrefix(parts[1], "[Machine Learning]: Machine Learning é um subcampo") {
		t.Errorf("second context part = %q", parts[1])
	}
	if !strings.Contains(res.AugmentedPrompt, res.Context) || !strings.Contains(res.AugmentedPrompt, "Question: machine learning") {
		t.Errorf("augmented prompt missing context or query: %q", res.AugmentedPrompt)
	}
	wantAnswer := answerPrefix + "Python é uma linguagem de programação interpretada, de alto nível e tipagem dinâmica. Criada por Guido van Rossum em 1991."
	if res.Answer != wantAnswer {
		t.Errorf("Answer = %q, want %q", res.Answer, wantAnswer)
	}
}

func TestRunPipelineWeakContext(t *testing.T) {
	// One of six tokens matches: score 0.17 builds context but is too weak to answer.
	res := newTestRetriever().RunPipeline("python zzzq yyyq xxxq wwwq vvvq", 3)
	if res.Retrieved[0].Score != 0.17 {
		t.Fatalf("top score = %v, want 0.17", res.Retrieved[0].Score)
	}
	if res.Context == "" || !strings.HasPrefix(res.AugmentedPrompt, "Use the following context") {
		t.Errorf("expected context prompt, got %q", res.AugmentedPrompt)
	}
	if res.HasContext || res.Answer != noContextAnswer {
		t.Errorf("HasContext = %v, Answer = %q; want false and the no-context answer", res.HasContext, res.Answer)
	}
}

func TestRunPipelineNoMatch(t *testing.T) {
	res := newTestRetriever().RunPipeline("zzzq yyyq", 3)
	if res.Context != "" {
		t.Errorf("Context = %q, want empty", res.Context)
	}
	if res.AugmentedPrompt != "Question: zzzq yyyq\n\nAnswer (no context available):" {
		t.Errorf("AugmentedPrompt = %q", res.AugmentedPrompt)
	}
	if res.Answer != noContextAnswer {
		t.Errorf("Answer = %q", res.Answer)
	}
}

func TestRunPipelineStages(t *testing.T) {
	res := newTestRetriever().RunPipeline("rag retrieval", 3)
	if len(res.Stages) != 5 {
		t.Fatalf("got %d stages, want 5", len(res.Stages))
	}
	shares := []float64{0.10, 0.30, 0.10, 0.10, 0.40}
	for i, s := range res.Stages {
		if want := time.Duration(float64(res.Elapsed) * shares[i]); s.Duration != want {
			t.Errorf("stage %q = %v, want %v", s.Name, s.Duration, want)
		}
		if s.Name == "" || s.Description == "" {
			t.Errorf("stage %d missing name or description", i)
		}
	}
	if res.Stages[0].Description != "Extracted 2 tokens" {
		t.Errorf("first stage description = %q", res.Stages[0].Description)
	}
}

func TestRunPipelineIdempotent(t *testing.T) {
	r := newTestRetriever()
	a := r.RunPipeline("como funcionam transformers e attention", 4)
	b := r.RunPipeline("como funcionam transformers e attention", 4)
	if !reflect.DeepEqual(a.Retrieved, b.Retrieved) {
		t.Error("Retrieved differs between identical runs")
	}
	if a.Context != b.Context || a.Answer != b.Answer || a.AugmentedPrompt != b.AugmentedPrompt {
		t.Error("Context, prompt or answer differs between identical runs")
	}
}

func TestLeadSentences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"One. Two. Three.", "One. Two."},
		{"Only one sentence", "Only one sentence."},
	}
	for _, tt := range tests {
		if got := leadSentences(tt.in, 2); got != tt.want {
			t.Errorf("leadSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package attention

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"aiforall/internal/domain"
)

// DefaultHeads is the head count used when MultiHead is asked for none.
const DefaultHeads = 2

// scale is √d for d = domain.Dim.
var scale = math.Sqrt(domain.Dim)

// Result holds every intermediate value of one self-attention pass.
type Result struct {
	Tokens     []string
	Embeddings []domain.Vector
	Q, K, V    []domain.Vector
	Scores     [][]float64
	Weights    [][]float64
	Output     []domain.Vector
	Trace      []Stage
}

// Head is the attention-weight matrix of one head.
type Head struct {
	Label   string
	Weights [][]float64
}

// MultiHeadResult holds the per-head weight matrices for a sentence.
type MultiHeadResult struct {
	Tokens []string
	Heads  []Head
}

// Engine computes scaled dot-product self-attention over fixed projections.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	resolver   domain.Resolver
	wq, wk, wv *mat.Dense
}

// NewEngine creates an engine using the reference projection matrices.
func NewEngine(resolver domain.Resolver) *Engine {
	return NewEngineWithWeights(resolver, QueryWeights, KeyWeights, ValueWeights)
}

// NewEngineWithWeights creates an engine with custom Query, Key and Value matrices.
func NewEngineWithWeights(resolver domain.Resolver, wq, wk, wv Matrix) *Engine {
	return &Engine{resolver: resolver, wq: wq.dense(), wk: wk.dense(), wv: wv.dense()}
}

// Weights returns copies of the Query, Key and Value matrices.
func (e *Engine) Weights() (q, k, v Matrix) {
	return fromDense(e.wq), fromDense(e.wk), fromDense(e.wv)
}

// Tokenize splits a sentence on whitespace. Empty input yields one empty token.
func Tokenize(sentence string) []string {
	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return []string{""}
	}
	return tokens
}

// SelfAttention runs a full single-head attention pass over sentence.
func (e *Engine) SelfAttention(sentence string) Result {
	tokens := Tokenize(sentence)
	embeddings := e.embed(tokens)

	n := len(tokens)
	q := make([]domain.Vector, n)
	k := make([]domain.Vector, n)
	v := make([]domain.Vector, n)
	for i, emb := range embeddings {
		q[i] = project(e.wq, emb)
		k[i] = project(e.wk, emb)
		v[i] = project(e.wv, emb)
	}

	scores := scoreMatrix(q, k)
	weights := make([][]float64, n)
	for i, row := range scores {
		weights[i] = Softmax(row)
	}

	output := make([]domain.Vector, n)
	for i := range output {
		for j := range v {
			for d := 0; d < domain.Dim; d++ {
				output[i][d] += weights[i][j] * v[j][d]
			}
		}
	}

	res := Result{
		Tokens:     tokens,
		Embeddings: embeddings,
		Q:          q,
		K:          k,
		V:          v,
		Scores:     scores,
		Weights:    weights,
		Output:     output,
	}
	res.Trace = buildTrace(res)
	return res
}

// MultiHead computes one weight matrix per head. Head h shifts every Query
// weight by ±(h+1)·0.1 and every Key weight by the opposite half of that,
// alternating sign with the parity of h. Value weights are shared, so heads
// differ only in where they attend, not in what they aggregate.
func (e *Engine) MultiHead(sentence string, headCount int) MultiHeadResult {
	if headCount <= 0 {
		headCount = DefaultHeads
	}
	tokens := Tokenize(sentence)
	embeddings := e.embed(tokens)

	heads := make([]Head, 0, headCount)
	for h := 0; h < headCount; h++ {
		offset := float64(h+1) * 0.1
		sign := 1.0
		if h%2 != 0 {
			sign = -1.0
		}
		wq := shift(e.wq, offset*sign)
		wk := shift(e.wk, -offset*0.5*sign)

		q := make([]domain.Vector, len(embeddings))
		k := make([]domain.Vector, len(embeddings))
		for i, emb := range embeddings {
			q[i] = project(wq, emb)
			k[i] = project(wk, emb)
		}
		scores := scoreMatrix(q, k)
		weights := make([][]float64, len(scores))
		for i, row := range scores {
			weights[i] = Softmax(row)
		}
		heads = append(heads, Head{Label: fmt.Sprintf("Head %d", h+1), Weights: weights})
	}
	return MultiHeadResult{Tokens: tokens, Heads: heads}
}

// Softmax normalizes scores into a probability distribution. The row maximum
// is subtracted before exponentiating so large scores cannot overflow.
func Softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	maxV := scores[0]
	for _, s := range scores[1:] {
		if s > maxV {
			maxV = s
		}
	}
	out := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		out[i] = math.Exp(s - maxV)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func (e *Engine) embed(tokens []string) []domain.Vector {
	out := make([]domain.Vector, len(tokens))
	for i, t := range tokens {
		out[i] = e.resolver.Resolve(t)
	}
	return out
}

func scoreMatrix(q, k []domain.Vector) [][]float64 {
	scores := make([][]float64, len(q))
	for i := range q {
		row := make([]float64, len(k))
		for j := range k {
			row[j] = dot(q[i], k[j]) / scale
		}
		scores[i] = row
	}
	return scores
}

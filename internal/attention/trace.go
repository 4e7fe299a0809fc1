package attention

import (
	"math"

	"aiforall/internal/domain"
)

// StageKind identifies one step of the attention trace.
type StageKind int

const (
	StageEmbeddings StageKind = iota
	StageProjections
	StageScores
	StageWeights
	StageOutput
)

// TokenVector pairs a token with a vector.
type TokenVector struct {
	Token  string
	Vector domain.Vector
}

// TokenProjection pairs a token with its Query, Key and Value vectors.
type TokenProjection struct {
	Token   string
	Q, K, V domain.Vector
}

// Stage is a labeled, display-rounded snapshot of one attention step.
// Only the payload field matching Kind is set.
type Stage struct {
	Kind        StageKind
	Title       string
	Description string
	Vectors     []TokenVector
	Projections []TokenProjection
	Matrix      [][]float64
}

// tracePrecision is the number of decimals kept in trace payloads.
const tracePrecision = 3

func buildTrace(r Result) []Stage {
	embeddings := make([]TokenVector, len(r.Tokens))
	projections := make([]TokenProjection, len(r.Tokens))
	outputs := make([]TokenVector, len(r.Tokens))
	for i, t := range r.Tokens {
		embeddings[i] = TokenVector{Token: t, Vector: r.Embeddings[i]}
		projections[i] = TokenProjection{
			Token: t,
			Q:     roundVector(r.Q[i]),
			K:     roundVector(r.K[i]),
			V:     roundVector(r.V[i]),
		}
		outputs[i] = TokenVector{Token: t, Vector: roundVector(r.Output[i])}
	}
	return []Stage{
		{
			Kind:        StageEmbeddings,
			Title:       "1. Embeddings",
			Description: "Each token is mapped to its (simplified 4D) embedding vector.",
			Vectors:     embeddings,
		},
		{
			Kind:        StageProjections,
			Title:       "2. Q, K, V projections",
			Description: "Each embedding is multiplied by three weight matrices to produce Query, Key and Value.",
			Projections: projections,
		},
		{
			Kind:        StageScores,
			Title:       "3. Scores (Q·Kᵀ / √dₖ)",
			Description: "Every Query is dotted with every Key and divided by √4 = 2.",
			Matrix:      roundMatrix(r.Scores),
		},
		{
			Kind:        StageWeights,
			Title:       "4. Softmax → attention weights",
			Description: "Softmax turns each row of scores into probabilities that sum to 1.",
			Matrix:      roundMatrix(r.Weights),
		},
		{
			Kind:        StageOutput,
			Title:       "5. Output (weights × V)",
			Description: "Each token receives a weighted average of every token's Value.",
			Vectors:     outputs,
		},
	}
}

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func roundVector(v domain.Vector) domain.Vector {
	for i := range v {
		v[i] = round(v[i], tracePrecision)
	}
	return v
}

func roundMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, x := range row {
			out[i][j] = round(x, tracePrecision)
		}
	}
	return out
}

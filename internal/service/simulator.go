package service

import (
	"aiforall/internal/attention"
	"aiforall/internal/domain"
	"aiforall/internal/embedding"
	"aiforall/internal/lstm"
	"aiforall/internal/retrieval"
)

// Options tunes the demos. Zero values fall back to package defaults.
type Options struct {
	Heads      int
	Preset     lstm.Preset
	Precision  lstm.Precision
	InitHidden float64
	InitCell   float64
	TopK       int
}

// LSTMRun is one LSTM demo run over a piece of text.
type LSTMRun struct {
	Words  []string
	Inputs []float64
	Preset lstm.Preset
	Traces []lstm.GateTrace
}

// Simulator bundles the attention, LSTM and retrieval engines behind one
// façade for presentation layers. It holds only read-only state.
type Simulator struct {
	lexicon   *embedding.Lexicon
	attention *attention.Engine
	retriever *retrieval.Retriever
	opts      Options
}

// NewSimulator assembles the engines over the given lexicon and document store.
func NewSimulator(lexicon *embedding.Lexicon, store domain.DocumentStore, opts Options) *Simulator {
	if opts.Heads <= 0 {
		opts.Heads = attention.DefaultHeads
	}
	if opts.TopK <= 0 {
		opts.TopK = retrieval.DefaultTopK
	}
	if opts.Preset.Name == "" {
		opts.Preset, _ = lstm.PresetByName(lstm.PresetBalanced)
	}
	return &Simulator{
		lexicon:   lexicon,
		attention: attention.NewEngine(lexicon),
		retriever: retrieval.NewRetriever(store),
		opts:      opts,
	}
}

// Attention runs single-head self-attention over text.
func (s *Simulator) Attention(text string) attention.Result {
	return s.attention.SelfAttention(text)
}

// MultiHead runs the multi-head variant with the configured head count.
func (s *Simulator) MultiHead(text string) attention.MultiHeadResult {
	return s.attention.MultiHead(text, s.opts.Heads)
}

// LSTM turns text into a scalar sequence and unrolls the cell over it.
// An empty preset name selects the configured preset.
func (s *Simulator) LSTM(text, preset string) (LSTMRun, error) {
	p := s.opts.Preset
	if preset != "" {
		var err error
		if p, err = lstm.PresetByName(preset); err != nil {
			return LSTMRun{}, err
		}
	}
	inputs := lstm.TextToSequence(text)
	runner := lstm.Runner{
		Weights:    p.Weights,
		Precision:  s.opts.Precision,
		InitHidden: s.opts.InitHidden,
		InitCell:   s.opts.InitCell,
	}
	return LSTMRun{
		Words:  lstm.Words(text),
		Inputs: inputs,
		Preset: p,
		Traces: runner.Run(inputs),
	}, nil
}

// RAG runs the simulated retrieval-augmented generation pipeline.
func (s *Simulator) RAG(query string) retrieval.PipelineResult {
	return s.retriever.RunPipeline(query, s.opts.TopK)
}

// Retrieve returns the configured number of best documents for query.
func (s *Simulator) Retrieve(query string) []domain.RetrievalResult {
	return s.retriever.Retrieve(query, s.opts.TopK)
}

// Preset returns the configured LSTM preset.
func (s *Simulator) Preset() lstm.Preset { return s.opts.Preset }

// Presets returns the LSTM preset catalog.
func (s *Simulator) Presets() []lstm.Preset { return lstm.Presets() }

// Documents returns the knowledge base.
func (s *Simulator) Documents() []domain.Document { return s.retriever.Documents() }

// Vocabulary returns the curated embedding dictionary words.
func (s *Simulator) Vocabulary() []string { return s.lexicon.Words() }

// Neighbors returns the k dictionary words closest to token.
func (s *Simulator) Neighbors(token string, k int) []embedding.Neighbor {
	return s.lexicon.Nearest(token, k)
}

package lstm

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Precision selects which state is carried from one step to the next.
type Precision int

const (
	// PrecisionRounded feeds the four-decimal display values of hidden and
	// cell state into the next step, so rounding error compounds over time.
	// This reproduces the reference output exactly.
	PrecisionRounded Precision = iota
	// PrecisionFull carries the unrounded state; traces are still rounded.
	PrecisionFull
)

func (p Precision) String() string {
	switch p {
	case PrecisionRounded:
		return "rounded"
	case PrecisionFull:
		return "full"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision maps a config value to a Precision. Empty means rounded.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rounded":
		return PrecisionRounded, nil
	case "full":
		return PrecisionFull, nil
	default:
		return PrecisionRounded, fmt.Errorf("unknown lstm precision: %s", s)
	}
}

// Runner unrolls a cell over a sequence of scalar inputs.
type Runner struct {
	Weights    GateWeights
	Precision  Precision
	InitHidden float64
	InitCell   float64
}

// Run returns one trace per input, tagged with its time index. Each step
// depends on the previous one, so steps run strictly in order.
func (r Runner) Run(inputs []float64) []GateTrace {
	traces := make([]GateTrace, 0, len(inputs))
	h, c := r.InitHidden, r.InitCell
	for t, x := range inputs {
		s := activate(x, h, c, r.Weights)
		tr := s.trace()
		tr.T = t
		traces = append(traces, tr)
		if r.Precision == PrecisionFull {
			h, c = s.hidden, s.cell
		} else {
			h, c = tr.Hidden, tr.CellState
		}
	}
	return traces
}

// RunSequence runs the cell in rounded-state mode.
func RunSequence(inputs []float64, w GateWeights, initHidden, initCell float64) []GateTrace {
	return Runner{Weights: w, InitHidden: initHidden, InitCell: initCell}.Run(inputs)
}

// Words splits text on whitespace. Empty input yields one empty word.
func Words(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	return words
}

// TextToSequence maps each word to (sum of UTF-16 code units mod 100) / 100.
func TextToSequence(text string) []float64 {
	words := Words(text)
	out := make([]float64, len(words))
	for i, w := range words {
		sum := 0
		for _, u := range utf16.Encode([]rune(w)) {
			sum += int(u)
		}
		out[i] = float64(sum%100) / 100
	}
	return out
}

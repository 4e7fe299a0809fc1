package lstm

import "math"

// displayPrecision is the number of decimals kept in a GateTrace.
const displayPrecision = 4

// GateWeights holds the scalar coefficients of one LSTM cell: an input
// weight (w), a recurrent weight (u) and a bias (b) for each of the forget,
// input, candidate and output gates.
type GateWeights struct {
	Wf float64 `yaml:"wf"`
	Wi float64 `yaml:"wi"`
	Wc float64 `yaml:"wc"`
	Wo float64 `yaml:"wo"`
	Uf float64 `yaml:"uf"`
	Ui float64 `yaml:"ui"`
	Uc float64 `yaml:"uc"`
	Uo float64 `yaml:"uo"`
	Bf float64 `yaml:"bf"`
	Bi float64 `yaml:"bi"`
	Bc float64 `yaml:"bc"`
	Bo float64 `yaml:"bo"`
}

// GateTrace is every intermediate value of one cell step, rounded to four
// decimals for display. Input, PrevHidden and PrevCell are the values the
// step was fed, unrounded.
type GateTrace struct {
	T          int
	Input      float64
	PrevHidden float64
	PrevCell   float64

	ForgetGate float64
	InputGate  float64
	Candidate  float64
	OutputGate float64
	CellState  float64
	Hidden     float64

	ForgetRaw    float64
	InputRaw     float64
	CandidateRaw float64
	OutputRaw    float64
}

// Sigmoid is the logistic function.
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Tanh is the hyperbolic tangent.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Step runs one cell update and returns its display trace.
func Step(input, prevHidden, prevCell float64, w GateWeights) GateTrace {
	return activate(input, prevHidden, prevCell, w).trace()
}

// state holds the full-precision values of a single step.
type state struct {
	input, prevHidden, prevCell float64

	forgetRaw, inputRaw, candidateRaw, outputRaw float64

	forget, in, candidate, output float64

	cell, hidden float64
}

func activate(input, prevHidden, prevCell float64, w GateWeights) state {
	s := state{input: input, prevHidden: prevHidden, prevCell: prevCell}

	s.forgetRaw = w.Wf*input + w.Uf*prevHidden + w.Bf
	s.forget = Sigmoid(s.forgetRaw)

	s.inputRaw = w.Wi*input + w.Ui*prevHidden + w.Bi
	s.in = Sigmoid(s.inputRaw)

	s.candidateRaw = w.Wc*input + w.Uc*prevHidden + w.Bc
	s.candidate = Tanh(s.candidateRaw)

	s.cell = s.forget*prevCell + s.in*s.candidate

	s.outputRaw = w.Wo*input + w.Uo*prevHidden + w.Bo
	s.output = Sigmoid(s.outputRaw)

	s.hidden = s.output * Tanh(s.cell)
	return s
}

func (s state) trace() GateTrace {
	return GateTrace{
		Input:        s.input,
		PrevHidden:   s.prevHidden,
		PrevCell:     s.prevCell,
		ForgetGate:   round(s.forget),
		InputGate:    round(s.in),
		Candidate:    round(s.candidate),
		OutputGate:   round(s.output),
		CellState:    round(s.cell),
		Hidden:       round(s.hidden),
		ForgetRaw:    round(s.forgetRaw),
		InputRaw:     round(s.inputRaw),
		CandidateRaw: round(s.candidateRaw),
		OutputRaw:    round(s.outputRaw),
	}
}

func round(x float64) float64 {
	const p = 1e4
	return math.Round(x*p) / p
}

package tui

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aiforall/internal/attention"
	"aiforall/internal/domain"
	"aiforall/internal/retrieval"
	"aiforall/internal/service"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tokenStyle     = lipgloss.NewStyle().Bold(true).Width(10)
	cellStyle      = lipgloss.NewStyle().Width(7).Align(lipgloss.Right)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	unicodeWordRe  = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// gate colors
var (
	forgetColor    = lipgloss.Color("#ef4444")
	inputColor     = lipgloss.Color("#10b981")
	candidateColor = lipgloss.Color("#06b6d4")
	outputColor    = lipgloss.Color("#f59e0b")
	cellColor      = lipgloss.Color("#a855f7")
	hiddenColor    = lipgloss.Color("#6366f1")
)

const barWidth = 24

// Render runs the demo selected by mode over text and renders it.
func Render(mode Mode, sim SimulatorPort, text, preset string) (string, error) {
	switch mode {
	case ModeAttention:
		return RenderAttention(sim.Attention(text)), nil
	case ModeMultiHead:
		return RenderMultiHead(sim.MultiHead(text)), nil
	case ModeLSTM:
		run, err := sim.LSTM(text, preset)
		if err != nil {
			return "", err
		}
		return RenderLSTM(run), nil
	case ModeRAG:
		return RenderRAG(sim.RAG(text)), nil
	default:
		return "", fmt.Errorf("unknown mode: %d", mode)
	}
}

// RenderAttention renders every stage of the attention trace.
func RenderAttention(res attention.Result) string {
	var b strings.Builder
	for _, st := range res.Trace {
		b.WriteString(titleStyle.Render(st.Title) + "\n")
		b.WriteString(mutedStyle.Render(st.Description) + "\n")
		switch st.Kind {
		case attention.StageEmbeddings, attention.StageOutput:
			for _, tv := range st.Vectors {
				b.WriteString(tokenStyle.Render(tv.Token) + formatVector(tv.Vector) + "\n")
			}
		case attention.StageProjections:
			for _, p := range st.Projections {
				b.WriteString(tokenStyle.Render(p.Token) + "Q" + formatVector(p.Q) + "  K" + formatVector(p.K) + "  V" + formatVector(p.V) + "\n")
			}
		case attention.StageScores:
			b.WriteString(renderMatrix(res.Tokens, st.Matrix, false))
		case attention.StageWeights:
			b.WriteString(renderMatrix(res.Tokens, st.Matrix, true))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMultiHead renders one heatmap per head.
func RenderMultiHead(res attention.MultiHeadResult) string {
	parts := make([]string, 0, len(res.Heads))
	for _, h := range res.Heads {
		parts = append(parts, titleStyle.Render(h.Label)+"\n"+renderMatrix(res.Tokens, h.Weights, true))
	}
	return strings.Join(parts, "\n")
}

// RenderLSTM renders cell and hidden state over time followed by the gate table.
func RenderLSTM(run service.LSTMRun) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Preset: "+run.Preset.Label) + "  " + mutedStyle.Render(run.Preset.Description) + "\n\n")

	maxCell, maxHidden := 0.1, 0.1
	for _, s := range run.Traces {
		maxCell = math.Max(maxCell, math.Abs(s.CellState))
		maxHidden = math.Max(maxHidden, math.Abs(s.Hidden))
	}
	b.WriteString(titleStyle.Render("Cell state over time") + "\n")
	for i, s := range run.Traces {
		b.WriteString(tokenStyle.Render(wordAt(run.Words, i)) + fmt.Sprintf("%6.2f ", s.CellState) + bar(math.Abs(s.CellState)/maxCell, cellColor) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("Hidden state over time") + "\n")
	for i, s := range run.Traces {
		b.WriteString(tokenStyle.Render(wordAt(run.Words, i)) + fmt.Sprintf("%6.2f ", s.Hidden) + bar(math.Abs(s.Hidden)/maxHidden, hiddenColor) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Gates over time") + "\n")
	header := []string{"t", "token", "input", "forget", "in.g", "cand", "out.g", "cell", "hidden"}
	colors := []lipgloss.Color{"", "", "", forgetColor, inputColor, candidateColor, outputColor, cellColor, hiddenColor}
	for i, h := range header {
		st := cellStyle
		if colors[i] != "" {
			st = st.Foreground(colors[i])
		}
		b.WriteString(st.Render(h))
	}
	b.WriteString("\n")
	for i, s := range run.Traces {
		row := []string{
			fmt.Sprint(s.T), wordAt(run.Words, i), fmt.Sprintf("%.2f", s.Input),
			fmt.Sprintf("%.3f", s.ForgetGate), fmt.Sprintf("%.3f", s.InputGate), fmt.Sprintf("%.3f", s.Candidate),
			fmt.Sprintf("%.3f", s.OutputGate), fmt.Sprintf("%.3f", s.CellState), fmt.Sprintf("%.3f", s.Hidden),
		}
		for _, c := range row {
			b.WriteString(cellStyle.Render(c))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRAG renders the retrieved documents, prompt, answer and stage timings.
func RenderRAG(res retrieval.PipelineResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Query tokens: ") + strings.Join(res.QueryTokens, ", ") + "\n\n")
	b.WriteString(titleStyle.Render("Retrieved") + "\n")
	for i, r := range res.Retrieved {
		b.WriteString(fmt.Sprintf("%d. [%s] score=%.2f\n", i+1, r.Document.Title, r.Score))
		if r.Score > 0 {
			b.WriteString("   " + highlightTerms(r.Document.Content, res.QueryTokens) + "\n")
		}
	}
	b.WriteString("\n" + titleStyle.Render("Augmented prompt") + "\n" + mutedStyle.Render(res.AugmentedPrompt) + "\n\n")
	b.WriteString(titleStyle.Render("Answer") + "\n" + res.Answer + "\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Pipeline (%s total)", res.Elapsed)) + "\n")
	for _, s := range res.Stages {
		b.WriteString(fmt.Sprintf("  %-20s %-28s %s\n", s.Name, s.Description, s.Duration))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMatrix(tokens []string, m [][]float64, heat bool) string {
	var b strings.Builder
	b.WriteString(tokenStyle.Render(""))
	for _, t := range tokens {
		b.WriteString(cellStyle.Render(truncate(t, 6)))
	}
	b.WriteString("\n")
	for i, row := range m {
		b.WriteString(tokenStyle.Render(tokens[i]))
		for _, v := range row {
			st := cellStyle
			if heat {
				st = st.Background(heatColor(v)).Foreground(lipgloss.Color("15"))
			}
			b.WriteString(st.Render(fmt.Sprintf("%.3f", v)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// heatColor blends the attention hue over black with opacity growing with w.
func heatColor(w float64) lipgloss.Color {
	w = math.Max(0, math.Min(1, w))
	alpha := w*0.85 + 0.05
	r := (99 + (1-w)*50) * alpha
	g := (102 + (1-w)*50) * alpha
	bl := 241 * alpha
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", int(math.Round(r)), int(math.Round(g)), int(math.Round(bl))))
}

func bar(frac float64, color lipgloss.Color) string {
	n := int(math.Round(frac * barWidth))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n)) + strings.Repeat("·", barWidth-n)
}

func formatVector(v domain.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.3f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// highlightTerms emphasizes the words of text that overlap a query token.
func highlightTerms(text string, queryTokens []string) string {
	if len(queryTokens) == 0 {
		return text
	}
	return unicodeWordRe.ReplaceAllStringFunc(text, func(word string) string {
		lw := strings.ToLower(word)
		if len([]rune(lw)) <= 2 {
			return word
		}
		for _, q := range queryTokens {
			if strings.Contains(lw, q) || strings.Contains(q, lw) {
				return highlightStyle.Render(word)
			}
		}
		return word
	})
}

func wordAt(words []string, i int) string {
	if i < len(words) && words[i] != "" {
		return words[i]
	}
	return "?"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"aiforall/internal/corpus/memory"
	"aiforall/internal/embedding"
	"aiforall/internal/service"
)

func newTestModel(mode Mode) Model {
	sim := service.NewSimulator(embedding.NewLexicon(), memory.NewReferenceStorage(), service.Options{})
	m := New(sim, mode)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestParseMode(t *testing.T) {
	for i, name := range modeNames {
		got, err := ParseMode(strings.ToUpper(name))
		if err != nil || got != Mode(i) {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseMode("vision"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRenderEveryMode(t *testing.T) {
	sim := service.NewSimulator(embedding.NewLexicon(), memory.NewReferenceStorage(), service.Options{Heads: 3})
	tests := []struct {
		mode Mode
		text string
		want []string
	}{
		{ModeAttention, "the cat sat", []string{"1. Embeddings", "4. Softmax", "5. Output"}},
		{ModeMultiHead, "the cat sat", []string{"Head 1", "Head 2", "Head 3"}},
		{ModeLSTM, "the cat sat", []string{"Cell state over time", "Gates over time", "Balanced"}},
		{ModeRAG, "machine learning", []string{"Machine Learning", "Augmented prompt", "Based on the retrieved documents", "Generate answer"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out, err := Render(tt.mode, sim, tt.text, "")
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q", w)
				}
			}
		})
	}
	if _, err := Render(ModeLSTM, sim, "x", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := Render(Mode(42), sim, "x", ""); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModelRunAndSwitch(t *testing.T) {
	m := newTestModel(ModeAttention)
	if !strings.Contains(m.View(), "No results yet.") {
		t.Fatal("expected empty state before first run")
	}
	m.input.SetValue("the cat sat")
	m = press(m, tea.KeyEnter)
	if m.lastInput != "the cat sat" || !strings.Contains(m.content, "Embeddings") {
		t.Fatalf("enter did not run attention: status=%q", m.status)
	}

	m = press(m, tea.KeyTab)
	if m.mode != ModeMultiHead || !strings.Contains(m.content, "Head 1") {
		t.Fatalf("tab did not rerun as multihead: mode=%v", m.mode)
	}
	m = press(m, tea.KeyShiftTab)
	m = press(m, tea.KeyShiftTab)
	if m.mode != ModeRAG {
		t.Fatalf("shift+tab wrapped to %v, want rag", m.mode)
	}
}

func TestModelCyclesPreset(t *testing.T) {
	m := newTestModel(ModeLSTM)
	m.input.SetValue("hello world")
	m = press(m, tea.KeyEnter)
	if !strings.Contains(m.content, "Balanced") {
		t.Fatal("expected balanced preset first")
	}
	m = press(m, tea.KeyCtrlP)
	if !strings.Contains(m.content, "Remember everything") {
		t.Fatalf("ctrl+p did not switch preset: %q", m.status)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(ModeRAG)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c command is not tea.Quit")
	}
}

func TestHeatColor(t *testing.T) {
	if got := heatColor(0); got != "#07080c" {
		t.Errorf("heatColor(0) = %s", got)
	}
	if got := heatColor(1); got != "#595cd9" {
		t.Errorf("heatColor(1) = %s", got)
	}
}

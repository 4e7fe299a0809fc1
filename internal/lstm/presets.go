package lstm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not in the catalog.
var ErrUnknownPreset = errors.New("unknown lstm preset")

// Preset is a named, described set of gate weights.
type Preset struct {
	Name        string
	Label       string
	Description string
	Weights     GateWeights
}

const (
	PresetBalanced           = "balanced"
	PresetRememberEverything = "remember-everything"
	PresetForgetFast         = "forget-fast"
	PresetSelective          = "selective"
)

var presets = []Preset{
	{
		Name:        PresetBalanced,
		Label:       "Balanced",
		Description: "All gates active in equal measure",
		Weights:     GateWeights{Wf: 1.0, Wi: 1.0, Wc: 1.0, Wo: 1.0, Uf: 0.5, Ui: 0.5, Uc: 0.5, Uo: 0.5, Bf: 0.0, Bi: 0.0, Bc: 0.0, Bo: 0.0},
	},
	{
		Name:        PresetRememberEverything,
		Label:       "Remember everything",
		Description: "High forget gate keeps long-term memory",
		Weights:     GateWeights{Wf: 2.0, Wi: 0.5, Wc: 1.0, Wo: 1.0, Uf: 1.5, Ui: 0.3, Uc: 0.5, Uo: 0.5, Bf: 2.0, Bi: -1.0, Bc: 0.0, Bo: 0.0},
	},
	{
		Name:        PresetForgetFast,
		Label:       "Forget fast",
		Description: "Low forget gate discards past memory",
		Weights:     GateWeights{Wf: -1.0, Wi: 2.0, Wc: 1.0, Wo: 1.0, Uf: -0.5, Ui: 1.0, Uc: 0.5, Uo: 0.5, Bf: -2.0, Bi: 1.0, Bc: 0.0, Bo: 0.0},
	},
	{
		Name:        PresetSelective,
		Label:       "Selective",
		Description: "Input gate filters selectively",
		Weights:     GateWeights{Wf: 1.5, Wi: 2.0, Wc: 1.5, Wo: 1.0, Uf: 0.8, Ui: 1.2, Uc: 0.8, Uo: 0.5, Bf: 0.5, Bi: -0.5, Bc: 0.0, Bo: 0.0},
	},
}

// short names used by older configs
var presetAliases = map[string]string{
	"remember": PresetRememberEverything,
	"forget":   PresetForgetFast,
}

// Presets returns the preset catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks a preset up by name, case-insensitively.
func PresetByName(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := presetAliases[key]; ok {
		key = alias
	}
	for _, p := range presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

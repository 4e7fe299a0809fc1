package embedding

import (
	"sort"

	"aiforall/internal/domain"
)

// wordVectors is the curated dictionary. Never written after init.
var wordVectors = map[string]domain.Vector{
	"the":    {0.1, 0.2, 0.05, 0.1},
	"a":      {0.12, 0.18, 0.06, 0.11},
	"cat":    {0.8, 0.1, 0.6, 0.3},
	"dog":    {0.75, 0.15, 0.55, 0.35},
	"bird":   {0.7, 0.05, 0.65, 0.25},
	"sat":    {0.3, 0.7, 0.2, 0.5},
	"on":     {0.15, 0.25, 0.1, 0.15},
	"mat":    {0.5, 0.3, 0.4, 0.6},
	"is":     {0.2, 0.3, 0.1, 0.2},
	"was":    {0.22, 0.32, 0.12, 0.22},
	"happy":  {0.4, 0.8, 0.3, 0.7},
	"sad":    {0.35, 0.75, 0.25, 0.65},
	"big":    {0.6, 0.4, 0.5, 0.45},
	"small":  {0.55, 0.35, 0.45, 0.4},
	"ran":    {0.35, 0.65, 0.25, 0.55},
	"jumped": {0.38, 0.68, 0.28, 0.58},
	"over":   {0.18, 0.28, 0.12, 0.18},
	"under":  {0.17, 0.27, 0.11, 0.17},
	"lazy":   {0.45, 0.72, 0.35, 0.62},
	"quick":  {0.48, 0.65, 0.38, 0.58},
	"brown":  {0.42, 0.38, 0.52, 0.48},
	"fox":    {0.72, 0.12, 0.58, 0.32},
	"it":     {0.13, 0.22, 0.07, 0.12},
	"he":     {0.14, 0.24, 0.08, 0.14},
	"she":    {0.14, 0.23, 0.08, 0.15},
	"they":   {0.15, 0.25, 0.09, 0.16},
	"with":   {0.16, 0.26, 0.11, 0.17},
	"from":   {0.17, 0.27, 0.12, 0.18},
	"love":   {0.42, 0.82, 0.32, 0.72},
	"hate":   {0.38, 0.78, 0.28, 0.68},
	"king":   {0.6, 0.5, 0.7, 0.8},
	"queen":  {0.58, 0.48, 0.68, 0.82},
	"i":      {0.11, 0.21, 0.06, 0.11},
	"you":    {0.12, 0.22, 0.07, 0.12},
	"we":     {0.13, 0.23, 0.08, 0.13},
	"are":    {0.2, 0.3, 0.1, 0.2},
	"not":    {0.18, 0.28, 0.09, 0.19},
	"my":     {0.11, 0.21, 0.06, 0.12},
	"your":   {0.12, 0.22, 0.07, 0.13},
	"very":   {0.25, 0.35, 0.15, 0.25},
	"much":   {0.24, 0.34, 0.14, 0.24},
	"can":    {0.2, 0.3, 0.1, 0.2},
	"will":   {0.21, 0.31, 0.11, 0.21},
	"good":   {0.45, 0.78, 0.35, 0.68},
	"bad":    {0.40, 0.73, 0.30, 0.63},
	"fast":   {0.50, 0.60, 0.40, 0.55},
	"slow":   {0.48, 0.58, 0.38, 0.52},
}

// Words returns the dictionary keys in sorted order.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.vectors))
	for w := range l.vectors {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

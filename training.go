package tweetsense

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Word weights
const (
	wordMinSupport    = 3
	wordStrongRatio   = 0.6
	wordStrongScale   = 2.0
	wordModerateGap   = 0.3
	wordModerateScale = 1.5
	wordMinWeight     = 0.1
)

// Emoji weights
const (
	emojiMinSupport  = 2
	emojiStrongRatio = 0.5
	emojiStrongScale = 3.0
	emojiMinWeight   = 0.5
)

// Phrase weights
const (
	phraseMinSupport  = 2
	phraseStrongRatio = 0.6
	phraseStrongScale = 2.5
	phraseMinWeight   = 0.8
)

// WeightRule turns the class counts of one feature kind into signed weights.
//
// A feature seen fewer than MinSupport times is skipped. If either class ratio
// exceeds StrongRatio the weight is ±ratio*StrongScale. Otherwise, when
// ModerateScale is set and the ratios differ by more than ModerateGap, the
// weight is (positive-negative)*ModerateScale. Weights whose magnitude does not
// exceed MinWeight are dropped.
type WeightRule struct {
	MinSupport    int
	StrongRatio   float64
	StrongScale   float64
	ModerateGap   float64
	ModerateScale float64
	MinWeight     float64
}

// Weight returns the weight for counts and whether it should be kept
func (r WeightRule) Weight(counts ClassCounts) (float64, bool) {
	total := counts.Total()
	if total == 0 || total < r.MinSupport {
		return 0, false
	}

	positiveRatio := float64(counts.Positive) / float64(total)
	negativeRatio := float64(counts.Negative) / float64(total)

	var weight float64
	switch {
	case positiveRatio > r.StrongRatio:
		weight = positiveRatio * r.StrongScale
	case negativeRatio > r.StrongRatio:
		weight = -negativeRatio * r.StrongScale
	case r.ModerateScale != 0 && math.Abs(positiveRatio-negativeRatio) > r.ModerateGap:
		weight = (positiveRatio - negativeRatio) * r.ModerateScale
	}

	if math.Abs(weight) <= r.MinWeight {
		return 0, false
	}
	return weight, true
}

// apply computes the retained weights for every feature in counts
func (r WeightRule) apply(counts map[string]ClassCounts) map[string]float64 {
	weights := make(map[string]float64)
	for feature, c := range counts {
		if w, ok := r.Weight(c); ok {
			weights[feature] = w
		}
	}
	return weights
}

// TrainingConfig contains configuration for model training
type TrainingConfig struct {
	Words   WeightRule
	Emoji   WeightRule
	Phrases WeightRule
	Logger  *slog.Logger // Progress logging; slog.Default() when nil
}

// DefaultTrainingConfig returns the rules used by published models.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Words: WeightRule{
			MinSupport:    wordMinSupport,
			StrongRatio:   wordStrongRatio,
			StrongScale:   wordStrongScale,
			ModerateGap:   wordModerateGap,
			ModerateScale: wordModerateScale,
			MinWeight:     wordMinWeight,
		},
		Emoji: WeightRule{
			MinSupport:  emojiMinSupport,
			StrongRatio: emojiStrongRatio,
			StrongScale: emojiStrongScale,
			MinWeight:   emojiMinWeight,
		},
		Phrases: WeightRule{
			MinSupport:  phraseMinSupport,
			StrongRatio: phraseStrongRatio,
			StrongScale: phraseStrongScale,
			MinWeight:   phraseMinWeight,
		},
	}
}

// TrainingStats describes a completed training run
type TrainingStats struct {
	TotalExamples  int
	Distribution   ClassCounts
	UniqueWords    int
	UniqueEmoji    int
	UniquePhrases  int
	LearnedWords   int
	LearnedEmoji   int
	LearnedPhrases int
	TrainingTime   time.Duration
}

// FrequencyTable holds per-feature class counts for a single training run.
type FrequencyTable struct {
	Words   map[string]ClassCounts
	Emoji   map[string]ClassCounts
	Phrases map[string]ClassCounts
	Classes ClassCounts // examples per class
}

// NewFrequencyTable returns an empty table
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		Words:   make(map[string]ClassCounts),
		Emoji:   make(map[string]ClassCounts),
		Phrases: make(map[string]ClassCounts),
	}
}

// Add counts every feature occurrence in example against its label.
func (ft *FrequencyTable) Add(example LabeledExample) {
	ft.Classes.add(example.Label)

	features := ExtractFeatures(example.Text)
	increment(ft.Words, features.Tokens, example.Label)
	increment(ft.Emoji, features.Emoji, example.Label)
	increment(ft.Phrases, features.Phrases, example.Label)
}

func increment(counts map[string]ClassCounts, keys []string, label SentimentClass) {
	for _, key := range keys {
		c := counts[key]
		c.add(label)
		counts[key] = c
	}
}

// AverageScore returns each class's share of the examples seen. All shares
// are zero when the table is empty.
func (ft *FrequencyTable) AverageScore() AverageScore {
	total := ft.Classes.Total()
	if total == 0 {
		return AverageScore{}
	}

	shares := []float64{
		float64(ft.Classes.Positive),
		float64(ft.Classes.Negative),
		float64(ft.Classes.Neutral),
	}
	floats.Scale(1/float64(total), shares)

	return AverageScore{
		Positive: shares[0],
		Negative: shares[1],
		Neutral:  shares[2],
	}
}

// Trainer turns labeled corpora into TrainedModels
type Trainer struct {
	config TrainingConfig
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(config TrainingConfig) *Trainer {
	return &Trainer{config: config}
}

// Aggregate counts features over the whole corpus in a single pass.
func (t *Trainer) Aggregate(examples []LabeledExample) *FrequencyTable {
	table := NewFrequencyTable()
	for _, example := range examples {
		table.Add(example)
	}
	return table
}

// Weigh derives the model from a filled frequency table
func (t *Trainer) Weigh(table *FrequencyTable) *TrainedModel {
	return &TrainedModel{
		WordWeights:   t.config.Words.apply(table.Words),
		EmojiWeights:  t.config.Emoji.apply(table.Emoji),
		PhraseWeights: t.config.Phrases.apply(table.Phrases),
		AverageScore:  table.AverageScore(),
	}
}

// Train runs a full training pass over examples. Counters are private to the
// call, so concurrent Train calls are independent.
func (t *Trainer) Train(examples []LabeledExample) (*TrainedModel, TrainingStats) {
	startTime := time.Now()
	log := t.logger()
	log.Debug("training started", slog.Int("examples", len(examples)))

	table := t.Aggregate(examples)
	model := t.Weigh(table)

	stats := TrainingStats{
		TotalExamples:  len(examples),
		Distribution:   table.Classes,
		UniqueWords:    len(table.Words),
		UniqueEmoji:    len(table.Emoji),
		UniquePhrases:  len(table.Phrases),
		LearnedWords:   len(model.WordWeights),
		LearnedEmoji:   len(model.EmojiWeights),
		LearnedPhrases: len(model.PhraseWeights),
		TrainingTime:   time.Since(startTime),
	}

	log.Debug("training completed",
		slog.Int("word_weights", stats.LearnedWords),
		slog.Int("emoji_weights", stats.LearnedEmoji),
		slog.Int("phrase_weights", stats.LearnedPhrases),
		slog.Duration("elapsed", stats.TrainingTime))

	return model, stats
}

func (t *Trainer) logger() *slog.Logger {
	if t.config.Logger != nil {
		return t.config.Logger
	}
	return slog.Default()
}

package tweetsense

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Learned-weight scoring
const (
	wordMultiplier       = 1.0
	emojiMultiplier      = 1.5
	phraseMultiplier     = 2.0
	modelNeutralBand     = 0.5
	modelBaseConfidence  = 0.6
	modelScoreWeight     = 0.2
	modelMaxConfidence   = 0.95
	modelBoostIndicators = 3
	modelBoost           = 0.1
	modelBoostedMax      = 0.98
)

// ModelAnalyzer scores text with the weights of a TrainedModel. The model is
// only read, so one analyzer can serve concurrent callers.
type ModelAnalyzer struct {
	model *TrainedModel
}

// NewModelAnalyzer wraps model; a nil model scores every text as neutral
func NewModelAnalyzer(model *TrainedModel) *ModelAnalyzer {
	if model == nil {
		model = NewTrainedModel()
	}
	return &ModelAnalyzer{model: model}
}

// Model returns the underlying model
func (ma *ModelAnalyzer) Model() *TrainedModel {
	return ma.model
}

// Analyze sums the weights of every extracted feature occurrence, scaling
// emoji by 1.5 and phrases by 2. Features absent from the model contribute
// nothing.
func (ma *ModelAnalyzer) Analyze(text string) ModelResult {
	features := ExtractFeatures(text)

	analysis := ModelAnalysis{
		WordScores:   make(map[string]float64),
		EmojiScores:  make(map[string]float64),
		PhraseScores: make(map[string]float64),
	}

	var total float64
	total += score(features.Tokens, ma.model.WordWeights, analysis.WordScores, wordMultiplier)
	total += score(features.Emoji, ma.model.EmojiWeights, analysis.EmojiScores, emojiMultiplier)
	total += score(features.Phrases, ma.model.PhraseWeights, analysis.PhraseScores, phraseMultiplier)

	analysis.TotalWords = len(analysis.WordScores)
	analysis.TotalEmojis = len(analysis.EmojiScores)
	analysis.TotalPhrases = len(analysis.PhraseScores)

	result := ModelResult{
		Sentiment:  classify(total, modelNeutralBand),
		Score:      total,
		Confidence: modelBaseConfidence,
		Analysis:   analysis,
	}
	if result.Sentiment != Neutral {
		result.Confidence = math.Min(modelMaxConfidence, modelBaseConfidence+math.Abs(total)*modelScoreWeight)
	}

	indicators := analysis.TotalWords + analysis.TotalEmojis + analysis.TotalPhrases
	if indicators >= modelBoostIndicators {
		result.Confidence = math.Min(modelBoostedMax, result.Confidence+modelBoost)
	}
	return result
}

// score adds up the weights of keys, recording each distinct hit in hits
func score(keys []string, weights, hits map[string]float64, multiplier float64) float64 {
	var total float64
	for _, key := range keys {
		w := weights[key]
		if w == 0 {
			continue
		}
		hits[key] = w
		total += w * multiplier
	}
	return total
}

// ModelStats summarizes a trained model
type ModelStats struct {
	TotalWords       int
	TotalEmojis      int
	TotalPhrases     int
	AverageScores    AverageScore
	MeanWordWeight   float64 // mean |weight| over word features
	MeanEmojiWeight  float64
	MeanPhraseWeight float64
}

// Stats reports the size and average weight magnitude of the model
func (ma *ModelAnalyzer) Stats() ModelStats {
	return ModelStats{
		TotalWords:       len(ma.model.WordWeights),
		TotalEmojis:      len(ma.model.EmojiWeights),
		TotalPhrases:     len(ma.model.PhraseWeights),
		AverageScores:    ma.model.AverageScore,
		MeanWordWeight:   meanMagnitude(ma.model.WordWeights),
		MeanEmojiWeight:  meanMagnitude(ma.model.EmojiWeights),
		MeanPhraseWeight: meanMagnitude(ma.model.PhraseWeights),
	}
}

func meanMagnitude(weights map[string]float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	mags := make([]float64, 0, len(weights))
	for _, w := range weights {
		mags = append(mags, math.Abs(w))
	}
	return stat.Mean(mags, nil)
}

// FeatureWeight pairs a feature with its model weight
type FeatureWeight struct {
	Feature string
	Weight  float64
}

// TopWords returns up to limit positive and limit negative words, strongest first.
func (ma *ModelAnalyzer) TopWords(limit int) (positive, negative []string) {
	for _, fw := range rankFeatures(ma.model.WordWeights) {
		if fw.Weight > 0 && len(positive) < limit {
			positive = append(positive, fw.Feature)
		} else if fw.Weight < 0 && len(negative) < limit {
			negative = append(negative, fw.Feature)
		}
	}
	return positive, negative
}

// rankFeatures orders weights by descending magnitude, breaking ties by feature
func rankFeatures(weights map[string]float64) []FeatureWeight {
	ranked := make([]FeatureWeight, 0, len(weights))
	for f, w := range weights {
		ranked = append(ranked, FeatureWeight{Feature: f, Weight: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := math.Abs(ranked[i].Weight), math.Abs(ranked[j].Weight)
		if a != b {
			return a > b
		}
		return ranked[i].Feature < ranked[j].Feature
	})
	return ranked
}

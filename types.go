package tweetsense

import "strings"

// SentimentClass represents the three-way sentiment label
type SentimentClass string

const (
	Positive SentimentClass = "positive"
	Negative SentimentClass = "negative"
	Neutral  SentimentClass = "neutral"
)

// A LabeledExample is a single line of a training corpus.
type LabeledExample struct {
	Text  string         // The raw text of the example.
	Label SentimentClass // The normalized label.
}

// ClassCounts tracks how many examples of each class contained a feature.
type ClassCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the sum of all buckets
func (c ClassCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// add increments the bucket matching class
func (c *ClassCounts) add(class SentimentClass) {
	switch class {
	case Positive:
		c.Positive++
	case Negative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// AverageScore holds the corpus-wide share of each class.
type AverageScore struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// TrainedModel is the output of a training run and the sole state of a
// ModelAnalyzer. It must not be mutated once handed to an analyzer.
type TrainedModel struct {
	WordWeights   map[string]float64 `json:"wordWeights"`
	EmojiWeights  map[string]float64 `json:"emojiWeights"`
	PhraseWeights map[string]float64 `json:"phraseWeights"`
	AverageScore  AverageScore       `json:"averageScore"`
}

// NewTrainedModel returns a model with empty, non-nil weight maps
func NewTrainedModel() *TrainedModel {
	return &TrainedModel{
		WordWeights:   make(map[string]float64),
		EmojiWeights:  make(map[string]float64),
		PhraseWeights: make(map[string]float64),
	}
}

// LexiconResult is the result of the static lexicon scorer.
type LexiconResult struct {
	Sentiment  SentimentClass  `json:"sentiment"`
	Score      float64         `json:"score"`
	Confidence float64         `json:"confidence"`
	Analysis   LexiconAnalysis `json:"analysis"`
}

// LexiconAnalysis lists the lexicon hits behind a LexiconResult. A negated hit
// is reported under the polarity it contributed to, not its lexicon polarity.
type LexiconAnalysis struct {
	PositiveWords    []string `json:"positiveWords"`
	NegativeWords    []string `json:"negativeWords"`
	NegationCount    int      `json:"negationCount"`
	IntensifierCount int      `json:"intensifierCount"`
}

// ModelResult is the result of the learned-weight scorer.
type ModelResult struct {
	Sentiment  SentimentClass `json:"sentiment"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Analysis   ModelAnalysis  `json:"analysis"`
}

// ModelAnalysis lists the distinct features that contributed to a ModelResult
// together with their unscaled model weights.
type ModelAnalysis struct {
	WordScores   map[string]float64 `json:"wordScores"`
	EmojiScores  map[string]float64 `json:"emojiScores"`
	PhraseScores map[string]float64 `json:"phraseScores"`
	TotalWords   int                `json:"totalWords"`
	TotalEmojis  int                `json:"totalEmojis"`
	TotalPhrases int                `json:"totalPhrases"`
}

// classify maps a signed score onto a class, treating |score| < band as neutral.
func classify(score, band float64) SentimentClass {
	switch {
	case score >= band && score > 0:
		return Positive
	case score <= -band && score < 0:
		return Negative
	default:
		return Neutral
	}
}

// ParseSentimentClass normalizes a free-form label into a SentimentClass.
// Unrecognized labels are neutral.
func ParseSentimentClass(label string) SentimentClass {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "pos", "1", "happy", "good":
		return Positive
	case "negative", "neg", "0", "sad", "bad":
		return Negative
	default:
		return Neutral
	}
}

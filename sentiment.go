package tweetsense

import "math"

// Lexicon scoring
const (
	lexiconHit             = 1.0
	intensifierMultiplier  = 1.5
	lexiconBaseConfidence  = 0.5
	lexiconDensityWeight   = 0.4
	lexiconMaxConfidence   = 0.9
	lexiconBoostHits       = 3
	lexiconBoost           = 0.1
	lexiconBoostedMax      = 0.95
	sentenceNeutralBand    = 0.1
	sentenceBaseConfidence = 0.6
	sentenceScoreWeight    = 0.3
	sentenceMaxConfidence  = 0.9
)

// LexiconAnalyzer scores text against a fixed SentimentLexicon. It holds no
// mutable state and may be shared between goroutines.
type LexiconAnalyzer struct {
	lexicon *SentimentLexicon
}

// NewLexiconAnalyzer creates a lexicon analyzer; a nil lexicon selects the default
func NewLexiconAnalyzer(lexicon *SentimentLexicon) *LexiconAnalyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &LexiconAnalyzer{lexicon: lexicon}
}

// AnalyzeSentiment scores text with the default lexicon.
func AnalyzeSentiment(text string) LexiconResult {
	return NewLexiconAnalyzer(nil).Analyze(text)
}

// EnhancedSentimentAnalysis scores text sentence by sentence with the default lexicon.
func EnhancedSentimentAnalysis(text string) LexiconResult {
	return NewLexiconAnalyzer(nil).AnalyzeEnhanced(text)
}

// Analyze walks the cleaned tokens of text once. Negation and intensifier
// words are counted and skipped. Every other lexicon hit scores 1, times 1.5
// when the previous token is an intensifier, and is credited to the opposite
// polarity when the previous token is a negation.
func (la *LexiconAnalyzer) Analyze(text string) LexiconResult {
	tokens := lexiconTokens(text)

	var (
		positiveScore float64
		negativeScore float64
		analysis      LexiconAnalysis
	)
	analysis.PositiveWords = []string{}
	analysis.NegativeWords = []string{}

	prev := ""
	for i := 0; i < len(tokens); i, prev = i+1, tokens[i] {
		token := tokens[i]

		if la.lexicon.IsNegation(token) {
			analysis.NegationCount++
			continue
		}
		if la.lexicon.IsIntensifier(token) {
			analysis.IntensifierCount++
			continue
		}

		polarity := 0
		if la.lexicon.IsPositive(token) {
			polarity = 1
		} else if la.lexicon.IsNegative(token) {
			polarity = -1
		}
		if polarity == 0 {
			continue
		}

		score := lexiconHit
		if la.lexicon.IsIntensifier(prev) {
			score *= intensifierMultiplier
		}
		if la.lexicon.IsNegation(prev) {
			polarity = -polarity
		}

		if polarity > 0 {
			positiveScore += score
			analysis.PositiveWords = append(analysis.PositiveWords, token)
		} else {
			negativeScore += score
			analysis.NegativeWords = append(analysis.NegativeWords, token)
		}
	}

	total := positiveScore - negativeScore
	hits := len(analysis.PositiveWords) + len(analysis.NegativeWords)

	result := LexiconResult{
		Sentiment:  Neutral,
		Score:      total,
		Confidence: lexiconBaseConfidence,
		Analysis:   analysis,
	}
	if hits == 0 {
		return result
	}

	result.Sentiment = classify(total, 0)
	if result.Sentiment != Neutral {
		density := math.Abs(total) / float64(hits)
		result.Confidence = math.Min(lexiconMaxConfidence, lexiconBaseConfidence+density*lexiconDensityWeight)
	}
	if hits >= lexiconBoostHits {
		result.Confidence = math.Min(lexiconBoostedMax, result.Confidence+lexiconBoost)
	}
	return result
}

// AnalyzeEnhanced averages the Analyze score of every sentence in text and
// classifies the average with a narrower neutral band. The reported analysis
// is that of the whole text, not a per-sentence aggregate.
func (la *LexiconAnalyzer) AnalyzeEnhanced(text string) LexiconResult {
	sents := defaultSegmenter().segment(text)

	var overall float64
	for _, sent := range sents {
		overall += la.Analyze(sent).Score
	}

	var avg float64
	if len(sents) > 0 {
		avg = overall / float64(len(sents))
	}

	result := LexiconResult{
		Sentiment:  classify(avg, sentenceNeutralBand),
		Score:      avg,
		Confidence: sentenceBaseConfidence,
		Analysis:   la.Analyze(text).Analysis,
	}
	if result.Sentiment != Neutral {
		result.Confidence = math.Min(sentenceMaxConfidence, sentenceBaseConfidence+math.Abs(avg)*sentenceScoreWeight)
	}
	return result
}

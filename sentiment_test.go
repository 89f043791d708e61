package tweetsense

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		text       string
		sentiment  SentimentClass
		score      float64
		confidence float64
		desc       string
	}{
		{"good", Positive, 1, 0.9, "Single positive word"},
		{"This is terrible.", Negative, -1, 0.9, "Single negative word"},
		{"not good", Negative, -1, 0.9, "Negated positive"},
		{"not bad", Positive, 1, 0.9, "Negated negative"},
		{"very good", Positive, 1.5, 0.9, "Intensified positive"},
		{"i dont like it", Negative, -1, 0.9, "Apostrophe-free negation"},
		{"good bad", Neutral, 0, 0.5, "Balanced hits"},
		{"good great amazing!", Positive, 3, 0.95, "Boost capped"},
		{"good great bad", Positive, 1, 0.5 + (1.0/3)*0.4 + 0.1, "Boost on mixed hits"},
		{"the weather today", Neutral, 0, 0.5, "No lexicon hits"},
		{"", Neutral, 0, 0.5, "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := AnalyzeSentiment(tt.text)
			if result.Sentiment != tt.sentiment {
				t.Errorf("Text: %q\nExpected sentiment %s, got %s", tt.text, tt.sentiment, result.Sentiment)
			}
			if !approx(result.Score, tt.score) {
				t.Errorf("Text: %q\nExpected score %.3f, got %.3f", tt.text, tt.score, result.Score)
			}
			if !approx(result.Confidence, tt.confidence) {
				t.Errorf("Text: %q\nExpected confidence %.3f, got %.3f", tt.text, tt.confidence, result.Confidence)
			}
		})
	}
}

func TestNegationHandling(t *testing.T) {
	good := AnalyzeSentiment("good")
	notGood := AnalyzeSentiment("not good")

	if good.Sentiment != Positive {
		t.Errorf("Expected \"good\" to be positive, got %s", good.Sentiment)
	}
	if notGood.Sentiment != Negative {
		t.Errorf("Expected \"not good\" to be negative, got %s", notGood.Sentiment)
	}
	if !reflect.DeepEqual(notGood.Analysis.NegativeWords, []string{"good"}) {
		t.Errorf("Expected negated hit reported as negative, got %v", notGood.Analysis.NegativeWords)
	}
	if len(notGood.Analysis.PositiveWords) != 0 {
		t.Errorf("Expected no positive words, got %v", notGood.Analysis.PositiveWords)
	}
	if notGood.Analysis.NegationCount != 1 {
		t.Errorf("Expected 1 negation, got %d", notGood.Analysis.NegationCount)
	}
}

func TestIntensifierScaling(t *testing.T) {
	plain := AnalyzeSentiment("good")
	intensified := AnalyzeSentiment("very good")

	if intensified.Score <= plain.Score {
		t.Errorf("Expected \"very good\" (%.2f) to score above \"good\" (%.2f)", intensified.Score, plain.Score)
	}
	if intensified.Analysis.IntensifierCount != 1 {
		t.Errorf("Expected 1 intensifier, got %d", intensified.Analysis.IntensifierCount)
	}
}

func TestSingleTokenLookback(t *testing.T) {
	tests := []struct {
		text         string
		score        float64
		negations    int
		intensifiers int
		desc         string
	}{
		// the negation is two tokens back and no longer applies
		{"not very bad", -1.5, 1, 1, "Negation before intensifier"},
		{"very not bad", 1, 1, 1, "Intensifier before negation"},
		{"not not good", -1, 2, 0, "Double negation"},
		{"very very good", 1.5, 0, 2, "Double intensifier"},
		{"not the good", 1, 1, 0, "Negation separated by a word"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := AnalyzeSentiment(tt.text)
			if !approx(result.Score, tt.score) {
				t.Errorf("Text: %q\nExpected score %.2f, got %.2f", tt.text, tt.score, result.Score)
			}
			if result.Analysis.NegationCount != tt.negations {
				t.Errorf("Text: %q\nExpected %d negations, got %d", tt.text, tt.negations, result.Analysis.NegationCount)
			}
			if result.Analysis.IntensifierCount != tt.intensifiers {
				t.Errorf("Text: %q\nExpected %d intensifiers, got %d", tt.text, tt.intensifiers, result.Analysis.IntensifierCount)
			}
		})
	}
}

func TestEmptySentiment(t *testing.T) {
	result := AnalyzeSentiment("")
	if result.Analysis.PositiveWords == nil || result.Analysis.NegativeWords == nil {
		t.Error("Expected empty, non-nil word lists")
	}
	if len(result.Analysis.PositiveWords)+len(result.Analysis.NegativeWords) != 0 {
		t.Error("Expected no contributing words")
	}

	enhanced := EnhancedSentimentAnalysis("")
	if enhanced.Sentiment != Neutral || enhanced.Score != 0 || !approx(enhanced.Confidence, 0.6) {
		t.Errorf("Expected neutral/0/0.6 for empty enhanced input, got %s/%.2f/%.2f",
			enhanced.Sentiment, enhanced.Score, enhanced.Confidence)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "I really love this, but the ending was not great and kind of awful."
	first := AnalyzeSentiment(text)
	for i := 0; i < 5; i++ {
		if got := AnalyzeSentiment(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestConfidenceBounds(t *testing.T) {
	texts := []string{
		"good", "bad", "not good", "very very amazing wonderful awesome perfect",
		"hate hate hate hate", "good bad good bad", "nothing here", "",
	}
	for _, text := range texts {
		for _, result := range []LexiconResult{AnalyzeSentiment(text), EnhancedSentimentAnalysis(text)} {
			if result.Confidence <= 0 || result.Confidence > 0.95 {
				t.Errorf("Text: %q\nConfidence %.3f outside (0, 0.95]", text, result.Confidence)
			}
		}
	}
}

func TestEnhancedSentimentAnalysis(t *testing.T) {
	t.Run("Single sentence", func(t *testing.T) {
		result := EnhancedSentimentAnalysis("good")
		if result.Sentiment != Positive {
			t.Errorf("Expected positive, got %s", result.Sentiment)
		}
		if !approx(result.Score, 1) || !approx(result.Confidence, 0.9) {
			t.Errorf("Expected score 1 and confidence 0.9, got %.2f and %.2f", result.Score, result.Confidence)
		}
	})

	t.Run("Average of sentences", func(t *testing.T) {
		text := "I love this phone. The battery is terrible. The screen is really great."
		sents := SplitSentences(text)
		if len(sents) == 0 {
			t.Fatal("Expected at least one sentence")
		}

		var sum float64
		for _, s := range sents {
			sum += AnalyzeSentiment(s).Score
		}
		want := sum / float64(len(sents))

		result := EnhancedSentimentAnalysis(text)
		if !approx(result.Score, want) {
			t.Errorf("Expected average score %.3f, got %.3f", want, result.Score)
		}
		want = math.Min(0.9, 0.6+math.Abs(want)*0.3)
		if result.Sentiment != Neutral && !approx(result.Confidence, want) {
			t.Errorf("Expected confidence %.3f, got %.3f", want, result.Confidence)
		}
	})

	t.Run("Whole-text analysis", func(t *testing.T) {
		text := "Not good at all. Very bad service."
		whole := AnalyzeSentiment(text)
		result := EnhancedSentimentAnalysis(text)
		if !reflect.DeepEqual(result.Analysis, whole.Analysis) {
			t.Errorf("Expected whole-text analysis %+v, got %+v", whole.Analysis, result.Analysis)
		}
	})
}

func TestSplitSentences(t *testing.T) {
	if got := SplitSentences("   "); len(got) != 0 {
		t.Errorf("Expected no sentences for blank text, got %q", got)
	}
	for _, s := range SplitSentences("First one here. Second one there! Third?") {
		if s == "" || s != strings.TrimSpace(s) {
			t.Errorf("Expected trimmed non-empty sentence, got %q", s)
		}
	}
}

func TestLexiconOperations(t *testing.T) {
	lexicon := DefaultLexicon()

	positive, negative := lexicon.Size()
	if positive < 100 || negative < 100 {
		t.Errorf("Expected at least 100 entries per polarity, got %d/%d", positive, negative)
	}

	for _, word := range positiveWords {
		if lexicon.IsNegative(word) {
			t.Errorf("Word %q is in both polarity sets", word)
		}
	}

	tests := []struct {
		word  string
		check func(string) bool
		want  bool
	}{
		{"love", lexicon.IsPositive, true},
		{"terrible", lexicon.IsNegative, true},
		{"not", lexicon.IsNegation, true},
		{"dont", lexicon.IsNegation, true},
		{"very", lexicon.IsIntensifier, true},
		{"table", lexicon.IsPositive, false},
		{"Love", lexicon.IsPositive, false},
	}
	for _, tt := range tests {
		if got := tt.check(tt.word); got != tt.want {
			t.Errorf("Lookup %q: expected %v, got %v", tt.word, tt.want, got)
		}
	}
}

func BenchmarkAnalyzeSentiment(b *testing.B) {
	text := "This movie is absolutely fantastic! I really love the acting, but the ending was not great."
	analyzer := NewLexiconAnalyzer(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		analyzer.Analyze(text)
	}
}

func BenchmarkEnhancedSentimentAnalysis(b *testing.B) {
	text := "This movie is absolutely fantastic! I really love the acting. The ending was not great."
	analyzer := NewLexiconAnalyzer(nil)
	analyzer.AnalyzeEnhanced(text)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		analyzer.AnalyzeEnhanced(text)
	}
}

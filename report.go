package tweetsense

import (
	"fmt"
	"io"
	"strings"

	"github.com/bbalet/stopwords"
)

// SummaryOptions controls the training summary
type SummaryOptions struct {
	SampleSize      int  // Number of sample word weights
	SkipCommonWords bool // Leave general English stop words out of the sample
}

// Summary is a human-readable digest of a training run
type Summary struct {
	Stats   TrainingStats
	Sample  []FeatureWeight // Strongest word weights
	Average AverageScore
}

// Summarize collects the figures printed after training
func Summarize(model *TrainedModel, stats TrainingStats, opts SummaryOptions) Summary {
	var sample []FeatureWeight
	for _, fw := range rankFeatures(model.WordWeights) {
		if len(sample) >= opts.SampleSize {
			break
		}
		if opts.SkipCommonWords && isCommonWord(fw.Feature) {
			continue
		}
		sample = append(sample, fw)
	}

	return Summary{
		Stats:   stats,
		Sample:  sample,
		Average: model.AverageScore,
	}
}

// isCommonWord probes the English stop-word list; CleanString drops a lone
// stop word entirely.
func isCommonWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

// WriteTo prints the summary to w
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset statistics:\n")
	fmt.Fprintf(&b, "- Total examples: %d\n", s.Stats.TotalExamples)
	fmt.Fprintf(&b, "- Positive: %d\n", s.Stats.Distribution.Positive)
	fmt.Fprintf(&b, "- Negative: %d\n", s.Stats.Distribution.Negative)
	fmt.Fprintf(&b, "- Neutral: %d\n", s.Stats.Distribution.Neutral)
	fmt.Fprintf(&b, "\nModel statistics:\n")
	fmt.Fprintf(&b, "- Learned %d word weights (%d unique words)\n", s.Stats.LearnedWords, s.Stats.UniqueWords)
	fmt.Fprintf(&b, "- Learned %d emoji weights (%d unique emoji)\n", s.Stats.LearnedEmoji, s.Stats.UniqueEmoji)
	fmt.Fprintf(&b, "- Learned %d phrase weights (%d unique phrases)\n", s.Stats.LearnedPhrases, s.Stats.UniquePhrases)
	fmt.Fprintf(&b, "- Class shares: positive %.3f, negative %.3f, neutral %.3f\n",
		s.Average.Positive, s.Average.Negative, s.Average.Neutral)

	if len(s.Sample) > 0 {
		fmt.Fprintf(&b, "\nSample word weights:\n")
		for _, fw := range s.Sample {
			polarity := Positive
			if fw.Weight < 0 {
				polarity = Negative
			}
			fmt.Fprintf(&b, "  %s: %.3f (%s)\n", fw.Feature, fw.Weight, polarity)
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

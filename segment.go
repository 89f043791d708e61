package tweetsense

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSegmenter splits text into sentences with the Punkt English model.
type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	segmenterOnce sync.Once
	segmenter     *punktSegmenter
)

// defaultSegmenter loads the English training data once. A nil tokenizer
// means the data failed to load and each text is treated as one sentence.
func defaultSegmenter() *punktSegmenter {
	segmenterOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			segmenter = &punktSegmenter{}
			return
		}
		segmenter = &punktSegmenter{tokenizer: tok}
	})
	return segmenter
}

// segment returns the non-blank sentences of text
func (p *punktSegmenter) segment(text string) []string {
	if p.tokenizer == nil {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{strings.TrimSpace(text)}
	}

	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			sents = append(sents, trimmed)
		}
	}
	return sents
}

// SplitSentences segments text the way the enhanced lexicon scorer does
func SplitSentences(text string) []string {
	return defaultSegmenter().segment(text)
}

package tweetsense

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Features holds the three feature sequences extracted from a text. The same
// extraction runs at training time and at scoring time.
type Features struct {
	Tokens  []string
	Emoji   []string
	Phrases []string
}

// ExtractFeatures runs every extractor over text
func ExtractFeatures(text string) Features {
	return Features{
		Tokens:  ExtractTokens(text),
		Emoji:   ExtractEmoji(text),
		Phrases: ExtractPhrases(text),
	}
}

// ExtractTokens lowercases text, replaces everything outside the word/space
// class with spaces and returns the remaining words with a length in (2, 20)
// that are not stop words. Repeated words are kept.
func ExtractTokens(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(nonWordRE.ReplaceAllString(strings.ToLower(text), " ")) {
		if len(word) <= minTokenLen || len(word) >= maxTokenLen {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// ExtractEmoji returns every emoji symbol in text, in order of appearance.
func ExtractEmoji(text string) []string {
	return emojiRE.FindAllString(text, -1)
}

// ExtractPhrases returns every overlapping two- and three-word window of the
// lowercased, whitespace-split text. Punctuation is kept. Two-word phrases are
// kept when they are 6-29 characters long, three-word phrases when 9-39.
func ExtractPhrases(text string) []string {
	words := strings.Fields(strings.ToLower(text))

	// lengths are in code points, not UTF-16 units
	var phrases []string
	for i := 0; i+1 < len(words); i++ {
		phrase := words[i] + " " + words[i+1]
		if n := utf8.RuneCountInString(phrase); n > minBigramLen && n < maxBigramLen {
			phrases = append(phrases, phrase)
		}
	}
	for i := 0; i+2 < len(words); i++ {
		phrase := words[i] + " " + words[i+1] + " " + words[i+2]
		if n := utf8.RuneCountInString(phrase); n > minTrigramLen && n < maxTrigramLen {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// lexiconTokens is the coarser tokenization used by the lexicon scorer: no
// stop-word removal and no length filter.
func lexiconTokens(text string) []string {
	return strings.Fields(nonWordRE.ReplaceAllString(strings.ToLower(text), " "))
}

// Exclusive length bounds. Token bounds count bytes of the ASCII-only cleaned
// words; phrase bounds count code points, so an emoji is one character.
const (
	minTokenLen   = 2
	maxTokenLen   = 20
	minBigramLen  = 5
	maxBigramLen  = 30
	minTrigramLen = 8
	maxTrigramLen = 40
)

var nonWordRE = regexp.MustCompile(`[^\w\s]`)

// Emoticons, pictographs, transport, regional indicators, misc symbols, dingbats.
var emojiRE = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

var stopWords = makeSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "this", "that", "these", "those",
)

// IsStopWord reports whether word is removed by ExtractTokens
func IsStopWord(word string) bool {
	return stopWords[word]
}

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

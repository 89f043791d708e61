package tweetsense

import (
	"reflect"
	"testing"
)

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"I love this product!!", []string{"love", "product"}, "Stop words and short words removed"},
		{"It's okay", []string{"okay"}, "Apostrophe splits the word"},
		{"good good good", []string{"good", "good", "good"}, "Repeats kept"},
		{"GREAT Day", []string{"great", "day"}, "Lowercased"},
		{"hello_world", []string{"hello_world"}, "Underscore is a word character"},
		{"abcdefghijabcdefghij abcdefghijabcdefghi", []string{"abcdefghijabcdefghi"}, "Length bound"},
		{"   ", nil, "Blank text"},
		{"", nil, "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := ExtractTokens(tt.text)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Text: %q\nExpected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractEmoji(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"Love it 😍🔥!", []string{"😍", "🔥"}},
		{"sunny ☀ day", []string{"☀"}},
		{"❤️", []string{"❤"}},
		{"no emoji here :)", nil},
	}

	for _, tt := range tests {
		got := ExtractEmoji(tt.text)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Text: %q\nExpected %q, got %q", tt.text, tt.expected, got)
		}
	}
}

func TestExtractPhrases(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"I love this!", []string{"i love", "love this!", "i love this!"}, "Bigrams before trigrams"},
		{"it is ok", nil, "All windows too short"},
		{"so bad", []string{"so bad"}, "Six characters is enough"},
		{"ok 😍😍", nil, "Emoji count as one character"},
		{"ok 😍😍😍", []string{"ok 😍😍😍"}, "Six code points"},
		{"single", nil, "Single word"},
		{"", nil, "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := ExtractPhrases(tt.text)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Text: %q\nExpected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractFeaturesPure(t *testing.T) {
	text := "Honestly the best day ever 🎉 can't wait for the next one"
	first := ExtractFeatures(text)
	second := ExtractFeatures(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical features, got %+v and %+v", first, second)
	}
}

func TestIsStopWord(t *testing.T) {
	for _, word := range []string{"the", "this", "is", "would", "those"} {
		if !IsStopWord(word) {
			t.Errorf("Expected %q to be a stop word", word)
		}
	}
	for _, word := range []string{"love", "terrible", "okay"} {
		if IsStopWord(word) {
			t.Errorf("Expected %q not to be a stop word", word)
		}
	}
}

func BenchmarkExtractFeatures(b *testing.B) {
	text := "This movie is absolutely fantastic! 😍 I really love the acting, but the ending was not great."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExtractFeatures(text)
	}
}

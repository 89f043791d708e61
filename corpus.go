package tweetsense

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadError reports a corpus that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error reading corpus: %v", e.Err)
	}
	return fmt.Sprintf("error reading corpus %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CorpusOptions describes the delimited corpus dialect
type CorpusOptions struct {
	Delimiter      rune   // Field separator
	HeaderSentinel string // A first line containing this string is a header
}

// DefaultCorpusOptions returns the comma-separated tweet_text,sentiment dialect
func DefaultCorpusOptions() CorpusOptions {
	return CorpusOptions{
		Delimiter:      ',',
		HeaderSentinel: "tweet_text",
	}
}

// LoadCorpusFile reads and parses the corpus at path.
func LoadCorpusFile(path string, opts CorpusOptions) ([]LabeledExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ParseCorpus(string(data), opts), nil
}

// ReadCorpus reads and parses a corpus from r.
func ReadCorpus(r io.Reader, opts CorpusOptions) ([]LabeledExample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return ParseCorpus(string(data), opts), nil
}

// ParseCorpus parses one labeled example per non-blank line. Malformed lines
// never fail the parse: a missing or unknown label becomes neutral.
func ParseCorpus(data string, opts CorpusOptions) []LabeledExample {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	var lines []string
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 && opts.HeaderSentinel != "" && strings.Contains(lines[0], opts.HeaderSentinel) {
		lines = lines[1:]
	}

	examples := make([]LabeledExample, 0, len(lines))
	for _, line := range lines {
		fields := splitFields(line, opts.Delimiter)
		text, label := fields[0], ""
		if len(fields) > 1 {
			label = fields[1]
		}
		examples = append(examples, LabeledExample{
			Text:  text,
			Label: ParseSentimentClass(label),
		})
	}
	return examples
}

// splitFields splits line on delim. A field opening with a double quote runs
// to its closing quote, so it may contain the delimiter; a doubled quote
// inside it is a literal quote. Unquoted fields are trimmed and have stray
// surrounding quotes stripped. A line whose quote never closes is split
// naively instead. At least one field is always returned.
func splitFields(line string, delim rune) []string {
	var (
		fields  []string
		field   strings.Builder
		quoted  bool // inside an open quote
		wrapped bool // the current field opened with a quote
		started bool // a non-space rune was seen in the current field
	)
	flush := func() {
		f := strings.TrimSpace(field.String())
		if !wrapped {
			f = strings.Trim(f, `"`)
		}
		fields = append(fields, f)
		field.Reset()
		wrapped, started = false, false
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quoted && r == '"':
			if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				quoted = false
			}
		case quoted:
			field.WriteRune(r)
		case r == delim:
			flush()
		case r == '"' && !started:
			quoted, wrapped, started = true, true, true
		default:
			if r != ' ' && r != '\t' {
				started = true
			}
			field.WriteRune(r)
		}
	}
	if quoted {
		return splitNaive(line, delim)
	}
	flush()
	return fields
}

// splitNaive splits line on every delim, ignoring quotes
func splitNaive(line string, delim rune) []string {
	fields := strings.Split(line, string(delim))
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return fields
}

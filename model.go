package tweetsense

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// ModelIOError reports a model that could not be written, read or decoded.
type ModelIOError struct {
	Op   string // "read", "write", "decode", "encode" or "validate"
	Path string
	Err  error
}

func (e *ModelIOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("model %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("model %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ModelIOError) Unwrap() error { return e.Err }

// averageTolerance bounds the drift allowed when checking that class shares sum to one
const averageTolerance = 1e-9

// persistedModel requires every top-level field to be present
type persistedModel struct {
	WordWeights   *map[string]float64 `json:"wordWeights"`
	EmojiWeights  *map[string]float64 `json:"emojiWeights"`
	PhraseWeights *map[string]float64 `json:"phraseWeights"`
	AverageScore  *AverageScore       `json:"averageScore"`
}

// WriteModel encodes m as indented JSON. Values are written without rounding.
func WriteModel(w io.Writer, m *TrainedModel) error {
	if err := m.Validate(); err != nil {
		return &ModelIOError{Op: "validate", Err: err}
	}

	data, err := json.MarshalIndent(persisted(m), "", "  ")
	if err != nil {
		return &ModelIOError{Op: "encode", Err: err}
	}
	if _, err := w.Write(data); err != nil {
		return &ModelIOError{Op: "write", Err: err}
	}
	return nil
}

// ReadModel decodes a model written by WriteModel. Unknown fields, missing
// fields, trailing data and invalid weights are all errors.
func ReadModel(r io.Reader) (*TrainedModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ModelIOError{Op: "read", Err: err}
	}
	return decodeModel(data)
}

// SaveModel writes m to path, creating parent directories as needed.
func SaveModel(path string, m *TrainedModel) error {
	var buf bytes.Buffer
	if err := WriteModel(&buf, m); err != nil {
		return withPath(err, path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return &ModelIOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &ModelIOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// LoadModel reads the model stored at path.
func LoadModel(path string) (*TrainedModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelIOError{Op: "read", Path: path, Err: err}
	}
	m, err := decodeModel(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	return m, nil
}

// Validate checks the invariants every stored model satisfies: weights are
// finite and non-zero, and class shares lie in [0,1] and sum to one (or are
// all zero for a model trained on an empty corpus).
func (m *TrainedModel) Validate() error {
	if m == nil {
		return errors.New("model is nil")
	}
	for kind, weights := range map[string]map[string]float64{
		"word":   m.WordWeights,
		"emoji":  m.EmojiWeights,
		"phrase": m.PhraseWeights,
	} {
		for feature, w := range weights {
			if w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%s weight %q is %v", kind, feature, w)
			}
		}
	}

	shares := []float64{m.AverageScore.Positive, m.AverageScore.Negative, m.AverageScore.Neutral}
	for _, s := range shares {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return fmt.Errorf("average score %v outside [0,1]", s)
		}
	}
	sum := floats.Sum(shares)
	if sum != 0 && !scalar.EqualWithinAbs(sum, 1, averageTolerance) {
		return fmt.Errorf("average scores sum to %v", sum)
	}
	return nil
}

func decodeModel(data []byte) (*TrainedModel, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p persistedModel
	if err := dec.Decode(&p); err != nil {
		return nil, &ModelIOError{Op: "decode", Err: err}
	}
	if dec.More() {
		return nil, &ModelIOError{Op: "decode", Err: errors.New("trailing data after model")}
	}

	switch {
	case p.WordWeights == nil:
		return nil, &ModelIOError{Op: "decode", Err: errors.New("missing wordWeights")}
	case p.EmojiWeights == nil:
		return nil, &ModelIOError{Op: "decode", Err: errors.New("missing emojiWeights")}
	case p.PhraseWeights == nil:
		return nil, &ModelIOError{Op: "decode", Err: errors.New("missing phraseWeights")}
	case p.AverageScore == nil:
		return nil, &ModelIOError{Op: "decode", Err: errors.New("missing averageScore")}
	}

	m := &TrainedModel{
		WordWeights:   nonNil(*p.WordWeights),
		EmojiWeights:  nonNil(*p.EmojiWeights),
		PhraseWeights: nonNil(*p.PhraseWeights),
		AverageScore:  *p.AverageScore,
	}
	if err := m.Validate(); err != nil {
		return nil, &ModelIOError{Op: "validate", Err: err}
	}
	return m, nil
}

// persisted maps nil weight maps to empty objects so the written document
// always carries all four fields.
func persisted(m *TrainedModel) persistedModel {
	words, emoji, phrases := nonNil(m.WordWeights), nonNil(m.EmojiWeights), nonNil(m.PhraseWeights)
	avg := m.AverageScore
	return persistedModel{
		WordWeights:   &words,
		EmojiWeights:  &emoji,
		PhraseWeights: &phrases,
		AverageScore:  &avg,
	}
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return make(map[string]float64)
	}
	return m
}

func withPath(err error, path string) error {
	var mErr *ModelIOError
	if errors.As(err, &mErr) && mErr.Path == "" {
		mErr.Path = path
	}
	return err
}

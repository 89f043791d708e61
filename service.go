package tweetsense

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidInput is returned for requests without usable text.
	ErrInvalidInput = errors.New("text is required and must be a string")
	// ErrNoModel is returned when learned scoring is requested without a model.
	ErrNoModel = errors.New("no trained model loaded")
)

// ScoreRequest selects a scorer for a piece of text.
type ScoreRequest struct {
	Text     string `json:"text"`
	UseModel bool   `json:"useModel"`    // learned weights instead of the lexicon
	Enhanced bool   `json:"useEnhanced"` // sentence-level lexicon scoring
}

// ScoreResponse carries the result of whichever scorer ran. Exactly one of
// Lexicon and Model is set.
type ScoreResponse struct {
	Scorer  string         `json:"scorer"`
	Lexicon *LexiconResult `json:"lexicon,omitempty"`
	Model   *ModelResult   `json:"model,omitempty"`
}

// Scorer names reported in ScoreResponse
const (
	ScorerLexicon  = "lexicon"
	ScorerEnhanced = "enhanced"
	ScorerModel    = "model"
)

// Scorer dispatches requests to the lexicon and learned-weight analyzers.
type Scorer struct {
	lexicon *LexiconAnalyzer
	model   *ModelAnalyzer
}

// NewScorer creates a scorer. model may be nil, in which case only lexicon
// requests succeed.
func NewScorer(lexicon *LexiconAnalyzer, model *ModelAnalyzer) *Scorer {
	if lexicon == nil {
		lexicon = NewLexiconAnalyzer(nil)
	}
	return &Scorer{lexicon: lexicon, model: model}
}

// Score runs the scorer selected by req.
func (s *Scorer) Score(req ScoreRequest) (ScoreResponse, error) {
	if req.Text == "" {
		return ScoreResponse{}, ErrInvalidInput
	}

	switch {
	case req.UseModel:
		if s.model == nil {
			return ScoreResponse{}, ErrNoModel
		}
		result := s.model.Analyze(req.Text)
		return ScoreResponse{Scorer: ScorerModel, Model: &result}, nil
	case req.Enhanced:
		result := s.lexicon.AnalyzeEnhanced(req.Text)
		return ScoreResponse{Scorer: ScorerEnhanced, Lexicon: &result}, nil
	default:
		result := s.lexicon.Analyze(req.Text)
		return ScoreResponse{Scorer: ScorerLexicon, Lexicon: &result}, nil
	}
}

// DecodeScoreRequest parses a JSON request body. useEnhanced defaults to
// true when absent. Malformed bodies and non-string text yield ErrInvalidInput.
func DecodeScoreRequest(r io.Reader) (ScoreRequest, error) {
	var body struct {
		Text     json.RawMessage `json:"text"`
		UseModel bool            `json:"useModel"`
		Enhanced *bool           `json:"useEnhanced"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ScoreRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var text string
	if len(body.Text) == 0 || json.Unmarshal(body.Text, &text) != nil || text == "" {
		return ScoreRequest{}, ErrInvalidInput
	}

	req := ScoreRequest{Text: text, UseModel: body.UseModel, Enhanced: true}
	if body.Enhanced != nil {
		req.Enhanced = *body.Enhanced
	}
	return req, nil
}

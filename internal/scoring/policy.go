// Package scoring ranks highlight text by heuristic quality under a
// selectable policy. A policy is a data descriptor: bounds, weights,
// keyword tables, sort key and per-book limits all live on the struct,
// so the three historical pipeline variants are one pipeline with three
// descriptors instead of three near-duplicate implementations.
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind selects the scoring formula. The weight tables are shared; the
// kind decides which signals the formula consults.
type Kind string

const (
	// KindQuality rewards moderate length and topical keyword hits.
	KindQuality Kind = "quality"
	// KindRealness rewards linguistic completeness: verbs, articles,
	// pronouns and conjunctions separate real sentences from fragments.
	KindRealness Kind = "realness"
	// KindShortness scores only as a tie-breaker; ranking is by length.
	KindShortness Kind = "shortness"
)

// SortKey declares how surviving candidates are ordered before truncation.
type SortKey string

const (
	SortScoreDesc          SortKey = "score_desc"
	SortScoreDescThenShort SortKey = "score_desc_then_shortest"
	SortShortThenScoreDesc SortKey = "shortest_then_score_desc"
)

// LengthWindow awards Bonus when the text length falls in [Min, Max].
// Windows are checked in order and only the first hit applies.
type LengthWindow struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Bonus int `yaml:"bonus"`
}

// Weights holds every tunable increment. Keyword bonuses are awarded per
// matched keyword with no cap; keyword-dense text can inflate without
// diminishing returns, which matches the historical behavior.
type Weights struct {
	Base          int            `yaml:"base"`
	Note          int            `yaml:"note"`
	QuoteMarks    int            `yaml:"quote_marks"`
	SentenceShape int            `yaml:"sentence_shape"` // capital start and terminal punctuation
	TerminalPunct int            `yaml:"terminal_punct"` // terminal punctuation alone
	Question      int            `yaml:"question"`       // penalty, subtracted
	Inspirational int            `yaml:"inspirational"`  // per matched keyword
	Reading       int            `yaml:"reading"`        // per matched keyword
	Verb          int            `yaml:"verb"`
	Article       int            `yaml:"article"` // per occurrence
	Pronoun       int            `yaml:"pronoun"`
	Conjunction   int            `yaml:"conjunction"`
	TooShortUnder int            `yaml:"too_short_under"` // length threshold for the penalty below
	TooShort      int            `yaml:"too_short"`       // penalty, subtracted
	LengthWindows []LengthWindow `yaml:"length_windows"`
}

// Keywords are the word lists the scorer consults. They are data on the
// policy so tests and custom policies can swap them wholesale.
type Keywords struct {
	Inspirational []string `yaml:"inspirational"`
	Reading       []string `yaml:"reading"`
	Verbs         []string `yaml:"verbs"`
	Articles      []string `yaml:"articles"`
	Pronouns      []string `yaml:"pronouns"`
	Conjunctions  []string `yaml:"conjunctions"`
}

// Policy is a complete curation policy descriptor.
type Policy struct {
	Name           string   `yaml:"name"`
	Kind           Kind     `yaml:"kind"`
	MinLength      int      `yaml:"min_length"`
	MaxLength      int      `yaml:"max_length"`
	CandidateLimit int      `yaml:"candidate_limit"` // per-book cap after stage 1
	SortKey        SortKey  `yaml:"sort_key"`
	FallbackTag    string   `yaml:"fallback_tag"`
	Weights        Weights  `yaml:"weights"`
	Keywords       Keywords `yaml:"keywords"`
}

// Quality is the original review-oriented policy: wide length bounds,
// ten candidates per book, sorted by score alone.
func Quality() Policy {
	return Policy{
		Name:           "quality",
		Kind:           KindQuality,
		MinLength:      40,
		MaxLength:      500,
		CandidateLimit: 10,
		SortKey:        SortScoreDesc,
		FallbackTag:    "reading",
		Weights: Weights{
			Base:          100,
			Note:          50,
			QuoteMarks:    10,
			SentenceShape: 15,
			Question:      10,
			Inspirational: 10,
			Reading:       20,
			LengthWindows: []LengthWindow{
				{Min: 80, Max: 150, Bonus: 30},
				{Min: 50, Max: 200, Bonus: 15},
			},
		},
		Keywords: Keywords{
			Inspirational: []string{
				"life", "love", "truth", "beauty", "wisdom", "freedom",
				"happiness", "meaning", "purpose", "soul", "heart",
				"believe", "hope", "dream", "courage", "strength",
			},
			Reading: []string{"read", "book", "story", "write", "word", "page", "library"},
		},
	}
}

// Realness favors grammatically complete thoughts and filters out
// chapter-heading-shaped text; six candidates per book, best score first
// with shorter text winning ties.
func Realness() Policy {
	return Policy{
		Name:           "realness",
		Kind:           KindRealness,
		MinLength:      25,
		MaxLength:      250,
		CandidateLimit: 6,
		SortKey:        SortScoreDescThenShort,
		FallbackTag:    "wisdom",
		Weights: Weights{
			Base:          100,
			Note:          50,
			QuoteMarks:    10,
			SentenceShape: 15,
			TerminalPunct: 30,
			Verb:          15,
			Article:       10,
			Pronoun:       12,
			Conjunction:   10,
			TooShortUnder: 40,
			TooShort:      20,
			LengthWindows: []LengthWindow{
				{Min: 40, Max: 120, Bonus: 25},
				{Min: 121, Max: 180, Bonus: 10},
			},
		},
		Keywords: Keywords{
			Verbs: []string{
				"is", "are", "was", "were", "be", "been",
				"have", "has", "had", "do", "does", "did",
				"will", "would", "should", "could", "can",
				"make", "take", "get", "think", "know", "need",
				"want", "become", "learn", "create", "build",
			},
			Articles:     []string{"a", "an", "the"},
			Pronouns:     []string{"you", "your", "i", "we", "our", "they", "them"},
			Conjunctions: []string{"and", "but", "or", "because", "if", "when", "while", "although"},
		},
	}
}

// Shortness ranks by raw length ascending; the score only breaks ties.
func Shortness() Policy {
	return Policy{
		Name:           "shortness",
		Kind:           KindShortness,
		MinLength:      20,
		MaxLength:      300,
		CandidateLimit: 6,
		SortKey:        SortShortThenScoreDesc,
		FallbackTag:    "wisdom",
		Weights: Weights{
			Base:          100,
			Note:          50,
			QuoteMarks:    10,
			SentenceShape: 20,
			Inspirational: 10,
		},
		Keywords: Keywords{
			Inspirational: []string{"life", "wisdom", "success", "lead", "create", "think"},
		},
	}
}

// Builtin returns the named built-in policy.
func Builtin(name string) (Policy, error) {
	switch name {
	case "quality":
		return Quality(), nil
	case "realness":
		return Realness(), nil
	case "shortness":
		return Shortness(), nil
	}
	return Policy{}, fmt.Errorf("unknown policy: %s", name)
}

// LoadPolicyFile reads a YAML policy descriptor. Missing fields fall back
// to the built-in policy of the same kind, so a file can override just the
// knobs it cares about.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	var overlay Policy
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}
	if overlay.Kind == "" {
		overlay.Kind = KindQuality
	}

	base, err := Builtin(string(overlay.Kind))
	if err != nil {
		return Policy{}, fmt.Errorf("policy file %s: %w", path, err)
	}
	return merge(base, overlay), nil
}

func merge(base, overlay Policy) Policy {
	p := base
	if overlay.Name != "" {
		p.Name = overlay.Name
	}
	if overlay.MinLength != 0 {
		p.MinLength = overlay.MinLength
	}
	if overlay.MaxLength != 0 {
		p.MaxLength = overlay.MaxLength
	}
	if overlay.CandidateLimit != 0 {
		p.CandidateLimit = overlay.CandidateLimit
	}
	if overlay.SortKey != "" {
		p.SortKey = overlay.SortKey
	}
	if overlay.FallbackTag != "" {
		p.FallbackTag = overlay.FallbackTag
	}
	p.Weights = mergeWeights(base.Weights, overlay.Weights)
	p.Keywords = mergeKeywords(base.Keywords, overlay.Keywords)
	return p
}

// mergeWeights overlays each set weight onto the base table. Zero means
// unset, so a file can re-weight a signal but not zero it out; dropping a
// signal entirely takes a full weights block.
func mergeWeights(base, overlay Weights) Weights {
	w := base
	if overlay.Base != 0 {
		w.Base = overlay.Base
	}
	if overlay.Note != 0 {
		w.Note = overlay.Note
	}
	if overlay.QuoteMarks != 0 {
		w.QuoteMarks = overlay.QuoteMarks
	}
	if overlay.SentenceShape != 0 {
		w.SentenceShape = overlay.SentenceShape
	}
	if overlay.TerminalPunct != 0 {
		w.TerminalPunct = overlay.TerminalPunct
	}
	if overlay.Question != 0 {
		w.Question = overlay.Question
	}
	if overlay.Inspirational != 0 {
		w.Inspirational = overlay.Inspirational
	}
	if overlay.Reading != 0 {
		w.Reading = overlay.Reading
	}
	if overlay.Verb != 0 {
		w.Verb = overlay.Verb
	}
	if overlay.Article != 0 {
		w.Article = overlay.Article
	}
	if overlay.Pronoun != 0 {
		w.Pronoun = overlay.Pronoun
	}
	if overlay.Conjunction != 0 {
		w.Conjunction = overlay.Conjunction
	}
	if overlay.TooShortUnder != 0 {
		w.TooShortUnder = overlay.TooShortUnder
	}
	if overlay.TooShort != 0 {
		w.TooShort = overlay.TooShort
	}
	if len(overlay.LengthWindows) > 0 {
		w.LengthWindows = overlay.LengthWindows
	}
	return w
}

func mergeKeywords(base, overlay Keywords) Keywords {
	k := base
	if len(overlay.Inspirational) > 0 {
		k.Inspirational = overlay.Inspirational
	}
	if len(overlay.Reading) > 0 {
		k.Reading = overlay.Reading
	}
	if len(overlay.Verbs) > 0 {
		k.Verbs = overlay.Verbs
	}
	if len(overlay.Articles) > 0 {
		k.Articles = overlay.Articles
	}
	if len(overlay.Pronouns) > 0 {
		k.Pronouns = overlay.Pronouns
	}
	if len(overlay.Conjunctions) > 0 {
		k.Conjunctions = overlay.Conjunctions
	}
	return k
}

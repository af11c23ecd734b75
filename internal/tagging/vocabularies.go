package tagging

import "sort"

// Basic is the compact vocabulary used by the automatic curation path.
// Falls back to "reading" when nothing matches.
func Basic() *Tagger {
	return New(Vocabulary{
		"reading":     {"read", "reading", "book", "books", "library", "story", "page"},
		"life":        {"life", "living", "alive", "exist"},
		"wisdom":      {"wisdom", "wise", "knowledge", "truth", "understand"},
		"love":        {"love", "heart", "soul", "compassion"},
		"freedom":     {"free", "freedom", "liberty", "independent"},
		"courage":     {"courage", "brave", "strength", "bold"},
		"learning":    {"learn", "education", "teach", "study"},
		"imagination": {"imagine", "imagination", "dream", "creative"},
		"happiness":   {"happy", "happiness", "joy", "delight"},
		"inspiration": {"inspire", "inspiration", "hope", "motivate"},
	}, "reading")
}

// Curation is the wider vocabulary suggested in the manual-curation file.
// Falls back to a book-title scan for business/leadership signals, then
// to "wisdom".
func Curation() *Tagger {
	return New(Vocabulary{
		"business":      {"business", "company", "startup", "entrepreneur", "customer", "product", "market"},
		"leadership":    {"lead", "leader", "manage", "team", "ceo", "executive", "organization"},
		"strategy":      {"strategy", "plan", "goal", "vision", "mission"},
		"creativity":    {"creative", "create", "innovation", "design", "invent", "original"},
		"success":       {"success", "achieve", "accomplish", "win", "excel"},
		"wisdom":        {"wisdom", "knowledge", "truth", "understand", "principle", "insight"},
		"life":          {"life", "living", "people", "human", "world"},
		"learning":      {"learn", "education", "teach", "skill", "practice"},
		"courage":       {"courage", "brave", "strength", "risk", "fear", "bold"},
		"discipline":    {"discipline", "focus", "habit", "routine", "consistent"},
		"inspiration":   {"inspire", "motivate", "hope", "aspire"},
		"reading":       {"read", "book", "story", "page", "write", "author"},
		"thinking":      {"think", "thought", "mind", "idea", "reflect", "consider"},
		"communication": {"communicate", "speak", "talk", "listen", "say", "tell"},
		"power":         {"power", "influence", "control", "authority"},
		"decision":      {"decide", "choice", "choose", "judgment"},
		"freedom":       {"free", "freedom", "liberty", "independent"},
		"love":          {"love", "heart", "soul", "passion", "care"},
		"happiness":     {"happy", "joy", "delight", "pleasure"},
	}, "wisdom").WithTitleFallbacks([]TitleFallback{
		{Tag: "business", Keywords: []string{"business", "company"}},
		{Tag: "leadership", Keywords: []string{"lead", "power"}},
	})
}

// Comprehensive is the re-tagging vocabulary: larger keyword sets, a
// title-context pass, and a book-based fallback chain ending in
// "inspiration".
func Comprehensive() *Tagger {
	return New(Vocabulary{
		"business":      {"business", "company", "startup", "entrepreneur", "market", "customer", "product", "revenue", "profit"},
		"leadership":    {"lead", "leader", "leadership", "manage", "manager", "team", "organization", "ceo", "executive"},
		"strategy":      {"strategy", "strategic", "plan", "goal", "objective", "vision", "mission"},
		"creativity":    {"creative", "create", "innovation", "innovate", "design", "invent", "original"},
		"success":       {"success", "achieve", "accomplish", "win", "excel", "performance"},
		"wisdom":        {"wisdom", "wise", "knowledge", "truth", "understand", "insight", "principle"},
		"life":          {"life", "living", "alive", "exist", "human", "people"},
		"learning":      {"learn", "education", "teach", "study", "skill", "practice", "training"},
		"courage":       {"courage", "brave", "strength", "bold", "risk", "fear"},
		"discipline":    {"discipline", "focus", "habit", "routine", "consistent", "commitment"},
		"inspiration":   {"inspire", "inspiration", "motivate", "hope", "aspire"},
		"reading":       {"read", "reading", "book", "books", "library", "page", "story", "chapter"},
		"love":          {"love", "heart", "soul", "passion", "care"},
		"freedom":       {"free", "freedom", "liberty", "independent", "choice"},
		"imagination":   {"imagine", "imagination", "dream", "vision", "possibility"},
		"happiness":     {"happy", "happiness", "joy", "delight", "pleasure"},
		"power":         {"power", "powerful", "influence", "control", "authority"},
		"thinking":      {"think", "thought", "mind", "idea", "reflect", "consider"},
		"communication": {"communicate", "speak", "talk", "say", "tell", "listen", "conversation"},
		"decision":      {"decide", "decision", "choice", "choose", "judgment"},
	}, "inspiration").WithTitlePass().WithTitleFallbacks([]TitleFallback{
		{Tag: "business", Keywords: []string{"business", "ceo", "company", "entrepreneur", "startup"}},
		{Tag: "leadership", Keywords: []string{"lead", "power", "strategy"}},
		{Tag: "wisdom", Keywords: []string{"think", "mind", "wisdom"}},
	})
}

// ForPolicy returns the tagger historically paired with a policy name.
func ForPolicy(name string) *Tagger {
	switch name {
	case "realness", "shortness":
		return Curation()
	default:
		return Basic()
	}
}

// TagNames lists a vocabulary's tags sorted, for the curation-file header.
func TagNames(t *Tagger) []string {
	names := make([]string, 0, len(t.vocab))
	for tag := range t.vocab {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

func highlight(text string) entities.Highlight {
	return entities.Highlight{Text: text, Length: len(text)}
}

func TestScorer_Quality_BaseAndLengthWindow(t *testing.T) {
	scorer := NewScorer(Quality())

	// 82 chars, no keywords, capital start and terminal period.
	h := highlight("Nothing remarkable happens in this particular stretch of filler text at all today.")

	score := scorer.Score(h)
	// base 100 + window [80,150] 30 + sentence shape 15
	assert.Equal(t, 145, score)
}

func TestScorer_Quality_NoteBonus(t *testing.T) {
	scorer := NewScorer(Quality())

	plain := highlight("Nothing remarkable happens in this particular stretch of filler text at all today.")
	noted := plain
	noted.Note = "this mattered to me"

	assert.Equal(t, scorer.Score(plain)+50, scorer.Score(noted))
}

func TestScorer_Quality_KeywordBonusesAccumulate(t *testing.T) {
	scorer := NewScorer(Quality())

	without := highlight("Nothing remarkable happens in this particular stretch of filler text at all today.")
	with := highlight("Courage and hope give meaning to this particular stretch of filler text right now!")

	// courage, hope, meaning: three inspirational hits at 10 each.
	assert.Equal(t, scorer.Score(without)+30, scorer.Score(with))
}

func TestScorer_Quality_QuestionPenalty(t *testing.T) {
	scorer := NewScorer(Quality())

	statement := highlight("Nothing remarkable happens in this particular stretch of filler text at all today.")
	question := highlight("Nothing remarkable happens in this particular stretch of filler text at all today?")

	assert.Equal(t, scorer.Score(statement)-10, scorer.Score(question))
}

func TestScorer_Quality_QuoteMarkBonus(t *testing.T) {
	scorer := NewScorer(Quality())

	plain := highlight("Nothing remarkable happens in this particular stretch of filler text at all today.")
	quoted := highlight("Nothing remarkable happens in this \"particular\" stretch of filler text all today.")

	assert.Equal(t, scorer.Score(plain)+10, scorer.Score(quoted))
}

func TestScorer_Realness_RewardsCompleteSentences(t *testing.T) {
	scorer := NewScorer(Realness())

	sentence := highlight("You should take the time you have and make something that will last.")
	fragment := highlight("Taking Time Making Lasting Things Chapter Overview Summary Fragment")

	assert.Greater(t, scorer.Score(sentence), scorer.Score(fragment))
}

func TestScorer_Realness_ArticleCountsPerOccurrence(t *testing.T) {
	scorer := NewScorer(Realness())

	one := highlight("Somebody walked into the room quietly and sat down near everyone else.")
	three := highlight("Somebody walked into the room and the hall and the garden quietly now.")

	// Two extra "the" occurrences at 10 each; both texts share the same
	// verb/pronoun/conjunction profile otherwise ("and" counts once).
	assert.Equal(t, scorer.Score(one)+20, scorer.Score(three))
}

func TestScorer_Realness_TooShortPenalty(t *testing.T) {
	scorer := NewScorer(Realness())

	short := highlight("We can do it together, yes.")
	assert.Less(t, len(short.Text), 40)

	padded := highlight("We can do it together, yes, given enough patience.")
	assert.GreaterOrEqual(t, len(padded.Text), 40)

	// The padded variant additionally earns the [40,120] window bonus, so
	// only check the direction, not an exact delta.
	assert.Greater(t, scorer.Score(padded), scorer.Score(short))
}

func TestScorer_Shortness_ScoreOnlyBreaksTies(t *testing.T) {
	scorer := NewScorer(Shortness())

	h := highlight("Think about what success in life really requires of you.")
	score := scorer.Score(h)

	// base 100 + sentence shape 20 + inspirational (life, success, think) 30
	assert.Equal(t, 150, score)
}

func TestScorer_LengthWindowCountsCharacters(t *testing.T) {
	scorer := NewScorer(Realness())

	// 110 characters but 219 bytes: the [40,120] window still applies.
	h := highlight(strings.Repeat("é", 109) + ".")

	// base 100 + window 25 + terminal punctuation 30
	assert.Equal(t, 155, scorer.Score(h))
}

func TestScorer_Deterministic(t *testing.T) {
	for _, policy := range []Policy{Quality(), Realness(), Shortness()} {
		scorer := NewScorer(policy)
		h := highlight("Every action you take is a vote for the person you wish to become.")
		first := scorer.Score(h)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, scorer.Score(h), policy.Name)
		}
	}
}
